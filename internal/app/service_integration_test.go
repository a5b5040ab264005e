package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/abmccull/talentscout/internal/app"
	"github.com/abmccull/talentscout/internal/domain/bench"
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/prediction"
	"github.com/abmccull/talentscout/internal/domain/statistics"
)

// waitForObservations polls until the player's ingested history reaches want
// or the deadline passes.
func waitForObservations(ctx context.Context, svc *service.Service, playerID string, want int) bool {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if len(svc.Observations(ctx, playerID)) >= want {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func sessionObservation(id, playerID, scoutID string, week int, shooting float64) model.Observation {
	return model.Observation{
		ID:       id,
		PlayerID: playerID,
		ScoutID:  scoutID,
		Week:     week,
		Season:   1,
		Readings: map[model.Attribute]model.AttributeReading{
			model.AttrTechnicalShooting:   {Value: shooting, Confidence: 0.7, Count: 1},
			model.AttrTechnicalFirstTouch: {Value: 14, Confidence: 0.6, Count: 1},
			model.AttrPhysicalPace:        {Value: 15, Confidence: 0.6, Count: 1},
			model.AttrMentalComposure:     {Value: 13, Confidence: 0.5, Count: 1},
			model.AttrTacticalPositioning: {Value: 14, Confidence: 0.5, Count: 1},
		},
		HasAbility:     true,
		AbilityStars:   3.5,
		PotentialStars: 4.5,
	}
}

func worldRoster() []model.Player {
	players := []model.Player{
		testStriker("p1"),
	}
	ages := []int{19, 24, 27, 31, 33}
	shooting := []float64{9, 11, 13, 8, 7}
	for i, id := range []string{"p2", "p3", "p4", "p5", "p6"} {
		p := testStriker(id)
		p.Age = ages[i]
		p.Attributes[model.AttrTechnicalShooting] = shooting[i]
		p.CurrentAbility = 90 + float64(i)*10
		if p.Age >= 30 {
			p.Form = -2
		}
		players = append(players, p)
	}
	return players
}

func TestService_IngestToReportFlow(t *testing.T) {
	Convey("Given a started service with a small world", t, func() {
		svc := service.New(service.WithWorkerCount(2), service.WithQueueSize(100), service.WithSeed(42))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		svc.AddScout(testScout("s1"))
		for _, p := range worldRoster() {
			svc.AddPlayer(p)
		}

		Convey("When observations are enqueued", func() {
			So(svc.Enqueue(ctx, sessionObservation("obs1", "p1", "s1", 1, 15)), ShouldBeTrue)
			So(svc.Enqueue(ctx, sessionObservation("obs2", "p1", "s1", 2, 17)), ShouldBeTrue)
			So(svc.Enqueue(ctx, sessionObservation("obs3", "p1", "s1", 3, 16)), ShouldBeTrue)
			So(waitForObservations(ctx, svc, "p1", 3), ShouldBeTrue)

			Convey("Then a report can be previewed, composed, and scored", func() {
				preview, err := svc.PreviewReport(ctx, "s1", "p1", model.ConvictionRecommend)
				So(err, ShouldBeNil)
				So(preview.Score, ShouldBeGreaterThan, 0)

				r, err := svc.ComposeReport(ctx, "s1", "p1", model.ConvictionRecommend)
				So(err, ShouldBeNil)
				So(r.PlayerID, ShouldEqual, "p1")
				So(r.QualityScore, ShouldEqual, 0)

				scored, err := svc.ScoreReports(ctx, "p1", 0)
				So(err, ShouldBeNil)
				So(len(scored), ShouldEqual, 1)
				So(scored[0].QualityScore, ShouldBeGreaterThan, 0)

				Convey("And the scored report is visible through the read path", func() {
					shelved := svc.ReportsByPlayer(ctx, "p1")
					So(len(shelved), ShouldEqual, 1)
					So(shelved[0].QualityScore, ShouldEqual, scored[0].QualityScore)
				})

				Convey("And scoring again finds nothing unscored", func() {
					again, err := svc.ScoreReports(ctx, "p1", 0)
					So(err, ShouldBeNil)
					So(len(again), ShouldEqual, 0)
				})

				Convey("And post-transfer tracking works on the shelved report", func() {
					score, err := svc.TrackReport(ctx, "p1", r.ID, 2)
					So(err, ShouldBeNil)
					So(score, ShouldBeGreaterThan, 0)

					_, err = svc.TrackReport(ctx, "p1", "ghost-report", 2)
					So(err, ShouldEqual, service.ErrUnknownReport)
				})
			})

			Convey("And the merged assessments support a bench comparison", func() {
				So(svc.AddBenchPlayer("s1", bench.Player{
					ID:   "ref1",
					Name: "Reference One",
					Attributes: map[model.Attribute]float64{
						model.AttrTechnicalShooting:   12,
						model.AttrTechnicalFirstTouch: 11,
					},
				}), ShouldBeNil)

				comparisons, err := svc.CompareToBench(ctx, "s1", "p1", model.DomainTechnical)
				So(err, ShouldBeNil)
				So(len(comparisons), ShouldEqual, 1)
				So(comparisons[0].BenchID, ShouldEqual, "ref1")
				So(comparisons[0].Confidence, ShouldBeBetween, 0.0, 1.0)
			})
		})
	})
}

func TestService_PredictionLifecycle(t *testing.T) {
	Convey("Given a started service with players and a scout", t, func() {
		svc := service.New(service.WithWorkerCount(1), service.WithSeed(11))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		svc.AddScout(testScout("s1"))
		for _, p := range worldRoster() {
			svc.AddPlayer(p)
		}

		Convey("When a breakout prediction is submitted and seasons pass", func() {
			p, err := svc.SubmitPrediction(ctx, "s1", "p1", prediction.TypeBreakout, 0.7, false)
			So(err, ShouldBeNil)
			So(p.Resolved, ShouldBeFalse)
			So(p.ResolveBySeason, ShouldEqual, 2)

			// p1 grows into the claim before the deadline.
			grown := testStriker("p1")
			grown.CurrentAbility = 150
			grown.Form = 3
			svc.AddPlayer(grown)

			for season := 1; season < 3; season++ {
				for w := 0; w < 38; w++ {
					svc.AdvanceWeek(ctx)
				}
			}
			_, season := svc.Clock()
			So(season, ShouldEqual, 3)

			So(svc.ResolvePredictions(ctx), ShouldBeNil)

			Convey("Then the ledger shows a correct resolution", func() {
				ledger := svc.PredictionsByScout(ctx, "s1")
				So(len(ledger), ShouldEqual, 1)
				So(ledger[0].Resolved, ShouldBeTrue)
				So(ledger[0].WasCorrect, ShouldBeTrue)
			})

			Convey("And the scout enters the standings", func() {
				entry, err := svc.Rank(ctx, "s1")
				So(err, ShouldBeNil)
				So(entry.Resolved, ShouldEqual, 1)
				So(entry.Correct, ShouldEqual, 1)
				So(entry.Accuracy, ShouldEqual, 1.0)

				top, err := svc.TopN(ctx, 5)
				So(err, ShouldBeNil)
				So(len(top), ShouldEqual, 1)
				So(top[0].ScoutID, ShouldEqual, "s1")
			})
		})

		Convey("When asking for suggestions", func() {
			suggestions, err := svc.SuggestPredictions(ctx, "s1")
			So(err, ShouldBeNil)
			So(len(suggestions), ShouldBeLessThanOrEqualTo, 3)
			for _, sg := range suggestions {
				So(sg.Confidence, ShouldBeBetween, 0.0, 1.0)
				So(sg.PlayerID, ShouldNotBeEmpty)
			}
		})
	})
}

func TestService_HypothesisLifecycle(t *testing.T) {
	Convey("Given a started service with one player", t, func() {
		svc := service.New(service.WithWorkerCount(1), service.WithSeed(5))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		svc.AddPlayer(testStriker("p1"))

		Convey("When feeding technical moments week after week", func() {
			opened := false
			for week := 0; week < 50 && !opened; week++ {
				svc.IngestMoments(ctx, []model.PlayerMoment{
					{PlayerID: "p1", Type: model.MomentTechnical, Quality: 8.5, Week: week, Description: "first-time volley"},
					{PlayerID: "p1", Type: model.MomentTechnical, Quality: 9.0, Week: week, Description: "outside-boot through ball"},
				})
				for _, h := range svc.HypothesesByPlayer(ctx, "p1") {
					_ = h
					opened = true
				}
				svc.AdvanceWeek(ctx)
			}

			Convey("Then a hypothesis eventually opens", func() {
				So(opened, ShouldBeTrue)
				hs := svc.HypothesesByPlayer(ctx, "p1")
				So(len(hs), ShouldBeGreaterThanOrEqualTo, 1)
				So(hs[0].PlayerID, ShouldEqual, "p1")
			})

			Convey("And strong supporting moments let it resolve confirmed", func() {
				for week := 0; week < 5; week++ {
					svc.IngestMoments(ctx, []model.PlayerMoment{
						{PlayerID: "p1", Type: model.MomentTechnical, Quality: 9.5, Week: week, Description: "chipped finish"},
						{PlayerID: "p1", Type: model.MomentTechnical, Quality: 9.0, Week: week, Description: "rabona cross"},
					})
				}
				hs := svc.HypothesesByPlayer(ctx, "p1")
				So(len(hs), ShouldBeGreaterThanOrEqualTo, 1)

				resolved, err := svc.ResolveHypothesis(ctx, "p1", hs[0].ID)
				So(err, ShouldBeNil)
				So(resolved.State.Terminal(), ShouldBeTrue)

				Convey("And resolving an unknown hypothesis fails cleanly", func() {
					_, err := svc.ResolveHypothesis(ctx, "p1", "ghost")
					So(err, ShouldEqual, service.ErrUnknownHypothesis)
				})
			})
		})
	})
}

func TestService_StatisticsFlow(t *testing.T) {
	Convey("Given a started service with a roster and an analyst", t, func() {
		svc := service.New(service.WithWorkerCount(1), service.WithSeed(99))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		svc.AddScout(testScout("s1"))
		svc.AddAnalyst(model.DataAnalyst{ID: "a1", Name: "Analyst One", Skill: 15, Morale: 80, Focus: model.FocusAttacking})
		for _, p := range worldRoster() {
			svc.AddPlayer(p)
		}

		Convey("When running a database query", func() {
			profile, err := svc.RunDatabaseQuery(ctx, "s1", "p1")
			So(err, ShouldBeNil)
			So(profile.PlayerID, ShouldEqual, "p1")
			So(profile.PerNinety[statistics.StatGoals], ShouldBeGreaterThan, 0)
			So(profile.Passes, ShouldEqual, 1)

			Convey("Then a deep video analysis refines the stored profile", func() {
				refined, err := svc.RunDeepVideoAnalysis(ctx, "s1", "p1")
				So(err, ShouldBeNil)
				So(refined.Passes, ShouldEqual, 2)
			})
		})

		Convey("When generating a stats briefing", func() {
			briefing, err := svc.StatsBriefing(ctx, "s1")
			So(err, ShouldBeNil)
			So(len(briefing.TopPerformers), ShouldBeGreaterThan, 0)
		})

		Convey("When requesting an analyst report", func() {
			ar, err := svc.AnalystReport(ctx, "a1")
			So(err, ShouldBeNil)
			So(ar.AnalystID, ShouldEqual, "a1")
			So(ar.Focus, ShouldEqual, model.FocusAttacking)
		})
	})
}

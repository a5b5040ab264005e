package service_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/abmccull/talentscout/internal/app"
	"github.com/abmccull/talentscout/internal/domain/bench"
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/prediction"
	"github.com/abmccull/talentscout/pkg/logger"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func testStriker(id string) model.Player {
	return model.Player{
		ID:       id,
		Name:     "Striker " + id,
		Age:      22,
		Position: model.PositionStriker,
		Attributes: map[model.Attribute]float64{
			model.AttrTechnicalShooting:   16,
			model.AttrTechnicalFirstTouch: 14,
			model.AttrTechnicalDribbling:  13,
			model.AttrPhysicalPace:        15,
			model.AttrPhysicalStrength:    12,
			model.AttrPhysicalJumping:     12,
			model.AttrMentalComposure:     14,
			model.AttrMentalDetermination: 13,
			model.AttrTacticalPositioning: 15,
			model.AttrTacticalDecisions:   12,
		},
		CurrentAbility:       130,
		PotentialAbility:     170,
		Form:                 2,
		Morale:               7,
		ContractExpirySeason: 5,
	}
}

func testScout(id string) model.Scout {
	return model.Scout{
		ID:             id,
		Name:           "Scout " + id,
		Judgment:       14,
		TacticalSense:  12,
		DataLiteracy:   13,
		Specialization: model.DomainTechnical,
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithWorkerCount(4),
			service.WithQueueSize(1000),
			service.WithDedupeSize(500),
			service.WithSeed(42),
		)

		Convey("Then it should construct without error", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_Clock(t *testing.T) {
	Convey("Given a fresh service", t, func() {
		svc := service.New()
		ctx := context.Background()

		week, season := svc.Clock()
		So(week, ShouldEqual, 1)
		So(season, ShouldEqual, 1)

		Convey("When advancing a week", func() {
			week, season = svc.AdvanceWeek(ctx)
			So(week, ShouldEqual, 2)
			So(season, ShouldEqual, 1)
		})

		Convey("When advancing past the final week of a season", func() {
			for i := 0; i < 38; i++ {
				week, season = svc.AdvanceWeek(ctx)
			}
			So(week, ShouldEqual, 1)
			So(season, ShouldEqual, 2)
		})

		Convey("When advancing with an analyst on staff", func() {
			svc.AddAnalyst(model.DataAnalyst{ID: "a1", Skill: 14, Morale: 50})
			svc.AdvanceWeek(ctx)

			Convey("Then morale adjustments still apply cleanly", func() {
				So(svc.AdjustAnalystMorale("a1", -10), ShouldBeNil)
				So(svc.AdjustAnalystMorale("ghost", 5), ShouldEqual, service.ErrUnknownAnalyst)
			})
		})
	})
}

func TestService_BenchManagement(t *testing.T) {
	Convey("Given a service with one scout", t, func() {
		svc := service.New(service.WithSeed(7))
		svc.AddScout(testScout("s1"))

		ref := bench.Player{
			ID:   "ref1",
			Name: "Reference One",
			Attributes: map[model.Attribute]float64{
				model.AttrTechnicalShooting: 15,
				model.AttrTechnicalPassing:  12,
			},
		}

		Convey("When adding a bench player for a known scout", func() {
			So(svc.AddBenchPlayer("s1", ref), ShouldBeNil)

			Convey("Then removing it should also succeed", func() {
				So(svc.RemoveBenchPlayer("s1", "ref1"), ShouldBeNil)
			})
		})

		Convey("When operating on an unknown scout", func() {
			So(svc.AddBenchPlayer("ghost", ref), ShouldEqual, service.ErrUnknownScout)
			So(svc.RemoveBenchPlayer("ghost", "ref1"), ShouldEqual, service.ErrUnknownScout)
		})
	})
}

func TestService_UnknownEntities(t *testing.T) {
	Convey("Given a started service with an empty world", t, func() {
		svc := service.New(service.WithWorkerCount(1), service.WithSeed(3))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then operations on unknown entities should fail cleanly", func() {
			_, err := svc.ComposeReport(ctx, "ghost", "p1", model.ConvictionNote)
			So(err, ShouldEqual, service.ErrUnknownScout)

			svc.AddScout(testScout("s1"))
			_, err = svc.ComposeReport(ctx, "s1", "ghost", model.ConvictionNote)
			So(err, ShouldEqual, service.ErrUnknownPlayer)

			_, err = svc.ScoreReports(ctx, "ghost", 0)
			So(err, ShouldEqual, service.ErrUnknownPlayer)

			_, err = svc.SubmitPrediction(ctx, "s1", "ghost", prediction.TypeBreakout, 0.6, false)
			So(err, ShouldEqual, service.ErrUnknownPlayer)

			_, err = svc.SuggestPredictions(ctx, "ghost")
			So(err, ShouldEqual, service.ErrUnknownScout)

			_, err = svc.RunDatabaseQuery(ctx, "s1", "ghost")
			So(err, ShouldEqual, service.ErrUnknownPlayer)

			_, err = svc.StatsBriefing(ctx, "ghost")
			So(err, ShouldEqual, service.ErrUnknownScout)

			_, err = svc.AnalystReport(ctx, "ghost")
			So(err, ShouldEqual, service.ErrUnknownAnalyst)

			_, err = svc.CompareToBench(ctx, "ghost", "p1", model.DomainTechnical)
			So(err, ShouldEqual, service.ErrUnknownScout)
		})

		Convey("And composing on a player with no observations should fail", func() {
			svc.AddScout(testScout("s1"))
			svc.AddPlayer(testStriker("p1"))

			_, err := svc.ComposeReport(ctx, "s1", "p1", model.ConvictionNote)
			So(err, ShouldEqual, service.ErrNoObservations)
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a service", t, func() {
		svc := service.New(service.WithWorkerCount(2), service.WithQueueSize(100))
		ctx := context.Background()

		Convey("When starting and stopping", func() {
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then starting again should be a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})

			Convey("And stats should reflect the running state", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["workerCount"], ShouldEqual, 2)
			})

			svc.Stop()

			Convey("And stopping again should be safe", func() {
				svc.Stop()
			})
		})
	})
}

package bench_test

import (
	"fmt"
	"testing"

	"github.com/abmccull/talentscout/internal/domain/bench"
	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/rng"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBenchCapacity(t *testing.T) {
	Convey("Given an empty bench", t, func() {
		b := bench.New()

		Convey("When adding eight distinct players", func() {
			for i := 0; i < bench.MaxSize; i++ {
				b = b.Add(bench.Player{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i)})
			}

			Convey("Then the bench holds exactly eight", func() {
				So(len(b.Players), ShouldEqual, bench.MaxSize)
			})

			Convey("And adding a ninth is a no-op", func() {
				after := b.Add(bench.Player{ID: "p9", Name: "Player 9"})
				So(len(after.Players), ShouldEqual, bench.MaxSize)
				So(after.Players, ShouldResemble, b.Players)
			})
		})

		Convey("When adding a duplicate id", func() {
			b = b.Add(bench.Player{ID: "dup", Name: "First"})
			after := b.Add(bench.Player{ID: "dup", Name: "Second"})

			Convey("Then the bench is unchanged", func() {
				So(len(after.Players), ShouldEqual, 1)
				So(after.Players[0].Name, ShouldEqual, "First")
			})
		})

		Convey("When removing a missing id", func() {
			b = b.Add(bench.Player{ID: "keep"})
			after := b.Remove("ghost")

			Convey("Then the bench is unchanged", func() {
				So(after.Players, ShouldResemble, b.Players)
			})
		})

		Convey("When removing an existing id", func() {
			b = b.Add(bench.Player{ID: "a"}).Add(bench.Player{ID: "b"})
			after := b.Remove("a")

			Convey("Then only the other entry remains", func() {
				So(len(after.Players), ShouldEqual, 1)
				So(after.Players[0].ID, ShouldEqual, "b")
			})

			Convey("And the original bench value is untouched", func() {
				So(len(b.Players), ShouldEqual, 2)
			})
		})
	})
}

func TestCompareTiers(t *testing.T) {
	Convey("Given a target and a bench player in the technical domain", t, func() {
		src := rng.New(7)
		ref := bench.Player{
			ID:   "ref-1",
			Name: "Benchmark",
			Attributes: map[model.Attribute]float64{
				model.AttrTechnicalPassing: 10,
			},
		}

		Convey("When the target is five points ahead on the shared attribute", func() {
			target := map[model.Attribute]float64{model.AttrTechnicalPassing: 15}
			c := bench.Compare(src, "Prospect", target, ref, model.DomainTechnical)

			Convey("Then the delta is 5 and the tier clearly better", func() {
				So(c.Delta, ShouldEqual, 5)
				So(c.Tier, ShouldEqual, bench.TierClearlyBetter)
				So(c.Tier.String(), ShouldEqual, "clearly_better")
			})

			Convey("And the narrative mentions both players", func() {
				So(c.Narrative, ShouldContainSubstring, "Prospect")
				So(c.Narrative, ShouldContainSubstring, "Benchmark")
			})
		})

		Convey("When the gap is between one and three points", func() {
			target := map[model.Attribute]float64{model.AttrTechnicalPassing: 12}
			c := bench.Compare(src, "Prospect", target, ref, model.DomainTechnical)

			So(c.Tier, ShouldEqual, bench.TierSlightlyBetter)
		})

		Convey("When the target trails by three or more", func() {
			target := map[model.Attribute]float64{model.AttrTechnicalPassing: 6}
			c := bench.Compare(src, "Prospect", target, ref, model.DomainTechnical)

			So(c.Tier, ShouldEqual, bench.TierClearlyWorse)
		})

		Convey("When there is no overlapping attribute", func() {
			target := map[model.Attribute]float64{model.AttrTechnicalShooting: 14}
			c := bench.Compare(src, "Prospect", target, ref, model.DomainTechnical)

			Convey("Then the delta is zero and the tier comparable", func() {
				So(c.Delta, ShouldEqual, 0)
				So(c.Tier, ShouldEqual, bench.TierComparable)
			})
		})

		Convey("When the domain matches nothing the maps fall back unfiltered", func() {
			target := map[model.Attribute]float64{model.AttrTechnicalPassing: 15}
			c := bench.Compare(src, "Prospect", target, ref, model.DomainPhysical)

			Convey("Then the comparison still produces signal", func() {
				So(c.Delta, ShouldEqual, 5)
			})
		})
	})
}

func TestCompareConfidence(t *testing.T) {
	Convey("Given comparisons with varying evidence", t, func() {
		Convey("When overlap and reference knowledge are rich", func() {
			src := rng.New(11)
			target := map[model.Attribute]float64{}
			refAttrs := map[model.Attribute]float64{}
			for i, attr := range model.AllAttributes[:8] {
				target[attr] = float64(10 + i%3)
				refAttrs[attr] = 10
			}
			c := bench.Compare(src, "T", target, bench.Player{ID: "r", Name: "R", Attributes: refAttrs}, model.DomainTechnical)

			Convey("Then confidence sits near the top of the band", func() {
				So(c.Confidence, ShouldBeGreaterThan, 0.5)
				So(c.Confidence, ShouldBeLessThanOrEqualTo, 0.99)
			})
		})

		Convey("When evidence is a single shared attribute", func() {
			src := rng.New(11)
			target := map[model.Attribute]float64{model.AttrTechnicalPassing: 12}
			ref := bench.Player{ID: "r", Name: "R", Attributes: map[model.Attribute]float64{model.AttrTechnicalPassing: 10}}
			c := bench.Compare(src, "T", target, ref, model.DomainTechnical)

			Convey("Then confidence is low but never zero", func() {
				So(c.Confidence, ShouldBeGreaterThanOrEqualTo, 0.05)
				So(c.Confidence, ShouldBeLessThan, 0.5)
			})
		})

		Convey("When run twice from identically-seeded sources", func() {
			target := map[model.Attribute]float64{model.AttrTechnicalPassing: 12}
			ref := bench.Player{ID: "r", Name: "R", Attributes: map[model.Attribute]float64{model.AttrTechnicalPassing: 10}}
			a := bench.Compare(rng.New(99), "T", target, ref, model.DomainTechnical)
			b := bench.Compare(rng.New(99), "T", target, ref, model.DomainTechnical)

			Convey("Then the results are identical", func() {
				So(a, ShouldResemble, b)
			})
		})
	})
}

func TestCompareAgainstBenchAndClosestMatch(t *testing.T) {
	Convey("Given a bench with three references", t, func() {
		src := rng.New(3)
		b := bench.New().
			Add(bench.Player{ID: "far", Name: "Far", Attributes: map[model.Attribute]float64{model.AttrTechnicalPassing: 5}}).
			Add(bench.Player{ID: "near", Name: "Near", Attributes: map[model.Attribute]float64{model.AttrTechnicalPassing: 12}}).
			Add(bench.Player{ID: "close", Name: "Close", Attributes: map[model.Attribute]float64{model.AttrTechnicalPassing: 12.5}})
		target := map[model.Attribute]float64{model.AttrTechnicalPassing: 12.4}

		Convey("When comparing against the whole bench", func() {
			comps := bench.CompareAgainstBench(src, "T", target, b, model.DomainTechnical)

			Convey("Then there is one comparison per entry in bench order", func() {
				So(len(comps), ShouldEqual, 3)
				So(comps[0].BenchID, ShouldEqual, "far")
				So(comps[2].BenchID, ShouldEqual, "close")
			})

			Convey("And the closest match is the first comparable entry", func() {
				closest, ok := bench.ClosestMatch(comps)
				So(ok, ShouldBeTrue)
				So(closest.BenchID, ShouldEqual, "near")
			})
		})

		Convey("When the comparison list is empty", func() {
			_, ok := bench.ClosestMatch(nil)
			So(ok, ShouldBeFalse)
		})
	})
}

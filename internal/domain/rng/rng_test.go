package rng_test

import (
	"testing"

	"github.com/abmccull/talentscout/internal/domain/rng"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSourceReplay(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a := rng.New(42)
		b := rng.New(42)

		Convey("Then an identical call sequence yields identical draws", func() {
			for i := 0; i < 100; i++ {
				So(a.Float64(), ShouldEqual, b.Float64())
				So(a.IntN(20), ShouldEqual, b.IntN(20))
				So(a.Jitter(2.5), ShouldEqual, b.Jitter(2.5))
				So(a.Normal(10, 1.5), ShouldEqual, b.Normal(10, 1.5))
				So(a.Chance(0.3), ShouldEqual, b.Chance(0.3))
			}
		})

		Convey("And identical shuffles produce the same permutation", func() {
			first := []int{0, 1, 2, 3, 4, 5, 6, 7}
			second := []int{0, 1, 2, 3, 4, 5, 6, 7}
			a.Shuffle(len(first), func(i, j int) { first[i], first[j] = first[j], first[i] })
			b.Shuffle(len(second), func(i, j int) { second[i], second[j] = second[j], second[i] })
			So(first, ShouldResemble, second)
		})
	})

	Convey("Given two sources with different seeds", t, func() {
		a := rng.New(1)
		b := rng.New(2)

		Convey("Then their streams diverge", func() {
			same := 0
			for i := 0; i < 50; i++ {
				if a.Float64() == b.Float64() {
					same++
				}
			}
			So(same, ShouldBeLessThan, 50)
		})
	})
}

func TestSourceDraws(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		src := rng.New(7)

		Convey("Float64 stays in [0, 1)", func() {
			for i := 0; i < 1000; i++ {
				v := src.Float64()
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
				So(v, ShouldBeLessThan, 1)
			}
		})

		Convey("IntN stays in [0, n)", func() {
			for i := 0; i < 1000; i++ {
				v := src.IntN(10)
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
				So(v, ShouldBeLessThan, 10)
			}
		})

		Convey("Jitter stays within the half width", func() {
			for i := 0; i < 1000; i++ {
				v := src.Jitter(3)
				So(v, ShouldBeBetweenOrEqual, -3, 3)
			}
		})

		Convey("Normal with non-positive sigma returns the mean untouched", func() {
			untouched := rng.New(7)
			So(src.Normal(12.5, 0), ShouldEqual, 12.5)
			So(src.Normal(12.5, -1), ShouldEqual, 12.5)
			// The degenerate draws must not consume the stream.
			So(src.Float64(), ShouldEqual, untouched.Float64())
		})

		Convey("Chance at the extremes is exact", func() {
			So(src.Chance(1.1), ShouldBeTrue)
			for i := 0; i < 100; i++ {
				So(src.Chance(0), ShouldBeFalse)
			}
		})
	})
}

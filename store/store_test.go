package store_test

import (
	"context"
	"testing"

	"github.com/samimiettinen/pxingest/pxtable"
	"github.com/samimiettinen/pxingest/store"
	. "github.com/smartystreets/goconvey/convey"
)

var ctx = context.Background()

func fv(f float64) *float64 { return &f }

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty in-memory store", t, func() {
		s := store.NewMemory()

		Convey("When observations are upserted", func() {
			err := s.UpsertObservations(ctx, []pxtable.Observation{
				{SeriesID: "gdp/FI", Date: "2021-01-01", Value: fv(110)},
				{SeriesID: "gdp/FI", Date: "2020-01-01", Value: fv(100)},
				{SeriesID: "gdp/SE", Date: "2020-01-01", Value: nil},
			})
			So(err, ShouldBeNil)

			Convey("Then they can be read back ordered by date", func() {
				obs, err := s.GetObservations(ctx, "gdp/FI")
				So(err, ShouldBeNil)
				So(obs, ShouldHaveLength, 2)
				So(obs[0].Date, ShouldEqual, "2020-01-01")
				So(*obs[0].Value, ShouldEqual, 100)
				So(obs[1].Date, ShouldEqual, "2021-01-01")
			})

			Convey("Then nil values are preserved", func() {
				obs, err := s.GetObservations(ctx, "gdp/SE")
				So(err, ShouldBeNil)
				So(obs, ShouldHaveLength, 1)
				So(obs[0].Value, ShouldBeNil)
			})

			Convey("Then series ids are listed sorted", func() {
				So(s.SeriesIDs(), ShouldResemble, []string{"gdp/FI", "gdp/SE"})
			})

			Convey("And when the same key is upserted again", func() {
				err := s.UpsertObservations(ctx, []pxtable.Observation{
					{SeriesID: "gdp/FI", Date: "2020-01-01", Value: fv(101)},
				})
				So(err, ShouldBeNil)

				Convey("Then the observation is overwritten, not duplicated", func() {
					obs, err := s.GetObservations(ctx, "gdp/FI")
					So(err, ShouldBeNil)
					So(obs, ShouldHaveLength, 2)
					So(*obs[0].Value, ShouldEqual, 101)
				})
			})
		})

		Convey("When an unknown series is read", func() {
			obs, err := s.GetObservations(ctx, "missing")

			Convey("Then no observations and no error are returned", func() {
				So(err, ShouldBeNil)
				So(obs, ShouldBeNil)
			})
		})
	})
}

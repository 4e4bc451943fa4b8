package pxtable_test

import (
	"testing"

	"github.com/samimiettinen/pxingest/pxtable"
	. "github.com/smartystreets/goconvey/convey"
)

func queryMetadata() *pxtable.TableMetadata {
	return &pxtable.TableMetadata{
		Title: "Employment by area and sex",
		Variables: []pxtable.Variable{
			{
				Code:        "Vuosi",
				Label:       "Year",
				Values:      []string{"2019", "2020", "2021", "2022"},
				ValueLabels: []string{"2019", "2020", "2021", "2022"},
				IsTime:      true,
			},
			{
				Code:        "Alue",
				Label:       "Area",
				Values:      []string{"FI", "SE", "NO"},
				ValueLabels: []string{"Finland", "Sweden", "Norway"},
			},
			{
				Code:        "Sukupuoli",
				Label:       "Sex",
				Values:      []string{"S", "1", "2"},
				ValueLabels: []string{"Yhteensä", "Males", "Females"},
			},
		},
	}
}

func TestBuildQuery(t *testing.T) {
	Convey("Given table metadata and no filters", t, func() {
		sel := pxtable.BuildQuery(queryMetadata(), nil)

		Convey("Then the time variable selects every period", func() {
			So(sel, ShouldHaveLength, 3)
			So(sel[0].Code, ShouldEqual, "Vuosi")
			So(sel[0].Values, ShouldResemble, []string{"2019", "2020", "2021", "2022"})
		})

		Convey("Then a variable without a total marker defaults to its first value", func() {
			So(sel[1].Code, ShouldEqual, "Alue")
			So(sel[1].Values, ShouldResemble, []string{"FI"})
		})

		Convey("Then a variable with a total-marker label selects that value", func() {
			So(sel[2].Code, ShouldEqual, "Sukupuoli")
			So(sel[2].Values, ShouldResemble, []string{"S"})
		})
	})

	Convey("Given a period filter", t, func() {
		sel := pxtable.BuildQuery(queryMetadata(), &pxtable.Filters{
			Periods: []string{"2022", "2020", "1999"},
		})

		Convey("Then unknown periods are dropped and metadata order is kept", func() {
			So(sel[0].Values, ShouldResemble, []string{"2020", "2022"})
		})
	})

	Convey("Given a max periods cap", t, func() {
		sel := pxtable.BuildQuery(queryMetadata(), &pxtable.Filters{MaxPeriods: 2})

		Convey("Then only the most recent periods are selected", func() {
			So(sel[0].Values, ShouldResemble, []string{"2021", "2022"})
		})
	})

	Convey("Given a dimension override", t, func() {
		sel := pxtable.BuildQuery(queryMetadata(), &pxtable.Filters{
			Overrides: map[string][]string{"Alue": {"NO", "SE", "DK"}},
		})

		Convey("Then the override is intersected with the metadata values", func() {
			So(sel[1].Code, ShouldEqual, "Alue")
			So(sel[1].Values, ShouldResemble, []string{"SE", "NO"})
		})
	})

	Convey("Given an override with an empty intersection", t, func() {
		sel := pxtable.BuildQuery(queryMetadata(), &pxtable.Filters{
			Overrides: map[string][]string{"Alue": {"DK"}},
		})

		Convey("Then the variable is omitted from the selection entirely", func() {
			So(sel, ShouldHaveLength, 2)
			So(sel[0].Code, ShouldEqual, "Vuosi")
			So(sel[1].Code, ShouldEqual, "Sukupuoli")
		})
	})

	Convey("Given custom total markers", t, func() {
		sel := pxtable.BuildQuery(queryMetadata(), &pxtable.Filters{
			TotalMarkers: []string{"males"},
		})

		Convey("Then the custom marker replaces the default list", func() {
			So(sel[2].Values, ShouldResemble, []string{"1"})
		})
	})

	Convey("Given metadata with no detectable time dimension", t, func() {
		m := &pxtable.TableMetadata{
			Variables: []pxtable.Variable{
				{Code: "Alue", Values: []string{"FI", "SE"}, ValueLabels: []string{"Finland", "Sweden"}},
			},
		}
		sel := pxtable.BuildQuery(m, &pxtable.Filters{Periods: []string{"2020"}})

		Convey("Then the period filter is ignored and defaults apply", func() {
			So(sel, ShouldHaveLength, 1)
			So(sel[0].Values, ShouldResemble, []string{"FI"})
		})
	})
}

package pxtable

import "strings"

// DefaultTotalMarkers are labels that identify a dimension value as the
// "all categories combined" total. Matching is case-insensitive equality.
// The list is deliberately an explicit, overridable lookup table: there is
// no structural signal for totals in the PxWeb API, only locale-specific
// naming conventions.
var DefaultTotalMarkers = []string{"total", "yhteensä", "sss"}

// Filters narrows the selection a query requests from the provider.
// All fields are optional.
type Filters struct {
	// Periods restricts the time dimension to these period codes. Codes not
	// present in the table metadata are silently dropped.
	Periods []string
	// MaxPeriods caps the time dimension to the most recent N periods. Only
	// applied when Periods is empty; PxWeb value order is chronological.
	MaxPeriods int
	// Overrides selects explicit values for non-time variables, keyed by
	// variable code. An override whose intersection with the metadata is
	// empty causes the variable to be omitted from the selection entirely
	// (PxWeb treats an absent variable as "select everything").
	Overrides map[string][]string
	// TotalMarkers replaces DefaultTotalMarkers when non-empty.
	TotalMarkers []string
}

func (f *Filters) totalMarkers() []string {
	if f != nil && len(f.TotalMarkers) > 0 {
		return f.TotalMarkers
	}
	return DefaultTotalMarkers
}

// IsTotalMarker reports whether a label names a "total" value, using the
// default marker list.
func IsTotalMarker(label string) bool {
	return isTotal(label, DefaultTotalMarkers)
}

func isTotal(label string, markers []string) bool {
	for _, m := range markers {
		if strings.EqualFold(label, m) {
			return true
		}
	}
	return false
}

// VariableSelection is the set of values requested for one variable.
type VariableSelection struct {
	Code   string
	Values []string
}

// Selection is an ordered list of per-variable value selections, suitable
// for building a provider data query.
type Selection []VariableSelection

// BuildQuery produces a Selection from table metadata and optional filters.
// It is a pure function and never contacts the provider.
//
// Policy per variable:
//   - time variable: the period filter intersected with the metadata values,
//     else every value (capped to the most recent MaxPeriods when set);
//   - overridden variable: the override intersected with the metadata
//     values, omitted from the selection when the intersection is empty;
//   - any other variable: its "total" value when one exists, else the first
//     coded value. Defaulting to a single value avoids requesting the full
//     cartesian expansion of every dimension.
//
// When no time dimension is flagged or inferable the period filter is
// ignored and every variable follows the default policy; the flatteners,
// not the query builder, are responsible for failing such tables.
func BuildQuery(m *TableMetadata, f *Filters) Selection {
	timeIdx := -1
	if i, err := m.TimeVariableIndex(); err == nil {
		timeIdx = i
	}

	selection := make(Selection, 0, len(m.Variables))
	for i := range m.Variables {
		v := &m.Variables[i]

		if i == timeIdx {
			selection = append(selection, VariableSelection{
				Code:   v.Code,
				Values: selectPeriods(v, f),
			})
			continue
		}

		if f != nil {
			if override, ok := f.Overrides[v.Code]; ok {
				values := intersect(override, v.Values)
				if len(values) == 0 {
					continue
				}
				selection = append(selection, VariableSelection{Code: v.Code, Values: values})
				continue
			}
		}

		selection = append(selection, VariableSelection{
			Code:   v.Code,
			Values: []string{defaultValue(v, f.totalMarkers())},
		})
	}
	return selection
}

func selectPeriods(v *Variable, f *Filters) []string {
	if f != nil && len(f.Periods) > 0 {
		return intersect(f.Periods, v.Values)
	}
	values := append([]string{}, v.Values...)
	if f != nil && f.MaxPeriods > 0 && len(values) > f.MaxPeriods {
		values = values[len(values)-f.MaxPeriods:]
	}
	return values
}

// intersect returns the requested values that exist in the variable's
// vocabulary, preserving the metadata's chronological/declared order.
func intersect(requested, available []string) []string {
	want := make(map[string]struct{}, len(requested))
	for _, r := range requested {
		want[r] = struct{}{}
	}
	out := make([]string, 0, len(requested))
	for _, a := range available {
		if _, ok := want[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func defaultValue(v *Variable, markers []string) string {
	for i, label := range v.ValueLabels {
		if isTotal(label, markers) && i < len(v.Values) {
			return v.Values[i]
		}
	}
	if len(v.Values) > 0 {
		return v.Values[0]
	}
	return ""
}

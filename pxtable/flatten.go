package pxtable

import (
	"sort"
	"strconv"
	"strings"
)

// RawRow is one provider-supplied sparse data row: a tuple of coded values,
// one per variable in metadata order, plus the raw cell values. Only the
// first cell value is consumed.
type RawRow struct {
	Key    []string `json:"key"`
	Values []string `json:"values"`
}

// Row is the canonical, fully-labelled observation every transform operates
// on. It is produced once per distinct (dimensions, date) combination and is
// immutable afterwards.
type Row struct {
	// Dimensions maps non-time variable codes to the row's coded values.
	Dimensions map[string]string
	// DimensionLabels carries the human-readable label for each entry in
	// Dimensions.
	DimensionLabels map[string]string
	// Date is the canonical ISO calendar-day string for the observation.
	Date string
	// DateLabel is the original period code as published by the provider.
	DateLabel string
	// Value is the parsed observation value; nil when the provider published
	// a missing-value sentinel or an unparseable cell.
	Value *float64
	// Frequency is the observation frequency detected from the period code.
	Frequency Frequency
}

// missing-value sentinels used by PC-Axis style providers
func isMissingSentinel(s string) bool {
	switch strings.TrimSpace(s) {
	case "..", ".", "":
		return true
	}
	return false
}

// ParseValue parses a raw cell value into a nullable float. Missing-value
// sentinels ("..", ".", empty) and non-numeric strings both map to nil;
// provider data is not always clean and a dirty cell must not abort the
// table.
func ParseValue(raw string) *float64 {
	if isMissingSentinel(raw) {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &f
}

// FlattenSparse converts provider sparse data rows into canonical rows.
//
// When several raw rows collapse to the same (dimensions, date) key, the
// first one encountered wins and later ones are silently discarded: some
// providers temporarily publish the same period under two coded labels
// during metadata transitions, and emitting both would double-count.
//
// Rows whose key length disagrees with the variable count are skipped, in
// line with the engine's policy of degrading per-row problems rather than
// aborting the table. The only fatal condition is an unresolvable time
// dimension.
func FlattenSparse(raws []RawRow, m *TableMetadata) ([]Row, error) {
	timeIdx, err := m.TimeVariableIndex()
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))

	for _, raw := range raws {
		if len(raw.Key) != len(m.Variables) {
			continue
		}
		var value *float64
		if len(raw.Values) > 0 {
			value = ParseValue(raw.Values[0])
		}
		row := buildRow(raw.Key, value, m, timeIdx)

		key := dedupKey(row)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, row)
	}
	return rows, nil
}

// buildRow assembles a canonical row from one coded-value tuple. It is
// shared by the sparse and dense flatteners so labeling and time-key
// normalization behave identically for both wire formats.
func buildRow(codes []string, value *float64, m *TableMetadata, timeIdx int) Row {
	row := Row{
		Dimensions:      make(map[string]string, len(codes)-1),
		DimensionLabels: make(map[string]string, len(codes)-1),
		Value:           value,
	}
	for i, code := range codes {
		v := &m.Variables[i]
		if i == timeIdx {
			row.DateLabel = code
			row.Date, row.Frequency = NormalizeTimeKey(code)
			continue
		}
		row.Dimensions[v.Code] = code
		row.DimensionLabels[v.Code] = v.LabelFor(code)
	}
	return row
}

// dedupKey identifies a row by its date and sorted dimension coded values.
func dedupKey(row Row) string {
	parts := make([]string, 0, len(row.Dimensions)+1)
	for code, value := range row.Dimensions {
		parts = append(parts, code+"="+value)
	}
	sort.Strings(parts)
	return row.Date + "|" + strings.Join(parts, "|")
}

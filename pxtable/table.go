package pxtable

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"
)

// TableColumn describes one column of a normalized table.
type TableColumn struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	IsTime bool   `json:"isTime,omitempty"`
}

// TableCell carries both the coded and the human-readable value of one
// dimension cell, so UI code can filter on codes and display labels.
type TableCell struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// TableRow is one normalized table row: dimension cells in column order,
// the canonical date, and the observation value.
type TableRow struct {
	Cells     []TableCell `json:"cells"`
	Date      string      `json:"date"`
	DateLabel string      `json:"dateLabel"`
	Value     *float64    `json:"value"`
}

// Table is the filter/pivot-ready normalized shape consumed by UI code.
type Table struct {
	Title   string        `json:"title"`
	Columns []TableColumn `json:"columns"`
	Rows    []TableRow    `json:"rows"`
}

// NewTable normalizes canonical rows into a Table. Column order follows the
// metadata's variable declaration order with the time column last.
func NewTable(rows []Row, m *TableMetadata) Table {
	t := Table{Title: m.Title}

	timeIdx, _ := m.TimeVariableIndex()
	dimCodes := make([]string, 0, len(m.Variables))
	for i := range m.Variables {
		if i == timeIdx {
			continue
		}
		dimCodes = append(dimCodes, m.Variables[i].Code)
		t.Columns = append(t.Columns, TableColumn{
			Code:  m.Variables[i].Code,
			Label: m.Variables[i].Label,
		})
	}

	timeLabel := "Time"
	timeCode := "time"
	if timeIdx >= 0 {
		timeCode = m.Variables[timeIdx].Code
		if m.Variables[timeIdx].Label != "" {
			timeLabel = m.Variables[timeIdx].Label
		}
	}
	t.Columns = append(t.Columns, TableColumn{Code: timeCode, Label: timeLabel, IsTime: true})

	t.Rows = make([]TableRow, 0, len(rows))
	for _, row := range rows {
		tr := TableRow{
			Cells:     make([]TableCell, 0, len(dimCodes)),
			Date:      row.Date,
			DateLabel: row.DateLabel,
			Value:     row.Value,
		}
		for _, code := range dimCodes {
			tr.Cells = append(tr.Cells, TableCell{
				Code:  row.Dimensions[code],
				Label: row.DimensionLabels[code],
			})
		}
		t.Rows = append(t.Rows, tr)
	}
	return t
}

// Point is one chartable observation.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series is a derived charting view: the canonical rows sharing every
// non-time dimension value, ordered by date. It is rebuilt whenever the
// caller's selection changes and is never persisted.
type Series struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// SeriesKey builds a deterministic series identifier from a row's coded
// dimension values, sorted by variable code. Codes rather than labels keep
// the key stable across label edits, and the sort keeps it independent of
// map iteration and input order.
func SeriesKey(dims map[string]string) string {
	codes := make([]string, 0, len(dims))
	for code := range dims {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, dims[code])
	}
	return strings.Join(parts, "|")
}

// seriesLabel joins the row's non-empty, non-total dimension labels. When
// every label collapses away (single-series tables selected down to their
// totals) a generic name is used instead.
func seriesLabel(row Row) string {
	codes := make([]string, 0, len(row.DimensionLabels))
	for code := range row.DimensionLabels {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		label := row.DimensionLabels[code]
		if label == "" || IsTotalMarker(label) {
			continue
		}
		parts = append(parts, label)
	}
	if len(parts) == 0 {
		return "Series"
	}
	return strings.Join(parts, ", ")
}

// GroupForChart groups the selected rows into chartable series keyed by
// their dimension combination. selected holds row indices; nil selects every
// row, out-of-range indices are ignored. Null values are omitted rather than
// zero-filled, and each series' points are sorted by date ascending, so the
// result is independent of input order.
func GroupForChart(rows []Row, selected []int) map[string]Series {
	if selected == nil {
		selected = make([]int, len(rows))
		for i := range rows {
			selected[i] = i
		}
	}

	series := make(map[string]Series)
	for _, i := range selected {
		if i < 0 || i >= len(rows) {
			continue
		}
		row := rows[i]
		key := SeriesKey(row.Dimensions)

		s, ok := series[key]
		if !ok {
			s = Series{Key: key, Label: seriesLabel(row)}
		}
		if row.Value != nil {
			s.Points = append(s.Points, Point{Date: row.Date, Value: *row.Value})
		}
		series[key] = s
	}

	for key, s := range series {
		sort.Slice(s.Points, func(i, j int) bool { return s.Points[i].Date < s.Points[j].Date })
		series[key] = s
	}
	return series
}

// ToCSV serializes the selected rows: dimension label columns in metadata
// order, then the time column, then "Value". Cells use the human label when
// one is known, falling back to the coded value; null values serialize as
// the empty string. Quoting follows RFC 4180 (cells containing commas,
// quotes or newlines are wrapped in doubled-quote escaping).
func ToCSV(rows []Row, m *TableMetadata, selected []int) (string, error) {
	if selected == nil {
		selected = make([]int, len(rows))
		for i := range rows {
			selected[i] = i
		}
	}

	t := NewTable(rows, m)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		header = append(header, c.Label)
	}
	header = append(header, "Value")
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, i := range selected {
		if i < 0 || i >= len(t.Rows) {
			continue
		}
		row := t.Rows[i]
		record := make([]string, 0, len(header))
		for _, cell := range row.Cells {
			if cell.Label != "" {
				record = append(record, cell.Label)
			} else {
				record = append(record, cell.Code)
			}
		}
		if row.DateLabel != "" {
			record = append(record, row.DateLabel)
		} else {
			record = append(record, row.Date)
		}
		if row.Value != nil {
			record = append(record, strconv.FormatFloat(*row.Value, 'f', -1, 64))
		} else {
			record = append(record, "")
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

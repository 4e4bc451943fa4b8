// Package pxtable converts tabular statistical data published by
// PC-Axis/PxWeb-style APIs (hierarchical dimension metadata plus sparse or
// dense value arrays) into flat per-date observations and normalized tables.
//
// The package is pure: it performs no I/O and keeps no shared state, so
// independent tables may be processed concurrently without synchronisation.
package pxtable

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ONSdigital/log.go/v2/log"
)

// Variable is one dimension of a statistical table: an ordered list of coded
// values with parallel human-readable labels. Value order is significant, it
// defines the positional index used by dense value arrays.
type Variable struct {
	Code        string   `json:"code"`
	Label       string   `json:"text"`
	Values      []string `json:"values"`
	ValueLabels []string `json:"valueTexts"`
	IsTime      bool     `json:"time,omitempty"`
}

// LabelFor returns the human-readable label for a coded value. Unknown codes
// fall back to the code itself, since provider vocabularies evolve between
// the metadata and data endpoints.
func (v *Variable) LabelFor(code string) string {
	for i, val := range v.Values {
		if val == code && i < len(v.ValueLabels) {
			return v.ValueLabels[i]
		}
	}
	return code
}

// IndexOf returns the positional index of a coded value, or -1 if the code
// is not present.
func (v *Variable) IndexOf(code string) int {
	for i, val := range v.Values {
		if val == code {
			return i
		}
	}
	return -1
}

// TableMetadata describes one statistical table: its title and the ordered
// variables that span it.
type TableMetadata struct {
	Title     string     `json:"title"`
	Variables []Variable `json:"variables"`
	Source    string     `json:"source,omitempty"`
	Updated   *time.Time `json:"updated,omitempty"`
}

// ParseMetadata decodes the PxWeb table-metadata JSON document into
// TableMetadata and validates it.
func ParseMetadata(b []byte) (*TableMetadata, error) {
	var m TableMetadata
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table metadata: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the metadata invariants: every variable's value and label
// lists must have equal length, and coded values must be unique within a
// variable. A violation means any positional lookup would silently mislabel
// data, so it is fatal for the whole table.
func (m *TableMetadata) Validate() error {
	for _, v := range m.Variables {
		if len(v.Values) != len(v.ValueLabels) {
			return NewError(
				fmt.Errorf("%w: variable value/label length mismatch", ErrMalformedMetadata),
				log.Data{
					"variable":      v.Code,
					"values_length": len(v.Values),
					"labels_length": len(v.ValueLabels),
				},
			)
		}
		seen := make(map[string]struct{}, len(v.Values))
		for _, val := range v.Values {
			if _, ok := seen[val]; ok {
				return NewError(
					fmt.Errorf("%w: duplicate coded value in variable", ErrMalformedMetadata),
					log.Data{
						"variable": v.Code,
						"value":    val,
					},
				)
			}
			seen[val] = struct{}{}
		}
	}
	return nil
}

// TimeVariableIndex resolves which variable is the time dimension: the
// provider's explicit flag wins, otherwise the heuristics in InferTimeIndex
// apply. Returns ErrNoTimeDimension when neither determines one.
func (m *TableMetadata) TimeVariableIndex() (int, error) {
	for i := range m.Variables {
		if m.Variables[i].IsTime {
			return i, nil
		}
	}
	if i := InferTimeIndex(m.Variables); i >= 0 {
		return i, nil
	}
	return -1, NewError(
		ErrNoTimeDimension,
		log.Data{"title": m.Title, "variables": len(m.Variables)},
	)
}

// TimeVariable returns the time dimension variable, resolving it in the same
// way as TimeVariableIndex.
func (m *TableMetadata) TimeVariable() (*Variable, error) {
	i, err := m.TimeVariableIndex()
	if err != nil {
		return nil, err
	}
	return &m.Variables[i], nil
}

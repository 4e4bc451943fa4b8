package pxtable

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ONSdigital/log.go/v2/log"
)

// Column describes one column of a sparse PxWeb data response. Type "t"
// marks the time column, "c" the content (value) column.
type Column struct {
	Code string `json:"code"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// SparseResponse is the PxWeb "json" data format: one row per non-empty
// cell, each identified by a full coordinate tuple.
type SparseResponse struct {
	Columns []Column `json:"columns"`
	Data    []RawRow `json:"data"`
}

// MarkTime propagates the response's time-column flag ("t" type) onto the
// matching metadata variable, so inference is only needed when the provider
// stays silent in both documents.
func (s *SparseResponse) MarkTime(m *TableMetadata) {
	for _, c := range s.Columns {
		if c.Type != "t" {
			continue
		}
		for i := range m.Variables {
			if m.Variables[i].Code == c.Code {
				m.Variables[i].IsTime = true
			}
		}
	}
}

// DenseResponse is the JSON-stat2 dataset format: a single flat value array
// covering the cartesian product of every dimension's categories.
type DenseResponse struct {
	Class     string                    `json:"class"`
	ID        []string                  `json:"id"`
	Size      []int                     `json:"size"`
	Value     []*float64                `json:"value"`
	Label     string                    `json:"label"`
	Source    string                    `json:"source"`
	Dimension map[string]DenseDimension `json:"dimension"`
	Role      *DenseRole                `json:"role"`
}

// DenseDimension is one dimension's category metadata in a JSON-stat2
// dataset.
type DenseDimension struct {
	Label    string        `json:"label"`
	Category DenseCategory `json:"category"`
}

// DenseCategory maps coded values to their positional index and label.
type DenseCategory struct {
	Index map[string]int    `json:"index"`
	Label map[string]string `json:"label"`
}

// DenseRole carries JSON-stat2 dimension roles; only time is consumed.
type DenseRole struct {
	Time []string `json:"time"`
}

// Metadata reconstructs TableMetadata from the dataset's own dimension
// block: variables in id order, values ordered by category index, labels
// from the category label map. Needed because JSON-stat2 responses are
// self-describing and arrive without a separate metadata document.
func (d *DenseResponse) Metadata() (*TableMetadata, error) {
	m := &TableMetadata{
		Title:     d.Label,
		Source:    d.Source,
		Variables: make([]Variable, 0, len(d.ID)),
	}
	for _, code := range d.ID {
		dim, ok := d.Dimension[code]
		if !ok {
			return nil, NewError(
				fmt.Errorf("%w: dimension missing from dataset", ErrMalformedMetadata),
				log.Data{"dimension": code},
			)
		}

		values := make([]string, 0, len(dim.Category.Index))
		for v := range dim.Category.Index {
			values = append(values, v)
		}
		sort.Slice(values, func(i, j int) bool {
			return dim.Category.Index[values[i]] < dim.Category.Index[values[j]]
		})

		labels := make([]string, len(values))
		for i, v := range values {
			if l, ok := dim.Category.Label[v]; ok {
				labels[i] = l
			} else {
				labels[i] = v
			}
		}

		m.Variables = append(m.Variables, Variable{
			Code:        code,
			Label:       dim.Label,
			Values:      values,
			ValueLabels: labels,
			IsTime:      d.isTimeDimension(code),
		})
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (d *DenseResponse) isTimeDimension(code string) bool {
	if d.Role == nil {
		return false
	}
	for _, t := range d.Role.Time {
		if t == code {
			return true
		}
	}
	return false
}

// ProviderResponse is the tagged variant for the two wire formats a
// statistical provider may answer with. Exactly one field is set; it is
// validated once at the boundary so the rest of the engine never touches
// untyped JSON.
type ProviderResponse struct {
	Sparse *SparseResponse
	Dense  *DenseResponse
}

// DecodeResponse decodes a raw provider payload into the tagged variant,
// sniffing the format: JSON-stat2 datasets carry a dimension block, the
// PxWeb json format carries a data array.
func DecodeResponse(b []byte) (*ProviderResponse, error) {
	var probe struct {
		Dimension json.RawMessage `json:"dimension"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal provider response: %w", err)
	}

	if len(probe.Dimension) > 0 {
		var dense DenseResponse
		if err := json.Unmarshal(b, &dense); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dense response: %w", err)
		}
		return &ProviderResponse{Dense: &dense}, nil
	}

	if len(probe.Data) > 0 {
		var sparse SparseResponse
		if err := json.Unmarshal(b, &sparse); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sparse response: %w", err)
		}
		return &ProviderResponse{Sparse: &sparse}, nil
	}

	return nil, fmt.Errorf("unrecognised provider response format")
}

// Flatten converts the response into canonical rows using whichever
// flattener matches the wire format. For sparse responses the caller
// supplies the table metadata; dense responses are self-describing and a
// nil metadata argument makes the engine rebuild it from the dataset.
func (r *ProviderResponse) Flatten(m *TableMetadata) ([]Row, error) {
	switch {
	case r.Dense != nil:
		if m == nil {
			var err error
			if m, err = r.Dense.Metadata(); err != nil {
				return nil, err
			}
		}
		return FlattenDense(r.Dense.Value, r.Dense.ID, r.Dense.Size, m)
	case r.Sparse != nil:
		if m == nil {
			return nil, NewError(
				fmt.Errorf("%w: sparse response requires table metadata", ErrMalformedMetadata),
				log.Data{},
			)
		}
		r.Sparse.MarkTime(m)
		return FlattenSparse(r.Sparse.Data, m)
	}
	return nil, fmt.Errorf("empty provider response")
}

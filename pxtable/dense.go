package pxtable

import (
	"fmt"

	"github.com/ONSdigital/log.go/v2/log"
)

// FlattenDense converts a dense, JSON-stat2 style value array into canonical
// rows. The value slice is a single linear buffer covering the cartesian
// product of every dimension's values: dimOrder names the variables in
// traversal order (outermost first) and sizes gives each one's cardinality.
//
// Row-major strides recover the coordinate for each linear offset: the
// stride of dimension d is the product of the sizes of the dimensions after
// it, the last dimension having stride 1. Each per-dimension index then maps
// back to a coded value through that variable's ordered value list, which
// reconstructs the same coded-value tuple the sparse path consumes.
//
// A length mismatch between the buffer and the declared sizes is fatal
// (ErrShapeMismatch): proceeding would silently scramble every label in the
// output, which is strictly worse than refusing the table.
func FlattenDense(values []*float64, dimOrder []string, sizes []int, m *TableMetadata) ([]Row, error) {
	if len(dimOrder) != len(m.Variables) {
		return nil, NewError(
			fmt.Errorf("%w: value array does not cover every variable", ErrShapeMismatch),
			log.Data{"dimensions_length": len(dimOrder), "variables_length": len(m.Variables)},
		)
	}
	if len(dimOrder) != len(sizes) {
		return nil, NewError(
			fmt.Errorf("%w: dimension order and sizes differ in length", ErrShapeMismatch),
			log.Data{"dimensions_length": len(dimOrder), "sizes_length": len(sizes)},
		)
	}

	expected := 1
	for _, s := range sizes {
		expected *= s
	}
	if expected != len(values) {
		return nil, NewError(
			fmt.Errorf("%w", ErrShapeMismatch),
			log.Data{"expected_values": expected, "values_length": len(values)},
		)
	}

	// resolve each dimension to its variable's positional index in metadata order
	varIdx := make([]int, len(dimOrder))
	for d, code := range dimOrder {
		varIdx[d] = -1
		for i := range m.Variables {
			if m.Variables[i].Code == code {
				varIdx[d] = i
				break
			}
		}
		if varIdx[d] < 0 {
			return nil, NewError(
				fmt.Errorf("%w: unknown dimension in value array", ErrShapeMismatch),
				log.Data{"dimension": code},
			)
		}
		if sizes[d] > len(m.Variables[varIdx[d]].Values) {
			return nil, NewError(
				fmt.Errorf("%w: dimension size exceeds variable value count", ErrShapeMismatch),
				log.Data{
					"dimension":   code,
					"size":        sizes[d],
					"value_count": len(m.Variables[varIdx[d]].Values),
				},
			)
		}
	}

	timeIdx, err := m.TimeVariableIndex()
	if err != nil {
		return nil, err
	}

	strides := make([]int, len(sizes))
	stride := 1
	for d := len(sizes) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= sizes[d]
	}

	rows := make([]Row, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	codes := make([]string, len(m.Variables))

	for offset, value := range values {
		for d := range dimOrder {
			index := (offset / strides[d]) % sizes[d]
			codes[varIdx[d]] = m.Variables[varIdx[d]].Values[index]
		}

		var v *float64
		if value != nil {
			f := *value
			v = &f
		}
		row := buildRow(codes, v, m, timeIdx)

		key := dedupKey(row)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, row)
	}
	return rows, nil
}

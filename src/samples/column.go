package samples

import (
	"time"
)

// Column extracts column col of every row as float64.
func Column(rows []Row, col int) ([]float64, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		v, err := r.Float(col)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// TimeColumn extracts column col of every row as a timestamp.
func TimeColumn(rows []Row, col int) ([]time.Time, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	out := make([]time.Time, 0, len(rows))
	for _, r := range rows {
		t, err := r.Time(col)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Table parses the first width columns of every row; a row with fewer
// fields, or a non-numeric one, is an error.
func Table(rows []Row, width int) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	out := make([][]float64, 0, len(rows))
	for _, r := range rows {
		vals, err := r.Floats(width)
		if err != nil {
			return nil, err
		}
		out = append(out, vals)
	}
	return out, nil
}

// Pick returns column col of a table built by Table.
func Pick(table [][]float64, col int) []float64 {
	out := make([]float64, len(table))
	for i, row := range table {
		out[i] = row[col]
	}
	return out
}

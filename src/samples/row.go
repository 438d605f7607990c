package samples

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Row is one parsed line. Fields are kept as text and converted per column,
// so non-numeric columns (e.g. the "missing1/missing2" counter) never get in the way.
type Row struct {
	Line   int
	Fields []string
}

func (r Row) field(col int) (string, error) {
	if col < 0 || col >= len(r.Fields) {
		return "", errors.Errorf("line %d: no column %d (have %d)", r.Line, col, len(r.Fields))
	}
	return r.Fields[col], nil
}

// Float parses column col as float64.
func (r Row) Float(col int) (float64, error) {
	s, err := r.field(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "line %d column %d", r.Line, col)
	}
	return v, nil
}

// Decimal parses column col without losing digits.
func (r Row) Decimal(col int) (decimal.Decimal, error) {
	s, err := r.field(col)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "line %d column %d", r.Line, col)
	}
	return d, nil
}

var billion = decimal.New(1, 9)

// Time interprets column col as Unix seconds. The fraction is kept to the
// nanosecond, which a float64 cannot do for present-day timestamps.
func (r Row) Time(col int) (time.Time, error) {
	d, err := r.Decimal(col)
	if err != nil {
		return time.Time{}, err
	}
	sec := d.Truncate(0)
	nsec := d.Sub(sec).Mul(billion).Truncate(0)
	return time.Unix(sec.IntPart(), nsec.IntPart()), nil
}

// Floats parses the first n columns.
func (r Row) Floats(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := r.Float(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Package samples reads the measurement logs written by the PPS comparer:
// one row per pulse, whitespace separated fields, an optional header line
// and a trailing summary line.
package samples

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoRows is returned when nothing is left after trimming header/footer lines.
var ErrNoRows = errors.New("no data rows")

// Trim says how many lines to drop from the start and the end of a file.
type Trim struct {
	Head int
	Tail int
}

// Trims used by the individual tools.
var (
	TrimHeaderFooter = Trim{Head: 1, Tail: 1}
	TrimFooter       = Trim{Head: 0, Tail: 1}
)

// ReadFile loads path completely, closes it and parses the remaining lines into rows.
func ReadFile(path string, trim Trim) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	rows, err := Read(f, trim)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return rows, nil
}

// Read splits r into lines, drops trim.Head leading and trim.Tail trailing lines
// and returns the rest as rows. Line numbers refer to the untrimmed input.
func Read(r io.Reader, trim Trim) ([]Row, error) {
	if trim.Head < 0 || trim.Tail < 0 {
		return nil, errors.Errorf("invalid trim %+v", trim)
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	// PPS logs are short-lined but GPS-enabled builds append extra columns; allow long lines anyway.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) <= trim.Head+trim.Tail {
		return nil, ErrNoRows
	}
	body := lines[trim.Head : len(lines)-trim.Tail]
	rows := make([]Row, 0, len(body))
	for i, line := range body {
		rows = append(rows, Row{
			Line:   trim.Head + i + 1,
			Fields: strings.Fields(line),
		})
	}
	return rows, nil
}

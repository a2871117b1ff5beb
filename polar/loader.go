package polar

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoaderOptions configures CSV ingestion for LoadTable.
type LoaderOptions struct {
	// Delimiter is the CSV field separator. Defaults to ',' if zero.
	Delimiter rune
}

// LoadTable reads a polar table from a CSV resource shaped as spec.md §6
// describes: a header row of TWS values (first cell ignored), and one row
// per TWA sample with the TWA value in the first column followed by boat
// speed (knots) for each TWS column.
//
// This mirrors the reference "first_40_farr.csv" layout from the original
// routing model (semicolon-delimited), so the default delimiter can be
// overridden via LoaderOptions.Delimiter.
func LoadTable(path string, lo LoaderOptions, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("polar: opening %s: %w", path, err)
	}
	defer f.Close()

	return ParseTable(f, lo, opts...)
}

// ParseTable parses a polar table from an already-open reader, using the
// same layout as LoadTable. Exposed separately so callers can feed an
// embedded resource or test fixture without touching the filesystem.
func ParseTable(r io.Reader, lo LoaderOptions, opts ...Option) (*Table, error) {
	delim := lo.Delimiter
	if delim == 0 {
		delim = ','
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("polar: reading csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("polar: csv must have a header row and at least one data row")
	}

	header := records[0]
	tws := make([]float64, 0, len(header)-1)
	for _, cell := range header[1:] {
		v, perr := strconv.ParseFloat(cell, 64)
		if perr != nil {
			return nil, fmt.Errorf("polar: parsing tws header cell %q: %w", cell, perr)
		}
		tws = append(tws, v)
	}

	twa := make([]float64, 0, len(records)-1)
	speed := make([][]float64, 0, len(records)-1)
	for _, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		a, perr := strconv.ParseFloat(row[0], 64)
		if perr != nil {
			return nil, fmt.Errorf("polar: parsing twa row cell %q: %w", row[0], perr)
		}
		twa = append(twa, a)

		speeds := make([]float64, 0, len(row)-1)
		for _, cell := range row[1:] {
			v, serr := strconv.ParseFloat(cell, 64)
			if serr != nil {
				return nil, fmt.Errorf("polar: parsing speed cell %q: %w", cell, serr)
			}
			speeds = append(speeds, v)
		}
		speed = append(speed, speeds)
	}

	return NewTable(twa, tws, speed, opts...)
}

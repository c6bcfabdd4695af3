package sampleio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tubs-alg/samplns-go/samplnserr"
)

// ReadCSV decodes a sample from CSV: first column "Configuration" (row
// label, ignored), subsequent columns are feature names, cell "+"
// means true and "-" means false, ";" delimited.
func ReadCSV(r io.Reader) ([]Configuration, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sampleio: read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sampleio: csv has no header row: %w", samplnserr.ErrMalformedInput)
	}

	header := rows[0]
	if len(header) == 0 || header[0] != "Configuration" {
		return nil, fmt.Errorf("sampleio: csv header must start with \"Configuration\": %w", samplnserr.ErrMalformedInput)
	}
	features := header[1:]

	sample := make([]Configuration, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("sampleio: csv row %d has %d cells, want %d: %w", i, len(row), len(header), samplnserr.ErrMalformedInput)
		}
		conf := make(Configuration, len(features))
		for j, name := range features {
			b, err := parseCell(row[j+1])
			if err != nil {
				return nil, fmt.Errorf("sampleio: csv row %d, feature %q: %w", i, name, err)
			}
			conf[name] = b
		}
		sample = append(sample, conf)
	}

	return sample, nil
}

func parseCell(cell string) (bool, error) {
	switch cell {
	case "+":
		return true, nil
	case "-":
		return false, nil
	default:
		return false, fmt.Errorf("cell must be \"+\" or \"-\", got %q: %w", cell, samplnserr.ErrMalformedInput)
	}
}

// WriteCSV encodes sample in features' order using the same format
// ReadCSV accepts. Row labels are "1".."N".
func WriteCSV(w io.Writer, features []string, sample []Configuration) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	header := append([]string{"Configuration"}, features...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("sampleio: write csv header: %w", err)
	}

	for i, conf := range sample {
		row := make([]string, 0, len(features)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		for _, name := range features {
			if conf[name] {
				row = append(row, "+")
			} else {
				row = append(row, "-")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("sampleio: write csv row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

package io

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/spred/plotplotplot/pkg/table"
)

// ReadCSV decodes comma-separated text with a header row.
//
// Empty header cells are named "Unnamed: <i>" and repeated names get ".N"
// suffixes. Rows may be shorter than the header; missing trailing cells are
// null.
// Rows longer than the header are an error. An input with no header row
// yields a table with zero columns. ReadCSV does not close r.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Dataset{Table: table.MustNew(), Format: FormatCSV}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make([]table.Column, len(header))
	for i, name := range columnNames(header) {
		cols[i].Name = name
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(rec) > len(header) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(rec), len(header))
		}
		for i := range cols {
			v := table.Null()
			if i < len(rec) {
				v = table.Infer(rec[i])
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, err
	}
	return &Dataset{Table: t, Format: FormatCSV}, nil
}

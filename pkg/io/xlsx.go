package io

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/table"
)

// ReadXLSX decodes one worksheet of a spreadsheet workbook.
//
// The first row is the header, named the way [ReadCSV] names it. Cells are read as their formatted text and
// classified with [table.Infer]; short rows are padded with nulls. When
// sheet is empty the first sheet of the workbook is used. ReadXLSX does not
// close r.
func ReadXLSX(r io.Reader, sheet string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "workbook has no sheets")
	}
	if sheet == "" {
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return &Dataset{Table: table.MustNew(), Format: FormatXLSX}, nil
	}

	header := columnNames(rows[0])
	cols := make([]table.Column, len(header))
	for i, name := range header {
		cols[i] = table.Column{Name: name, Values: make([]table.Value, 0, len(rows)-1)}
	}
	for _, row := range rows[1:] {
		for i := range cols {
			v := table.Null()
			if i < len(row) {
				v = table.Infer(row[i])
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, err
	}
	return &Dataset{Table: t, Format: FormatXLSX}, nil
}

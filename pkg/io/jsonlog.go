package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/table"
)

const (
	// IndexColumn is the name of the synthetic row index added to logs.
	IndexColumn = "index"

	// IndexStride is the step between consecutive synthetic index values.
	// Training logs record one entry every ten iterations.
	IndexStride = 10
)

// record is one log entry with its keys in file order.
type record struct {
	keys   []string
	values map[string]table.Value
}

// ReadJSONLog decodes the "<phase>Results" array of a structured log.
//
// Column order is the order in which keys are first seen across records.
// A record missing a key contributes a null cell. Numbers and numeric
// strings are inferred with [table.Infer]; booleans become 0 or 1; nested
// values are kept as their JSON text.
//
// A synthetic [IndexColumn] holding row*[IndexStride] is appended unless the
// records already carry a column of that name, in which case that column
// is used as the index. ReadJSONLog does not close r.
func ReadJSONLog(r io.Reader, phase string) (*Dataset, error) {
	if err := errors.ValidatePhase(phase); err != nil {
		return nil, err
	}
	key := phase + "Results"

	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var (
		records []record
		found   bool
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		name, _ := tok.(string)
		if name != key {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("decode %s: %w", name, err)
			}
			continue
		}
		found = true
		if records, err = readRecords(dec); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	if !found {
		return nil, errors.New(errors.ErrCodeInvalidInput, "log has no %q member", key)
	}

	t, err := buildLogTable(records)
	if err != nil {
		return nil, err
	}
	return &Dataset{Table: t, Format: FormatJSON, Index: IndexColumn}, nil
}

func buildLogTable(records []record) (*table.Table, error) {
	var order []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, k := range rec.keys {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
	}

	cols := make([]table.Column, 0, len(order)+1)
	for _, name := range order {
		vals := make([]table.Value, len(records))
		for i, rec := range records {
			vals[i] = rec.values[name] // zero Value is null
		}
		cols = append(cols, table.Column{Name: name, Values: vals})
	}

	if !seen[IndexColumn] {
		idx := make([]table.Value, len(records))
		for i := range records {
			idx[i] = table.Int(int64(i * IndexStride))
		}
		cols = append(cols, table.Column{Name: IndexColumn, Values: idx})
	}
	return table.New(cols...)
}

func readRecords(dec *json.Decoder) ([]record, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	var out []record
	for dec.More() {
		rec, err := readRecord(dec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(out), err)
		}
		out = append(out, rec)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return out, nil
}

func readRecord(dec *json.Decoder) (record, error) {
	rec := record{values: make(map[string]table.Value)}
	if err := expectDelim(dec, '{'); err != nil {
		return rec, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return rec, err
		}
		k, _ := tok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return rec, fmt.Errorf("%s: %w", k, err)
		}
		if _, dup := rec.values[k]; !dup {
			rec.keys = append(rec.keys, k)
		}
		rec.values[k] = jsonValue(raw)
	}
	return rec, expectDelim(dec, '}')
}

func jsonValue(raw any) table.Value {
	switch v := raw.(type) {
	case nil:
		return table.Null()
	case json.Number:
		return table.Infer(v.String())
	case string:
		return table.Infer(v)
	case bool:
		if v {
			return table.Int(1)
		}
		return table.Int(0)
	default:
		b, _ := json.Marshal(v)
		return table.String(string(b))
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.New(errors.ErrCodeInvalidInput, "expected %q, got %v", want, tok)
	}
	return nil
}

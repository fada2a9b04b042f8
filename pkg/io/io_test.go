package io

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/table"
)

func TestReadCSV(t *testing.T) {
	in := "step,loss,optimizer\n0,2.5,sgd\n1,1.75,sgd\n2,,adam\n"
	ds, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if got := ds.Table.Names(); !reflect.DeepEqual(got, []string{"step", "loss", "optimizer"}) {
		t.Errorf("Names() = %v", got)
	}
	if ds.Table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ds.Table.Len())
	}
	if ds.Index != "" {
		t.Errorf("Index = %q, want none for csv", ds.Index)
	}

	loss, _ := ds.Table.Column("loss")
	wantKinds := []table.Kind{table.KindFloat, table.KindFloat, table.KindNull}
	for i, v := range loss.Values {
		if v.Kind != wantKinds[i] {
			t.Errorf("loss[%d].Kind = %v, want %v", i, v.Kind, wantKinds[i])
		}
	}
	step, _ := ds.Table.Column("step")
	if step.Values[2].Kind != table.KindInt {
		t.Errorf("step kind = %v, want int", step.Values[2].Kind)
	}
}

func TestReadCSVShortRows(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader("a,b\n1\n2,3\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	b, _ := ds.Table.Column("b")
	if b.Values[0].Kind != table.KindNull {
		t.Errorf("padded cell kind = %v, want null", b.Values[0].Kind)
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("a\n1,2\n")); err == nil {
		t.Error("ReadCSV with long row: want error")
	}
}

func TestReadCSVHeaderNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"index column", ",loss,acc\n0,1.0,0.1\n1,0.8,0.3\n", []string{"Unnamed: 0", "loss", "acc"}},
		{"repeated", "loss,loss\n1,2\n", []string{"loss", "loss.1"}},
		{"repeated three times", "loss,loss,loss\n1,2,3\n", []string{"loss", "loss.1", "loss.2"}},
		{"suffix already taken", "loss,loss,loss.1\n1,2,3\n", []string{"loss", "loss.1", "loss.1.1"}},
		{"empty cells", "a,,\n1,2,3\n", []string{"a", "Unnamed: 1", "Unnamed: 2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := ReadCSV(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadCSV: %v", err)
			}
			if got := ds.Table.Names(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %q, want %q", got, tt.want)
			}
		})
	}

	ds, err := ReadCSV(strings.NewReader("loss,loss\n1,2\n"))
	if err != nil {
		t.Fatal(err)
	}
	second, _ := ds.Table.Column("loss.1")
	if second.Values[0].Int != 2 {
		t.Errorf("loss.1[0] = %+v, want 2", second.Values[0])
	}
}

func TestReadCSVEmpty(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if ds.Table.NumColumns() != 0 {
		t.Errorf("NumColumns() = %d, want 0", ds.Table.NumColumns())
	}
}

const trainLog = `{
  "config": {"lr": 0.1},
  "trainResults": [
    {"loss": 2.31, "top1": 0.12, "top5": "0.41", "lr": 0.1},
    {"loss": 1.97, "top1": 0.18, "top5": "0.52", "lr": 0.1, "note": "warmup done"}
  ],
  "validateResults": [
    {"loss": 2.0}
  ]
}`

func TestReadJSONLog(t *testing.T) {
	ds, err := ReadJSONLog(strings.NewReader(trainLog), "train")
	if err != nil {
		t.Fatalf("ReadJSONLog: %v", err)
	}

	want := []string{"loss", "top1", "top5", "lr", "note", IndexColumn}
	if got := ds.Table.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if ds.Index != IndexColumn {
		t.Errorf("Index = %q, want %q", ds.Index, IndexColumn)
	}

	idx, _ := ds.Table.Column(IndexColumn)
	if idx.Values[0].Int != 0 || idx.Values[1].Int != IndexStride {
		t.Errorf("index = %v, want [0 %d]", idx.Values, IndexStride)
	}

	top5, _ := ds.Table.Column("top5")
	if top5.Values[0].Kind != table.KindFloat || top5.Values[0].Float != 0.41 {
		t.Errorf("top5[0] = %+v, want float 0.41", top5.Values[0])
	}

	note, _ := ds.Table.Column("note")
	if note.Values[0].Kind != table.KindNull || note.Values[1].Kind != table.KindString {
		t.Errorf("note = %+v, want [null string]", note.Values)
	}
}

func TestReadJSONLogPhases(t *testing.T) {
	ds, err := ReadJSONLog(strings.NewReader(trainLog), "validate")
	if err != nil {
		t.Fatalf("ReadJSONLog: %v", err)
	}
	if ds.Table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ds.Table.Len())
	}

	_, err = ReadJSONLog(strings.NewReader(trainLog), "test")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing phase error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	_, err = ReadJSONLog(strings.NewReader(trainLog), "eval")
	if !errors.Is(err, errors.ErrCodeInvalidPhase) {
		t.Errorf("bad phase error = %v, want %s", err, errors.ErrCodeInvalidPhase)
	}
}

func TestReadJSONLogExistingIndex(t *testing.T) {
	in := `{"trainResults": [{"index": 5, "loss": 1}, {"index": 7, "loss": 0.5}]}`
	ds, err := ReadJSONLog(strings.NewReader(in), "train")
	if err != nil {
		t.Fatalf("ReadJSONLog: %v", err)
	}
	if got := ds.Table.Names(); !reflect.DeepEqual(got, []string{"index", "loss"}) {
		t.Errorf("Names() = %v, want [index loss]", got)
	}
	idx, _ := ds.Table.Column("index")
	if idx.Values[1].Int != 7 {
		t.Errorf("index[1] = %v, want 7", idx.Values[1])
	}
}

func TestReadJSONLogMalformed(t *testing.T) {
	tests := []string{
		`[]`,
		`{"trainResults": {"loss": 1}}`,
		`{"trainResults": [1, 2]}`,
		`{"trainResults": [`,
	}
	for _, in := range tests {
		if _, err := ReadJSONLog(strings.NewReader(in), "train"); err == nil {
			t.Errorf("ReadJSONLog(%s): want error", in)
		}
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "epoch")
	f.SetCellValue(sheet, "B1", "accuracy")
	f.SetCellValue(sheet, "A2", 1)
	f.SetCellValue(sheet, "B2", 0.5)
	f.SetCellValue(sheet, "A3", 2)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	ds, err := ReadXLSX(buf, "")
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if got := ds.Table.Names(); !reflect.DeepEqual(got, []string{"epoch", "accuracy"}) {
		t.Errorf("Names() = %v", got)
	}
	acc, _ := ds.Table.Column("accuracy")
	if acc.Values[0].Float != 0.5 {
		t.Errorf("accuracy[0] = %+v, want 0.5", acc.Values[0])
	}
	if acc.Values[1].Kind != table.KindNull {
		t.Errorf("accuracy[1] kind = %v, want null", acc.Values[1].Kind)
	}
}

func TestReadXLSXHeaderNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "B1", "loss")
	f.SetCellValue(sheet, "C1", "loss")
	f.SetCellValue(sheet, "A2", 0)
	f.SetCellValue(sheet, "B2", 1.5)
	f.SetCellValue(sheet, "C2", 2.5)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	ds, err := ReadXLSX(buf, "")
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if got, want := ds.Table.Names(), []string{"Unnamed: 0", "loss", "loss.1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %q, want %q", got, want)
	}
}

func TestReadXLSXMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	if _, err := ReadXLSX(buf, "Metrics"); err == nil {
		t.Error("ReadXLSX with unknown sheet: want error")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"run.csv":       FormatCSV,
		"logs/run.JSON": FormatJSON,
		"sheet.xlsx":    FormatXLSX,
		"notes.txt":     "",
		"no-extension":  "",
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics.csv")
	if err := os.WriteFile(path, []byte("loss,lr\n1,0.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := Import(path, Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if ds.Format != FormatCSV {
		t.Errorf("Format = %q, want csv", ds.Format)
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"trainResults": [}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		opts Options
		want errors.Code
	}{
		{"missing file", filepath.Join(dir, "nope.csv"), Options{}, errors.ErrCodeFileNotFound},
		{"unknown extension", txt, Options{}, errors.ErrCodeInvalidFormat},
		{"unknown format", txt, Options{Format: "parquet"}, errors.ErrCodeInvalidFormat},
		{"bad phase", bad, Options{Phase: "eval"}, errors.ErrCodeInvalidPhase},
		{"malformed", bad, Options{}, errors.ErrCodeInvalidInput},
		{"empty path", "", Options{}, errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(tt.path, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("Import() error = %v, want %s", err, tt.want)
			}
		})
	}
}

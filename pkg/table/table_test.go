package table

import (
	"math"
	"reflect"
	"testing"

	"github.com/spred/plotplotplot/pkg/errors"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{"3", KindInt},
		{"-12", KindInt},
		{"3.0", KindInt},
		{"1e3", KindInt},
		{"0.25", KindFloat},
		{"NaN", KindFloat},
		{"inf", KindFloat},
		{"adam", KindString},
		{"1.2.3", KindString},
		{"", KindNull},
		{"  ", KindNull},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Infer(tt.raw).Kind; got != tt.want {
				t.Errorf("Infer(%q).Kind = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestInferValues(t *testing.T) {
	if v := Infer("3.0"); v.Int != 3 {
		t.Errorf("Infer(3.0).Int = %d, want 3", v.Int)
	}
	if v := Infer(" 0.5 "); v.Float != 0.5 {
		t.Errorf("Infer(0.5).Float = %v, want 0.5", v.Float)
	}
	if v := Infer("sgd"); v.Str != "sgd" {
		t.Errorf("Infer(sgd).Str = %q, want sgd", v.Str)
	}
}

func TestValueNumber(t *testing.T) {
	tests := []struct {
		name   string
		v      Value
		want   float64
		wantOK bool
	}{
		{"int", Int(4), 4, true},
		{"float", Float(0.5), 0.5, true},
		{"string", String("x"), 0, false},
		{"null", Null(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Number()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Number() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tbl, err := New(
		Column{Name: "step", Values: []Value{Int(0), Int(1)}},
		Column{Name: "loss", Values: []Value{Float(2.5), Float(1.5)}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := tbl.Names(); !reflect.DeepEqual(got, []string{"step", "loss"}) {
		t.Errorf("Names() = %v, want [step loss]", got)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
	if !tbl.Has("loss") || tbl.Has("lr") {
		t.Error("Has() reports wrong membership")
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		cols []Column
	}{
		{
			name: "ragged",
			cols: []Column{
				{Name: "a", Values: []Value{Int(1), Int(2)}},
				{Name: "b", Values: []Value{Int(1)}},
			},
		},
		{
			name: "duplicate",
			cols: []Column{
				{Name: "a", Values: nil},
				{Name: "a", Values: nil},
			},
		},
		{
			name: "empty name",
			cols: []Column{{Name: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cols...)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("New() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	tbl := MustNew(
		Column{Name: "loss", Values: []Value{Float(1)}},
		Column{Name: "top1", Values: []Value{Float(0.5)}},
		Column{Name: "top5", Values: []Value{Float(0.9)}},
	)

	sub, err := tbl.Select("top5", "top1")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := sub.Names(); !reflect.DeepEqual(got, []string{"top5", "top1"}) {
		t.Errorf("Select names = %v, want [top5 top1]", got)
	}

	if _, err := tbl.Select("lr"); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("Select(lr) error = %v, want %s", err, errors.ErrCodeConfiguration)
	}

	empty, err := tbl.Select()
	if err != nil {
		t.Fatalf("Select(): %v", err)
	}
	if empty.NumColumns() != 0 || empty.Len() != 1 {
		t.Errorf("Select() = %v, want 0 columns and 1 row", empty)
	}
}

func TestColumnNumbers(t *testing.T) {
	c := Column{Name: "x", Values: []Value{Int(1), String("n/a"), Float(math.Pi), Null()}}
	vals, ok := c.Numbers()

	wantOK := []bool{true, false, true, false}
	if !reflect.DeepEqual(ok, wantOK) {
		t.Errorf("mask = %v, want %v", ok, wantOK)
	}
	if vals[0] != 1 || vals[2] != math.Pi {
		t.Errorf("values = %v", vals)
	}
}

package group

import (
	"reflect"
	"sort"
	"testing"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/table"
)

func tableOf(names ...string) *table.Table {
	cols := make([]table.Column, len(names))
	for i, n := range names {
		cols[i] = table.Column{Name: n, Values: []table.Value{table.Int(int64(i))}}
	}
	return table.MustNew(cols...)
}

func columnsOf(groups []ColumnGroup) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = g.Columns
	}
	return out
}

func TestGroup(t *testing.T) {
	tests := []struct {
		name       string
		columns    []string
		rule       Rule
		wantGroups [][]string
		wantLabels []string
		wantSizes  []int
	}{
		{
			name:       "one column per group",
			columns:    []string{"step", "loss"},
			wantGroups: [][]string{{"step"}, {"loss"}},
			wantLabels: []string{"step", "loss"},
			wantSizes:  []int{1, 1},
		},
		{
			name:       "merge top1 with top5",
			columns:    []string{"loss", "top1", "top5", "lr"},
			rule:       Rule{Merges: DefaultLogMerges},
			wantGroups: [][]string{{"loss"}, {"top1", "top5"}, {"lr"}},
			wantLabels: []string{"loss", "top1/top5", "lr"},
			wantSizes:  []int{1, 2, 1},
		},
		{
			name:       "merge run not adjacent",
			columns:    []string{"top1", "loss", "top5"},
			rule:       Rule{Merges: DefaultLogMerges},
			wantGroups: [][]string{{"top1"}, {"loss"}, {"top5"}},
			wantLabels: []string{"top1", "loss", "top5"},
			wantSizes:  []int{1, 1, 1},
		},
		{
			name:       "merge run in wrong order",
			columns:    []string{"top5", "top1"},
			rule:       Rule{Merges: DefaultLogMerges},
			wantGroups: [][]string{{"top5"}, {"top1"}},
			wantLabels: []string{"top5", "top1"},
			wantSizes:  []int{1, 1},
		},
		{
			name:       "three column run",
			columns:    []string{"train_loss", "val_loss", "test_loss", "lr"},
			rule:       Rule{Merges: [][]string{{"train_loss", "val_loss", "test_loss"}}},
			wantGroups: [][]string{{"train_loss", "val_loss", "test_loss"}, {"lr"}},
			wantLabels: []string{"train_loss/val_loss/test_loss", "lr"},
			wantSizes:  []int{3, 1},
		},
		{
			name:       "excluded index",
			columns:    []string{"loss", "top1", "top5", "index"},
			rule:       Rule{Merges: DefaultLogMerges, Exclude: []string{"index"}},
			wantGroups: [][]string{{"loss"}, {"top1", "top5"}},
			wantLabels: []string{"loss", "top1/top5"},
			wantSizes:  []int{1, 2},
		},
		{
			name:       "exclusion closes the gap",
			columns:    []string{"top1", "step", "top5"},
			rule:       Rule{Merges: DefaultLogMerges, Exclude: []string{"step"}},
			wantGroups: [][]string{{"top1", "top5"}},
			wantLabels: []string{"top1/top5"},
			wantSizes:  []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, labels, sizes, err := Group(tableOf(tt.columns...), tt.rule)
			if err != nil {
				t.Fatalf("Group: %v", err)
			}
			if got := columnsOf(groups); !reflect.DeepEqual(got, tt.wantGroups) {
				t.Errorf("groups = %v, want %v", got, tt.wantGroups)
			}
			if !reflect.DeepEqual(labels, tt.wantLabels) {
				t.Errorf("labels = %v, want %v", labels, tt.wantLabels)
			}
			if !reflect.DeepEqual(sizes, tt.wantSizes) {
				t.Errorf("sizes = %v, want %v", sizes, tt.wantSizes)
			}
		})
	}
}

func TestGroupErrors(t *testing.T) {
	tests := []struct {
		name string
		tbl  *table.Table
		rule Rule
		want errors.Code
	}{
		{"empty table", table.MustNew(), Rule{}, errors.ErrCodeEmptyInput},
		{"nil table", nil, Rule{}, errors.ErrCodeEmptyInput},
		{"all excluded", tableOf("index"), Rule{Exclude: []string{"index"}}, errors.ErrCodeEmptyInput},
		{"unknown merge column", tableOf("loss", "top1"), Rule{Merges: DefaultLogMerges}, errors.ErrCodeConfiguration},
		{"short merge run", tableOf("loss"), Rule{Merges: [][]string{{"loss"}}}, errors.ErrCodeConfiguration},
		{"unknown exclusion", tableOf("loss"), Rule{Exclude: []string{"step"}}, errors.ErrCodeConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := Group(tt.tbl, tt.rule)
			if !errors.Is(err, tt.want) {
				t.Errorf("Group() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestGroupDeterministic(t *testing.T) {
	tbl := tableOf("loss", "top1", "top5", "lr", "momentum")
	rule := Rule{Merges: DefaultLogMerges}

	g1, l1, s1, err := Group(tbl, rule)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		g2, l2, s2, err := Group(tbl, rule)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(g1, g2) || !reflect.DeepEqual(l1, l2) || !reflect.DeepEqual(s1, s2) {
			t.Fatalf("run %d differs: %v vs %v", i, g2, g1)
		}
	}
}

func TestGroupCoversEveryColumnOnce(t *testing.T) {
	columns := []string{"a", "top1", "top5", "b", "top1x", "c", "d", "e"}
	rules := []Rule{
		{},
		{Merges: DefaultLogMerges},
		{Merges: [][]string{{"c", "d", "e"}, {"a", "top1"}}},
	}

	for _, rule := range rules {
		groups, _, sizes, err := Group(tableOf(columns...), rule)
		if err != nil {
			t.Fatalf("Group(%v): %v", rule, err)
		}

		var flat []string
		for i, g := range groups {
			if g.Size() != sizes[i] {
				t.Errorf("sizes[%d] = %d, group has %d", i, sizes[i], g.Size())
			}
			flat = append(flat, g.Columns...)
		}
		if len(flat) != Total(sizes) {
			t.Errorf("Total(sizes) = %d, want %d", Total(sizes), len(flat))
		}

		got := append([]string(nil), flat...)
		want := append([]string(nil), columns...)
		sort.Strings(got)
		sort.Strings(want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("rule %v: columns = %v, want permutation of %v", rule, flat, columns)
		}
	}
}

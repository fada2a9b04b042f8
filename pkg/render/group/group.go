// Package group partitions a table's columns into subplot groups.
//
// Each [ColumnGroup] becomes one stacked panel. By default every column is
// its own group. A [Rule] can fuse runs of adjacent columns into a single
// panel (the classic case being top1 immediately followed by top5) and can
// exclude columns, such as the x-axis column, from every group.
//
// Grouping is a pure function of the column order and the rule.
package group

import (
	"strings"

	"github.com/spred/plotplotplot/pkg/errors"
	"github.com/spred/plotplotplot/pkg/table"
)

// LabelSeparator joins column names in the label of a fused group.
const LabelSeparator = "/"

// ColumnGroup is an ordered set of column names drawn in one panel.
type ColumnGroup struct {
	Columns []string
	Label   string
}

// Size returns the number of lines the group draws.
func (g ColumnGroup) Size() int { return len(g.Columns) }

// Rule configures how columns are grouped.
type Rule struct {
	// Merges lists runs of column names to fuse into one group when they
	// appear adjacent and in this order. Each run needs at least two names.
	Merges [][]string `json:"merges,omitempty" toml:"merges" yaml:"merges,omitempty"`

	// Exclude lists columns kept out of every group.
	Exclude []string `json:"exclude,omitempty" toml:"exclude" yaml:"exclude,omitempty"`
}

// DefaultLogMerges fuses top-1 and top-5 accuracy into one panel.
var DefaultLogMerges = [][]string{{"top1", "top5"}}

// Group splits the columns of t into ordered groups.
//
// It returns the groups together with their labels and sizes, all in
// column order. A fused group is emitted at the position of its first
// column, and its other columns never start a group of their own.
//
// Group fails with CONFIGURATION when a merge run or exclusion names a
// column that t does not have, and with EMPTY_INPUT when t has no columns
// or every column is excluded.
func Group(t *table.Table, rule Rule) ([]ColumnGroup, []string, []int, error) {
	if t == nil || t.NumColumns() == 0 {
		return nil, nil, nil, errors.New(errors.ErrCodeEmptyInput, "table has no columns")
	}
	if err := rule.validate(t); err != nil {
		return nil, nil, nil, err
	}

	excluded := make(map[string]bool, len(rule.Exclude))
	for _, name := range rule.Exclude {
		excluded[name] = true
	}

	names := make([]string, 0, t.NumColumns())
	for _, name := range t.Names() {
		if !excluded[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, nil, nil, errors.New(errors.ErrCodeEmptyInput, "every column is excluded")
	}

	var (
		groups []ColumnGroup
		labels []string
		sizes  []int
	)
	for i := 0; i < len(names); {
		cols := []string{names[i]}
		if run := rule.runAt(names, i); run != nil {
			cols = run
		}
		g := ColumnGroup{
			Columns: cols,
			Label:   strings.Join(cols, LabelSeparator),
		}
		groups = append(groups, g)
		labels = append(labels, g.Label)
		sizes = append(sizes, g.Size())
		i += len(cols)
	}
	return groups, labels, sizes, nil
}

// runAt returns the first merge run that matches names starting at i.
func (r Rule) runAt(names []string, i int) []string {
	for _, run := range r.Merges {
		if i+len(run) > len(names) {
			continue
		}
		match := true
		for j, name := range run {
			if names[i+j] != name {
				match = false
				break
			}
		}
		if match {
			return run
		}
	}
	return nil
}

func (r Rule) validate(t *table.Table) error {
	for _, run := range r.Merges {
		if len(run) < 2 {
			return errors.New(errors.ErrCodeConfiguration,
				"merge rule %v needs at least two columns", run)
		}
		for _, name := range run {
			if !t.Has(name) {
				return errors.New(errors.ErrCodeConfiguration,
					"merge rule %v references unknown column %q", run, name)
			}
		}
	}
	for _, name := range r.Exclude {
		if !t.Has(name) {
			return errors.New(errors.ErrCodeConfiguration, "excluded column %q does not exist", name)
		}
	}
	return nil
}

// Total returns the number of lines across all groups.
func Total(sizes []int) int {
	n := 0
	for _, s := range sizes {
		n += s
	}
	return n
}

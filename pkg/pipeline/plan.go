package pipeline

import (
	"github.com/spred/plotplotplot/pkg/errors"
	dataio "github.com/spred/plotplotplot/pkg/io"
	"github.com/spred/plotplotplot/pkg/render/group"
	"github.com/spred/plotplotplot/pkg/settings"
	"github.com/spred/plotplotplot/pkg/table"
)

// Plan is a loaded dataset split into panels, ready to compose.
type Plan struct {
	Table  *table.Table
	Groups []group.ColumnGroup
	Labels []string
	Sizes  []int
	// XColumn is plotted on x; empty means the row number.
	XColumn string
}

// Lines returns the number of lines across all panels.
func (p *Plan) Lines() int { return group.Total(p.Sizes) }

// NewPlan groups the columns of ds according to s.
//
// The x column is x_axis, or the loader's synthetic index when x_axis is
// empty. It is never plotted as a line, and neither is the index. A
// non-empty y_axis keeps only that column. JSON logs without explicit
// merges fuse top1 and top5 when both are present.
func NewPlan(ds *dataio.Dataset, s settings.Settings) (*Plan, error) {
	if ds == nil || ds.Table == nil {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no table loaded")
	}
	t := ds.Table

	x := s.XAxis
	if x == "" {
		x = ds.Index
	}
	if x != "" && !t.Has(x) {
		return nil, errors.New(errors.ErrCodeConfiguration, "x_axis column %q does not exist", x)
	}
	if s.YAxis != "" && !t.Has(s.YAxis) {
		return nil, errors.New(errors.ErrCodeConfiguration, "y_axis column %q does not exist", s.YAxis)
	}

	rule := group.Rule{Merges: s.Merges}
	if len(rule.Merges) == 0 && ds.Format == dataio.FormatJSON {
		rule.Merges = presentMerges(t, group.DefaultLogMerges)
	}

	seen := make(map[string]bool)
	exclude := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		rule.Exclude = append(rule.Exclude, name)
	}
	for _, name := range s.Exclude {
		exclude(name)
	}
	exclude(x)
	if ds.Index != "" && t.Has(ds.Index) {
		exclude(ds.Index)
	}
	if s.YAxis != "" {
		for _, name := range t.Names() {
			if name != s.YAxis {
				exclude(name)
			}
		}
	}

	groups, labels, sizes, err := group.Group(t, rule)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Table:   t,
		Groups:  groups,
		Labels:  labels,
		Sizes:   sizes,
		XColumn: x,
	}, nil
}

// presentMerges keeps the runs whose columns all exist in t.
func presentMerges(t *table.Table, runs [][]string) [][]string {
	var out [][]string
	for _, run := range runs {
		ok := true
		for _, name := range run {
			if !t.Has(name) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, run)
		}
	}
	return out
}

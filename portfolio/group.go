package portfolio

import "gonum.org/v1/gonum/floats"

// GroupedAsset aggregates the records of one major category.
// Sum of children values equals TotalValue (amount mode) and sum of
// children percents equals TotalPercent.
type GroupedAsset struct {
	Major        Category
	TotalPercent float64
	TotalValue   float64
	Children     []Child
}

// Grouping holds the groups in first-seen major order.
type Grouping struct {
	Mode       Mode
	GrandTotal float64
	Groups     []*GroupedAsset

	byKey map[string]*GroupedAsset
}

// Len returns the number of groups.
func (g *Grouping) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Groups)
}

// Group accumulates records into per-major groups in one pass.
//
// In amount mode each record's percent is its value against the grand total
// across all groups; in percentage mode the value is the percent. Records
// must have positive values: a zero grand total yields NaN percents.
func Group(records []AssetRecord, mode Mode, colors *ColorAssigner) *Grouping {
	if colors == nil {
		colors = NewColorAssigner(nil)
	}

	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	grand := floats.Sum(values)

	out := &Grouping{
		Mode:       mode,
		GrandTotal: grand,
		byKey:      make(map[string]*GroupedAsset),
	}

	for _, r := range records {
		key := r.Major.String()
		ga, ok := out.byKey[key]
		if !ok {
			ga = &GroupedAsset{Major: r.Major}
			out.byKey[key] = ga
			out.Groups = append(out.Groups, ga)
		}

		percent := r.Value
		if mode == ModeAmount {
			percent = r.Value / grand * 100
			ga.TotalValue += r.Value
		}
		ga.TotalPercent += percent

		ga.Children = append(ga.Children, Child{
			AssetRecord: r,
			Percent:     percent,
			Color:       colors.Color(r.Minor),
		})
	}

	return out
}

package planning

import "github.com/shopspring/decimal"

// SectionTotal is the derived subtotal of one section: per-column sums and
// their overall sum.
type SectionTotal struct {
	PerColumn map[string]decimal.Decimal
	Total     decimal.Decimal
}

// Totals holds every derived aggregate of a grid. Totals are recomputed
// from scratch on each change and never stored back into the grid.
type Totals struct {
	// RowTotal sums each item row across all units, keyed by row code.
	RowTotal map[string]decimal.Decimal

	// ColumnTotal sums each unit column across all item rows.
	ColumnTotal map[string]decimal.Decimal

	// SectionSubtotal is keyed by the subtotal row's code. A subtotal row
	// covers the item rows declared after the nearest preceding section row.
	SectionSubtotal map[string]SectionTotal

	// GrandTotal is the sum of the whole matrix.
	GrandTotal decimal.Decimal
}

// ComputeTotals derives all aggregates of the grid. It walks the taxonomy in
// declared order: item rows accumulate into row, column, and grand totals
// and into a buffer of items seen since the last section row; each subtotal
// row takes ownership of that buffer. The recompute is pure and O(rows ×
// columns), which is fine at the observed table sizes (dozens of rows, a
// handful of units).
func ComputeTotals(g *Grid) Totals {
	tax := g.Taxonomy()
	unitIDs := g.UnitIDs()

	t := Totals{
		RowTotal:        make(map[string]decimal.Decimal),
		ColumnTotal:     make(map[string]decimal.Decimal, len(unitIDs)),
		SectionSubtotal: make(map[string]SectionTotal),
	}
	for _, id := range unitIDs {
		t.ColumnTotal[id] = decimal.Zero
	}

	var sectionItems []string
	for _, row := range tax.Rows() {
		switch row.Kind {
		case RowItem:
			rowTotal := decimal.Zero
			for _, id := range unitIDs {
				v := ToNumber(g.Get(row.Code, id))
				rowTotal = rowTotal.Add(v)
				t.ColumnTotal[id] = t.ColumnTotal[id].Add(v)
			}
			t.RowTotal[row.Code] = rowTotal
			t.GrandTotal = t.GrandTotal.Add(rowTotal)
			sectionItems = append(sectionItems, row.Code)
		case RowSection:
			sectionItems = nil
		case RowSubtotal:
			st := SectionTotal{PerColumn: make(map[string]decimal.Decimal, len(unitIDs))}
			for _, id := range unitIDs {
				st.PerColumn[id] = decimal.Zero
			}
			for _, code := range sectionItems {
				for _, id := range unitIDs {
					v := ToNumber(g.Get(code, id))
					st.PerColumn[id] = st.PerColumn[id].Add(v)
				}
				st.Total = st.Total.Add(t.RowTotal[code])
			}
			t.SectionSubtotal[row.Code] = st
		}
	}
	return t
}

package planning

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalsTaxonomy(t *testing.T) *Taxonomy {
	t.Helper()
	return MustTaxonomy([]LineItem{
		{Code: "t", Label: "Cost plan", Kind: RowTitle},
		{Code: "1", Label: "Procurement", Kind: RowSection},
		{Code: "1.1", Kind: RowItem, CategoryCode: "1", GroupID: "1"},
		{Code: "1.2", Kind: RowItem, CategoryCode: "2", GroupID: "1"},
		{Code: "s1", Kind: RowSubtotal},
		{Code: "2", Label: "Operations", Kind: RowSection},
		{Code: "2.1", Kind: RowItem, CategoryCode: "3", GroupID: "2"},
		{Code: "s2", Kind: RowSubtotal},
		{Code: "g", Kind: RowGrandTotal},
	})
}

func TestComputeTotals(t *testing.T) {
	g := NewGrid(totalsTaxonomy(t), []string{"10", "20"})
	g.Set("1.1", "10", "100")
	g.Set("1.1", "20", "50")
	g.Set("1.2", "10", "7.5")
	g.Set("2.1", "20", "42")

	tot := ComputeTotals(g)

	assert.Equal(t, "150", tot.RowTotal["1.1"].String())
	assert.Equal(t, "7.5", tot.RowTotal["1.2"].String())
	assert.Equal(t, "42", tot.RowTotal["2.1"].String())

	assert.Equal(t, "107.5", tot.ColumnTotal["10"].String())
	assert.Equal(t, "92", tot.ColumnTotal["20"].String())

	s1 := tot.SectionSubtotal["s1"]
	assert.Equal(t, "157.5", s1.Total.String())
	assert.Equal(t, "107.5", s1.PerColumn["10"].String())
	assert.Equal(t, "50", s1.PerColumn["20"].String())

	s2 := tot.SectionSubtotal["s2"]
	assert.Equal(t, "42", s2.Total.String())
	assert.Equal(t, "0", s2.PerColumn["10"].String())

	assert.Equal(t, "199.5", tot.GrandTotal.String())
}

func TestComputeTotalsConsistency(t *testing.T) {
	tests := []struct {
		name  string
		cells map[string]map[string]string
	}{
		{name: "empty grid", cells: nil},
		{
			name: "mixed values",
			cells: map[string]map[string]string{
				"1.1": {"10": "1.25", "20": "2"},
				"1.2": {"20": "3.75"},
				"2.1": {"10": "1000000", "20": "0.01"},
			},
		},
		{
			name: "blanks aggregate as zero",
			cells: map[string]map[string]string{
				"1.1": {"10": ""},
				"2.1": {"20": "5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(totalsTaxonomy(t), []string{"10", "20"})
			for code, row := range tt.cells {
				for unit, v := range row {
					g.Set(code, unit, v)
				}
			}

			tot := ComputeTotals(g)

			byColumn := decimal.Zero
			for _, id := range g.UnitIDs() {
				byColumn = byColumn.Add(tot.ColumnTotal[id])
			}
			byRow := decimal.Zero
			for _, item := range g.Taxonomy().ItemRows() {
				byRow = byRow.Add(tot.RowTotal[item.Code])
			}

			// Both reductions of the same matrix must agree with the grand total.
			assert.True(t, tot.GrandTotal.Equal(byColumn),
				"grand %s != column sum %s", tot.GrandTotal, byColumn)
			assert.True(t, tot.GrandTotal.Equal(byRow),
				"grand %s != row sum %s", tot.GrandTotal, byRow)
		})
	}
}

func TestComputeTotalsAfterReshape(t *testing.T) {
	g := NewGrid(totalsTaxonomy(t), []string{"10", "20"})
	g.Set("1.1", "10", "5")
	g.Set("1.1", "20", "9")

	g.Reshape([]string{"10", "30"})
	tot := ComputeTotals(g)

	require.Equal(t, "5", tot.RowTotal["1.1"].String())
	assert.Equal(t, "5", tot.GrandTotal.String())
	_, gone := tot.ColumnTotal["20"]
	assert.False(t, gone)
}

package xlsx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

func TestExport(t *testing.T) {
	tax := planning.MustTaxonomy([]planning.LineItem{
		{Code: "1", Label: "Operating", Kind: planning.RowSection},
		{Code: "9.27", Label: "Fuel", Kind: planning.RowItem, CategoryCode: "27", GroupID: "3"},
		{Code: "s1", Label: "Subtotal", Kind: planning.RowSubtotal},
		{Code: "9", Label: "Total", Kind: planning.RowGrandTotal},
	})
	grid := planning.NewGrid(tax, []string{"10", "20"})
	grid.Set("9.27", "10", "75.5")
	grid.Set("9.27", "20", "24.5")
	units := []planning.Unit{{ID: "10", Name: "Silo A"}, {ID: "20", Name: "Silo B"}}

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, Export(path, grid, units, 2))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Plan")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)

	assert.Equal(t, []string{"Code", "Item", "Silo A", "Silo B", "Total"}, rows[0])

	// Item row carries amounts and row total.
	assert.Equal(t, "9.27", rows[2][0])
	assert.Equal(t, "75.5", rows[2][2])
	assert.Equal(t, "100", rows[2][4])

	// Grand total row sums the matrix.
	last := rows[4]
	assert.Equal(t, "9", last[0])
	assert.Equal(t, "100", last[4])
}

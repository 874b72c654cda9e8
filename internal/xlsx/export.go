// Package xlsx writes a planning grid, with its derived totals, to an
// Excel workbook. This is the download path for sharing a plan outside
// the client.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

const sheetName = "Plan"

// Export writes the grid and totals to path as a single-sheet workbook:
// one column per unit plus a trailing total column, one row per taxonomy
// row including section subtotals and the grand total.
func Export(path string, grid *planning.Grid, units []planning.Unit, maxDecimals int) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	totals := planning.ComputeTotals(grid)
	unitIDs := grid.UnitIDs()
	unitName := make(map[string]string, len(units))
	for _, u := range units {
		unitName[u.ID] = u.Name
	}

	header := []any{"Code", "Item"}
	for _, id := range unitIDs {
		name := unitName[id]
		if name == "" {
			name = id
		}
		header = append(header, name)
	}
	header = append(header, "Total")
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	rowNum := 2
	for _, row := range grid.Taxonomy().Rows() {
		values := []any{row.Code, row.Label}
		switch row.Kind {
		case planning.RowItem:
			for _, id := range unitIDs {
				values = append(values, planning.ToNumber(grid.Get(row.Code, id)).InexactFloat64())
			}
			values = append(values, totals.RowTotal[row.Code].InexactFloat64())
		case planning.RowSubtotal:
			st := totals.SectionSubtotal[row.Code]
			for _, id := range unitIDs {
				values = append(values, st.PerColumn[id].InexactFloat64())
			}
			values = append(values, st.Total.InexactFloat64())
		case planning.RowGrandTotal:
			for _, id := range unitIDs {
				values = append(values, totals.ColumnTotal[id].InexactFloat64())
			}
			values = append(values, totals.GrandTotal.InexactFloat64())
		}
		if err := setRow(f, rowNum, values); err != nil {
			return err
		}
		rowNum++
	}

	if err := f.SetColWidth(sheetName, "B", "B", 32); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

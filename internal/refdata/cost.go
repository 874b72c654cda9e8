package refdata

import "github.com/Kael-Dean/SKT-sub000/pkg/planning"

// costRows is the cost-plan taxonomy. Row order is load-bearing: each
// subtotal row covers the item rows after the nearest preceding section row.
var costRows = []planning.LineItem{
	{Code: "0", Label: "Annual cost plan", Kind: planning.RowTitle},

	{Code: "1", Label: "1. Paddy procurement", Kind: planning.RowSection},
	{Code: "1.1", Label: "Paddy purchases", Kind: planning.RowItem, CategoryCode: "1", GroupID: "1"},
	{Code: "1.2", Label: "Purchase commissions", Kind: planning.RowItem, CategoryCode: "2", GroupID: "1"},
	{Code: "1.3", Label: "Transport to silo", Kind: planning.RowItem, CategoryCode: "3", GroupID: "1"},
	{Code: "1.4", Label: "Weighing and grading fees", Kind: planning.RowItem, CategoryCode: "4", GroupID: "1"},
	{Code: "1.s", Label: "Procurement subtotal", Kind: planning.RowSubtotal},

	{Code: "2", Label: "2. Processing", Kind: planning.RowSection},
	{Code: "2.5", Label: "Drying charges", Kind: planning.RowItem, CategoryCode: "5", GroupID: "2"},
	{Code: "2.6", Label: "Milling wages", Kind: planning.RowItem, CategoryCode: "6", GroupID: "2"},
	{Code: "2.7", Label: "Packaging materials", Kind: planning.RowItem, CategoryCode: "7", GroupID: "2"},
	{Code: "2.8", Label: "Machine maintenance", Kind: planning.RowItem, CategoryCode: "8", GroupID: "2"},
	// Ledger code 10 appears twice in group 2: both fuel rows post to the
	// same code, so each carries the backend identifier directly. The
	// shared code is a gap in the upstream reference data, not a pattern to
	// extend; see DESIGN.md.
	{Code: "2.10", Label: "Fuel (milling)", Kind: planning.RowItem, CategoryCode: "10", GroupID: "2", CompositeIDOverride: "20410"},
	{Code: "2.11", Label: "Fuel (transport)", Kind: planning.RowItem, CategoryCode: "10", GroupID: "2", CompositeIDOverride: "20411"},
	{Code: "2.s", Label: "Processing subtotal", Kind: planning.RowSubtotal},

	{Code: "3", Label: "3. Operating expenses", Kind: planning.RowSection},
	{Code: "3.21", Label: "Staff salaries", Kind: planning.RowItem, CategoryCode: "21", GroupID: "3"},
	{Code: "3.22", Label: "Social security contributions", Kind: planning.RowItem, CategoryCode: "22", GroupID: "3"},
	{Code: "3.23", Label: "Warehouse rent", Kind: planning.RowItem, CategoryCode: "23", GroupID: "3"},
	{Code: "3.24", Label: "Electricity and water", Kind: planning.RowItem, CategoryCode: "24", GroupID: "3"},
	{Code: "3.25", Label: "Insurance premiums", Kind: planning.RowItem, CategoryCode: "25", GroupID: "3"},
	{Code: "3.27", Label: "Vehicle running costs", Kind: planning.RowItem, CategoryCode: "27", GroupID: "3"},
	{Code: "3.s", Label: "Operating subtotal", Kind: planning.RowSubtotal},

	{Code: "4", Label: "4. Administration", Kind: planning.RowSection},
	{Code: "4.31", Label: "Office supplies", Kind: planning.RowItem, CategoryCode: "31", GroupID: "4"},
	{Code: "4.32", Label: "Audit and accounting fees", Kind: planning.RowItem, CategoryCode: "32", GroupID: "4"},
	{Code: "4.33", Label: "Board meeting allowances", Kind: planning.RowItem, CategoryCode: "33", GroupID: "4"},
	{Code: "4.34", Label: "Member training", Kind: planning.RowItem, CategoryCode: "34", GroupID: "4"},
	{Code: "4.s", Label: "Administration subtotal", Kind: planning.RowSubtotal},

	{Code: "9", Label: "Total costs", Kind: planning.RowGrandTotal},
}

// costSeeds maps (ledger code, business group) to the backend's
// business_cost_id. Codes 10/2 appear twice; the affected rows carry
// overrides instead of relying on the table.
var costSeeds = []planning.MappingSeed{
	{CompositeID: "20101", CategoryCode: "1", GroupID: "1"},
	{CompositeID: "20102", CategoryCode: "2", GroupID: "1"},
	{CompositeID: "20103", CategoryCode: "3", GroupID: "1"},
	{CompositeID: "20104", CategoryCode: "4", GroupID: "1"},
	{CompositeID: "20205", CategoryCode: "5", GroupID: "2"},
	{CompositeID: "20206", CategoryCode: "6", GroupID: "2"},
	{CompositeID: "20207", CategoryCode: "7", GroupID: "2"},
	{CompositeID: "20208", CategoryCode: "8", GroupID: "2"},
	{CompositeID: "20410", CategoryCode: "10", GroupID: "2"},
	{CompositeID: "20411", CategoryCode: "10", GroupID: "2"},
	{CompositeID: "20321", CategoryCode: "21", GroupID: "3"},
	{CompositeID: "20322", CategoryCode: "22", GroupID: "3"},
	{CompositeID: "20323", CategoryCode: "23", GroupID: "3"},
	{CompositeID: "20324", CategoryCode: "24", GroupID: "3"},
	{CompositeID: "20325", CategoryCode: "25", GroupID: "3"},
	{CompositeID: "20327", CategoryCode: "27", GroupID: "3"},
	{CompositeID: "20431", CategoryCode: "31", GroupID: "4"},
	{CompositeID: "20432", CategoryCode: "32", GroupID: "4"},
	{CompositeID: "20433", CategoryCode: "33", GroupID: "4"},
	{CompositeID: "20434", CategoryCode: "34", GroupID: "4"},
}

package refdata

import "github.com/Kael-Dean/SKT-sub000/pkg/planning"

// earningRows is the revenue-plan taxonomy.
var earningRows = []planning.LineItem{
	{Code: "0", Label: "Annual revenue plan", Kind: planning.RowTitle},

	{Code: "1", Label: "1. Rice sales", Kind: planning.RowSection},
	{Code: "1.1", Label: "White rice sales", Kind: planning.RowItem, CategoryCode: "1", GroupID: "1"},
	{Code: "1.2", Label: "Paddy seed sales", Kind: planning.RowItem, CategoryCode: "2", GroupID: "1"},
	{Code: "1.3", Label: "Brown rice sales", Kind: planning.RowItem, CategoryCode: "3", GroupID: "1"},
	{Code: "1.s", Label: "Rice sales subtotal", Kind: planning.RowSubtotal},

	{Code: "2", Label: "2. By-products", Kind: planning.RowSection},
	{Code: "2.4", Label: "Rice bran sales", Kind: planning.RowItem, CategoryCode: "4", GroupID: "2"},
	{Code: "2.5", Label: "Husk sales", Kind: planning.RowItem, CategoryCode: "5", GroupID: "2"},
	{Code: "2.6", Label: "Broken rice sales", Kind: planning.RowItem, CategoryCode: "6", GroupID: "2"},
	{Code: "2.s", Label: "By-products subtotal", Kind: planning.RowSubtotal},

	{Code: "3", Label: "3. Services", Kind: planning.RowSection},
	{Code: "3.7", Label: "Milling services for members", Kind: planning.RowItem, CategoryCode: "7", GroupID: "3"},
	{Code: "3.8", Label: "Drying services", Kind: planning.RowItem, CategoryCode: "8", GroupID: "3"},
	{Code: "3.9", Label: "Warehouse rental income", Kind: planning.RowItem, CategoryCode: "9", GroupID: "3"},
	{Code: "3.s", Label: "Services subtotal", Kind: planning.RowSubtotal},

	{Code: "9", Label: "Total revenue", Kind: planning.RowGrandTotal},
}

// earningSeeds maps (ledger code, business group) to business_earning_id.
var earningSeeds = []planning.MappingSeed{
	{CompositeID: "30101", CategoryCode: "1", GroupID: "1"},
	{CompositeID: "30102", CategoryCode: "2", GroupID: "1"},
	{CompositeID: "30103", CategoryCode: "3", GroupID: "1"},
	{CompositeID: "30204", CategoryCode: "4", GroupID: "2"},
	{CompositeID: "30205", CategoryCode: "5", GroupID: "2"},
	{CompositeID: "30206", CategoryCode: "6", GroupID: "2"},
	{CompositeID: "30307", CategoryCode: "7", GroupID: "3"},
	{CompositeID: "30308", CategoryCode: "8", GroupID: "3"},
	{CompositeID: "30309", CategoryCode: "9", GroupID: "3"},
}

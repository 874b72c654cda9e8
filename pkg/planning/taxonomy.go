package planning

import "fmt"

// RowKind classifies a row of the static taxonomy.
type RowKind string

// Row kinds. Only RowItem rows are editable; the rest are rendered from
// derived totals or as static labels.
const (
	RowTitle      RowKind = "title"
	RowSection    RowKind = "section"
	RowItem       RowKind = "item"
	RowSubtotal   RowKind = "subtotal"
	RowGrandTotal RowKind = "grandtotal"
)

// knownRowKinds lists the kinds NewTaxonomy accepts.
var knownRowKinds = map[RowKind]bool{
	RowTitle:      true,
	RowSection:    true,
	RowItem:       true,
	RowSubtotal:   true,
	RowGrandTotal: true,
}

// LineItem is one row of a planning table. Rows are defined at build time
// and never created or destroyed at runtime.
type LineItem struct {
	// Code is the human-readable row code, unique within the table
	// (for example "9.27").
	Code string

	// Label is the display text for the row.
	Label string

	// Kind classifies the row.
	Kind RowKind

	// CategoryCode is the ledger code of an item row. Empty for other kinds.
	CategoryCode string

	// GroupID is the business group an item row belongs to. Combined with
	// CategoryCode it resolves the row's persistence identity.
	GroupID string

	// CompositeIDOverride, when set, bypasses the resolver's lookup table.
	// It disambiguates rows that legitimately share a
	// (CategoryCode, GroupID) pair.
	CompositeIDOverride string
}

// Taxonomy is an ordered, immutable set of line items with unique codes.
type Taxonomy struct {
	rows   []LineItem
	byCode map[string]int
}

// NewTaxonomy validates the given rows and returns a Taxonomy over them.
// Row order is preserved; it determines section membership for subtotals.
func NewTaxonomy(rows []LineItem) (*Taxonomy, error) {
	byCode := make(map[string]int, len(rows))
	for i, r := range rows {
		if r.Code == "" {
			return nil, fmt.Errorf("row %d: %w", i, ErrEmptyRowCode)
		}
		if !knownRowKinds[r.Kind] {
			return nil, fmt.Errorf("row %q: %w: %q", r.Code, ErrUnknownRowKind, r.Kind)
		}
		if _, dup := byCode[r.Code]; dup {
			return nil, fmt.Errorf("row %q: %w", r.Code, ErrDuplicateRowCode)
		}
		byCode[r.Code] = i
	}
	out := make([]LineItem, len(rows))
	copy(out, rows)
	return &Taxonomy{rows: out, byCode: byCode}, nil
}

// MustTaxonomy is NewTaxonomy for build-time reference data; it panics on
// invalid rows.
func MustTaxonomy(rows []LineItem) *Taxonomy {
	t, err := NewTaxonomy(rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Rows returns the rows in declared order. The slice is shared; callers must
// not modify it.
func (t *Taxonomy) Rows() []LineItem {
	return t.rows
}

// Row returns the row with the given code.
func (t *Taxonomy) Row(code string) (LineItem, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return LineItem{}, false
	}
	return t.rows[i], true
}

// ItemRows returns the editable (RowItem) rows in declared order.
func (t *Taxonomy) ItemRows() []LineItem {
	var items []LineItem
	for _, r := range t.rows {
		if r.Kind == RowItem {
			items = append(items, r)
		}
	}
	return items
}

// Len returns the number of rows, of every kind.
func (t *Taxonomy) Len() int {
	return len(t.rows)
}

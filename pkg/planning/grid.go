package planning

import "fmt"

// Grid is the editable value matrix of a planning table: one row per
// RowItem line item, one column per organizational unit, each cell holding
// canonical sanitized numeric text ("" means not entered and aggregates as
// zero).
//
// Grid is an explicit observable store: subscribers registered with
// Subscribe are notified after every Set and Reshape, and the aggregation
// and rendering layers recompute from it on each notification. All access
// happens on the single event loop that owns the grid; Grid itself takes
// no locks.
type Grid struct {
	tax     *Taxonomy
	unitIDs []string
	cells   map[string]map[string]string
	subs    []func()
}

// NewGrid seeds an empty cell for every item row and unit id.
func NewGrid(tax *Taxonomy, unitIDs []string) *Grid {
	g := &Grid{tax: tax}
	g.rebuild(unitIDs)
	return g
}

// Taxonomy returns the static taxonomy the grid is shaped by.
func (g *Grid) Taxonomy() *Taxonomy {
	return g.tax
}

// UnitIDs returns the current column ids in order. The slice is shared;
// callers must not modify it.
func (g *Grid) UnitIDs() []string {
	return g.unitIDs
}

// HasUnit reports whether the grid currently carries a column for unitID.
func (g *Grid) HasUnit(unitID string) bool {
	for _, id := range g.unitIDs {
		if id == unitID {
			return true
		}
	}
	return false
}

// Get returns the cell text for (code, unitID), or "" for cells never set.
// Unknown row codes are a programming error and panic, as with Set.
func (g *Grid) Get(code, unitID string) string {
	return g.row(code)[unitID]
}

// Set writes canonical cell text and notifies subscribers. The row code
// must name an item row of the taxonomy; anything else is a programming
// error, not a recoverable runtime condition.
func (g *Grid) Set(code, unitID, value string) {
	g.row(code)[unitID] = value
	g.notify()
}

// Reshape rebuilds the column set for a new unit list, preserving values
// whose unit id survives and seeding "" for unit ids only in the new set.
// Values for removed units are discarded. It fires exactly one change
// notification per call; callers must invoke it once per unit-set change,
// not once per unit.
func (g *Grid) Reshape(newUnitIDs []string) {
	old := g.cells
	g.rebuild(newUnitIDs)
	for code, oldRow := range old {
		row := g.cells[code]
		for _, id := range g.unitIDs {
			if v, ok := oldRow[id]; ok {
				row[id] = v
			}
		}
	}
	g.notify()
}

// Row returns a copy of one row keyed by unit id.
func (g *Grid) Row(code string) map[string]string {
	src := g.row(code)
	out := make(map[string]string, len(src))
	for id, v := range src {
		out[id] = v
	}
	return out
}

// Subscribe registers a callback invoked after every Set and Reshape.
func (g *Grid) Subscribe(fn func()) {
	g.subs = append(g.subs, fn)
}

func (g *Grid) rebuild(unitIDs []string) {
	ids := make([]string, len(unitIDs))
	copy(ids, unitIDs)
	g.unitIDs = ids
	g.cells = make(map[string]map[string]string)
	for _, item := range g.tax.ItemRows() {
		row := make(map[string]string, len(ids))
		for _, id := range ids {
			row[id] = ""
		}
		g.cells[item.Code] = row
	}
}

func (g *Grid) row(code string) map[string]string {
	row, ok := g.cells[code]
	if !ok {
		panic(fmt.Sprintf("planning: %q is not an editable row of the taxonomy", code))
	}
	return row
}

func (g *Grid) notify() {
	for _, fn := range g.subs {
		fn()
	}
}

package planning

// MappingSeed is one entry of the flat seed list a Resolver is built from.
type MappingSeed struct {
	CompositeID  string
	CategoryCode string
	GroupID      string
}

type mappingKey struct {
	categoryCode string
	groupID      string
}

// Resolver translates an item row's (CategoryCode, GroupID) pair into the
// backend's composite identifier. A row-level CompositeIDOverride always
// wins over the lookup table.
type Resolver struct {
	table map[mappingKey]string
}

// NewResolver builds a Resolver from seed triples. When the seed contains
// duplicates for a (category, group) pair the first entry wins; such
// duplicates are a data-authoring error, not a normal case.
func NewResolver(seeds []MappingSeed) *Resolver {
	table := make(map[mappingKey]string, len(seeds))
	for _, s := range seeds {
		k := mappingKey{categoryCode: s.CategoryCode, groupID: s.GroupID}
		if _, exists := table[k]; exists {
			continue
		}
		table[k] = s.CompositeID
	}
	return &Resolver{table: table}
}

// Resolve returns the composite identifier for an item row, or ("", false)
// when neither an override nor a table entry exists. Callers must treat the
// unresolved case explicitly; there is no placeholder identifier.
func (r *Resolver) Resolve(item LineItem) (string, bool) {
	if item.Kind != RowItem {
		return "", false
	}
	if item.CompositeIDOverride != "" {
		return item.CompositeIDOverride, true
	}
	id, ok := r.table[mappingKey{categoryCode: item.CategoryCode, groupID: item.GroupID}]
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ReverseMap returns composite identifier → row code for every item row of
// the taxonomy that resolves. The load path uses it to route fetched cells
// back to rows; fetched composites absent from the map belong to rows the
// current taxonomy no longer exposes and are skipped.
func (r *Resolver) ReverseMap(tax *Taxonomy) map[string]string {
	out := make(map[string]string)
	for _, item := range tax.ItemRows() {
		id, ok := r.Resolve(item)
		if !ok {
			continue
		}
		if _, taken := out[id]; taken {
			continue
		}
		out[id] = item.Code
	}
	return out
}

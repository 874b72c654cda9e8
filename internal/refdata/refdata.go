// Package refdata holds the static budget taxonomies of the planning
// screens and the seed lists that map ledger codes to backend composite
// identifiers. Everything here is build-time reference data; nothing is
// created or modified at runtime.
package refdata

import "github.com/Kael-Dean/SKT-sub000/pkg/planning"

var (
	costTaxonomy    = planning.MustTaxonomy(costRows)
	earningTaxonomy = planning.MustTaxonomy(earningRows)

	costResolver    = planning.NewResolver(costSeeds)
	earningResolver = planning.NewResolver(earningSeeds)
)

// Taxonomy returns the row taxonomy of the given table.
func Taxonomy(kind planning.TableKind) *planning.Taxonomy {
	if kind == planning.TableEarning {
		return earningTaxonomy
	}
	return costTaxonomy
}

// Resolver returns the composite-identifier resolver of the given table.
func Resolver(kind planning.TableKind) *planning.Resolver {
	if kind == planning.TableEarning {
		return earningResolver
	}
	return costResolver
}

// Package planning implements the budget-planning grid engine used by the
// cooperative's back-office planning screens: the static row taxonomy, the
// composite-identifier resolver, the numeric cell sanitizer, the observable
// grid value store, the aggregation engine, the keyboard navigation and
// viewport models, and the persistence gateway.
//
// The package holds no network or rendering code. Collaborators (the plan
// endpoints and the unit directory) are consumed through interfaces declared
// here and implemented under internal/api; rendering lives under internal/tui.
package planning

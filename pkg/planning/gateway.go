package planning

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Plan identifies the persistence context for load and save calls. The
// caller supplies it; the engine never derives it.
type Plan struct {
	PlanID   string
	BranchID string
	// Period is a free-text label ("2026 revision 2"); passed through.
	Period string
}

// Unit is one organizational unit of a branch, a column of the grid.
type Unit struct {
	ID   string
	Name string
}

// PlanCell is one previously saved amount as the load endpoint returns it.
type PlanCell struct {
	CompositeID string
	UnitID      string
	Amount      string
}

// UnitValue is one per-unit amount of an outgoing row submission.
type UnitValue struct {
	UnitID string
	Amount decimal.Decimal
}

// RowSubmission is one resolved row of the outgoing save batch.
type RowSubmission struct {
	BranchID    string
	CompositeID string
	UnitValues  []UnitValue
	BranchTotal decimal.Decimal
	Comment     string
}

// PlanStore is the plan persistence collaborator. internal/api implements
// it over the backend's REST endpoints; tests substitute fakes.
type PlanStore interface {
	// LoadCells fetches every saved amount for the plan and branch.
	LoadCells(ctx context.Context, plan Plan) ([]PlanCell, error)

	// SaveRows submits the batch and returns the number of rows upserted.
	SaveRows(ctx context.Context, plan Plan, rows []RowSubmission) (int, error)
}

// UnitDirectory is the organizational-unit lookup collaborator. An empty
// branch id yields an empty list.
type UnitDirectory interface {
	Units(ctx context.Context, branchID string) ([]Unit, error)
}

// State is the gateway's lifecycle phase.
type State string

// Gateway states. Load moves idle → loading → loaded or load_failed; Save
// moves to saving → saved or save_failed, and a successful save re-runs
// Load to reconcile server-side normalization.
const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateLoaded     State = "loaded"
	StateLoadFailed State = "load_failed"
	StateSaving     State = "saving"
	StateSaved      State = "saved"
	StateSaveFailed State = "save_failed"
)

// Gateway moves amounts between the grid and the plan store. It enforces
// the two safety rules of the persistence protocol: a save never drops a
// populated row that lacks a composite identifier (it aborts before any
// network call instead), and a stale load result (superseded by a newer
// load, or targeting a plan/branch that is no longer selected) is discarded
// rather than applied.
//
// Gateway is owned by the single event loop that owns the grid. The
// Begin/Apply pairs exist so that loop can run the network call elsewhere
// (a tea.Cmd goroutine, a test) while all grid mutation stays on the loop;
// Load and Save compose the pairs for synchronous callers.
type Gateway struct {
	store       PlanStore
	resolver    *Resolver
	grid        *Grid
	maxDecimals int

	state      State
	generation uint64
	current    Plan
}

// NewGateway returns an idle gateway over the given collaborator, resolver,
// and grid. maxDecimals bounds the fraction of amounts written on load.
func NewGateway(store PlanStore, resolver *Resolver, grid *Grid, maxDecimals int) *Gateway {
	return &Gateway{
		store:       store,
		resolver:    resolver,
		grid:        grid,
		maxDecimals: maxDecimals,
		state:       StateIdle,
	}
}

// State returns the current lifecycle phase.
func (gw *Gateway) State() State {
	return gw.state
}

// CurrentPlan returns the plan/branch selection of the most recent
// BeginLoad.
func (gw *Gateway) CurrentPlan() Plan {
	return gw.current
}

// BeginLoad records plan as the current selection, enters the loading
// state, and returns the generation token ApplyLoad must present. Each call
// invalidates the tokens of loads still in flight, so a newer load always
// supersedes an older, slower one.
func (gw *Gateway) BeginLoad(plan Plan) uint64 {
	gw.generation++
	gw.current = plan
	gw.state = StateLoading
	return gw.generation
}

// ApplyLoad completes the load started under gen. A result whose token is
// stale or whose plan no longer matches the current selection is discarded:
// the grid is untouched and ErrStaleLoad is returned. On a fetch error the
// grid keeps its last-known-good values and the state becomes load_failed.
// On success every fetched cell whose composite identifier maps to a
// current row and whose unit is a current column is written into the grid;
// the rest represent rows or units the taxonomy and branch no longer
// expose and are skipped.
func (gw *Gateway) ApplyLoad(gen uint64, plan Plan, cells []PlanCell, err error) error {
	if gen != gw.generation || plan != gw.current {
		return ErrStaleLoad
	}
	if err != nil {
		gw.state = StateLoadFailed
		return err
	}
	reverse := gw.resolver.ReverseMap(gw.grid.Taxonomy())
	for _, c := range cells {
		code, ok := reverse[c.CompositeID]
		if !ok {
			continue
		}
		if !gw.grid.HasUnit(c.UnitID) {
			continue
		}
		gw.grid.Set(code, c.UnitID, Sanitize(c.Amount, gw.maxDecimals))
	}
	gw.state = StateLoaded
	return nil
}

// Load fetches and applies the plan's saved amounts synchronously.
func (gw *Gateway) Load(ctx context.Context, plan Plan) error {
	gen := gw.BeginLoad(plan)
	cells, err := gw.store.LoadCells(ctx, plan)
	return gw.ApplyLoad(gen, plan, cells, err)
}

// BuildBatch assembles the outgoing save batch from the grid. Every item
// row that resolves to a composite identifier is included with its per-unit
// amounts and branch total. Rows that do not resolve are omitted when all
// their amounts are zero; if any such row holds a non-zero amount the whole
// batch is rejected with an UnmappedDataError naming the offending codes,
// so the caller aborts before any network call is issued.
func (gw *Gateway) BuildBatch(plan Plan) ([]RowSubmission, error) {
	unitIDs := gw.grid.UnitIDs()
	var rows []RowSubmission
	var unmapped []string
	for _, item := range gw.grid.Taxonomy().ItemRows() {
		values := make([]UnitValue, 0, len(unitIDs))
		total := decimal.Zero
		for _, id := range unitIDs {
			v := ToNumber(gw.grid.Get(item.Code, id))
			values = append(values, UnitValue{UnitID: id, Amount: v})
			total = total.Add(v)
		}
		id, ok := gw.resolver.Resolve(item)
		if !ok {
			if !total.IsZero() {
				unmapped = append(unmapped, item.Code)
			}
			continue
		}
		rows = append(rows, RowSubmission{
			BranchID:    plan.BranchID,
			CompositeID: id,
			UnitValues:  values,
			BranchTotal: total,
		})
	}
	if len(unmapped) > 0 {
		return nil, &UnmappedDataError{Codes: unmapped}
	}
	return rows, nil
}

// BeginSave enters the saving state. It fails with ErrSaveInProgress while
// an earlier save is still in flight, so the same plan/branch cannot be
// double-submitted.
func (gw *Gateway) BeginSave() error {
	if gw.state == StateSaving {
		return ErrSaveInProgress
	}
	gw.state = StateSaving
	return nil
}

// FinishSave completes the save started by BeginSave.
func (gw *Gateway) FinishSave(err error) {
	if err != nil {
		gw.state = StateSaveFailed
		return
	}
	gw.state = StateSaved
}

// Save submits the grid synchronously: batch precondition, re-entry guard,
// submit, then a reload on success. On any failure the grid and its pending
// edits are left completely intact so the user can retry; the returned
// count is the number of rows the backend upserted.
func (gw *Gateway) Save(ctx context.Context, plan Plan) (int, error) {
	rows, err := gw.BuildBatch(plan)
	if err != nil {
		return 0, err
	}
	if err := gw.BeginSave(); err != nil {
		return 0, err
	}
	count, err := gw.store.SaveRows(ctx, plan, rows)
	gw.FinishSave(err)
	if err != nil {
		return 0, fmt.Errorf("save plan %s branch %s: %w", plan.PlanID, plan.BranchID, err)
	}
	if err := gw.Load(ctx, plan); err != nil {
		return count, err
	}
	return count, nil
}

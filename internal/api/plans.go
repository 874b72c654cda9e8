package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

// PlanService implements planning.PlanStore over the plan amount endpoints
// of one table family.
type PlanService struct {
	client *Client
	table  planning.TableKind
}

// NewPlanService returns a store for the given table family.
func NewPlanService(c *Client, table planning.TableKind) *PlanService {
	return &PlanService{client: c, table: table}
}

// amountRecord is the wire shape of one saved cell. Cost and earning rows
// carry their composite identifier in different fields.
type amountRecord struct {
	BusinessCostID    string `json:"business_cost_id,omitempty"`
	BusinessEarningID string `json:"business_earning_id,omitempty"`
	UnitID            string `json:"unit_id"`
	Amount            string `json:"amount"`
}

func (r amountRecord) compositeID(table planning.TableKind) string {
	if table == planning.TableEarning {
		return r.BusinessEarningID
	}
	return r.BusinessCostID
}

// unitValueRecord is the wire shape of one per-unit amount of a submission.
type unitValueRecord struct {
	UnitID string          `json:"unit_id"`
	Amount decimal.Decimal `json:"amount"`
}

// rowRecord is the wire shape of one outgoing row.
type rowRecord struct {
	BranchID          string            `json:"branch_id"`
	BusinessCostID    string            `json:"business_cost_id,omitempty"`
	BusinessEarningID string            `json:"business_earning_id,omitempty"`
	UnitValues        []unitValueRecord `json:"unit_values"`
	BranchTotal       decimal.Decimal   `json:"branch_total"`
	Comment           string            `json:"comment"`
}

// LoadCells fetches every saved amount of the plan for one branch.
func (s *PlanService) LoadCells(ctx context.Context, plan planning.Plan) ([]planning.PlanCell, error) {
	path := fmt.Sprintf("/plans/%s/%s-amounts?branch_id=%s",
		url.PathEscape(plan.PlanID), s.table, url.QueryEscape(plan.BranchID))

	var records []amountRecord
	if err := s.client.request(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("load %s amounts: %w", s.table, err)
	}

	cells := make([]planning.PlanCell, 0, len(records))
	for _, r := range records {
		cells = append(cells, planning.PlanCell{
			CompositeID: r.compositeID(s.table),
			UnitID:      r.UnitID,
			Amount:      r.Amount,
		})
	}
	return cells, nil
}

// SaveRows submits the batch and returns the number of rows upserted.
func (s *PlanService) SaveRows(ctx context.Context, plan planning.Plan, rows []planning.RowSubmission) (int, error) {
	body := struct {
		Period string      `json:"period,omitempty"`
		Rows   []rowRecord `json:"rows"`
	}{Period: plan.Period}

	for _, row := range rows {
		rec := rowRecord{
			BranchID:    row.BranchID,
			BranchTotal: row.BranchTotal,
			Comment:     row.Comment,
			UnitValues:  make([]unitValueRecord, 0, len(row.UnitValues)),
		}
		if s.table == planning.TableEarning {
			rec.BusinessEarningID = row.CompositeID
		} else {
			rec.BusinessCostID = row.CompositeID
		}
		for _, uv := range row.UnitValues {
			rec.UnitValues = append(rec.UnitValues, unitValueRecord{UnitID: uv.UnitID, Amount: uv.Amount})
		}
		body.Rows = append(body.Rows, rec)
	}

	var result struct {
		Upserted int `json:"upserted"`
	}
	path := fmt.Sprintf("/plans/%s/%s-amounts", url.PathEscape(plan.PlanID), s.table)
	if err := s.client.request(ctx, http.MethodPost, path, body, &result); err != nil {
		return 0, fmt.Errorf("save %s amounts: %w", s.table, err)
	}
	return result.Upserted, nil
}

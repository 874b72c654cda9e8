package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

func TestClientAttachesCredentials(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Token: "tok-1"})
	_, err := NewUnitService(c).Units(context.Background(), "B1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClientStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: planning.ErrAuth},
		{name: "forbidden", status: http.StatusForbidden, wantErr: planning.ErrAuth},
		{name: "not found", status: http.StatusNotFound, wantErr: planning.ErrNotFound},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: planning.ErrValidation},
		{name: "server error", status: http.StatusInternalServerError, wantErr: planning.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL})
			_, err := NewUnitService(c).Units(context.Background(), "B1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientUnreachableIsNetworkFailure(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := NewUnitService(c).Units(context.Background(), "B1")
	assert.ErrorIs(t, err, planning.ErrNetwork)
}

func TestUnitServiceEmptyBranchSkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	units, err := NewUnitService(NewClient(Config{BaseURL: srv.URL})).Units(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, units)
	assert.False(t, called)
}

func TestPlanServiceLoadCells(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plans/7/cost-amounts", r.URL.Path)
		assert.Equal(t, "B1", r.URL.Query().Get("branch_id"))
		w.Write([]byte(`[
			{"business_cost_id":"20327","unit_id":"10","amount":"75.5"},
			{"business_cost_id":"20324","unit_id":"20","amount":"12"}
		]`))
	}))
	defer srv.Close()

	s := NewPlanService(NewClient(Config{BaseURL: srv.URL}), planning.TableCost)
	cells, err := s.LoadCells(context.Background(), planning.Plan{PlanID: "7", BranchID: "B1"})
	require.NoError(t, err)

	assert.Equal(t, []planning.PlanCell{
		{CompositeID: "20327", UnitID: "10", Amount: "75.5"},
		{CompositeID: "20324", UnitID: "20", Amount: "12"},
	}, cells)
}

func TestPlanServiceLoadEarningField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plans/7/earning-amounts", r.URL.Path)
		w.Write([]byte(`[{"business_earning_id":"30101","unit_id":"10","amount":"9"}]`))
	}))
	defer srv.Close()

	s := NewPlanService(NewClient(Config{BaseURL: srv.URL}), planning.TableEarning)
	cells, err := s.LoadCells(context.Background(), planning.Plan{PlanID: "7", BranchID: "B1"})
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, "30101", cells[0].CompositeID)
}

func TestPlanServiceSaveRows(t *testing.T) {
	var decoded struct {
		Period string `json:"period"`
		Rows   []struct {
			BranchID       string `json:"branch_id"`
			BusinessCostID string `json:"business_cost_id"`
			UnitValues     []struct {
				UnitID string `json:"unit_id"`
				Amount string `json:"amount"`
			} `json:"unit_values"`
			BranchTotal string `json:"branch_total"`
		} `json:"rows"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/plans/7/cost-amounts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&decoded))
		w.Write([]byte(`{"upserted":1}`))
	}))
	defer srv.Close()

	s := NewPlanService(NewClient(Config{BaseURL: srv.URL}), planning.TableCost)
	count, err := s.SaveRows(context.Background(),
		planning.Plan{PlanID: "7", BranchID: "B1", Period: "2026"},
		[]planning.RowSubmission{{
			BranchID:    "B1",
			CompositeID: "20327",
			UnitValues: []planning.UnitValue{
				{UnitID: "10", Amount: decimal.RequireFromString("100")},
				{UnitID: "20", Amount: decimal.Zero},
			},
			BranchTotal: decimal.RequireFromString("100"),
		}})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, "2026", decoded.Period)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, "20327", decoded.Rows[0].BusinessCostID)
	assert.Equal(t, "100", decoded.Rows[0].BranchTotal)
	require.Len(t, decoded.Rows[0].UnitValues, 2)
	assert.Equal(t, "100", decoded.Rows[0].UnitValues[0].Amount)
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Kael-Dean/SKT-sub000/pkg/planning"
)

// UnitService implements planning.UnitDirectory over the branch directory.
type UnitService struct {
	client *Client
}

// NewUnitService returns a directory client.
func NewUnitService(c *Client) *UnitService {
	return &UnitService{client: c}
}

// Units lists the organizational units of a branch. An empty branch id
// yields an empty list without a network call.
func (s *UnitService) Units(ctx context.Context, branchID string) ([]planning.Unit, error) {
	if branchID == "" {
		return nil, nil
	}

	var records []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	path := fmt.Sprintf("/branches/%s/units", url.PathEscape(branchID))
	if err := s.client.request(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("list units for branch %s: %w", branchID, err)
	}

	units := make([]planning.Unit, 0, len(records))
	for _, r := range records {
		units = append(units, planning.Unit{ID: r.ID, Name: r.Name})
	}
	return units, nil
}

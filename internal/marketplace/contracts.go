package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"talentlink/internal/models"
)

func (c *Client) ListContracts(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	if err := c.do(ctx, http.MethodGet, "/api/contracts/", nil, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (c *Client) CreateContract(ctx context.Context, write models.ContractWrite) (*models.Contract, error) {
	var contract models.Contract
	if err := c.do(ctx, http.MethodPost, "/api/contracts/", write, &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

func (c *Client) PatchContractStatus(ctx context.Context, id int, status models.ContractStatus) error {
	body := map[string]models.ContractStatus{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/contracts/%d/", id), body, nil)
}

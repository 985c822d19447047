package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"talentlink/internal/models"
)

func (c *Client) ListProposals(ctx context.Context) ([]models.Proposal, error) {
	var proposals []models.Proposal
	if err := c.do(ctx, http.MethodGet, "/api/proposals/", nil, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

func (c *Client) CreateProposal(ctx context.Context, write models.ProposalWrite) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := c.do(ctx, http.MethodPost, "/api/proposals/", write, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// PatchProposalStatus flips a proposal to accepted or rejected. The
// transition is one-way; the marketplace defines no further transitions.
func (c *Client) PatchProposalStatus(ctx context.Context, id int, status models.ProposalStatus) error {
	body := map[string]models.ProposalStatus{"status": status}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/proposals/%d/", id), body, nil)
}

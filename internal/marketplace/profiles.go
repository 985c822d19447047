package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"talentlink/internal/models"
)

// ListProfiles fetches every profile. The marketplace has no name filter,
// so name-based lookups scan this list client-side.
func (c *Client) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles/", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (c *Client) GetProfile(ctx context.Context, id int) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/profiles/%d/", id), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile sends a full-resource PUT; the marketplace rebuilds skill
// rows from skill_names.
func (c *Client) UpdateProfile(ctx context.Context, id int, update models.ProfileUpdate) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/profiles/%d/", id), update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

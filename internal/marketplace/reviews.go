package marketplace

import (
	"context"
	"net/http"

	"talentlink/internal/models"
)

func (c *Client) ListReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.do(ctx, http.MethodGet, "/api/reviews/", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, write models.ReviewWrite) (*models.Review, error) {
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews/", write, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

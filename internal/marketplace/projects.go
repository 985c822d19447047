package marketplace

import (
	"context"
	"fmt"
	"net/http"

	"talentlink/internal/models"
)

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) CreateProject(ctx context.Context, write models.ProjectWrite) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects/", write, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int, write models.ProjectWrite) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d/", id), write, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d/", id), nil, nil)
}

package apiclient

import (
	"context"
	"fmt"

	"fjacquet/finance-cli/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.get(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	var cat models.Category
	if err := c.post(ctx, "/categories", in, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error) {
	var cat models.Category
	if err := c.put(ctx, fmt.Sprintf("/categories/%d", id), in, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}

func (c *Client) RestoreCategory(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/categories/%d/restore", id), nil, nil)
}

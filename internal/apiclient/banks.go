package apiclient

import (
	"context"
	"fmt"

	"fjacquet/finance-cli/internal/models"
)

func (c *Client) ListBanks(ctx context.Context) ([]models.Bank, error) {
	var out []models.Bank
	if err := c.get(ctx, "/banks", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateBank(ctx context.Context, in models.BankInput) (*models.Bank, error) {
	var b models.Bank
	if err := c.post(ctx, "/banks", in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBank(ctx context.Context, id int64, in models.BankInput) (*models.Bank, error) {
	var b models.Bank
	if err := c.put(ctx, fmt.Sprintf("/banks/%d", id), in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBank(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/banks/%d", id))
}

func (c *Client) RestoreBank(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/banks/%d/restore", id), nil, nil)
}

package apiclient

import (
	"context"

	"fjacquet/finance-cli/internal/models"
)

// ListAccounts lists the user's bank accounts
func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var out []models.Account
	if err := c.get(ctx, "/accounts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

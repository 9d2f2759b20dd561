package apiclient

import (
	"context"
	"fmt"

	"fjacquet/finance-cli/internal/models"
)

// GetTransaction fetches a single transaction
func (c *Client) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/%d", id), &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListTransactions lists every transaction of the user
func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.get(ctx, "/transactions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListStatementTransactions lists the transactions billed on a statement
func (c *Client) ListStatementTransactions(ctx context.Context, statementID int64) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/statement/%d", statementID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTransaction creates a transaction
func (c *Client) CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.post(ctx, "/transactions", in, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction updates a transaction
func (c *Client) UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (*models.Transaction, error) {
	var tx models.Transaction
	if err := c.put(ctx, fmt.Sprintf("/transactions/%d", id), in, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DeleteTransaction deletes a transaction
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/transactions/%d", id))
}

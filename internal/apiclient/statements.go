package apiclient

import (
	"context"
	"fmt"

	"fjacquet/finance-cli/internal/apierror"
	"fjacquet/finance-cli/internal/models"
)

// GetStatementDetail fetches a single statement. An empty or null body, or
// one without an id, is reported as apierror.ErrStatementNotFound.
func (c *Client) GetStatementDetail(ctx context.Context, id int64) (*models.Statement, error) {
	var s *models.Statement
	if err := c.get(ctx, fmt.Sprintf("/statements/detail/%d", id), &s); err != nil {
		return nil, err
	}
	if s == nil || s.ID == 0 {
		return nil, fmt.Errorf("%w: %d", apierror.ErrStatementNotFound, id)
	}
	return s, nil
}

// ListStatements lists the statements of a credit card
func (c *Client) ListStatements(ctx context.Context, cardID int64) ([]models.Statement, error) {
	var out []models.Statement
	if err := c.get(ctx, fmt.Sprintf("/statements/%d", cardID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateStatement creates a statement
func (c *Client) CreateStatement(ctx context.Context, in models.StatementInput) (*models.Statement, error) {
	var s models.Statement
	if err := c.post(ctx, "/statements", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStatement applies a partial update to a statement
func (c *Client) UpdateStatement(ctx context.Context, id int64, in models.StatementInput) (*models.Statement, error) {
	var s models.Statement
	if err := c.put(ctx, fmt.Sprintf("/statements/%d", id), in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// MarkStatementPaid sets the statement status to paid
func (c *Client) MarkStatementPaid(ctx context.Context, id int64) error {
	body := models.StatementInput{Status: models.StatusPaid}
	return c.put(ctx, fmt.Sprintf("/statements/%d", id), body, nil)
}

// DeleteStatement deletes a statement
func (c *Client) DeleteStatement(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/statements/%d", id))
}

package apiclient

import (
	"context"
	"fmt"

	"fjacquet/finance-cli/internal/models"
)

// GetCard fetches a credit card
func (c *Client) GetCard(ctx context.Context, id int64) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := c.get(ctx, fmt.Sprintf("/cards/%d", id), &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// ListCards lists the user's credit cards
func (c *Client) ListCards(ctx context.Context) ([]models.CreditCard, error) {
	var out []models.CreditCard
	if err := c.get(ctx, "/cards", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCard creates a credit card
func (c *Client) CreateCard(ctx context.Context, in models.CreditCardInput) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := c.post(ctx, "/cards", in, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard updates a credit card
func (c *Client) UpdateCard(ctx context.Context, id int64, in models.CreditCardInput) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := c.put(ctx, fmt.Sprintf("/cards/%d", id), in, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard soft-deletes a credit card
func (c *Client) DeleteCard(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/cards/%d", id))
}

// RestoreCard reactivates a soft-deleted credit card
func (c *Client) RestoreCard(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/cards/%d/restore", id), nil, nil)
}

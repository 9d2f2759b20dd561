package apiclient

import (
	"context"
	"fmt"

	"fjacquet/finance-cli/internal/models"
)

// ListStatementInstallments lists the installments billed on a statement
func (c *Client) ListStatementInstallments(ctx context.Context, statementID int64) ([]models.Installment, error) {
	var out []models.Installment
	if err := c.get(ctx, fmt.Sprintf("/installments/statement/%d", statementID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkInstallmentPaid flags an installment as paid
func (c *Client) MarkInstallmentPaid(ctx context.Context, id int64) error {
	return c.patch(ctx, fmt.Sprintf("/installments/%d/paid", id), nil, nil)
}

package statement

import (
	"context"
	"strings"

	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/models"

	"golang.org/x/sync/errgroup"
)

// DescriptionFallback is shown when an installment's parent transaction
// cannot provide a description
const DescriptionFallback = "-"

// TransactionFetcher loads a single transaction
type TransactionFetcher interface {
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
}

// DescriptionOf returns the description of a looked-up transaction or the fallback
func DescriptionOf(tx *models.Transaction, err error) string {
	if err != nil || tx == nil || strings.TrimSpace(tx.Description) == "" {
		return DescriptionFallback
	}
	return tx.Description
}

// EnrichInstallments returns a copy of installments with TransactionDescription
// filled from the parent transactions. Lookups run concurrently, at most limit
// at a time (no bound when limit <= 0). A failed lookup never fails the batch,
// it degrades that installment to the fallback.
func EnrichInstallments(ctx context.Context, fetcher TransactionFetcher, installments []models.Installment, limit int, logger logging.Logger) []models.Installment {
	out := append([]models.Installment(nil), installments...)
	if len(out) == 0 {
		return out
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range out {
		g.Go(func() error {
			tx, err := fetcher.GetTransaction(gctx, out[i].TransactionID)
			if err != nil {
				logger.WithError(err).Warn("Failed to load installment transaction",
					logging.F(logging.FieldOperation, logging.OpEnrich),
					logging.F(logging.FieldInstallmentID, out[i].ID),
					logging.F(logging.FieldTransactionID, out[i].TransactionID))
			}
			out[i].TransactionDescription = DescriptionOf(tx, err)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

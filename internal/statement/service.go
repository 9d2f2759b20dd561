package statement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fjacquet/finance-cli/internal/apierror"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/models"
)

// DefaultLookupConcurrency bounds the parallel transaction lookups of a load
const DefaultLookupConcurrency = 8

// DataSource is the part of the API the statement detail view reads and writes
type DataSource interface {
	TransactionFetcher
	GetStatementDetail(ctx context.Context, id int64) (*models.Statement, error)
	GetCard(ctx context.Context, id int64) (*models.CreditCard, error)
	ListStatementTransactions(ctx context.Context, statementID int64) ([]models.Transaction, error)
	ListStatementInstallments(ctx context.Context, statementID int64) ([]models.Installment, error)
	MarkStatementPaid(ctx context.Context, id int64) error
	MarkInstallmentPaid(ctx context.Context, id int64) error
}

// Service loads statement details and applies payment writes
type Service struct {
	source      DataSource
	logger      logging.Logger
	concurrency int
	now         func() time.Time
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithLookupConcurrency bounds the number of concurrent transaction lookups
func WithLookupConcurrency(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithClock replaces the clock used for day arithmetic
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a statement Service
func NewService(source DataSource, logger logging.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	s := &Service{
		source:      source,
		logger:      logger,
		concurrency: DefaultLookupConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches a statement with its card, transactions and installments and
// aggregates them. Only a failed statement fetch is returned as an error; the
// other fetches degrade to empty values and are logged.
func (s *Service) Load(ctx context.Context, id int64) (*Summary, error) {
	log := s.logger.WithField(logging.FieldStatementID, id)
	start := time.Now()

	stmt, err := s.source.GetStatementDetail(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load statement",
			logging.F(logging.FieldOperation, logging.OpLoadStatement))
		if errors.Is(err, apierror.ErrStatementNotFound) {
			return nil, err
		}
		if errors.Is(err, apierror.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", apierror.ErrStatementNotFound, id)
		}
		return nil, fmt.Errorf("failed to load statement %d: %w", id, err)
	}
	if stmt == nil {
		return nil, fmt.Errorf("%w: %d", apierror.ErrStatementNotFound, id)
	}
	if stmt.Status == models.StatusUnknown {
		log.Warn("Statement has an unrecognized status",
			logging.F(logging.FieldStatus, stmt.RawStatus))
	}

	card, err := s.source.GetCard(ctx, stmt.CreditCardID)
	if err != nil {
		log.WithError(err).Warn("Failed to load credit card",
			logging.F(logging.FieldOperation, logging.OpLoadCard),
			logging.F(logging.FieldCardID, stmt.CreditCardID))
		card = nil
	}

	txs, err := s.source.ListStatementTransactions(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to load statement transactions",
			logging.F(logging.FieldOperation, logging.OpLoadTransaction))
		txs = nil
	}

	insts, err := s.source.ListStatementInstallments(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to load statement installments",
			logging.F(logging.FieldOperation, logging.OpLoadInstallment))
		insts = nil
	}
	insts = EnrichInstallments(ctx, s.source, insts, s.concurrency, log)

	summary := Aggregate(Input{
		Statement:    *stmt,
		Card:         card,
		Transactions: txs,
		Installments: insts,
	}, s.now())

	log.Debug("Statement loaded",
		logging.F(logging.FieldCount, len(txs)+len(insts)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	return &summary, nil
}

// MarkPaid sets the statement status to paid
func (s *Service) MarkPaid(ctx context.Context, id int64) error {
	if err := s.source.MarkStatementPaid(ctx, id); err != nil {
		return fmt.Errorf("failed to mark statement %d as paid: %w", id, err)
	}
	s.logger.Info("Statement marked as paid", logging.F(logging.FieldStatementID, id))
	return nil
}

// MarkInstallmentPaid flags a single installment as paid
func (s *Service) MarkInstallmentPaid(ctx context.Context, id int64) error {
	if err := s.source.MarkInstallmentPaid(ctx, id); err != nil {
		return fmt.Errorf("failed to mark installment %d as paid: %w", id, err)
	}
	s.logger.Info("Installment marked as paid", logging.F(logging.FieldInstallmentID, id))
	return nil
}

package statement

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fjacquet/finance-cli/internal/logging"
)

// ErrReloadFailed is returned by MarkPaid and MarkInstallmentPaid when the
// write succeeded but the statement could not be loaded afterwards.
var ErrReloadFailed = errors.New("reload after update failed")

// DetailService is what a Tracker needs to load and update a statement
type DetailService interface {
	Load(ctx context.Context, id int64) (*Summary, error)
	MarkPaid(ctx context.Context, id int64) error
	MarkInstallmentPaid(ctx context.Context, id int64) error
}

// View is the committed state of a statement detail view
type View struct {
	// Generation is the load that produced this view. Zero means nothing
	// has been committed yet.
	Generation uint64
	Summary    *Summary
	// Err is set when the latest committed load failed. Summary then keeps
	// the last successful result, if any.
	Err error
}

// Tracker coordinates loads of one statement. Each load gets a generation
// number and only the newest generation may commit; older results that
// finish later are dropped.
type Tracker struct {
	service     DetailService
	statementID int64
	logger      logging.Logger

	mu        sync.Mutex
	issued    uint64
	committed View
}

// NewTracker creates a Tracker for the given statement
func NewTracker(service DetailService, statementID int64, logger logging.Logger) *Tracker {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Tracker{
		service:     service,
		statementID: statementID,
		logger:      logger.WithField(logging.FieldStatementID, statementID),
	}
}

// View returns the committed view
func (t *Tracker) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.committed
}

// Refresh runs a new load. It returns the view after the load and whether
// this load's result was committed.
func (t *Tracker) Refresh(ctx context.Context) (View, bool) {
	t.mu.Lock()
	t.issued++
	gen := t.issued
	t.mu.Unlock()

	summary, err := t.service.Load(ctx, t.statementID)

	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.issued {
		t.logger.Debug("Discarding stale statement load",
			logging.F(logging.FieldGeneration, gen),
			logging.F("latest_generation", t.issued))
		return t.committed, false
	}

	next := View{Generation: gen, Summary: t.committed.Summary, Err: err}
	if err == nil {
		next.Summary = summary
	}
	t.committed = next
	return t.committed, true
}

// MarkPaid marks the statement paid and reloads it. A failed write is
// logged and leaves the committed view untouched.
func (t *Tracker) MarkPaid(ctx context.Context) error {
	if err := t.service.MarkPaid(ctx, t.statementID); err != nil {
		t.logger.WithError(err).Error("Failed to mark statement as paid",
			logging.F(logging.FieldOperation, logging.OpMarkPaid))
		return err
	}
	return t.reload(ctx)
}

// MarkInstallmentPaid marks one installment paid and reloads the statement.
// A failed write is logged and leaves the committed view untouched.
func (t *Tracker) MarkInstallmentPaid(ctx context.Context, installmentID int64) error {
	if err := t.service.MarkInstallmentPaid(ctx, installmentID); err != nil {
		t.logger.WithError(err).Error("Failed to mark installment as paid",
			logging.F(logging.FieldOperation, logging.OpMarkInstallment),
			logging.F(logging.FieldInstallmentID, installmentID))
		return err
	}
	return t.reload(ctx)
}

func (t *Tracker) reload(ctx context.Context) error {
	view, _ := t.Refresh(ctx)
	if view.Err == nil {
		return nil
	}
	t.logger.WithError(view.Err).Warn("Update applied but statement reload failed",
		logging.F(logging.FieldOperation, logging.OpLoadStatement))
	return fmt.Errorf("%w: %w", ErrReloadFailed, view.Err)
}

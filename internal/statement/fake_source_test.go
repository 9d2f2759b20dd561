package statement

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"fjacquet/finance-cli/internal/apierror"
	"fjacquet/finance-cli/internal/models"
)

var errBoom = errors.New("boom")

// fakeSource is an in-memory DataSource
type fakeSource struct {
	mu sync.Mutex

	statement    *models.Statement
	statementErr error
	card         *models.CreditCard
	cardErr      error
	txs          []models.Transaction
	txsErr       error
	insts        []models.Installment
	instsErr     error
	lookups      map[int64]*models.Transaction
	lookupErrs   map[int64]error

	markPaidErr        error
	markInstallmentErr error
	// reloadErr becomes statementErr once a write succeeds
	reloadErr          error
	paidStatements     []int64
	paidInstallments   []int64

	lookupDelay time.Duration
	inFlight    int32
	maxInFlight int32
	loads       int32
}

func (f *fakeSource) GetStatementDetail(ctx context.Context, id int64) (*models.Statement, error) {
	atomic.AddInt32(&f.loads, 1)
	if f.statementErr != nil {
		return nil, f.statementErr
	}
	if f.statement == nil {
		return nil, &apierror.APIError{Method: "GET", Path: "/statements/detail", StatusCode: 404}
	}
	s := *f.statement
	return &s, nil
}

func (f *fakeSource) GetCard(ctx context.Context, id int64) (*models.CreditCard, error) {
	return f.card, f.cardErr
}

func (f *fakeSource) ListStatementTransactions(ctx context.Context, statementID int64) ([]models.Transaction, error) {
	return f.txs, f.txsErr
}

func (f *fakeSource) ListStatementInstallments(ctx context.Context, statementID int64) ([]models.Installment, error) {
	return f.insts, f.instsErr
}

func (f *fakeSource) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		m := atomic.LoadInt32(&f.maxInFlight)
		if n <= m || atomic.CompareAndSwapInt32(&f.maxInFlight, m, n) {
			break
		}
	}
	time.Sleep(f.lookupDelay)

	if err, ok := f.lookupErrs[id]; ok {
		return nil, err
	}
	tx, ok := f.lookups[id]
	if !ok {
		return nil, &apierror.APIError{Method: "GET", Path: "/transactions", StatusCode: 404}
	}
	return tx, nil
}

func (f *fakeSource) MarkStatementPaid(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	f.paidStatements = append(f.paidStatements, id)
	f.statementErr = f.reloadErr
	if f.statement != nil {
		f.statement.Status = models.StatusPaid
	}
	return nil
}

func (f *fakeSource) MarkInstallmentPaid(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markInstallmentErr != nil {
		return f.markInstallmentErr
	}
	f.paidInstallments = append(f.paidInstallments, id)
	f.statementErr = f.reloadErr
	for i := range f.insts {
		if f.insts[i].ID == id {
			f.insts[i].Paid = true
		}
	}
	return nil
}

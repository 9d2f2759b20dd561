package statement

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fjacquet/finance-cli/internal/apiclient"
	"fjacquet/finance-cli/internal/apierror"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFullSource() *fakeSource {
	return &fakeSource{
		statement: &models.Statement{
			ID:           7,
			CreditCardID: 3,
			PeriodEnd:    models.NewDate(2024, 10, 10),
			DueDate:      models.NewDate(2024, 10, 20),
			PaidAmount:   nullDec("100"),
			Status:       models.StatusClosed,
		},
		card: &models.CreditCard{
			ID:          3,
			LimitAmount: nullDec("10000"),
			Balance:     nullDec("4000"),
		},
		txs: []models.Transaction{
			{ID: 1, Description: "Cafe", Amount: dec("500")},
			{ID: 2, Description: "TV", Amount: dec("3000"), Installments: installmentsOf(3)},
		},
		insts: []models.Installment{
			{ID: 11, TransactionID: 2, InstallmentNumber: 1, Amount: dec("1000"), Paid: true},
			{ID: 12, TransactionID: 9, InstallmentNumber: 2, Amount: dec("1000")},
		},
		lookups: map[int64]*models.Transaction{
			2: {ID: 2, Description: "TV"},
		},
	}
}

func newTestService(src DataSource, logger logging.Logger) *Service {
	return NewService(src, logger,
		WithLookupConcurrency(2),
		WithClock(func() time.Time { return fixedNow }))
}

func TestService_Load(t *testing.T) {
	src := newFullSource()
	svc := newTestService(src, logging.NewMockLogger())

	s, err := svc.Load(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), s.Statement.ID)
	require.NotNil(t, s.Card)
	require.Len(t, s.SingleTransactions, 1)
	assert.True(t, s.TotalAmount.Equal(dec("2500")))
	assert.True(t, s.RemainingAmount.Equal(dec("2400")))
	assert.True(t, s.UtilizationPercentage.Equal(dec("25")))
	assert.True(t, s.AvailableCredit.Equal(dec("6000")))
	assert.Equal(t, "TV", s.Installments[0].TransactionDescription)
	assert.Equal(t, DescriptionFallback, s.Installments[1].TransactionDescription)
	assert.True(t, s.PeriodEndPassed)
	assert.False(t, s.DueDatePassed)
	assert.Equal(t, 5, s.DaysUntilDue)
}

func TestService_Load_StatementErrors(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		svc := newTestService(&fakeSource{}, logging.NewMockLogger())

		s, err := svc.Load(context.Background(), 1)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, apierror.ErrStatementNotFound))
	})

	t.Run("TransportFailure", func(t *testing.T) {
		logger := logging.NewMockLogger()
		svc := newTestService(&fakeSource{statementErr: errBoom}, logger)

		s, err := svc.Load(context.Background(), 1)
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, errBoom))
		assert.False(t, errors.Is(err, apierror.ErrStatementNotFound))
		assert.True(t, logger.HasEntry("ERROR", "Failed to load statement"))
	})
}

func TestService_Load_EmptyStatementBody(t *testing.T) {
	for name, body := range map[string]string{"empty": "", "null": "null"} {
		t.Run(name, func(t *testing.T) {
			var others atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/statements/detail/42" {
					others.Add(1)
					w.WriteHeader(http.StatusNotFound)
					return
				}
				_, _ = w.Write([]byte(body))
			}))
			t.Cleanup(srv.Close)

			logger := logging.NewMockLogger()
			client := apiclient.NewClient(srv.URL+"/api", apiclient.WithLogger(logger))
			svc := NewService(client, logger, WithClock(func() time.Time { return fixedNow }))

			s, err := svc.Load(context.Background(), 42)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, apierror.ErrStatementNotFound)
			assert.True(t, logger.HasEntry("ERROR", "Failed to load statement"))
			assert.Zero(t, others.Load(), "no secondary fetch after a missing statement")
		})
	}
}

func TestService_Load_DegradesSecondaryFailures(t *testing.T) {
	src := newFullSource()
	src.cardErr = errBoom
	src.txsErr = errBoom
	src.instsErr = errBoom
	logger := logging.NewMockLogger()
	svc := newTestService(src, logger)

	s, err := svc.Load(context.Background(), 7)
	require.NoError(t, err)

	assert.Nil(t, s.Card)
	assert.Empty(t, s.SingleTransactions)
	assert.Empty(t, s.Installments)
	assert.True(t, s.TotalAmount.IsZero())
	assert.True(t, s.UtilizationPercentage.IsZero())
	assert.True(t, s.AvailableCredit.IsZero())
	assert.True(t, s.RemainingAmount.Equal(decimal.NewFromInt(-100)))

	assert.True(t, logger.HasEntry("WARN", "Failed to load credit card"))
	assert.True(t, logger.HasEntry("WARN", "Failed to load statement transactions"))
	assert.True(t, logger.HasEntry("WARN", "Failed to load statement installments"))
}

func TestService_Load_UnknownStatus(t *testing.T) {
	src := newFullSource()
	src.statement.Status = models.StatusUnknown
	src.statement.RawStatus = "overdue"
	logger := logging.NewMockLogger()

	s, err := newTestService(src, logger).Load(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Abierto", s.Display.Label)
	warns := logger.GetEntriesByLevel("WARN")
	require.NotEmpty(t, warns)
	v, ok := warns[0].FieldValue(logging.FieldStatus)
	assert.True(t, ok)
	assert.Equal(t, "overdue", v)
}

func TestService_MarkPaid(t *testing.T) {
	src := newFullSource()
	svc := newTestService(src, logging.NewMockLogger())

	require.NoError(t, svc.MarkPaid(context.Background(), 7))
	assert.Equal(t, []int64{7}, src.paidStatements)

	src.markPaidErr = errBoom
	err := svc.MarkPaid(context.Background(), 7)
	assert.True(t, errors.Is(err, errBoom))
}

func TestService_MarkInstallmentPaid(t *testing.T) {
	src := newFullSource()
	svc := newTestService(src, logging.NewMockLogger())

	require.NoError(t, svc.MarkInstallmentPaid(context.Background(), 12))
	assert.Equal(t, []int64{12}, src.paidInstallments)

	src.markInstallmentErr = errBoom
	assert.Error(t, svc.MarkInstallmentPaid(context.Background(), 12))
}

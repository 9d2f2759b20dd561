package integration

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"fjacquet/finance-cli/internal/config"
	"fjacquet/finance-cli/internal/container"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var now = time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC)

// fakeAPI serves one statement with n installments, each bought in its own
// transaction, plus two single payments.
type fakeAPI struct {
	installments int
	delay        time.Duration
	inFlight     atomic.Int32
	maxInFlight  atomic.Int32
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	path := strings.TrimPrefix(r.URL.Path, "/api")

	switch {
	case path == "/statements/detail/1":
		fmt.Fprint(w, `{"id":1,"credit_card_id":2,"period_start":"2024-09-01","period_end":"2024-09-30","due_date":"2024-10-20","paid_amount":"100.00","status":"closed"}`)
	case path == "/cards/2":
		fmt.Fprint(w, `{"id":2,"name":"Platinum","brand":"MasterCard","limit_amount":"50000","balance":"10000","last_four":9876}`)
	case path == "/transactions/statement/1":
		fmt.Fprint(w, `[{"id":900,"date":"2024-09-03","description":"Farmacia","amount":"250.25"},{"id":901,"date":"2024-09-04","description":"Nafta","amount":"749.75","installments":1}]`)
	case path == "/installments/statement/1":
		items := make([]string, 0, f.installments)
		for i := 1; i <= f.installments; i++ {
			items = append(items, fmt.Sprintf(`{"id":%d,"transaction_id":%d,"installment_number":1,"amount":"10.00","due_date":"2024-10-20","paid":%t}`, i, 100+i, i%2 == 0))
		}
		fmt.Fprint(w, "["+strings.Join(items, ",")+"]")
	case strings.HasPrefix(path, "/transactions/"):
		cur := f.inFlight.Add(1)
		defer f.inFlight.Add(-1)
		for {
			peak := f.maxInFlight.Load()
			if cur <= peak || f.maxInFlight.CompareAndSwap(peak, cur) {
				break
			}
		}
		time.Sleep(f.delay)
		id := strings.TrimPrefix(path, "/transactions/")
		fmt.Fprintf(w, `{"id":%s,"description":"Compra %s"}`, id, id)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newContainer(t *testing.T, api *fakeAPI, concurrency int) *container.Container {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = srv.URL + "/api"
	cfg.API.LookupConcurrency = concurrency
	c, err := container.NewContainer(cfg,
		container.WithLogger(logging.NewMockLogger()),
		container.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return c
}

// TestStatementFlow_EnrichmentIsBoundedAndOrdered loads a statement through
// the real HTTP client and checks that description lookups respect the
// configured concurrency and land on the right installments.
func TestStatementFlow_EnrichmentIsBoundedAndOrdered(t *testing.T) {
	api := &fakeAPI{installments: 12, delay: 20 * time.Millisecond}
	c := newContainer(t, api, 3)

	summary, err := c.GetStatementService().Load(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, summary.Installments, 12)
	for i, inst := range summary.Installments {
		assert.Equal(t, int64(i+1), inst.ID)
		assert.Equal(t, fmt.Sprintf("Compra %d", 101+i), inst.TransactionDescription)
	}
	assert.LessOrEqual(t, api.maxInFlight.Load(), int32(3))
	assert.Greater(t, api.maxInFlight.Load(), int32(1))

	assert.Equal(t, "1000", summary.TotalFromSingleTransactions.String())
	assert.Equal(t, "120", summary.TotalFromInstallments.String())
	assert.Equal(t, "1120", summary.TotalAmount.String())
	assert.Equal(t, "1020", summary.RemainingAmount.String())
	assert.Equal(t, 6, summary.InstallmentsPaid)
	assert.Equal(t, "2.2", summary.UtilizationPercentage.String())
}

// TestStatementFlow_FormatsAgree renders the same statement in every
// machine-readable format and checks that they carry the same figures.
func TestStatementFlow_FormatsAgree(t *testing.T) {
	api := &fakeAPI{installments: 3}
	c := newContainer(t, api, 4)
	tracker := c.NewStatementTracker(1)

	view, committed := tracker.Refresh(context.Background())
	require.True(t, committed)
	require.NoError(t, view.Err)
	gen := c.GetReportGenerator()

	jsonData, err := gen.GenerateStatement(view.Summary, report.FormatJSON)
	require.NoError(t, err)
	var fromJSON report.StatementReport
	require.NoError(t, json.Unmarshal(jsonData, &fromJSON))

	yamlData, err := gen.GenerateStatement(view.Summary, report.FormatYAML)
	require.NoError(t, err)
	var fromYAML report.StatementReport
	require.NoError(t, yaml.Unmarshal(yamlData, &fromYAML))

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, "1030.00", fromJSON.TotalAmount)
	assert.Equal(t, "930.00", fromJSON.RemainingAmount)
	assert.Equal(t, "Cerrado", fromJSON.StatusLabel)
	assert.Equal(t, "secondary", fromJSON.StatusVariant)
	assert.True(t, fromJSON.PeriodEndPassed)
	assert.Equal(t, 5, fromJSON.DaysUntilDue)

	csvData, err := gen.GenerateStatement(view.Summary, report.FormatCSV)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(csvData))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+len(fromJSON.Installments)+len(fromJSON.Transactions))
	assert.Equal(t, "kind", records[0][0])
}

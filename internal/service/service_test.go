package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/franchise-ledger/internal/directory"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
	"github.com/carson-networks/franchise-ledger/internal/metrics"
	"github.com/carson-networks/franchise-ledger/internal/operator/actions"
	"github.com/carson-networks/franchise-ledger/internal/storage"
	"github.com/carson-networks/franchise-ledger/internal/storage/sqlconfig"
)

type noopTx struct{}

func (noopTx) Commit(context.Context) error   { return nil }
func (noopTx) Rollback(context.Context) error { return nil }

// inlineProcessor performs actions on the calling goroutine against mocked tables.
type inlineProcessor struct {
	writer *storage.Writer
	err    error
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	if p.err != nil {
		return p.err
	}
	return action.Perform(ctx, p.writer)
}

type testEnv struct {
	svc          *Service
	transactions *sqlconfig.MockITransactionTable
	events       *sqlconfig.MockIEventTable
	franchisees  *sqlconfig.MockIFranchiseeTable
	processor    *inlineProcessor
	registry     *prometheus.Registry
}

var (
	fixedNow = time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)

	franchisee  = ledger.Principal{UserID: "u-f", Role: ledger.RoleFranchisee, BranchID: "Coimbatore"}
	otherBranch = ledger.Principal{UserID: "u-m", Role: ledger.RoleFranchisee, BranchID: "Madurai"}
	admin       = ledger.Principal{UserID: "u-a", Role: ledger.RoleAdministration}
)

func newTestService(t *testing.T, allowResolvedDelete bool) *testEnv {
	t.Helper()
	env := &testEnv{
		transactions: sqlconfig.NewMockITransactionTable(t),
		events:       sqlconfig.NewMockIEventTable(t),
		franchisees:  sqlconfig.NewMockIFranchiseeTable(t),
		registry:     prometheus.NewRegistry(),
	}
	reader := &storage.Reader{
		Transactions: env.transactions,
		Events:       env.events,
		Franchisees:  env.franchisees,
	}
	env.processor = &inlineProcessor{writer: storage.NewWriterWithTables(noopTx{}, *reader)}

	logger, _ := test.NewNullLogger()
	dir := directory.New(env.franchisees, nil, 0, logger)

	env.svc = NewService(&storage.Storage{Reader: reader}, env.processor, dir, Options{
		StoreTimeout:        time.Second,
		AllowResolvedDelete: allowResolvedDelete,
		Metrics:             metrics.New(env.registry),
		Log:                 logger,
	})
	env.svc.Transaction.now = func() time.Time { return fixedNow }
	return env
}

func (e *testEnv) count(t *testing.T, name string) int {
	t.Helper()
	n, err := testutil.GatherAndCount(e.registry, name)
	require.NoError(t, err)
	return n
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func storedTxn(typ ledger.TransactionType, amount string, shared bool, status ledger.Status, occurred time.Time) ledger.Transaction {
	t := ledger.Transaction{
		ID:            uuid.Must(uuid.NewV4()),
		BranchID:      "Coimbatore",
		Type:          typ,
		Amount:        decimal.RequireFromString(amount),
		Description:   string(typ) + " " + amount,
		OccurredAt:    occurred,
		CreatedByRole: ledger.RoleFranchisee,
		ApproverRole:  ledger.RoleAdministration,
		Status:        status,
		CreatedAt:     occurred.Add(time.Hour),
	}
	if typ == ledger.TypeIncome {
		t.IsShared = shared
		t.ReceivedByRole = ledger.RoleFranchisee
	}
	return t
}

func coimbatoreProfile() *ledger.Profile {
	return &ledger.Profile{BranchID: "Coimbatore", Name: "Little Steps", SharePercentage: decimal.NewFromInt(30)}
}

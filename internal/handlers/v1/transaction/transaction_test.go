package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/franchise-ledger/internal/auth"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

// mockLedgerService is a mock for the transaction and approval services.
type mockLedgerService struct {
	mock.Mock
}

func (m *mockLedgerService) SubmitTransaction(ctx context.Context, p ledger.Principal, d ledger.Draft) (ledger.Transaction, error) {
	args := m.Called(ctx, p, d)
	return args.Get(0).(ledger.Transaction), args.Error(1)
}

func (m *mockLedgerService) ApproveTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) (ledger.Transaction, error) {
	args := m.Called(ctx, p, id)
	return args.Get(0).(ledger.Transaction), args.Error(1)
}

func (m *mockLedgerService) RejectTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) (ledger.Transaction, error) {
	args := m.Called(ctx, p, id)
	return args.Get(0).(ledger.Transaction), args.Error(1)
}

func (m *mockLedgerService) DeleteTransaction(ctx context.Context, p ledger.Principal, id uuid.UUID) error {
	args := m.Called(ctx, p, id)
	return args.Error(0)
}

func (m *mockLedgerService) GetFilteredLedger(ctx context.Context, p ledger.Principal, branchID string, f ledger.Filters) ([]ledger.Transaction, error) {
	args := m.Called(ctx, p, branchID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *mockLedgerService) ListEvents(ctx context.Context, p ledger.Principal, id uuid.UUID) ([]ledger.Event, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Event), args.Error(1)
}

var (
	franchisee = ledger.Principal{UserID: "u-f", Role: ledger.RoleFranchisee, BranchID: "Coimbatore"}
	admin      = ledger.Principal{UserID: "u-a", Role: ledger.RoleAdministration}
	jwtManager = auth.NewJWTManager("handler-test-secret", "franchise-ledger", time.Hour)
)

// newTestAPI registers every transaction handler behind the auth middleware.
func newTestAPI(t *testing.T, svc *mockLedgerService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.Middleware(api, jwtManager))

	for _, h := range []interface{ Register(huma.API) }{
		NewSubmitTransactionHandler(svc),
		NewResolveTransactionHandler(svc),
		NewDeleteTransactionHandler(svc),
		NewListTransactionsHandler(svc),
		NewListEventsHandler(svc),
	} {
		h.Register(api)
	}
	return api
}

func bearer(t *testing.T, p ledger.Principal) string {
	t.Helper()
	token, err := jwtManager.Generate(p)
	require.NoError(t, err)
	return "Authorization: Bearer " + token
}

func pendingIncome() ledger.Transaction {
	return ledger.Transaction{
		ID:             uuid.Must(uuid.NewV4()),
		BranchID:       "Coimbatore",
		Type:           ledger.TypeIncome,
		Amount:         decimal.RequireFromString("500"),
		Description:    "Admission fee",
		OccurredAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		CreatedByRole:  ledger.RoleFranchisee,
		ApproverRole:   ledger.RoleAdministration,
		Status:         ledger.StatusPending,
		IsShared:       true,
		ReceivedByRole: ledger.RoleAdministration,
		CreatedAt:      time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

// -- parseSubmitTransactionInput unit tests --

func TestParseSubmitTransactionInput_ValidInput(t *testing.T) {
	draft, err := parseSubmitTransactionInput(&SubmitTransactionInput{
		BranchID: "Coimbatore",
		Body: SubmitTransactionBody{
			Type:        "Income",
			Amount:      "500.00",
			Description: "Admission fee",
			Date:        "2024-01-15",
			IsShared:    true,
			ReceivedBy:  "Administration",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Coimbatore", draft.BranchID)
	assert.Equal(t, ledger.TypeIncome, draft.Type)
	assert.True(t, draft.Amount.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, ledger.RoleAdministration, draft.ReceivedByRole)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), draft.OccurredAt)
	assert.Equal(t, ledger.Role(""), draft.CreatedByRole)
}

func TestParseSubmitTransactionInput_ExpenseWithoutReceiver(t *testing.T) {
	draft, err := parseSubmitTransactionInput(&SubmitTransactionInput{
		BranchID: "Coimbatore",
		Body:     SubmitTransactionBody{Type: "Expense", Amount: "20", Description: "Chalk", Date: "2024-02-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, ledger.Role(""), draft.ReceivedByRole)
}

// -- HTTP tests (full Huma stack via humatest) --

func TestHTTP_SubmitTransaction_Success(t *testing.T) {
	svc := new(mockLedgerService)
	txn := pendingIncome()
	svc.On("SubmitTransaction", mock.Anything, franchisee, mock.MatchedBy(func(d ledger.Draft) bool {
		return d.BranchID == "Coimbatore" && d.Amount.Equal(decimal.RequireFromString("500")) && d.IsShared
	})).Return(txn, nil)

	resp := newTestAPI(t, svc).Post("/v1/branches/Coimbatore/transactions", bearer(t, franchisee), SubmitTransactionBody{
		Type:        "Income",
		Amount:      "500",
		Description: "Admission fee",
		Date:        "2024-01-15",
		IsShared:    true,
		ReceivedBy:  "Administration",
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txn.ID.String(), body.ID)
	assert.Equal(t, "500.00", body.Amount)
	assert.Equal(t, "2024-01-15", body.Date)
	assert.Equal(t, "Pending", body.Status)
	assert.Equal(t, "Administration", body.Role)
	assert.Equal(t, "Franchisee", body.CreatedByRole)
	svc.AssertExpectations(t)
}

func TestHTTP_SubmitTransaction_Unauthenticated(t *testing.T) {
	svc := new(mockLedgerService)

	resp := newTestAPI(t, svc).Post("/v1/branches/Coimbatore/transactions", SubmitTransactionBody{
		Type: "Expense", Amount: "20", Description: "Chalk", Date: "2024-02-01",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "SubmitTransaction")
}

func TestHTTP_SubmitTransaction_InvalidAmount(t *testing.T) {
	svc := new(mockLedgerService)

	resp := newTestAPI(t, svc).Post("/v1/branches/Coimbatore/transactions", bearer(t, franchisee), SubmitTransactionBody{
		Type: "Expense", Amount: "twenty", Description: "Chalk", Date: "2024-02-01",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "SubmitTransaction")
}

func TestHTTP_SubmitTransaction_InvalidDate(t *testing.T) {
	svc := new(mockLedgerService)

	resp := newTestAPI(t, svc).Post("/v1/branches/Coimbatore/transactions", bearer(t, franchisee), SubmitTransactionBody{
		Type: "Expense", Amount: "20", Description: "Chalk", Date: "01/02/2024",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_SubmitTransaction_UnknownType(t *testing.T) {
	svc := new(mockLedgerService)

	// The enum tag rejects the value before the handler runs.
	resp := newTestAPI(t, svc).Post("/v1/branches/Coimbatore/transactions", bearer(t, franchisee), SubmitTransactionBody{
		Type: "Transfer", Amount: "20", Description: "Chalk", Date: "2024-02-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "SubmitTransaction")
}

func TestHTTP_SubmitTransaction_ValidationError(t *testing.T) {
	svc := new(mockLedgerService)
	svc.On("SubmitTransaction", mock.Anything, mock.Anything, mock.Anything).
		Return(ledger.Transaction{}, &ledger.ValidationError{Field: "received_by", Message: "income requires the receiving role"})

	resp := newTestAPI(t, svc).Post("/v1/branches/Coimbatore/transactions", bearer(t, franchisee), SubmitTransactionBody{
		Type: "Income", Amount: "20", Description: "Fee", Date: "2024-02-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "received_by")
}

func TestHTTP_SubmitTransaction_OtherBranch(t *testing.T) {
	svc := new(mockLedgerService)
	svc.On("SubmitTransaction", mock.Anything, franchisee, mock.Anything).
		Return(ledger.Transaction{}, &ledger.AuthorizationError{Role: ledger.RoleFranchisee, Action: "submit", Reason: "no access"})

	resp := newTestAPI(t, svc).Post("/v1/branches/Madurai/transactions", bearer(t, franchisee), SubmitTransactionBody{
		Type: "Expense", Amount: "20", Description: "Chalk", Date: "2024-02-01",
	})

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHTTP_ApproveTransaction_Success(t *testing.T) {
	svc := new(mockLedgerService)
	txn := pendingIncome()
	resolvedAt := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
	txn.Status = ledger.StatusApproved
	txn.ResolvedAt = &resolvedAt
	svc.On("ApproveTransaction", mock.Anything, admin, txn.ID).Return(txn, nil)

	resp := newTestAPI(t, svc).Post("/v1/transactions/"+txn.ID.String()+"/approve", bearer(t, admin))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Approved", body.Status)
	assert.Equal(t, "2024-01-16T09:00:00Z", body.ResolvedAt)
}

func TestHTTP_RejectTransaction_AlreadyResolved(t *testing.T) {
	svc := new(mockLedgerService)
	id := uuid.Must(uuid.NewV4())
	svc.On("RejectTransaction", mock.Anything, admin, id).
		Return(ledger.Transaction{}, &ledger.InvalidStateError{ID: id, Status: ledger.StatusApproved, Action: "reject"})

	resp := newTestAPI(t, svc).Post("/v1/transactions/"+id.String()+"/reject", bearer(t, admin))

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_ApproveTransaction_BadID(t *testing.T) {
	svc := new(mockLedgerService)

	resp := newTestAPI(t, svc).Post("/v1/transactions/not-a-uuid/approve", bearer(t, admin))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "ApproveTransaction")
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	svc := new(mockLedgerService)
	id := uuid.Must(uuid.NewV4())
	missing := uuid.Must(uuid.NewV4())
	svc.On("DeleteTransaction", mock.Anything, franchisee, id).Return(nil)
	svc.On("DeleteTransaction", mock.Anything, franchisee, missing).
		Return(&ledger.NotFoundError{Kind: "transaction", Key: missing.String()})

	api := newTestAPI(t, svc)

	resp := api.Delete("/v1/transactions/"+id.String(), bearer(t, franchisee))
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = api.Delete("/v1/transactions/"+missing.String(), bearer(t, franchisee))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Filters(t *testing.T) {
	svc := new(mockLedgerService)
	newer := pendingIncome()
	newer.OccurredAt = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	older := pendingIncome()

	svc.On("GetFilteredLedger", mock.Anything, franchisee, "Coimbatore", mock.MatchedBy(func(f ledger.Filters) bool {
		return f.Period == ledger.Period{Month: 1, Year: 2024} && f.View == ledger.ViewPendingOnly && f.Range == nil
	})).Return([]ledger.Transaction{newer, older}, nil)

	resp := newTestAPI(t, svc).Get("/v1/branches/Coimbatore/transactions?month=1&year=2024&view=pending", bearer(t, franchisee))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "2024-01-31", body.Transactions[0].Date)
	assert.Equal(t, "2024-01-15", body.Transactions[1].Date)
}

func TestHTTP_ListTransactions_DateRange(t *testing.T) {
	svc := new(mockLedgerService)
	svc.On("GetFilteredLedger", mock.Anything, admin, "Coimbatore", mock.MatchedBy(func(f ledger.Filters) bool {
		return f.Range != nil && f.Range.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) && f.View == ledger.ViewDefault
	})).Return([]ledger.Transaction{}, nil)

	resp := newTestAPI(t, svc).Get("/v1/branches/Coimbatore/transactions?start=2024-01-01&end=2024-01-31", bearer(t, admin))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.JSONEq(t, `{"transactions":[]}`, resp.Body.String())
}

func TestHTTP_ListTransactions_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"month out of range", "?month=13", http.StatusUnprocessableEntity},
		{"unknown view", "?view=rejected", http.StatusUnprocessableEntity},
		{"start without end", "?start=2024-01-01", http.StatusBadRequest},
		{"end before start", "?start=2024-02-01&end=2024-01-01", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockLedgerService)
			resp := newTestAPI(t, svc).Get("/v1/branches/Coimbatore/transactions"+tt.query, bearer(t, admin))
			assert.Equal(t, tt.want, resp.Code)
			svc.AssertNotCalled(t, "GetFilteredLedger")
		})
	}
}

func TestHTTP_ListTransactions_StoreUnavailable(t *testing.T) {
	svc := new(mockLedgerService)
	svc.On("GetFilteredLedger", mock.Anything, admin, "Coimbatore", mock.Anything).
		Return(nil, &ledger.StoreError{Op: "list", Err: errors.New("timeout")})

	resp := newTestAPI(t, svc).Get("/v1/branches/Coimbatore/transactions", bearer(t, admin))

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestHTTP_ListEvents(t *testing.T) {
	svc := new(mockLedgerService)
	txn := pendingIncome()
	events := []ledger.Event{
		ledger.NewEvent(uuid.Must(uuid.NewV4()), txn, ledger.EventSubmitted, franchisee, txn.CreatedAt),
	}
	svc.On("ListEvents", mock.Anything, admin, txn.ID).Return(events, nil)

	resp := newTestAPI(t, svc).Get("/v1/transactions/"+txn.ID.String()+"/events", bearer(t, admin))

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body struct {
		Events []Event `json:"events"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Events, 1)
	assert.Equal(t, "submitted", body.Events[0].Type)
	assert.Equal(t, "u-f", body.Events[0].ActorUserID)
	assert.Equal(t, txn.ID.String(), body.Events[0].Snapshot.ID)
}

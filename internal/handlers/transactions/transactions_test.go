package transactions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkravtsov/orgledger/internal/domain"
	"github.com/dkravtsov/orgledger/internal/service/transactionservice"
	pkgauth "github.com/dkravtsov/orgledger/pkg/auth"
	"github.com/dkravtsov/orgledger/pkg/utils"
)

func NewMock(t *testing.T) (*TransactionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authorizedRequest(method, url, body string, userID int, role string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, bytes.NewReader([]byte(body)))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, userID)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, role)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	var resp utils.Response
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	return resp.Error
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Transaction submitted",
			body: `{"organizationId":1,"type":"expense","amount":30,"description":"lunch","date":"2025-01-15"}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), 1, 2, "expense", gomock.Any(), "lunch", date).Return(&domain.Transaction{
					ID: 1, OrganizationID: 1, UserID: 2,
					Type: "expense", Amount: decimal.NewFromInt(30),
					Description: "lunch", Date: date, Status: domain.StatusPending,
				}, nil)
			},
			expectedCode:  http.StatusCreated,
			expectedError: "",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing fields",
			body:          `{"organizationId":1}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "All fields are required",
		},
		{
			name:          "Invalid type rejected by validation",
			body:          `{"organizationId":1,"type":"transfer","amount":30,"description":"lunch","date":"2025-01-15"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "All fields are required",
		},
		{
			name: "Not an approved member",
			body: `{"organizationId":1,"type":"expense","amount":30,"description":"lunch","date":"2025-01-15"}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), 1, 2, "expense", gomock.Any(), "lunch", date).
					Return(nil, transactionservice.ErrNotApprovedMember)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "you must be an approved member of this organization",
		},
		{
			name: "Non-positive amount",
			body: `{"organizationId":1,"type":"expense","amount":0,"description":"lunch","date":"2025-01-15"}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), 1, 2, "expense", gomock.Any(), "lunch", date).
					Return(nil, transactionservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount must be a positive number",
		},
		{
			name: "Internal error",
			body: `{"organizationId":1,"type":"expense","amount":30,"description":"lunch","date":"2025-01-15"}`,
			prepareMock: func() {
				service.EXPECT().Submit(gomock.Any(), 1, 2, "expense", gomock.Any(), "lunch", date).
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("POST", "/api/transactions/submit", tt.body, 2, domain.RoleUser)
			rr := httptest.NewRecorder()
			handler.Submit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
		})
	}
}

func TestSubmitHandlerDateFormat(t *testing.T) {
	handler, _ := NewMock(t)

	req := authorizedRequest("POST", "/api/transactions/submit",
		`{"organizationId":1,"type":"expense","amount":30,"description":"lunch","date":"15/01/2025"}`,
		2, domain.RoleUser)
	rr := httptest.NewRecorder()
	handler.Submit(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "All fields are required", decodeError(t, rr))
}

func TestMyTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Lists caller's entries", func(t *testing.T) {
		service.EXPECT().MyTransactions(gomock.Any(), 2).Return([]domain.TransactionDetail{
			{
				Transaction: domain.Transaction{
					ID: 1, OrganizationID: 1, UserID: 2,
					Type: "expense", Amount: decimal.NewFromInt(30), Date: date, Status: domain.StatusPending,
				},
				OrganizationName: "Acme",
			},
		}, nil)

		req := authorizedRequest("GET", "/api/transactions/my-transactions", "", 2, domain.RoleUser)
		rr := httptest.NewRecorder()
		handler.MyTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Transactions []struct {
				Date             string `json:"date"`
				OrganizationName string `json:"organization_name"`
			} `json:"transactions"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Transactions, 1)
		assert.Equal(t, "2025-01-15", resp.Transactions[0].Date)
		assert.Equal(t, "Acme", resp.Transactions[0].OrganizationName)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().MyTransactions(gomock.Any(), 2).Return(nil, errors.New("database error"))

		req := authorizedRequest("GET", "/api/transactions/my-transactions", "", 2, domain.RoleUser)
		rr := httptest.NewRecorder()
		handler.MyTransactions(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestOrgTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Empty list when not a member", func(t *testing.T) {
		service.EXPECT().OrgTransactions(gomock.Any(), 5).Return(nil, nil)

		req := authorizedRequest("GET", "/api/transactions/org-transactions", "", 5, domain.RoleUser)
		rr := httptest.NewRecorder()
		handler.OrgTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Transactions []any `json:"transactions"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Empty(t, resp.Transactions)
	})

	t.Run("Lists every member's entries", func(t *testing.T) {
		service.EXPECT().OrgTransactions(gomock.Any(), 2).Return([]domain.TransactionDetail{
			{Transaction: domain.Transaction{ID: 1, UserID: 2}, UserName: "Jane Doe"},
			{Transaction: domain.Transaction{ID: 2, UserID: 3}, UserName: "John Smith"},
		}, nil)

		req := authorizedRequest("GET", "/api/transactions/org-transactions", "", 2, domain.RoleUser)
		rr := httptest.NewRecorder()
		handler.OrgTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Transactions []struct {
				UserName string `json:"user_name"`
			} `json:"transactions"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp.Transactions, 2)
		assert.Equal(t, "John Smith", resp.Transactions[1].UserName)
	})
}

func TestPendingHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Pending entries listed", func(t *testing.T) {
		service.EXPECT().Pending(gomock.Any(), 1, domain.RoleAdmin).Return([]domain.TransactionDetail{
			{Transaction: domain.Transaction{ID: 1, Status: domain.StatusPending}},
		}, nil)

		req := authorizedRequest("GET", "/api/transactions/pending", "", 1, domain.RoleAdmin)
		rr := httptest.NewRecorder()
		handler.Pending(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		service.EXPECT().Pending(gomock.Any(), 1, domain.RoleUser).Return(nil, errors.New("database error"))

		req := authorizedRequest("GET", "/api/transactions/pending", "", 1, domain.RoleUser)
		rr := httptest.NewRecorder()
		handler.Pending(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestApproveHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		transactionID string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:          "Approved",
			transactionID: "1",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 1, 3, domain.RoleUser).Return(&domain.Transaction{
					ID: 1, Type: "expense", Amount: decimal.NewFromInt(30), Status: domain.StatusApproved,
				}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name:          "Invalid id",
			transactionID: "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid transaction id",
		},
		{
			name:          "Not found",
			transactionID: "99",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 99, 3, domain.RoleUser).Return(nil, transactionservice.ErrTransactionNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "transaction not found",
		},
		{
			name:          "Not permitted",
			transactionID: "1",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 1, 3, domain.RoleUser).Return(nil, transactionservice.ErrNotPermitted)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "only the organization creator or an admin can do this",
		},
		{
			name:          "Already processed",
			transactionID: "1",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 1, 3, domain.RoleUser).Return(nil, transactionservice.ErrAlreadyProcessed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "transaction already processed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("PATCH", "/api/transactions/"+tt.transactionID+"/approve", "", 3, domain.RoleUser)
			req = withURLParam(req, "transactionID", tt.transactionID)
			rr := httptest.NewRecorder()
			handler.Approve(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
		})
	}
}

func TestRejectHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Rejected", func(t *testing.T) {
		service.EXPECT().Reject(gomock.Any(), 1, 3, domain.RoleUser).Return(&domain.Transaction{
			ID: 1, Type: "expense", Amount: decimal.NewFromInt(30), Status: domain.StatusRejected,
		}, nil)

		req := authorizedRequest("PATCH", "/api/transactions/1/reject", "", 3, domain.RoleUser)
		req = withURLParam(req, "transactionID", "1")
		rr := httptest.NewRecorder()
		handler.Reject(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			Transaction struct {
				Status string `json:"status"`
			} `json:"transaction"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "rejected", resp.Transaction.Status)
	})

	t.Run("Already processed", func(t *testing.T) {
		service.EXPECT().Reject(gomock.Any(), 1, 3, domain.RoleUser).Return(nil, transactionservice.ErrAlreadyProcessed)

		req := authorizedRequest("PATCH", "/api/transactions/1/reject", "", 3, domain.RoleUser)
		req = withURLParam(req, "transactionID", "1")
		rr := httptest.NewRecorder()
		handler.Reject(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "transaction already processed", decodeError(t, rr))
	})
}

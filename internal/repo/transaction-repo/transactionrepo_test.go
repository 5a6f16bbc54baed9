package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkravtsov/orgledger/internal/domain"
	"github.com/dkravtsov/orgledger/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var detailColumns = []string{
	"id", "organization_id", "user_id", "type", "amount", "description", "date",
	"status", "created_at", "approved_at", "approved_by", "organization_name", "user_name", "user_email",
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Creates pending transaction", func(t *testing.T) {
		trn := &domain.Transaction{
			OrganizationID: 1,
			UserID:         2,
			Type:           domain.TypeExpense,
			Amount:         decimal.NewFromInt(30),
			Description:    "lunch",
			Date:           date,
		}
		rows := pgxmock.NewRows([]string{"id", "status", "created_at"}).
			AddRow(1, "pending", createdAt)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (organization_id, user_id, type, amount, description, date, status)")).
			WithArgs(1, 2, "expense", decimal.NewFromInt(30), "lunch", date).
			WillReturnRows(rows)

		result, err := repo.Create(context.Background(), trn)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ID)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("Database error", func(t *testing.T) {
		trn := &domain.Transaction{
			OrganizationID: 1,
			UserID:         2,
			Type:           domain.TypeIncome,
			Amount:         decimal.NewFromInt(30),
			Description:    "refund",
			Date:           date,
		}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions (organization_id, user_id, type, amount, description, date, status)")).
			WithArgs(1, 2, "income", decimal.NewFromInt(30), "refund", date).
			WillReturnError(errors.New("database error"))

		result, err := repo.Create(context.Background(), trn)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	createdAt := date

	t.Run("Returns user transactions with organization name", func(t *testing.T) {
		columns := []string{
			"id", "organization_id", "user_id", "type", "amount", "description", "date",
			"status", "created_at", "approved_at", "approved_by", "organization_name",
		}
		rows := pgxmock.NewRows(columns).
			AddRow(1, 1, 2, "expense", decimal.NewFromInt(30), "lunch", date, "pending", createdAt, nil, nil, "Acme")
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.user_id = $1")).
			WithArgs(2).
			WillReturnRows(rows)

		result, err := repo.FindByUserID(context.Background(), 2)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Acme", result[0].OrganizationName)
		assert.Nil(t, result[0].ApprovedBy)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.user_id = $1")).
			WithArgs(2).
			WillReturnError(errors.New("database error"))

		result, err := repo.FindByUserID(context.Background(), 2)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindByOrgID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Returns every member's entries", func(t *testing.T) {
		rows := pgxmock.NewRows(detailColumns).
			AddRow(1, 1, 2, "expense", decimal.NewFromInt(30), "lunch", date, "pending", date, nil, nil, "Acme", "Jane Doe", "jane@example.com").
			AddRow(2, 1, 3, "income", decimal.NewFromInt(50), "refund", date, "approved", date, &date, intPtr(9), "Acme", "John Smith", "john@example.com")
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.organization_id = $1")).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.FindByOrgID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Jane Doe", result[0].UserName)
		assert.Equal(t, 9, *result[1].ApprovedBy)
	})
}

func TestRepository_ListPending(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Unscoped list for admins", func(t *testing.T) {
		rows := pgxmock.NewRows(detailColumns).
			AddRow(1, 1, 2, "expense", decimal.NewFromInt(30), "lunch", date, "pending", date, nil, nil, "Acme", "Jane Doe", "jane@example.com")
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.status = 'pending'")).
			WillReturnRows(rows)

		result, err := repo.ListPending(context.Background(), nil)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Scoped to a creator's organizations", func(t *testing.T) {
		creatorID := 3
		rows := pgxmock.NewRows(detailColumns).
			AddRow(1, 1, 2, "expense", decimal.NewFromInt(30), "lunch", date, "pending", date, nil, nil, "Acme", "Jane Doe", "jane@example.com")
		mock.ExpectQuery(regexp.QuoteMeta("AND o.created_by = $1")).
			WithArgs(3).
			WillReturnRows(rows)

		result, err := repo.ListPending(context.Background(), &creatorID)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func TestRepository_FindWithCreator(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Transaction with creator found", func(t *testing.T) {
		columns := []string{
			"id", "organization_id", "user_id", "type", "amount", "description", "date",
			"status", "created_at", "approved_at", "approved_by", "created_by",
		}
		rows := pgxmock.NewRows(columns).
			AddRow(1, 1, 2, "expense", decimal.NewFromInt(30), "lunch", date, "pending", date, nil, nil, 3)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1")).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.FindWithCreator(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.ID)
		assert.Equal(t, 3, result.OrgCreatedBy)
	})

	t.Run("Transaction not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id = $1")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindWithCreator(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Approve(t *testing.T) {
	repo, mock, tx := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	approvedAt := date.Add(time.Hour)

	returningColumns := []string{
		"id", "organization_id", "user_id", "type", "amount", "description", "date",
		"status", "created_at", "approved_at", "approved_by",
	}

	tests := []struct {
		name          string
		mockSetup     func()
		expectErr     bool
		expectNil     bool
		expectedDelta decimal.Decimal
	}{
		{
			name: "Expense approval subtracts from balance",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows(returningColumns).
						AddRow(1, 1, 2, "expense", decimal.NewFromInt(30), "lunch", date, "approved", date, &approvedAt, intPtr(9))
					mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = CURRENT_TIMESTAMP, approved_by = $1")).
						WithArgs(9, 1).
						WillReturnRows(rows)
					mock.ExpectExec(regexp.QuoteMeta("SET balance = balance + $1")).
						WithArgs(decimal.NewFromInt(-30), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
			expectNil: false,
		},
		{
			name: "Income approval adds to balance",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows(returningColumns).
						AddRow(1, 1, 2, "income", decimal.NewFromInt(50), "refund", date, "approved", date, &approvedAt, intPtr(9))
					mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = CURRENT_TIMESTAMP, approved_by = $1")).
						WithArgs(9, 1).
						WillReturnRows(rows)
					mock.ExpectExec(regexp.QuoteMeta("SET balance = balance + $1")).
						WithArgs(decimal.NewFromInt(50), 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
			expectNil: false,
		},
		{
			name: "Concurrent approval loses the race",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = CURRENT_TIMESTAMP, approved_by = $1")).
						WithArgs(9, 1).
						WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
			expectErr: false,
			expectNil: true,
		},
		{
			name: "Balance update failure aborts",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows(returningColumns).
						AddRow(1, 1, 2, "expense", decimal.NewFromInt(30), "lunch", date, "approved", date, &approvedAt, intPtr(9))
					mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = CURRENT_TIMESTAMP, approved_by = $1")).
						WithArgs(9, 1).
						WillReturnRows(rows)
					mock.ExpectExec(regexp.QuoteMeta("SET balance = balance + $1")).
						WithArgs(decimal.NewFromInt(-30), 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Approve(context.Background(), 1, 9)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, "approved", result.Status)
				assert.Equal(t, 9, *result.ApprovedBy)
			}
		})
	}
}

func TestRepository_Reject(t *testing.T) {
	repo, mock, _ := NewMock(t)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	returningColumns := []string{
		"id", "organization_id", "user_id", "type", "amount", "description", "date",
		"status", "created_at", "approved_at", "approved_by",
	}

	t.Run("Pending transaction rejected without touching balance", func(t *testing.T) {
		rows := pgxmock.NewRows(returningColumns).
			AddRow(1, 1, 2, "expense", decimal.NewFromInt(30), "lunch", date, "rejected", date, nil, nil)
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'rejected'")).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.Reject(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "rejected", result.Status)
		assert.Nil(t, result.ApprovedBy)
	})

	t.Run("Already decided returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'rejected'")).
			WithArgs(1).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.Reject(context.Background(), 1)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func intPtr(v int) *int { return &v }

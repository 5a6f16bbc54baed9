package membershiprepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/dkravtsov/orgledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByOrgAndUser(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		orgID     int
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Membership
	}{
		{
			name:   "Membership found",
			orgID:  1,
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "organization_id", "user_id", "status", "requested_at", "approved_at"}).
					AddRow(10, 1, 2, "pending", requestedAt, nil)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE organization_id = $1 AND user_id = $2")).
					WithArgs(1, 2).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Membership{
				ID:             10,
				OrganizationID: 1,
				UserID:         2,
				Status:         "pending",
				RequestedAt:    requestedAt,
			},
		},
		{
			name:   "No membership",
			orgID:  1,
			userID: 5,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE organization_id = $1 AND user_id = $2")).
					WithArgs(1, 5).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			orgID:  1,
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE organization_id = $1 AND user_id = $2")).
					WithArgs(1, 2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOrgAndUser(context.Background(), tt.orgID, tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Creates pending request", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "organization_id", "user_id", "status", "requested_at", "approved_at"}).
			AddRow(10, 1, 2, "pending", requestedAt, nil)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO organization_members (organization_id, user_id, status)")).
			WithArgs(1, 2).
			WillReturnRows(rows)

		result, err := repo.Create(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
		assert.Nil(t, result.ApprovedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO organization_members (organization_id, user_id, status)")).
			WithArgs(1, 2).
			WillReturnError(errors.New("database error"))

		result, err := repo.Create(context.Background(), 1, 2)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindWithCreator(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Membership with creator found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "organization_id", "user_id", "status", "requested_at", "approved_at", "created_by"}).
			AddRow(10, 1, 2, "pending", requestedAt, nil, 3)
		mock.ExpectQuery(regexp.QuoteMeta("JOIN organizations o ON om.organization_id = o.id")).
			WithArgs(10).
			WillReturnRows(rows)

		result, err := repo.FindWithCreator(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 10, result.ID)
		assert.Equal(t, 3, result.OrgCreatedBy)
	})

	t.Run("Membership not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN organizations o ON om.organization_id = o.id")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindWithCreator(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_ListPending(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "organization_id", "user_id", "requested_at", "organization_name", "user_name", "user_email"}

	t.Run("Unscoped list for admins", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(10, 1, 2, requestedAt, "Acme", "Jane Doe", "jane@example.com").
			AddRow(11, 2, 4, requestedAt, "Globex", "John Smith", "john@example.com")
		mock.ExpectQuery(regexp.QuoteMeta("WHERE om.status = 'pending'")).
			WillReturnRows(rows)

		result, err := repo.ListPending(context.Background(), nil)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Acme", result[0].OrganizationName)
		assert.Equal(t, "jane@example.com", result[0].UserEmail)
	})

	t.Run("Scoped to a creator's organizations", func(t *testing.T) {
		creatorID := 3
		rows := pgxmock.NewRows(columns).
			AddRow(10, 1, 2, requestedAt, "Acme", "Jane Doe", "jane@example.com")
		mock.ExpectQuery(regexp.QuoteMeta("AND o.created_by = $1")).
			WithArgs(3).
			WillReturnRows(rows)

		result, err := repo.ListPending(context.Background(), &creatorID)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE om.status = 'pending'")).
			WillReturnError(errors.New("database error"))

		result, err := repo.ListPending(context.Background(), nil)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Approve(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	approvedAt := requestedAt.Add(time.Hour)

	t.Run("Pending request approved", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "organization_id", "user_id", "status", "requested_at", "approved_at"}).
			AddRow(10, 1, 2, "approved", requestedAt, &approvedAt)
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = CURRENT_TIMESTAMP")).
			WithArgs(10).
			WillReturnRows(rows)

		result, err := repo.Approve(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, "approved", result.Status)
		assert.NotNil(t, result.ApprovedAt)
	})

	t.Run("Already decided returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'approved', approved_at = CURRENT_TIMESTAMP")).
			WithArgs(10).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.Approve(context.Background(), 10)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Reject(t *testing.T) {
	repo, mock := NewMock(t)
	requestedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Pending request rejected", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "organization_id", "user_id", "status", "requested_at", "approved_at"}).
			AddRow(10, 1, 2, "rejected", requestedAt, nil)
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'rejected'")).
			WithArgs(10).
			WillReturnRows(rows)

		result, err := repo.Reject(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, "rejected", result.Status)
		assert.Nil(t, result.ApprovedAt)
	})

	t.Run("Already decided returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'rejected'")).
			WithArgs(10).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.Reject(context.Background(), 10)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

package userrepo

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

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "user@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "created_at"}).
					AddRow(1, "user@example.com", "hashed_password", "Jane Doe", "user", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, role, created_at")).
					WithArgs("user@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: "hashed_password",
				Name:         "Jane Doe",
				Role:         "user",
				CreatedAt:    createdAt,
			},
		},
		{
			name:  "User not found",
			email: "missing@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, role, created_at")).
					WithArgs("missing@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "user@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, role, created_at")).
					WithArgs("user@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "role", "created_at"}).
					AddRow(1, "user@example.com", "hashed_password", "Jane Doe", "admin", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, role, created_at")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: "hashed_password",
				Name:         "Jane Doe",
				Role:         "admin",
				CreatedAt:    createdAt,
			},
		},
		{
			name: "User not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name, role, created_at")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
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
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Email:        "user@example.com",
				PasswordHash: "hashed_password",
				Name:         "Jane Doe",
				Role:         "user",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, password_hash, name, role)")).
					WithArgs("user@example.com", "hashed_password", "Jane Doe", "user").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{
				Email:        "user@example.com",
				PasswordHash: "hashed_password",
				Name:         "Jane Doe",
				Role:         "user",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, password_hash, name, role)")).
					WithArgs("user@example.com", "hashed_password", "Jane Doe", "user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
		})
	}
}

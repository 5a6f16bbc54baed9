package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/dkravtsov/orgledger/internal/domain"
	"github.com/dkravtsov/orgledger/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, trn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (organization_id, user_id, type, amount, description, date, status)
        VALUES ($1, $2, $3, $4, $5, $6, 'pending')
        RETURNING id, status, created_at
    `
	err := r.db.QueryRow(ctx, query,
		trn.OrganizationID, trn.UserID, trn.Type, trn.Amount, trn.Description, trn.Date).
		Scan(&trn.ID, &trn.Status, &trn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return trn, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.TransactionDetail, error) {
	query := `
        SELECT t.id, t.organization_id, t.user_id, t.type, t.amount, t.description, t.date,
               t.status, t.created_at, t.approved_at, t.approved_by,
               o.name AS organization_name
        FROM transactions t
        JOIN organizations o ON t.organization_id = o.id
        WHERE t.user_id = $1
        ORDER BY t.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows, false)
}

// FindByOrgID returns every ledger entry of the organization, not just the
// caller's own, joined with the submitter.
func (r *Repository) FindByOrgID(ctx context.Context, orgID int) ([]domain.TransactionDetail, error) {
	query := `
        SELECT t.id, t.organization_id, t.user_id, t.type, t.amount, t.description, t.date,
               t.status, t.created_at, t.approved_at, t.approved_by,
               o.name AS organization_name, u.name AS user_name, u.email AS user_email
        FROM transactions t
        JOIN organizations o ON t.organization_id = o.id
        JOIN users u ON t.user_id = u.id
        WHERE t.organization_id = $1
        ORDER BY t.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		zap.L().Error("can't get organization transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows, true)
}

// ListPending mirrors the membership scoping rule: non-nil creatorID limits
// the list to that creator's organizations, nil is the global admin view.
func (r *Repository) ListPending(ctx context.Context, creatorID *int) ([]domain.TransactionDetail, error) {
	query := `
        SELECT t.id, t.organization_id, t.user_id, t.type, t.amount, t.description, t.date,
               t.status, t.created_at, t.approved_at, t.approved_by,
               o.name AS organization_name, u.name AS user_name, u.email AS user_email
        FROM transactions t
        JOIN organizations o ON t.organization_id = o.id
        JOIN users u ON t.user_id = u.id
        WHERE t.status = 'pending'
    `
	var args []any
	if creatorID != nil {
		query += ` AND o.created_by = $1`
		args = append(args, *creatorID)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list pending transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanDetails(rows, true)
}

func (r *Repository) FindWithCreator(ctx context.Context, id int) (*domain.TransactionWithCreator, error) {
	query := `
        SELECT t.id, t.organization_id, t.user_id, t.type, t.amount, t.description, t.date,
               t.status, t.created_at, t.approved_at, t.approved_by, o.created_by
        FROM transactions t
        JOIN organizations o ON t.organization_id = o.id
        WHERE t.id = $1
    `
	var trn domain.TransactionWithCreator
	err := r.db.QueryRow(ctx, query, id).
		Scan(&trn.ID, &trn.OrganizationID, &trn.UserID, &trn.Type, &trn.Amount, &trn.Description,
			&trn.Date, &trn.Status, &trn.CreatedAt, &trn.ApprovedAt, &trn.ApprovedBy, &trn.OrgCreatedBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction with creator", zap.Error(err))
		return nil, err
	}
	return &trn, nil
}

// Approve flips a pending transaction to approved and applies the balance
// delta in the same database transaction. The pending re-check is part of
// the update predicate, so a concurrent approval sees no row and the delta
// is applied exactly once; nil is returned for the loser.
func (r *Repository) Approve(ctx context.Context, id, actorID int) (*domain.Transaction, error) {
	updateQuery := `
        UPDATE transactions
        SET status = 'approved', approved_at = CURRENT_TIMESTAMP, approved_by = $1
        WHERE id = $2 AND status = 'pending'
        RETURNING id, organization_id, user_id, type, amount, description, date, status, created_at, approved_at, approved_by
    `
	balanceQuery := `
        UPDATE organizations
        SET balance = balance + $1
        WHERE id = $2
    `
	var approved *domain.Transaction
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var trn domain.Transaction
		row := r.db.QueryRow(ctx, updateQuery, actorID, id)
		err := row.Scan(&trn.ID, &trn.OrganizationID, &trn.UserID, &trn.Type, &trn.Amount,
			&trn.Description, &trn.Date, &trn.Status, &trn.CreatedAt, &trn.ApprovedAt, &trn.ApprovedBy)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't approve transaction", zap.Error(err))
			return err
		}

		delta := trn.Amount
		if trn.Type == domain.TypeExpense {
			delta = delta.Neg()
		}
		if _, err := r.db.Exec(ctx, balanceQuery, delta, trn.OrganizationID); err != nil {
			zap.L().Error("can't apply balance delta", zap.Error(err))
			return err
		}
		approved = &trn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// Reject only flips the status; nothing was applied yet, so there is
// nothing to unwind.
func (r *Repository) Reject(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        UPDATE transactions
        SET status = 'rejected'
        WHERE id = $1 AND status = 'pending'
        RETURNING id, organization_id, user_id, type, amount, description, date, status, created_at, approved_at, approved_by
    `
	var trn domain.Transaction
	err := r.db.QueryRow(ctx, query, id).
		Scan(&trn.ID, &trn.OrganizationID, &trn.UserID, &trn.Type, &trn.Amount,
			&trn.Description, &trn.Date, &trn.Status, &trn.CreatedAt, &trn.ApprovedAt, &trn.ApprovedBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't reject transaction", zap.Error(err))
		return nil, err
	}
	return &trn, nil
}

func scanDetails(rows pgx.Rows, withUser bool) ([]domain.TransactionDetail, error) {
	var details []domain.TransactionDetail
	for rows.Next() {
		var d domain.TransactionDetail
		dest := []any{&d.ID, &d.OrganizationID, &d.UserID, &d.Type, &d.Amount, &d.Description,
			&d.Date, &d.Status, &d.CreatedAt, &d.ApprovedAt, &d.ApprovedBy, &d.OrganizationName}
		if withUser {
			dest = append(dest, &d.UserName, &d.UserEmail)
		}
		if err := rows.Scan(dest...); err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

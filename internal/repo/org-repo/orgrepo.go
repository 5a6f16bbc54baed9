package orgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

// Create inserts the organization and an already-approved membership for its
// creator in one database transaction.
func (r *Repository) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, *domain.Membership, error) {
	orgQuery := `
        INSERT INTO organizations (name, balance, created_by)
        VALUES ($1, $2, $3)
        RETURNING id, name, balance, created_by, created_at
    `
	memberQuery := `
        INSERT INTO organization_members (organization_id, user_id, status, approved_at)
        VALUES ($1, $2, 'approved', CURRENT_TIMESTAMP)
        RETURNING id, organization_id, user_id, status, requested_at, approved_at
    `
	var created domain.Organization
	var membership domain.Membership
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, orgQuery, org.Name, org.Balance, org.CreatedBy)
		if err := row.Scan(&created.ID, &created.Name, &created.Balance, &created.CreatedBy, &created.CreatedAt); err != nil {
			zap.L().Error("can't save organization", zap.Error(err))
			return err
		}
		row = r.db.QueryRow(ctx, memberQuery, created.ID, org.CreatedBy)
		if err := row.Scan(&membership.ID, &membership.OrganizationID, &membership.UserID,
			&membership.Status, &membership.RequestedAt, &membership.ApprovedAt); err != nil {
			zap.L().Error("can't save creator membership", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &created, &membership, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Organization, error) {
	query := `
        SELECT id, name, balance, created_by, created_at
        FROM organizations
        WHERE id = $1
    `
	var org domain.Organization
	err := r.db.QueryRow(ctx, query, id).
		Scan(&org.ID, &org.Name, &org.Balance, &org.CreatedBy, &org.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find organization", zap.Error(err))
		return nil, err
	}
	return &org, nil
}

// FindApprovedByUserID resolves the organization the user is an approved
// member of, nil when there is none.
func (r *Repository) FindApprovedByUserID(ctx context.Context, userID int) (*domain.OrganizationListing, error) {
	query := `
        SELECT o.id, o.name, o.balance, o.created_by, o.created_at, om.status AS membership_status
        FROM organizations o
        JOIN organization_members om ON o.id = om.organization_id
        WHERE om.user_id = $1 AND om.status = 'approved'
        ORDER BY om.approved_at
        LIMIT 1
    `
	var org domain.OrganizationListing
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&org.ID, &org.Name, &org.Balance, &org.CreatedBy, &org.CreatedAt, &org.MembershipStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user's organization", zap.Error(err))
		return nil, err
	}
	return &org, nil
}

// ListWithMembership returns every organization with the viewer's own
// membership status attached, newest first.
func (r *Repository) ListWithMembership(ctx context.Context, viewerID int) ([]domain.OrganizationListing, error) {
	query := `
        SELECT o.id, o.name, o.balance, o.created_by, o.created_at, om.status AS membership_status
        FROM organizations o
        LEFT JOIN organization_members om ON o.id = om.organization_id AND om.user_id = $1
        ORDER BY o.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		zap.L().Error("can't list organizations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.OrganizationListing
	for rows.Next() {
		var org domain.OrganizationListing
		err := rows.Scan(&org.ID, &org.Name, &org.Balance, &org.CreatedBy, &org.CreatedAt, &org.MembershipStatus)
		if err != nil {
			zap.L().Error("can't scan organization row", zap.Error(err))
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

// SetBalance overwrites the balance directly, returning nil when the
// organization does not exist. Ledger history is deliberately not consulted.
func (r *Repository) SetBalance(ctx context.Context, id int, balance decimal.Decimal) (*domain.Organization, error) {
	query := `
        UPDATE organizations
        SET balance = $1
        WHERE id = $2
        RETURNING id, name, balance, created_by, created_at
    `
	var org domain.Organization
	err := r.db.QueryRow(ctx, query, balance, id).
		Scan(&org.ID, &org.Name, &org.Balance, &org.CreatedBy, &org.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't set organization balance", zap.Error(err))
		return nil, err
	}
	return &org, nil
}

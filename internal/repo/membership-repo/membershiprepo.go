package membershiprepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/dkravtsov/orgledger/internal/domain"
	"github.com/dkravtsov/orgledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByOrgAndUser(ctx context.Context, orgID, userID int) (*domain.Membership, error) {
	query := `
        SELECT id, organization_id, user_id, status, requested_at, approved_at
        FROM organization_members
        WHERE organization_id = $1 AND user_id = $2
    `
	var m domain.Membership
	err := r.db.QueryRow(ctx, query, orgID, userID).
		Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Status, &m.RequestedAt, &m.ApprovedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find membership", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, orgID, userID int) (*domain.Membership, error) {
	query := `
        INSERT INTO organization_members (organization_id, user_id, status)
        VALUES ($1, $2, 'pending')
        RETURNING id, organization_id, user_id, status, requested_at, approved_at
    `
	var m domain.Membership
	err := r.db.QueryRow(ctx, query, orgID, userID).
		Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Status, &m.RequestedAt, &m.ApprovedAt)
	if err != nil {
		zap.L().Error("can't save membership request", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

// FindWithCreator loads the membership together with the owning
// organization's creator id for the authorization check.
func (r *Repository) FindWithCreator(ctx context.Context, id int) (*domain.MembershipWithCreator, error) {
	query := `
        SELECT om.id, om.organization_id, om.user_id, om.status, om.requested_at, om.approved_at, o.created_by
        FROM organization_members om
        JOIN organizations o ON om.organization_id = o.id
        WHERE om.id = $1
    `
	var m domain.MembershipWithCreator
	err := r.db.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Status, &m.RequestedAt, &m.ApprovedAt, &m.OrgCreatedBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find membership with creator", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

// ListPending returns pending requests joined with the organization and
// requester. A non-nil creatorID scopes the list to that creator's
// organizations; nil returns everything (global admin view).
func (r *Repository) ListPending(ctx context.Context, creatorID *int) ([]domain.MembershipRequest, error) {
	query := `
        SELECT om.id, om.organization_id, om.user_id, om.requested_at,
               o.name AS organization_name,
               u.name AS user_name, u.email AS user_email
        FROM organization_members om
        JOIN organizations o ON om.organization_id = o.id
        JOIN users u ON om.user_id = u.id
        WHERE om.status = 'pending'
    `
	var args []any
	if creatorID != nil {
		query += ` AND o.created_by = $1`
		args = append(args, *creatorID)
	}
	query += ` ORDER BY om.requested_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list pending memberships", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.MembershipRequest
	for rows.Next() {
		var req domain.MembershipRequest
		err := rows.Scan(&req.ID, &req.OrganizationID, &req.UserID, &req.RequestedAt,
			&req.OrganizationName, &req.UserName, &req.UserEmail)
		if err != nil {
			zap.L().Error("can't scan membership request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// Approve flips a pending membership to approved. The pending check is part
// of the update predicate; nil is returned when the row was already decided.
func (r *Repository) Approve(ctx context.Context, id int) (*domain.Membership, error) {
	query := `
        UPDATE organization_members
        SET status = 'approved', approved_at = CURRENT_TIMESTAMP
        WHERE id = $1 AND status = 'pending'
        RETURNING id, organization_id, user_id, status, requested_at, approved_at
    `
	return r.updateStatus(ctx, query, id)
}

// Reject flips a pending membership to rejected; approved_at stays empty.
func (r *Repository) Reject(ctx context.Context, id int) (*domain.Membership, error) {
	query := `
        UPDATE organization_members
        SET status = 'rejected'
        WHERE id = $1 AND status = 'pending'
        RETURNING id, organization_id, user_id, status, requested_at, approved_at
    `
	return r.updateStatus(ctx, query, id)
}

func (r *Repository) updateStatus(ctx context.Context, query string, id int) (*domain.Membership, error) {
	var m domain.Membership
	err := r.db.QueryRow(ctx, query, id).
		Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Status, &m.RequestedAt, &m.ApprovedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update membership status", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

package orgservice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dkravtsov/orgledger/internal/domain"
)

type OrgRepo interface {
	Create(ctx context.Context, org *domain.Organization) (*domain.Organization, *domain.Membership, error)
	FindByID(ctx context.Context, id int) (*domain.Organization, error)
	FindApprovedByUserID(ctx context.Context, userID int) (*domain.OrganizationListing, error)
	ListWithMembership(ctx context.Context, viewerID int) ([]domain.OrganizationListing, error)
	SetBalance(ctx context.Context, id int, balance decimal.Decimal) (*domain.Organization, error)
}

type MembershipRepo interface {
	FindByOrgAndUser(ctx context.Context, orgID, userID int) (*domain.Membership, error)
	Create(ctx context.Context, orgID, userID int) (*domain.Membership, error)
	FindWithCreator(ctx context.Context, id int) (*domain.MembershipWithCreator, error)
	ListPending(ctx context.Context, creatorID *int) ([]domain.MembershipRequest, error)
	Approve(ctx context.Context, id int) (*domain.Membership, error)
	Reject(ctx context.Context, id int) (*domain.Membership, error)
}

type Service struct {
	orgRepo        OrgRepo
	membershipRepo MembershipRepo
}

func New(orgRepo OrgRepo, membershipRepo MembershipRepo) *Service {
	return &Service{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
	}
}

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMembershipNotFound   = errors.New("membership request not found")
	ErrAlreadyMember        = errors.New("already a member or pending request exists")
	ErrNotPermitted         = errors.New("only the organization creator or an admin can do this")
	ErrAlreadyProcessed     = errors.New("membership request already processed")
	ErrNegativeBalance      = errors.New("balance must be a non-negative number")
)

// Create inserts the organization together with an approved membership for
// the creator; the repository makes the pair atomic.
func (s *Service) Create(ctx context.Context, name string, initialBalance decimal.Decimal, creatorID int) (*domain.Organization, error) {
	if initialBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	org := &domain.Organization{
		Name:      name,
		Balance:   initialBalance,
		CreatedBy: creatorID,
	}
	created, _, err := s.orgRepo.Create(ctx, org)
	if err != nil {
		zap.L().Error("can't create organization", zap.Error(err))
		return nil, err
	}
	zap.L().Info("organization created",
		zap.Int("org_id", created.ID), zap.Int("creator_id", creatorID))
	return created, nil
}

func (s *Service) Join(ctx context.Context, orgID, userID int) (*domain.Membership, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}

	existing, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("duplicate join request",
			zap.Int("org_id", orgID), zap.Int("user_id", userID), zap.String("status", existing.Status))
		return nil, ErrAlreadyMember
	}

	membership, err := s.membershipRepo.Create(ctx, orgID, userID)
	if err != nil {
		// concurrent join can slip past the pre-check and hit the
		// unique (organization_id, user_id) constraint
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			zap.L().Info("duplicate join request lost the race",
				zap.Int("org_id", orgID), zap.Int("user_id", userID))
			return nil, ErrAlreadyMember
		}
		zap.L().Error("can't create membership request", zap.Error(err))
		return nil, err
	}
	return membership, nil
}

func (s *Service) MyOrganization(ctx context.Context, userID int) (*domain.OrganizationListing, error) {
	org, err := s.orgRepo.FindApprovedByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't resolve user's organization", zap.Error(err))
		return nil, err
	}
	return org, nil
}

func (s *Service) List(ctx context.Context, viewerID int) ([]domain.OrganizationListing, error) {
	orgs, err := s.orgRepo.ListWithMembership(ctx, viewerID)
	if err != nil {
		zap.L().Error("can't list organizations", zap.Error(err))
		return nil, err
	}
	return orgs, nil
}

// PendingMemberships lists requests awaiting a decision, scoped to the
// viewer's own organizations unless the viewer is a global admin.
func (s *Service) PendingMemberships(ctx context.Context, viewerID int, viewerRole string) ([]domain.MembershipRequest, error) {
	var creatorID *int
	if viewerRole != domain.RoleAdmin {
		creatorID = &viewerID
	}
	requests, err := s.membershipRepo.ListPending(ctx, creatorID)
	if err != nil {
		zap.L().Error("can't list pending memberships", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) ApproveMembership(ctx context.Context, id, actorID int, actorRole string) (*domain.Membership, error) {
	return s.decideMembership(ctx, id, actorID, actorRole, s.membershipRepo.Approve)
}

func (s *Service) RejectMembership(ctx context.Context, id, actorID int, actorRole string) (*domain.Membership, error) {
	return s.decideMembership(ctx, id, actorID, actorRole, s.membershipRepo.Reject)
}

func (s *Service) decideMembership(ctx context.Context, id, actorID int, actorRole string,
	decide func(ctx context.Context, id int) (*domain.Membership, error)) (*domain.Membership, error) {
	membership, err := s.membershipRepo.FindWithCreator(ctx, id)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrMembershipNotFound
	}
	if !domain.CanManageOrg(actorID, actorRole, membership.OrgCreatedBy) {
		return nil, ErrNotPermitted
	}
	if membership.Status != domain.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	updated, err := decide(ctx, id)
	if err != nil {
		return nil, err
	}
	// the conditional update lost a race if no row came back
	if updated == nil {
		return nil, ErrAlreadyProcessed
	}
	return updated, nil
}

// SetBalance is the admin escape hatch: it overwrites the balance without
// touching the ledger, so the override is logged loudly.
func (s *Service) SetBalance(ctx context.Context, orgID, actorID int, actorRole string, balance decimal.Decimal) (*domain.Organization, error) {
	if actorRole != domain.RoleAdmin {
		return nil, ErrNotPermitted
	}
	if balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	org, err := s.orgRepo.SetBalance(ctx, orgID, balance)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrganizationNotFound
	}
	zap.L().Warn("organization balance overridden",
		zap.Int("org_id", orgID), zap.Int("actor_id", actorID), zap.String("balance", balance.String()))
	return org, nil
}

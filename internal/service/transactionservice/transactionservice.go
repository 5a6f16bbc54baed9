package transactionservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dkravtsov/orgledger/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, trn *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.TransactionDetail, error)
	FindByOrgID(ctx context.Context, orgID int) ([]domain.TransactionDetail, error)
	ListPending(ctx context.Context, creatorID *int) ([]domain.TransactionDetail, error)
	FindWithCreator(ctx context.Context, id int) (*domain.TransactionWithCreator, error)
	Approve(ctx context.Context, id, actorID int) (*domain.Transaction, error)
	Reject(ctx context.Context, id int) (*domain.Transaction, error)
}

type MembershipRepo interface {
	FindByOrgAndUser(ctx context.Context, orgID, userID int) (*domain.Membership, error)
}

type OrgRepo interface {
	FindApprovedByUserID(ctx context.Context, userID int) (*domain.OrganizationListing, error)
}

type Service struct {
	repo           Repo
	membershipRepo MembershipRepo
	orgRepo        OrgRepo
}

func New(repo Repo, membershipRepo MembershipRepo, orgRepo OrgRepo) *Service {
	return &Service{
		repo:           repo,
		membershipRepo: membershipRepo,
		orgRepo:        orgRepo,
	}
}

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotApprovedMember   = errors.New("you must be an approved member of this organization")
	ErrNotPermitted        = errors.New("only the organization creator or an admin can do this")
	ErrAlreadyProcessed    = errors.New("transaction already processed")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidType         = errors.New("type must be income or expense")
)

// Submit creates a pending ledger entry. Only approved members of the
// target organization may submit.
func (s *Service) Submit(ctx context.Context, orgID, userID int, trnType string, amount decimal.Decimal, description string, date time.Time) (*domain.Transaction, error) {
	if trnType != domain.TypeIncome && trnType != domain.TypeExpense {
		return nil, ErrInvalidType
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	membership, err := s.membershipRepo.FindByOrgAndUser(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if membership == nil || membership.Status != domain.StatusApproved {
		zap.L().Info("transaction submit without approved membership",
			zap.Int("org_id", orgID), zap.Int("user_id", userID))
		return nil, ErrNotApprovedMember
	}

	trn := &domain.Transaction{
		OrganizationID: orgID,
		UserID:         userID,
		Type:           trnType,
		Amount:         amount,
		Description:    description,
		Date:           date,
	}
	created, err := s.repo.Create(ctx, trn)
	if err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) MyTransactions(ctx context.Context, userID int) ([]domain.TransactionDetail, error) {
	transactions, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// OrgTransactions resolves the caller's approved organization and returns
// the whole ledger of that organization, every member's entries included.
func (s *Service) OrgTransactions(ctx context.Context, userID int) ([]domain.TransactionDetail, error) {
	org, err := s.orgRepo.FindApprovedByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	transactions, err := s.repo.FindByOrgID(ctx, org.ID)
	if err != nil {
		zap.L().Error("can't get organization transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// Pending uses the same scoping rule as pending memberships: creators see
// their own organizations, admins see everything.
func (s *Service) Pending(ctx context.Context, viewerID int, viewerRole string) ([]domain.TransactionDetail, error) {
	var creatorID *int
	if viewerRole != domain.RoleAdmin {
		creatorID = &viewerID
	}
	transactions, err := s.repo.ListPending(ctx, creatorID)
	if err != nil {
		zap.L().Error("can't list pending transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// Approve runs the pending-to-approved transition. The repository applies the
// status flip and the balance delta atomically; a nil row back means another
// approval got there first.
func (s *Service) Approve(ctx context.Context, id, actorID int, actorRole string) (*domain.Transaction, error) {
	trn, err := s.repo.FindWithCreator(ctx, id)
	if err != nil {
		return nil, err
	}
	if trn == nil {
		return nil, ErrTransactionNotFound
	}
	if !domain.CanManageOrg(actorID, actorRole, trn.OrgCreatedBy) {
		return nil, ErrNotPermitted
	}
	if trn.Status != domain.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	approved, err := s.repo.Approve(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	if approved == nil {
		return nil, ErrAlreadyProcessed
	}
	zap.L().Info("transaction approved",
		zap.Int("transaction_id", id), zap.Int("actor_id", actorID),
		zap.String("type", approved.Type), zap.String("amount", approved.Amount.String()))
	return approved, nil
}

// Reject flips the entry to rejected; the balance is deliberately untouched.
func (s *Service) Reject(ctx context.Context, id, actorID int, actorRole string) (*domain.Transaction, error) {
	trn, err := s.repo.FindWithCreator(ctx, id)
	if err != nil {
		return nil, err
	}
	if trn == nil {
		return nil, ErrTransactionNotFound
	}
	if !domain.CanManageOrg(actorID, actorRole, trn.OrgCreatedBy) {
		return nil, ErrNotPermitted
	}
	if trn.Status != domain.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	rejected, err := s.repo.Reject(ctx, id)
	if err != nil {
		return nil, err
	}
	if rejected == nil {
		return nil, ErrAlreadyProcessed
	}
	return rejected, nil
}

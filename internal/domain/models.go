package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"
)

const (
	// StatusPending awaiting a decision from the creator or an admin.
	StatusPending string = "pending"
	// StatusApproved terminal, the only transition that moves a balance.
	StatusApproved string = "approved"
	// StatusRejected terminal, never touches the balance.
	StatusRejected string = "rejected"
)

const (
	TypeIncome  string = "income"
	TypeExpense string = "expense"
)

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Organization struct {
	ID        int             `db:"id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	CreatedBy int             `db:"created_by"`
	CreatedAt time.Time       `db:"created_at"`
}

type Membership struct {
	ID             int        `db:"id"`
	OrganizationID int        `db:"organization_id"`
	UserID         int        `db:"user_id"`
	Status         string     `db:"status"`
	RequestedAt    time.Time  `db:"requested_at"`
	ApprovedAt     *time.Time `db:"approved_at"`
}

type Transaction struct {
	ID             int             `db:"id"`
	OrganizationID int             `db:"organization_id"`
	UserID         int             `db:"user_id"`
	Type           string          `db:"type"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	Date           time.Time       `db:"date"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	ApprovedAt     *time.Time      `db:"approved_at"`
	ApprovedBy     *int            `db:"approved_by"`
}

// OrganizationListing is an organization annotated with the viewing
// user's own membership status, nil when the viewer never requested one.
type OrganizationListing struct {
	Organization
	MembershipStatus *string `db:"membership_status"`
}

// MembershipRequest is a pending membership joined with the organization
// and requester for review screens.
type MembershipRequest struct {
	ID               int       `db:"id"`
	OrganizationID   int       `db:"organization_id"`
	UserID           int       `db:"user_id"`
	RequestedAt      time.Time `db:"requested_at"`
	OrganizationName string    `db:"organization_name"`
	UserName         string    `db:"user_name"`
	UserEmail        string    `db:"user_email"`
}

// TransactionDetail is a transaction joined with the organization and
// submitter names.
type TransactionDetail struct {
	Transaction
	OrganizationName string `db:"organization_name"`
	UserName         string `db:"user_name"`
	UserEmail        string `db:"user_email"`
}

// MembershipWithCreator carries the owning organization's creator id so
// authorization can be decided without a second lookup.
type MembershipWithCreator struct {
	Membership
	OrgCreatedBy int `db:"created_by"`
}

type TransactionWithCreator struct {
	Transaction
	OrgCreatedBy int `db:"created_by"`
}

// CanManageOrg is the single authorization predicate for every membership
// and transaction decision: global admins act everywhere, everyone else
// only on organizations they created.
func CanManageOrg(actorID int, actorRole string, orgCreatedBy int) bool {
	return actorRole == RoleAdmin || actorID == orgCreatedBy
}

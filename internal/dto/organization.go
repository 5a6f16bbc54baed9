package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrganizationRequestDTO struct {
	Name           string          `json:"name" validate:"required,min=1,max=255" example:"Acme"`
	InitialBalance decimal.Decimal `json:"initialBalance" example:"100.00"`
}

type JoinOrganizationRequestDTO struct {
	OrganizationID int `json:"organizationId" validate:"required" example:"1"`
}

type SetBalanceRequestDTO struct {
	Balance *decimal.Decimal `json:"balance" validate:"required" example:"500.00"`
}

type OrganizationDTO struct {
	ID               int             `json:"id" example:"1"`
	Name             string          `json:"name" example:"Acme"`
	Balance          decimal.Decimal `json:"balance" example:"100.00"`
	CreatedBy        int             `json:"created_by" example:"1"`
	CreatedAt        time.Time       `json:"created_at"`
	MembershipStatus *string         `json:"membership_status,omitempty" example:"approved"`
}

type OrganizationResponseDTO struct {
	Organization *OrganizationDTO `json:"organization"`
}

type OrganizationsResponseDTO struct {
	Organizations []OrganizationDTO `json:"organizations"`
}

type MembershipDTO struct {
	ID             int        `json:"id" example:"1"`
	OrganizationID int        `json:"organization_id" example:"1"`
	UserID         int        `json:"user_id" example:"2"`
	Status         string     `json:"status" example:"pending"`
	RequestedAt    time.Time  `json:"requested_at"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
}

type MembershipResponseDTO struct {
	Membership MembershipDTO `json:"membership"`
}

type MembershipRequestDTO struct {
	ID               int       `json:"id" example:"1"`
	OrganizationID   int       `json:"organization_id" example:"1"`
	UserID           int       `json:"user_id" example:"2"`
	RequestedAt      time.Time `json:"requested_at"`
	OrganizationName string    `json:"organization_name" example:"Acme"`
	UserName         string    `json:"user_name" example:"Jane Doe"`
	UserEmail        string    `json:"user_email" example:"user@example.com"`
}

type PendingMembershipsResponseDTO struct {
	Memberships []MembershipRequestDTO `json:"memberships"`
}

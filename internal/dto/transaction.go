package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitTransactionRequestDTO struct {
	OrganizationID int             `json:"organizationId" validate:"required" example:"1"`
	Type           string          `json:"type" validate:"required,oneof=income expense" example:"expense"`
	Amount         decimal.Decimal `json:"amount" example:"30.00"`
	Description    string          `json:"description" validate:"required,max=500" example:"lunch"`
	Date           string          `json:"date" validate:"required,datetime=2006-01-02" example:"2025-01-15"`
}

type TransactionDTO struct {
	ID               int             `json:"id" example:"1"`
	OrganizationID   int             `json:"organization_id" example:"1"`
	UserID           int             `json:"user_id" example:"2"`
	Type             string          `json:"type" example:"expense"`
	Amount           decimal.Decimal `json:"amount" example:"30.00"`
	Description      string          `json:"description" example:"lunch"`
	Date             string          `json:"date" example:"2025-01-15"`
	Status           string          `json:"status" example:"pending"`
	CreatedAt        time.Time       `json:"created_at"`
	ApprovedAt       *time.Time      `json:"approved_at,omitempty"`
	ApprovedBy       *int            `json:"approved_by,omitempty"`
	OrganizationName string          `json:"organization_name,omitempty" example:"Acme"`
	UserName         string          `json:"user_name,omitempty" example:"Jane Doe"`
	UserEmail        string          `json:"user_email,omitempty" example:"user@example.com"`
}

type TransactionResponseDTO struct {
	Transaction TransactionDTO `json:"transaction"`
}

type TransactionsResponseDTO struct {
	Transactions []TransactionDTO `json:"transactions"`
}

package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dkravtsov/orgledger/internal/domain"
	"github.com/dkravtsov/orgledger/internal/dto"
	"github.com/dkravtsov/orgledger/internal/service/transactionservice"
	pkgauth "github.com/dkravtsov/orgledger/pkg/auth"
	"github.com/dkravtsov/orgledger/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Submit(ctx context.Context, orgID, userID int, trnType string, amount decimal.Decimal, description string, date time.Time) (*domain.Transaction, error)
	MyTransactions(ctx context.Context, userID int) ([]domain.TransactionDetail, error)
	OrgTransactions(ctx context.Context, userID int) ([]domain.TransactionDetail, error)
	Pending(ctx context.Context, viewerID int, viewerRole string) ([]domain.TransactionDetail, error)
	Approve(ctx context.Context, id, actorID int, actorRole string) (*domain.Transaction, error)
	Reject(ctx context.Context, id, actorID int, actorRole string) (*domain.Transaction, error)
}

type TransactionHandler struct {
	transactionService Service
	validate           *validator.Validate
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		validate:           validator.New(),
	}
}

// Submit godoc
//
//	@Summary		Submit a transaction
//	@Description	Create a pending income or expense entry for the caller's organization
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitTransactionRequestDTO	true	"Transaction body"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"All fields are required"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not an approved member"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/submit [post]
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.SubmitTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		return
	}

	trn, err := h.transactionService.Submit(r.Context(), req.OrganizationID, userID, req.Type, req.Amount, req.Description, date)
	if err != nil {
		switch {
		case errors.Is(err, transactionservice.ErrInvalidType),
			errors.Is(err, transactionservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, transactionservice.ErrNotApprovedMember):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.TransactionResponseDTO{Transaction: transactionDTO(trn)})
}

// MyTransactions godoc
//
//	@Summary		List caller's transactions
//	@Description	Ledger entries submitted by the caller, newest first
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TransactionsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/my-transactions [get]
func (h *TransactionHandler) MyTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	transactions, err := h.transactionService.MyTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionsResponseDTO{Transactions: detailDTOs(transactions)})
}

// OrgTransactions godoc
//
//	@Summary		List organization transactions
//	@Description	Every ledger entry of the caller's approved organization
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TransactionsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/org-transactions [get]
func (h *TransactionHandler) OrgTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	transactions, err := h.transactionService.OrgTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionsResponseDTO{Transactions: detailDTOs(transactions)})
}

// Pending godoc
//
//	@Summary		List pending transactions
//	@Description	Pending entries for organizations the caller created; admins see all
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TransactionsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/pending [get]
func (h *TransactionHandler) Pending(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	role, _ := r.Context().Value(pkgauth.RoleKey).(string)

	transactions, err := h.transactionService.Pending(r.Context(), userID, role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionsResponseDTO{Transactions: detailDTOs(transactions)})
}

// Approve godoc
//
//	@Summary		Approve a transaction
//	@Description	Flip a pending entry to approved and apply the balance delta atomically
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			transactionID	path		int	true	"Transaction id"
//	@Success		200				{object}	dto.TransactionResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid transaction id"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Not permitted"
//	@Failure		404				{object}	utils.Response	"Transaction not found"
//	@Failure		409				{object}	utils.Response	"Already processed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{transactionID}/approve [patch]
func (h *TransactionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.transactionService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a transaction
//	@Description	Flip a pending entry to rejected; the balance is untouched
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			transactionID	path		int	true	"Transaction id"
//	@Success		200				{object}	dto.TransactionResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid transaction id"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Not permitted"
//	@Failure		404				{object}	utils.Response	"Transaction not found"
//	@Failure		409				{object}	utils.Response	"Already processed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{transactionID}/reject [patch]
func (h *TransactionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.transactionService.Reject)
}

func (h *TransactionHandler) decide(w http.ResponseWriter, r *http.Request,
	decide func(ctx context.Context, id, actorID int, actorRole string) (*domain.Transaction, error)) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	role, _ := r.Context().Value(pkgauth.RoleKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "transactionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	trn, err := decide(r.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, transactionservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, transactionservice.ErrNotPermitted):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, transactionservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{Transaction: transactionDTO(trn)})
}

func transactionDTO(trn *domain.Transaction) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:             trn.ID,
		OrganizationID: trn.OrganizationID,
		UserID:         trn.UserID,
		Type:           trn.Type,
		Amount:         trn.Amount,
		Description:    trn.Description,
		Date:           trn.Date.Format(dateLayout),
		Status:         trn.Status,
		CreatedAt:      trn.CreatedAt,
		ApprovedAt:     trn.ApprovedAt,
		ApprovedBy:     trn.ApprovedBy,
	}
}

func detailDTOs(details []domain.TransactionDetail) []dto.TransactionDTO {
	response := make([]dto.TransactionDTO, len(details))
	for i, d := range details {
		response[i] = transactionDTO(&d.Transaction)
		response[i].OrganizationName = d.OrganizationName
		response[i].UserName = d.UserName
		response[i].UserEmail = d.UserEmail
	}
	return response
}

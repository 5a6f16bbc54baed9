package organizations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dkravtsov/orgledger/internal/domain"
	"github.com/dkravtsov/orgledger/internal/dto"
	"github.com/dkravtsov/orgledger/internal/service/orgservice"
	pkgauth "github.com/dkravtsov/orgledger/pkg/auth"
	"github.com/dkravtsov/orgledger/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, name string, initialBalance decimal.Decimal, creatorID int) (*domain.Organization, error)
	Join(ctx context.Context, orgID, userID int) (*domain.Membership, error)
	MyOrganization(ctx context.Context, userID int) (*domain.OrganizationListing, error)
	List(ctx context.Context, viewerID int) ([]domain.OrganizationListing, error)
	PendingMemberships(ctx context.Context, viewerID int, viewerRole string) ([]domain.MembershipRequest, error)
	ApproveMembership(ctx context.Context, id, actorID int, actorRole string) (*domain.Membership, error)
	RejectMembership(ctx context.Context, id, actorID int, actorRole string) (*domain.Membership, error)
	SetBalance(ctx context.Context, orgID, actorID int, actorRole string, balance decimal.Decimal) (*domain.Organization, error)
}

type OrganizationHandler struct {
	orgService Service
	validate   *validator.Validate
}

func New(orgService Service) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
		validate:   validator.New(),
	}
}

// MyOrganization godoc
//
//	@Summary		Get caller's organization
//	@Description	Return the organization the caller is an approved member of, or null
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OrganizationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/organizations/my-organization [get]
func (h *OrganizationHandler) MyOrganization(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	org, err := h.orgService.MyOrganization(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if org == nil {
		utils.RespondWithJSON(w, http.StatusOK, dto.OrganizationResponseDTO{Organization: nil})
		return
	}
	listing := listingDTO(org)
	utils.RespondWithJSON(w, http.StatusOK, dto.OrganizationResponseDTO{Organization: &listing})
}

// Create godoc
//
//	@Summary		Create an organization
//	@Description	Create an organization; the caller becomes its approved creator-member
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrganizationRequestDTO	true	"Create request body"
//	@Success		201		{object}	dto.OrganizationResponseDTO
//	@Failure		400		{object}	utils.Response	"Organization name is required"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/organizations/create [post]
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.CreateOrganizationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Organization name is required")
		return
	}

	org, err := h.orgService.Create(r.Context(), req.Name, req.InitialBalance, userID)
	if err != nil {
		if errors.Is(err, orgservice.ErrNegativeBalance) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	created := orgDTO(org)
	utils.RespondWithJSON(w, http.StatusCreated, dto.OrganizationResponseDTO{Organization: &created})
}

// Join godoc
//
//	@Summary		Request to join an organization
//	@Description	Create a pending membership request for the caller
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.JoinOrganizationRequestDTO	true	"Join request body"
//	@Success		201		{object}	dto.MembershipResponseDTO
//	@Failure		400		{object}	utils.Response	"Organization ID is required"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Organization not found"
//	@Failure		409		{object}	utils.Response	"Already a member or pending request exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/organizations/join [post]
func (h *OrganizationHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.JoinOrganizationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Organization ID is required")
		return
	}

	membership, err := h.orgService.Join(r.Context(), req.OrganizationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, orgservice.ErrOrganizationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orgservice.ErrAlreadyMember):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.MembershipResponseDTO{Membership: membershipDTO(membership)})
}

// List godoc
//
//	@Summary		List organizations
//	@Description	Return every organization with the caller's membership status attached
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OrganizationsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/organizations/list [get]
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	orgs, err := h.orgService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.OrganizationDTO, len(orgs))
	for i := range orgs {
		response[i] = listingDTO(&orgs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OrganizationsResponseDTO{Organizations: response})
}

// PendingMemberships godoc
//
//	@Summary		List pending membership requests
//	@Description	Pending requests for organizations the caller created; admins see all
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PendingMembershipsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/organizations/pending-memberships [get]
func (h *OrganizationHandler) PendingMemberships(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	role, _ := r.Context().Value(pkgauth.RoleKey).(string)

	requests, err := h.orgService.PendingMemberships(r.Context(), userID, role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MembershipRequestDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.MembershipRequestDTO{
			ID:               req.ID,
			OrganizationID:   req.OrganizationID,
			UserID:           req.UserID,
			RequestedAt:      req.RequestedAt,
			OrganizationName: req.OrganizationName,
			UserName:         req.UserName,
			UserEmail:        req.UserEmail,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PendingMembershipsResponseDTO{Memberships: response})
}

// ApproveMembership godoc
//
//	@Summary		Approve a membership request
//	@Description	Flip a pending membership to approved; creator or admin only
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			membershipID	path		int	true	"Membership id"
//	@Success		200				{object}	dto.MembershipResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid membership id"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Not permitted"
//	@Failure		404				{object}	utils.Response	"Membership request not found"
//	@Failure		409				{object}	utils.Response	"Already processed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/organizations/approve-membership/{membershipID} [patch]
func (h *OrganizationHandler) ApproveMembership(w http.ResponseWriter, r *http.Request) {
	h.decideMembership(w, r, h.orgService.ApproveMembership)
}

// RejectMembership godoc
//
//	@Summary		Reject a membership request
//	@Description	Flip a pending membership to rejected; creator or admin only
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			membershipID	path		int	true	"Membership id"
//	@Success		200				{object}	dto.MembershipResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid membership id"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Not permitted"
//	@Failure		404				{object}	utils.Response	"Membership request not found"
//	@Failure		409				{object}	utils.Response	"Already processed"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/organizations/reject-membership/{membershipID} [patch]
func (h *OrganizationHandler) RejectMembership(w http.ResponseWriter, r *http.Request) {
	h.decideMembership(w, r, h.orgService.RejectMembership)
}

func (h *OrganizationHandler) decideMembership(w http.ResponseWriter, r *http.Request,
	decide func(ctx context.Context, id, actorID int, actorRole string) (*domain.Membership, error)) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	role, _ := r.Context().Value(pkgauth.RoleKey).(string)

	id, err := strconv.Atoi(chi.URLParam(r, "membershipID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid membership id")
		return
	}

	membership, err := decide(r.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, orgservice.ErrMembershipNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orgservice.ErrNotPermitted):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, orgservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MembershipResponseDTO{Membership: membershipDTO(membership)})
}

// SetBalance godoc
//
//	@Summary		Set organization balance
//	@Description	Admin-only direct balance override; bypasses the ledger
//	@Tags			Organizations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			organizationID	path		int							true	"Organization id"
//	@Param			request			body		dto.SetBalanceRequestDTO	true	"New balance"
//	@Success		200				{object}	dto.OrganizationResponseDTO
//	@Failure		400				{object}	utils.Response	"Balance must be a valid non-negative number"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		403				{object}	utils.Response	"Admin access required"
//	@Failure		404				{object}	utils.Response	"Organization not found"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/organizations/set-balance/{organizationID} [post]
func (h *OrganizationHandler) SetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)
	role, _ := r.Context().Value(pkgauth.RoleKey).(string)

	orgID, err := strconv.Atoi(chi.URLParam(r, "organizationID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid organization id")
		return
	}

	var req dto.SetBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Balance is required")
		return
	}

	org, err := h.orgService.SetBalance(r.Context(), orgID, userID, role, *req.Balance)
	if err != nil {
		switch {
		case errors.Is(err, orgservice.ErrNegativeBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, orgservice.ErrNotPermitted):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, orgservice.ErrOrganizationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	updated := orgDTO(org)
	utils.RespondWithJSON(w, http.StatusOK, dto.OrganizationResponseDTO{Organization: &updated})
}

func orgDTO(org *domain.Organization) dto.OrganizationDTO {
	return dto.OrganizationDTO{
		ID:        org.ID,
		Name:      org.Name,
		Balance:   org.Balance,
		CreatedBy: org.CreatedBy,
		CreatedAt: org.CreatedAt,
	}
}

func listingDTO(org *domain.OrganizationListing) dto.OrganizationDTO {
	d := orgDTO(&org.Organization)
	d.MembershipStatus = org.MembershipStatus
	return d
}

func membershipDTO(m *domain.Membership) dto.MembershipDTO {
	return dto.MembershipDTO{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		Status:         m.Status,
		RequestedAt:    m.RequestedAt,
		ApprovedAt:     m.ApprovedAt,
	}
}

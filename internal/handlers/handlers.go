package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dkravtsov/orgledger/docs"
	authhandlers "github.com/dkravtsov/orgledger/internal/handlers/auth"
	orghandlers "github.com/dkravtsov/orgledger/internal/handlers/organizations"
	transactionhandlers "github.com/dkravtsov/orgledger/internal/handlers/transactions"
	"github.com/dkravtsov/orgledger/internal/service"
	"github.com/dkravtsov/orgledger/pkg/auth"
	"github.com/dkravtsov/orgledger/pkg/utils"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandler interface {
	MyOrganization(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	PendingMemberships(w http.ResponseWriter, r *http.Request)
	ApproveMembership(w http.ResponseWriter, r *http.Request)
	RejectMembership(w http.ResponseWriter, r *http.Request)
	SetBalance(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	MyTransactions(w http.ResponseWriter, r *http.Request)
	OrgTransactions(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	OrganizationHandler OrganizationHandler
	TransactionHandler  TransactionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		OrganizationHandler: orghandlers.New(s.OrganizationService),
		TransactionHandler:  transactionhandlers.New(s.TransactionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, allowedOrigins []string) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.With(auth.AuthMiddleware).Get("/me", h.AuthHandler.Me)
		})

		r.Route("/organizations", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/my-organization", h.OrganizationHandler.MyOrganization)
			r.Post("/create", h.OrganizationHandler.Create)
			r.Post("/join", h.OrganizationHandler.Join)
			r.Get("/list", h.OrganizationHandler.List)
			r.Get("/pending-memberships", h.OrganizationHandler.PendingMemberships)
			r.Patch("/approve-membership/{membershipID}", h.OrganizationHandler.ApproveMembership)
			r.Patch("/reject-membership/{membershipID}", h.OrganizationHandler.RejectMembership)
			// legacy POST shape kept for old clients
			r.Post("/approve-membership/{membershipID}", h.OrganizationHandler.ApproveMembership)
			r.Post("/reject-membership/{membershipID}", h.OrganizationHandler.RejectMembership)
			r.With(auth.RequireAdmin).Post("/set-balance/{organizationID}", h.OrganizationHandler.SetBalance)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/submit", h.TransactionHandler.Submit)
			r.Get("/my-transactions", h.TransactionHandler.MyTransactions)
			r.Get("/org-transactions", h.TransactionHandler.OrgTransactions)
			r.Get("/pending", h.TransactionHandler.Pending)
			r.Patch("/{transactionID}/approve", h.TransactionHandler.Approve)
			r.Patch("/{transactionID}/reject", h.TransactionHandler.Reject)
			// legacy POST shape kept for old clients
			r.Post("/approve/{transactionID}", h.TransactionHandler.Approve)
			r.Post("/reject/{transactionID}", h.TransactionHandler.Reject)
		})
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

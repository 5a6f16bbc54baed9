package service

import (
	"time"

	"github.com/dkravtsov/orgledger/internal/handlers/auth"
	"github.com/dkravtsov/orgledger/internal/handlers/organizations"
	"github.com/dkravtsov/orgledger/internal/handlers/transactions"

	pkgauth "github.com/dkravtsov/orgledger/pkg/auth"

	"github.com/dkravtsov/orgledger/internal/repo"
	authservice "github.com/dkravtsov/orgledger/internal/service/authservice"
	orgservice "github.com/dkravtsov/orgledger/internal/service/orgservice"
	transactionservice "github.com/dkravtsov/orgledger/internal/service/transactionservice"
)

type Services struct {
	AuthService         auth.Service
	OrganizationService organizations.Service
	TransactionService  transactions.Service
}

func New(repo *repo.Repositories, tokenTTL time.Duration) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{}, tokenTTL)
	orgService := orgservice.New(repo.OrgRepo, repo.MembershipRepo)
	transactionService := transactionservice.New(repo.TransactionRepo, repo.MembershipRepo, repo.OrgRepo)

	return &Services{
		AuthService:         authService,
		OrganizationService: orgService,
		TransactionService:  transactionService,
	}
}

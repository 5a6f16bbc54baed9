package repo

import (
	"github.com/dkravtsov/orgledger/internal/pg"
	membershiprepo "github.com/dkravtsov/orgledger/internal/repo/membership-repo"
	orgrepo "github.com/dkravtsov/orgledger/internal/repo/org-repo"
	transactionrepo "github.com/dkravtsov/orgledger/internal/repo/transaction-repo"
	userrepo "github.com/dkravtsov/orgledger/internal/repo/user-repo"
	"github.com/dkravtsov/orgledger/internal/service/authservice"
	"github.com/dkravtsov/orgledger/internal/service/orgservice"
	"github.com/dkravtsov/orgledger/internal/service/transactionservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	OrgRepo         orgservice.OrgRepo
	MembershipRepo  orgservice.MembershipRepo
	TransactionRepo transactionservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	orgRepo := orgrepo.New(conn, txManager)
	membershipRepo := membershiprepo.New(conn)
	transactionRepo := transactionrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:        userRepo,
		OrgRepo:         orgRepo,
		MembershipRepo:  membershipRepo,
		TransactionRepo: transactionRepo,
	}
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkravtsov/orgledger/internal/repo"
	"github.com/dkravtsov/orgledger/internal/service/authservice"
	"github.com/dkravtsov/orgledger/internal/service/orgservice"
	"github.com/dkravtsov/orgledger/internal/service/transactionservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockOrgRepo := orgservice.NewMockOrgRepo(ctrl)
	mockMembershipRepo := orgservice.NewMockMembershipRepo(ctrl)
	mockTransactionRepo := transactionservice.NewMockRepo(ctrl)

	repos := &repo.Repositories{
		UserRepo:        mockUserRepo,
		OrgRepo:         mockOrgRepo,
		MembershipRepo:  mockMembershipRepo,
		TransactionRepo: mockTransactionRepo,
	}

	services := New(repos, 24*time.Hour)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.OrganizationService)
	assert.NotNil(t, services.TransactionService)
}

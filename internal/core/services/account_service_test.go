package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
	portssvc "github.com/medforge/hospital_ledger/internal/core/ports/services"
	"github.com/medforge/hospital_ledger/internal/core/services"
	"github.com/medforge/hospital_ledger/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	hospitalID      string
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.hospitalID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1100",
		Name:        "Patient Accounts Receivable",
		AccountType: string(domain.Asset),
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.hospitalID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(suite.hospitalID, account.HospitalID)
	suite.Equal("1100", account.Code)
	suite.Equal(domain.Asset, account.AccountType)
	suite.True(account.IsActive)
	suite.Equal(suite.userID, account.CreatedBy)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "9999",
		Name:        "Mystery",
		AccountType: "SUSPENSE",
	}

	_, err := suite.service.CreateAccount(ctx, suite.hospitalID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash",
		AccountType: string(domain.Asset),
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(fmt.Errorf("%w: account code 1000 already exists", apperrors.ErrConflict)).Once()

	_, err := suite.service.CreateAccount(ctx, suite.hospitalID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentInOtherHospital() {
	ctx := context.Background()
	parent := domain.Account{
		AccountID:  uuid.NewString(),
		HospitalID: uuid.NewString(),
		IsActive:   true,
	}
	req := dto.CreateAccountRequest{
		Code:            "1110",
		Name:            "Insurance Claims Receivable",
		AccountType:     string(domain.Asset),
		ParentAccountID: parent.AccountID,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, parent.AccountID).Return(&parent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.hospitalID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_MutableFieldsOnly() {
	ctx := context.Background()
	existing := domain.Account{
		AccountID:   uuid.NewString(),
		HospitalID:  suite.hospitalID,
		Code:        "5000",
		Name:        "Salaries",
		AccountType: domain.Expense,
		IsActive:    true,
	}
	newName := "Salaries and Wages Expense"
	inactive := false
	req := dto.UpdateAccountRequest{Name: &newName, IsActive: &inactive}

	suite.mockAccountRepo.On("FindAccountByID", ctx, existing.AccountID).Return(&existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.hospitalID, existing.AccountID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.False(updated.IsActive)
	suite.Equal(domain.Expense, updated.AccountType)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SelfParentRejected() {
	ctx := context.Background()
	existing := domain.Account{
		AccountID:   uuid.NewString(),
		HospitalID:  suite.hospitalID,
		AccountType: domain.Asset,
		IsActive:    true,
	}
	req := dto.UpdateAccountRequest{ParentAccountID: &existing.AccountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, existing.AccountID).Return(&existing, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, suite.hospitalID, existing.AccountID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_ForeignHospital() {
	ctx := context.Background()
	account := domain.Account{
		AccountID:  uuid.NewString(),
		HospitalID: uuid.NewString(),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()

	_, err := suite.service.GetAccountByID(ctx, suite.hospitalID, account.AccountID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestSeedDefaultChart_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("CountAccounts", ctx, suite.hospitalID).Return(int64(0), nil).Once()
	suite.mockAccountRepo.On("SaveAccounts", ctx, mock.AnythingOfType("[]domain.Account")).Return(nil).Once()

	accounts, err := suite.service.SeedDefaultChart(ctx, suite.hospitalID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(accounts)

	codes := make(map[string]bool, len(accounts))
	types := make(map[domain.AccountType]bool)
	for _, a := range accounts {
		suite.Equal(suite.hospitalID, a.HospitalID)
		suite.True(a.IsActive)
		suite.False(codes[a.Code], "codes must be unique")
		codes[a.Code] = true
		types[a.AccountType] = true
	}
	// Every account type is represented in the starter chart.
	suite.Len(types, 5)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestSeedDefaultChart_AlreadySeeded() {
	ctx := context.Background()

	suite.mockAccountRepo.On("CountAccounts", ctx, suite.hospitalID).Return(int64(7), nil).Once()

	_, err := suite.service.SeedDefaultChart(ctx, suite.hospitalID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccounts", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

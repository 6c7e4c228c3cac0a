package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
	portssvc "github.com/medforge/hospital_ledger/internal/core/ports/services"
	"github.com/medforge/hospital_ledger/internal/core/services"
	"github.com/medforge/hospital_ledger/internal/dto"
)

type BenefitServiceTestSuite struct {
	suite.Suite
	service portssvc.BenefitSvcFacade
}

func (suite *BenefitServiceTestSuite) SetupTest() {
	suite.service = services.NewBenefitService()
}

func activePolicy(priority int, provider string) dto.PolicyInput {
	return dto.PolicyInput{
		Priority:     priority,
		ProviderName: provider,
		NetworkTier:  string(domain.InNetwork),
		CoverageType: string(domain.CoverageStandard),
		IsActive:     true,
	}
}

func (suite *BenefitServiceTestSuite) TestSplit_FiltersInactiveAndExpired() {
	ctx := context.Background()
	expired := time.Now().Add(-48 * time.Hour)

	inactive := activePolicy(1, "Lapsed Mutual")
	inactive.IsActive = false
	old := activePolicy(2, "Expired Health")
	old.ExpiryDate = &expired

	req := dto.SplitRequest{
		TotalAmount: decimal.NewFromInt(1000),
		Category:    string(domain.CategoryGeneral),
		Policies:    []dto.PolicyInput{inactive, old, activePolicy(3, "Acme Care")},
	}

	split, err := suite.service.Split(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(split.PerPolicy, 1)
	suite.Equal("Acme Care", split.PerPolicy[0].ProviderName)
}

func (suite *BenefitServiceTestSuite) TestSplit_NoPoliciesIsFullPatientResponsibility() {
	ctx := context.Background()
	req := dto.SplitRequest{
		TotalAmount: decimal.NewFromInt(320),
		Category:    string(domain.CategoryGeneral),
	}

	split, err := suite.service.Split(ctx, req)

	suite.Require().NoError(err)
	suite.Empty(split.PerPolicy)
	suite.True(split.PatientResponsibility.Equal(decimal.NewFromInt(320)))
}

func (suite *BenefitServiceTestSuite) TestSplit_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.SplitRequest{
		TotalAmount: decimal.NewFromInt(-5),
		Category:    string(domain.CategoryGeneral),
	}

	_, err := suite.service.Split(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BenefitServiceTestSuite) TestSplit_UnknownCategoryRejected() {
	ctx := context.Background()
	req := dto.SplitRequest{
		TotalAmount: decimal.NewFromInt(100),
		Category:    "EXPERIMENTAL",
		Policies:    []dto.PolicyInput{activePolicy(1, "Acme Care")},
	}

	_, err := suite.service.Split(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestBenefitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BenefitServiceTestSuite))
}

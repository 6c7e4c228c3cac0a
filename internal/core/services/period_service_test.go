package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/medforge/hospital_ledger/internal/apperrors"
	"github.com/medforge/hospital_ledger/internal/core/domain"
	portssvc "github.com/medforge/hospital_ledger/internal/core/ports/services"
	"github.com/medforge/hospital_ledger/internal/core/services"
	"github.com/medforge/hospital_ledger/internal/dto"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	mockPeriodRepo *MockPeriodRepository
	service        portssvc.PeriodSvcFacade
	hospitalID     string
	userID         string
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.mockPeriodRepo = new(MockPeriodRepository)
	suite.service = services.NewPeriodService(suite.mockPeriodRepo)
	suite.hospitalID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "FY2026-Q2",
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockPeriodRepo.On("FindOverlappingPeriods", ctx, suite.hospitalID, req.StartDate, req.EndDate).Return([]domain.FiscalPeriod{}, nil).Once()
	suite.mockPeriodRepo.On("SavePeriod", ctx, mock.AnythingOfType("domain.FiscalPeriod")).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, suite.hospitalID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(period.PeriodID)
	suite.Equal(suite.hospitalID, period.HospitalID)
	suite.False(period.IsClosed)
	suite.Nil(period.ClosedBy)

	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_InvertedRange() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "FY2026-Q2",
		StartDate: time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreatePeriod(ctx, suite.hospitalID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Overlap() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{
		Name:      "FY2026-Q2",
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	existing := domain.FiscalPeriod{
		PeriodID:   uuid.NewString(),
		HospitalID: suite.hospitalID,
		Name:       "FY2026-H1",
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	suite.mockPeriodRepo.On("FindOverlappingPeriods", ctx, suite.hospitalID, req.StartDate, req.EndDate).Return([]domain.FiscalPeriod{existing}, nil).Once()

	_, err := suite.service.CreatePeriod(ctx, suite.hospitalID, req, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "SavePeriod", mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_Success() {
	ctx := context.Background()
	period := domain.FiscalPeriod{
		PeriodID:   uuid.NewString(),
		HospitalID: suite.hospitalID,
		Name:       "FY2026-Q1",
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(&period, nil).Once()
	suite.mockPeriodRepo.On("ClosePeriod", ctx, period.PeriodID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	closed, err := suite.service.ClosePeriod(ctx, suite.hospitalID, period.PeriodID, suite.userID)

	suite.Require().NoError(err)
	suite.True(closed.IsClosed)
	suite.Require().NotNil(closed.ClosedBy)
	suite.Equal(suite.userID, *closed.ClosedBy)
	suite.NotNil(closed.ClosedAt)

	suite.mockPeriodRepo.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	closedBy := uuid.NewString()
	closedAt := time.Now().Add(-24 * time.Hour)
	period := domain.FiscalPeriod{
		PeriodID:   uuid.NewString(),
		HospitalID: suite.hospitalID,
		IsClosed:   true,
		ClosedBy:   &closedBy,
		ClosedAt:   &closedAt,
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(&period, nil).Once()

	_, err := suite.service.ClosePeriod(ctx, suite.hospitalID, period.PeriodID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.mockPeriodRepo.AssertNotCalled(suite.T(), "ClosePeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestGetPeriodByID_ForeignHospital() {
	ctx := context.Background()
	period := domain.FiscalPeriod{
		PeriodID:   uuid.NewString(),
		HospitalID: uuid.NewString(),
	}

	suite.mockPeriodRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(&period, nil).Once()

	_, err := suite.service.GetPeriodByID(ctx, suite.hospitalID, period.PeriodID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/carrocomidas/pos_backend/internal/apperrors"
	"github.com/carrocomidas/pos_backend/internal/core/domain"
	portssvc "github.com/carrocomidas/pos_backend/internal/core/ports/services"
	"github.com/carrocomidas/pos_backend/internal/core/services"
	"github.com/carrocomidas/pos_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type MovementServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockRegisterRepo *MockRegisterRepository
	service          portssvc.MovementSvcFacade
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockRegisterRepo = new(MockRegisterRepository)
	suite.service = services.NewMovementService(suite.mockMovementRepo, suite.mockRegisterRepo)
}

// --- Test Cases ---

func (suite *MovementServiceTestSuite) TestRecordMovement_Success() {
	ctx := context.Background()
	registerID := uuid.NewString()
	open := &domain.Register{RegisterID: registerID, Status: domain.RegisterOpen}
	req := dto.RecordMovementRequest{
		Type:   "OUTFLOW",
		Amount: decimal.NewFromInt(25),
		Reason: "Compra de hielo",
	}

	suite.mockRegisterRepo.On("FindOpenRegister", ctx).Return(open, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.RegisterID == registerID &&
			m.Type == domain.Outflow &&
			m.Amount.Equal(req.Amount) &&
			m.Reason == req.Reason &&
			m.MovementID != "" &&
			!m.OccurredAt.IsZero()
	})).Return(nil).Once()

	movement, err := suite.service.RecordMovement(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(movement)
	suite.Equal(domain.Outflow, movement.Type)
	suite.Equal(registerID, movement.RegisterID)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestRecordMovement_NoOpenRegister() {
	ctx := context.Background()
	req := dto.RecordMovementRequest{
		Type:   "INFLOW",
		Amount: decimal.NewFromInt(10),
	}

	suite.mockRegisterRepo.On("FindOpenRegister", ctx).Return(nil, nil).Once()

	movement, err := suite.service.RecordMovement(ctx, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrNoOpenRegister)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *MovementServiceTestSuite) TestRecordMovement_InvalidType() {
	ctx := context.Background()
	req := dto.RecordMovementRequest{
		Type:   "SIDEWAYS",
		Amount: decimal.NewFromInt(10),
	}

	movement, err := suite.service.RecordMovement(ctx, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "FindOpenRegister")
}

func (suite *MovementServiceTestSuite) TestRecordMovement_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordMovementRequest{
		Type:   "INFLOW",
		Amount: decimal.Zero,
	}

	movement, err := suite.service.RecordMovement(ctx, req)

	suite.Require().Error(err)
	suite.Nil(movement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement")
}

func (suite *MovementServiceTestSuite) TestListMovementsForRegister_Success() {
	ctx := context.Background()
	registerID := uuid.NewString()
	register := &domain.Register{RegisterID: registerID, Status: domain.RegisterClosed}
	movements := []domain.Movement{
		{MovementID: uuid.NewString(), RegisterID: registerID, Type: domain.Inflow, Amount: decimal.NewFromInt(5)},
	}

	suite.mockRegisterRepo.On("FindRegisterByID", ctx, registerID).Return(register, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByRegisterID", ctx, registerID).Return(movements, nil).Once()

	result, err := suite.service.ListMovementsForRegister(ctx, registerID)

	suite.Require().NoError(err)
	suite.Equal(movements, result)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestListMovementsForRegister_UnknownRegister() {
	ctx := context.Background()
	registerID := uuid.NewString()

	suite.mockRegisterRepo.On("FindRegisterByID", ctx, registerID).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ListMovementsForRegister(ctx, registerID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "FindMovementsByRegisterID")
}

func (suite *MovementServiceTestSuite) TestListMovementsForDate() {
	ctx := context.Background()
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	movements := []domain.Movement{
		{MovementID: uuid.NewString(), Type: domain.Outflow, Amount: decimal.NewFromInt(12)},
	}

	suite.mockMovementRepo.On("FindMovementsByDate", ctx, date).Return(movements, nil).Once()

	result, err := suite.service.ListMovementsForDate(ctx, date)

	suite.Require().NoError(err)
	suite.Equal(movements, result)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}

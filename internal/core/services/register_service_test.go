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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RegisterRepository ---
type MockRegisterRepository struct {
	mock.Mock
}

func (m *MockRegisterRepository) FindOpenRegister(ctx context.Context) (*domain.Register, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Register), args.Error(1)
}

func (m *MockRegisterRepository) FindRegisterByID(ctx context.Context, registerID string) (*domain.Register, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Register), args.Error(1)
}

func (m *MockRegisterRepository) SaveRegister(ctx context.Context, register domain.Register) error {
	args := m.Called(ctx, register)
	return args.Error(0)
}

func (m *MockRegisterRepository) CloseRegister(ctx context.Context, registerID string, closingAmount decimal.Decimal, closedAt time.Time) error {
	args := m.Called(ctx, registerID, closingAmount, closedAt)
	return args.Error(0)
}

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementsByRegisterID(ctx context.Context, registerID string) ([]domain.Movement, error) {
	args := m.Called(ctx, registerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindMovementsByDate(ctx context.Context, date time.Time) ([]domain.Movement, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

// --- Test Suite ---
type RegisterServiceTestSuite struct {
	suite.Suite
	mockRegisterRepo *MockRegisterRepository
	mockMovementRepo *MockMovementRepository
	service          portssvc.RegisterSvcFacade
}

func (suite *RegisterServiceTestSuite) SetupTest() {
	suite.mockRegisterRepo = new(MockRegisterRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.service = services.NewRegisterService(suite.mockRegisterRepo, suite.mockMovementRepo)
}

// --- Test Cases ---

func (suite *RegisterServiceTestSuite) TestOpenRegister_Success() {
	ctx := context.Background()
	req := dto.OpenRegisterRequest{
		OpeningAmount: decimal.NewFromInt(100),
	}

	suite.mockRegisterRepo.On("SaveRegister", ctx, mock.MatchedBy(func(r domain.Register) bool {
		return r.OpeningAmount.Equal(req.OpeningAmount) &&
			r.Status == domain.RegisterOpen &&
			r.RegisterID != "" &&
			!r.OpenedAt.IsZero() &&
			r.ClosingAmount == nil &&
			r.ClosedAt == nil
	})).Return(nil).Once()

	register, err := suite.service.OpenRegister(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(register)
	suite.True(register.OpeningAmount.Equal(req.OpeningAmount))
	suite.Equal(domain.RegisterOpen, register.Status)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestOpenRegister_NegativeAmount() {
	ctx := context.Background()
	req := dto.OpenRegisterRequest{
		OpeningAmount: decimal.NewFromInt(-5),
	}

	register, err := suite.service.OpenRegister(ctx, req)

	suite.Require().Error(err)
	suite.Nil(register)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveRegister")
}

func (suite *RegisterServiceTestSuite) TestOpenRegister_Conflict() {
	ctx := context.Background()
	req := dto.OpenRegisterRequest{
		OpeningAmount: decimal.NewFromInt(50),
	}

	suite.mockRegisterRepo.On("SaveRegister", ctx, mock.AnythingOfType("domain.Register")).Return(apperrors.ErrConflict).Once()

	register, err := suite.service.OpenRegister(ctx, req)

	suite.Require().Error(err)
	suite.Nil(register)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestCloseRegister_Success() {
	ctx := context.Background()
	registerID := uuid.NewString()
	open := &domain.Register{
		RegisterID:    registerID,
		OpeningAmount: decimal.NewFromInt(100),
		OpenedAt:      time.Now().UTC().Add(-8 * time.Hour),
		Status:        domain.RegisterOpen,
	}
	movements := []domain.Movement{
		{MovementID: uuid.NewString(), RegisterID: registerID, Type: domain.Inflow, Amount: decimal.NewFromInt(40)},
		{MovementID: uuid.NewString(), RegisterID: registerID, Type: domain.Outflow, Amount: decimal.NewFromInt(15)},
	}
	req := dto.CloseRegisterRequest{
		ClosingAmount: decimal.NewFromInt(120),
	}

	suite.mockRegisterRepo.On("FindOpenRegister", ctx).Return(open, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByRegisterID", ctx, registerID).Return(movements, nil).Once()
	suite.mockRegisterRepo.On("CloseRegister", ctx, registerID, req.ClosingAmount, mock.AnythingOfType("time.Time")).Return(nil).Once()

	summary, err := suite.service.CloseRegister(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	// expected = 100 + 40 - 15 = 125, counted = 120, difference = -5
	suite.True(summary.ExpectedCash.Equal(decimal.NewFromInt(125)), "expected cash was %s", summary.ExpectedCash)
	suite.True(summary.CountedCash.Equal(decimal.NewFromInt(120)))
	suite.True(summary.Difference.Equal(decimal.NewFromInt(-5)), "difference was %s", summary.Difference)
	suite.Equal(domain.RegisterClosed, summary.Register.Status)
	suite.Require().NotNil(summary.Register.ClosedAt)
	suite.Require().NotNil(summary.Register.ClosingAmount)
	suite.True(summary.Register.ClosingAmount.Equal(req.ClosingAmount))
	suite.mockRegisterRepo.AssertExpectations(suite.T())
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestCloseRegister_NoneOpen() {
	ctx := context.Background()
	req := dto.CloseRegisterRequest{
		ClosingAmount: decimal.NewFromInt(120),
	}

	suite.mockRegisterRepo.On("FindOpenRegister", ctx).Return(nil, nil).Once()

	summary, err := suite.service.CloseRegister(ctx, req)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "CloseRegister")
}

func (suite *RegisterServiceTestSuite) TestCloseRegister_RepoError() {
	ctx := context.Background()
	registerID := uuid.NewString()
	open := &domain.Register{
		RegisterID:    registerID,
		OpeningAmount: decimal.NewFromInt(100),
		Status:        domain.RegisterOpen,
	}
	req := dto.CloseRegisterRequest{
		ClosingAmount: decimal.NewFromInt(90),
	}
	expectedErr := assert.AnError

	suite.mockRegisterRepo.On("FindOpenRegister", ctx).Return(open, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByRegisterID", ctx, registerID).Return([]domain.Movement{}, nil).Once()
	suite.mockRegisterRepo.On("CloseRegister", ctx, registerID, req.ClosingAmount, mock.AnythingOfType("time.Time")).Return(expectedErr).Once()

	summary, err := suite.service.CloseRegister(ctx, req)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestGetOpenRegister_NoneOpen() {
	ctx := context.Background()

	suite.mockRegisterRepo.On("FindOpenRegister", ctx).Return(nil, nil).Once()

	register, err := suite.service.GetOpenRegister(ctx)

	suite.Require().NoError(err)
	suite.Nil(register)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestIsRegisterOpen() {
	ctx := context.Background()
	open := &domain.Register{RegisterID: uuid.NewString(), Status: domain.RegisterOpen}

	suite.mockRegisterRepo.On("FindOpenRegister", ctx).Return(open, nil).Once()

	isOpen, err := suite.service.IsRegisterOpen(ctx)

	suite.Require().NoError(err)
	suite.True(isOpen)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestGetRegisterBalance_Success() {
	ctx := context.Background()
	registerID := uuid.NewString()
	register := &domain.Register{
		RegisterID:    registerID,
		OpeningAmount: decimal.NewFromInt(50),
		Status:        domain.RegisterOpen,
	}
	movements := []domain.Movement{
		{MovementID: uuid.NewString(), RegisterID: registerID, Type: domain.Outflow, Amount: decimal.NewFromInt(20)},
	}

	suite.mockRegisterRepo.On("FindRegisterByID", ctx, registerID).Return(register, nil).Once()
	suite.mockMovementRepo.On("FindMovementsByRegisterID", ctx, registerID).Return(movements, nil).Once()

	balance, err := suite.service.GetRegisterBalance(ctx, registerID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(30)), "balance was %s", balance)
	suite.mockRegisterRepo.AssertExpectations(suite.T())
}

func (suite *RegisterServiceTestSuite) TestGetRegisterBalance_NotFound() {
	ctx := context.Background()
	registerID := uuid.NewString()

	suite.mockRegisterRepo.On("FindRegisterByID", ctx, registerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetRegisterBalance(ctx, registerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "FindMovementsByRegisterID")
}

// --- Run Suite ---
func TestRegisterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegisterServiceTestSuite))
}

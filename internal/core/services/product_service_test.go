package services_test

import (
	"context"
	"testing"

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

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ProductServiceTestSuite) TestCreateProduct_DefaultsToAvailable() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:     "Completo italiano",
		Price:    decimal.RequireFromString("2500"),
		Category: "Completos",
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == req.Name && p.Available && p.ProductID != "" && p.Price.Equal(req.Price)
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.True(product.Available)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_ExplicitlyUnavailable() {
	ctx := context.Background()
	unavailable := false
	req := dto.CreateProductRequest{
		Name:      "Item de temporada",
		Price:     decimal.RequireFromString("3000"),
		Category:  "Especiales",
		Available: &unavailable,
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return !p.Available
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().NoError(err)
	suite.False(product.Available)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_SaveError() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:     "Completo",
		Price:    decimal.RequireFromString("2000"),
		Category: "Completos",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(expectedErr).Once()

	product, err := suite.service.CreateProduct(ctx, req)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_Success() {
	ctx := context.Background()
	productID := uuid.NewString()
	req := dto.UpdateProductRequest{
		Name:      "Completo dinámico",
		Price:     decimal.RequireFromString("2800"),
		Category:  "Completos",
		Available: true,
	}

	suite.mockRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.ProductID == productID && p.Name == req.Name && p.Price.Equal(req.Price)
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, productID, req)

	suite.Require().NoError(err)
	suite.Equal(productID, product.ProductID)
	suite.Equal(req.Name, product.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NotFound() {
	ctx := context.Background()
	productID := uuid.NewString()
	req := dto.UpdateProductRequest{
		Name:     "Fantasma",
		Price:    decimal.RequireFromString("1000"),
		Category: "Otros",
	}

	suite.mockRepo.On("UpdateProduct", ctx, mock.AnythingOfType("domain.Product")).Return(apperrors.ErrNotFound).Once()

	product, err := suite.service.UpdateProduct(ctx, productID, req)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_Success() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockRepo.On("DeleteProduct", ctx, productID).Return(nil).Once()

	err := suite.service.DeleteProduct(ctx, productID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestSearchProducts() {
	ctx := context.Background()
	products := []domain.Product{{ProductID: uuid.NewString(), Name: "Completo italiano"}}

	suite.mockRepo.On("SearchProductsByName", ctx, "italiano").Return(products, nil).Once()

	result, err := suite.service.SearchProducts(ctx, "italiano")

	suite.Require().NoError(err)
	suite.Equal(products, result)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

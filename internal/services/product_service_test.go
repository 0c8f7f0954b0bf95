package services_test

import (
	"context"
	"fmt"
	"testing"

	"techgear/internal/models"
	"techgear/internal/repositories"
	"techgear/internal/services"
	"techgear/pkg/rabbitmq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, sort repositories.SortOrder) ([]models.ProductRow, error) {
	args := m.Called(ctx, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductRow), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*models.ProductRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductRow), args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, term string) ([]models.ProductRow, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductRow), args.Error(1)
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.ProductRow, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductRow), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id uint, product *models.Product) (int64, error) {
	args := m.Called(ctx, id, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryStat), args.Error(1)
}

// MockPublisher records published product events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishProductEvent(ctx context.Context, event rabbitmq.ProductEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func validInput() models.ProductInput {
	return models.ProductInput{
		Name:           "Smartphone",
		Price:          499.0,
		ManufacturerID: 1,
		Description:    "Pocket computer",
		StockQuantity:  10,
	}
}

func eventOfType(eventType string, productID uint) interface{} {
	return mock.MatchedBy(func(e rabbitmq.ProductEvent) bool {
		return e.Type == eventType && e.ProductID == productID
	})
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, zap.NewNop())
	ctx := context.Background()

	expected := []models.ProductRow{{ID: 1, Name: "A", Price: 1}, {ID: 2, Name: "B", Price: 2}}
	mockRepo.On("List", ctx, repositories.SortPriceAsc).Return(expected, nil).Once()

	rows, err := service.ListProducts(ctx, repositories.SortPriceAsc)
	assert.NoError(t, err)
	assert.Equal(t, expected, rows)

	mockRepo.On("List", ctx, repositories.SortNone).Return(nil, fmt.Errorf("disk I/O error")).Once()
	_, err = service.ListProducts(ctx, repositories.SortNone)
	assert.ErrorIs(t, err, services.ErrStorage)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, zap.NewNop())
	ctx := context.Background()

	expected := &models.ProductRow{ID: 1, Name: "Product A", Price: 10.0, StockQuantity: 100}
	mockRepo.On("GetByID", ctx, uint(1)).Return(expected, nil).Once()
	product, err := service.GetProduct(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockRepo.On("GetByID", ctx, uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProduct(ctx, 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, product)

	mockRepo.On("GetByID", ctx, uint(5)).Return(nil, fmt.Errorf("connection refused")).Once()
	_, err = service.GetProduct(ctx, 5)
	assert.ErrorIs(t, err, services.ErrStorage)
	assert.NotErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SearchProducts_EmptyIsNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("SearchByName", ctx, "phone").Return([]models.ProductRow{{ID: 1, Name: "Smartphone"}}, nil).Once()
	rows, err := service.SearchProducts(ctx, "phone")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	mockRepo.On("SearchByName", ctx, "toaster").Return([]models.ProductRow{}, nil).Once()
	_, err = service.SearchProducts(ctx, "toaster")
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ProductsInCategory_EmptyIsNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("ListByCategory", ctx, uint(3)).Return([]models.ProductRow{}, nil).Once()
	_, err := service.ProductsInCategory(ctx, 3)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*models.Product)
			assert.Equal(t, "Smartphone", p.Name)
			assert.Equal(t, uint(1), p.ManufacturerID)
			p.ID = 42
		}).
		Return(nil).Once()
	mockMQ.On("PublishProductEvent", ctx, eventOfType(rabbitmq.ProductCreated, 42)).Return(nil).Once()

	id, err := service.CreateProduct(ctx, validInput())
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	// A broker failure does not fail the request.
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Product).ID = 43 }).
		Return(nil).Once()
	mockMQ.On("PublishProductEvent", ctx, eventOfType(rabbitmq.ProductCreated, 43)).Return(fmt.Errorf("channel closed")).Once()
	id, err = service.CreateProduct(ctx, validInput())
	assert.NoError(t, err)
	assert.Equal(t, uint(43), id)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(fmt.Errorf("database error")).Once()
	_, err = service.CreateProduct(ctx, validInput())
	assert.ErrorIs(t, err, services.ErrStorage)

	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestProductService_ValidationRejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *models.ProductInput)
		message string
	}{
		{"empty name", func(in *models.ProductInput) { in.Name = "" }, "Produktnamnet får inte vara tomt"},
		{"blank name", func(in *models.ProductInput) { in.Name = "   " }, "Produktnamnet får inte vara tomt"},
		{"zero price", func(in *models.ProductInput) { in.Price = 0 }, "Priset måste vara större än 0"},
		{"negative price", func(in *models.ProductInput) { in.Price = -5 }, "Priset måste vara större än 0"},
		{"missing manufacturer", func(in *models.ProductInput) { in.ManufacturerID = 0 }, "Manufacturer ID is required"},
		{"negative stock", func(in *models.ProductInput) { in.StockQuantity = -1 }, "Stock quantity cannot be negative"},
		{"name checked before price", func(in *models.ProductInput) { in.Name = ""; in.Price = 0 }, "Produktnamnet får inte vara tomt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := services.NewProductService(mockRepo, nil, zap.NewNop())
			in := validInput()
			tt.mutate(&in)

			_, err := service.CreateProduct(context.Background(), in)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.EqualError(t, err, tt.message)

			err = service.UpdateProduct(context.Background(), 1, in)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.EqualError(t, err, tt.message)

			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Update", ctx, uint(1), mock.AnythingOfType("*models.Product")).Return(int64(1), nil).Once()
	mockMQ.On("PublishProductEvent", ctx, eventOfType(rabbitmq.ProductUpdated, 1)).Return(nil).Once()
	assert.NoError(t, service.UpdateProduct(ctx, 1, validInput()))

	mockRepo.On("Update", ctx, uint(99), mock.AnythingOfType("*models.Product")).Return(int64(0), nil).Once()
	err := service.UpdateProduct(ctx, 99, validInput())
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockMQ := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockMQ, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Delete", ctx, uint(1)).Return(int64(1), nil).Once()
	mockMQ.On("PublishProductEvent", ctx, eventOfType(rabbitmq.ProductDeleted, 1)).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(ctx, 1))

	mockRepo.On("Delete", ctx, uint(99)).Return(int64(0), nil).Once()
	assert.ErrorIs(t, service.DeleteProduct(ctx, 99), services.ErrNotFound)

	mockRepo.On("Delete", ctx, uint(7)).Return(int64(0), fmt.Errorf("FOREIGN KEY constraint failed")).Once()
	err := service.DeleteProduct(ctx, 7)
	assert.ErrorIs(t, err, services.ErrStorage)

	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

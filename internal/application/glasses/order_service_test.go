package glasses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/customer"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of customer.Repository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateContact(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockGlassRepository is a mock implementation of glasses.Repository
type MockGlassRepository struct {
	mock.Mock
}

func (m *MockGlassRepository) FindByID(ctx context.Context, id uuid.UUID) (*glasses.Glass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*glasses.Glass), args.Error(1)
}

func (m *MockGlassRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*glasses.Glass, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*glasses.Glass), args.Error(1)
}

func (m *MockGlassRepository) FindByInstallmentID(ctx context.Context, installmentID uuid.UUID) (*glasses.Glass, error) {
	args := m.Called(ctx, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*glasses.Glass), args.Error(1)
}

func (m *MockGlassRepository) Save(ctx context.Context, glass *glasses.Glass) error {
	args := m.Called(ctx, glass)
	return args.Error(0)
}

func (m *MockGlassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Helpers
// =============================================================================

func validCreateRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Name:          "Siti",
		Phone:         "0812",
		Address:       "Jl. Merdeka 1",
		Frame:         "Aviator",
		LensType:      "Progressive",
		Left:          "-1.25",
		Right:         "-1.50",
		Price:         1000,
		Deposit:       200,
		OrderDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDate:  time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "Installments",
	}
}

func existingTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("Siti", "0812", "Jl. Merdeka 1")
	require.NoError(t, err)
	return c
}

func existingTestGlass(t *testing.T, customerID uuid.UUID) *glasses.Glass {
	t.Helper()
	glass, err := glasses.NewGlass(customerID, "Aviator", "Progressive", "-1.25", "-1.50",
		decimal.NewFromInt(1000), decimal.NewFromInt(200),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		glasses.PaymentMethodInstallments)
	require.NoError(t, err)
	// Backdate the seed entry so test payments dated in 2024 pass the floor.
	glass.Installments[0].PaidDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return glass
}

// =============================================================================
// CreateOrder
// =============================================================================

func TestOrderServiceCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer and order together for a new name", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		customerRepo.On("FindByName", ctx, "Siti").Return(nil, shared.ErrNotFound)
		customerRepo.On("Save", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil)

		result, err := service.CreateOrder(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.False(t, result.ExistingCustomer)
		assert.Equal(t, "Siti", result.Customer.Name)
		require.Len(t, result.Customer.Glasses, 1)
		require.Len(t, result.Glass.Installments, 1)
		seed := result.Glass.Installments[0]
		assert.Equal(t, float64(200), seed.Amount)
		assert.Equal(t, float64(200), seed.Total)
		assert.Equal(t, float64(800), seed.Remaining)
		assert.Equal(t, "Unpaid", result.Glass.PaymentStatus)
		customerRepo.AssertExpectations(t)
		glassRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("attaches the order to an existing customer by name", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		existing := existingTestCustomer(t)
		customerRepo.On("FindByName", ctx, "Siti").Return(existing, nil)
		glassRepo.On("Save", ctx, mock.AnythingOfType("*glasses.Glass")).Return(nil)

		result, err := service.CreateOrder(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.True(t, result.ExistingCustomer)
		assert.Equal(t, existing.ID, result.Glass.CustomerID)
		customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		glassRepo.AssertExpectations(t)
	})

	t.Run("order fully covered by the deposit is immediately paid", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		customerRepo.On("FindByName", ctx, "Siti").Return(nil, shared.ErrNotFound)
		customerRepo.On("Save", ctx, mock.Anything).Return(nil)

		req := validCreateRequest()
		req.Price = 500
		req.Deposit = 500
		req.PaymentMethod = "Cash"

		result, err := service.CreateOrder(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "Paid", result.Glass.PaymentStatus)
		require.Len(t, result.Glass.Installments, 1)
		assert.Equal(t, float64(0), result.Glass.Installments[0].Remaining)
	})

	t.Run("invalid terms are rejected before any write", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		customerRepo.On("FindByName", ctx, "Siti").Return(nil, shared.ErrNotFound)

		req := validCreateRequest()
		req.Deposit = 1500

		_, err := service.CreateOrder(ctx, req)
		require.Error(t, err)
		assert.EqualError(t, err, "Deposit must be less than price")
		customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		glassRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		boom := errors.New("connection reset")
		customerRepo.On("FindByName", ctx, "Siti").Return(nil, boom)

		_, err := service.CreateOrder(ctx, validCreateRequest())
		assert.ErrorIs(t, err, boom)
	})
}

// =============================================================================
// UpdateOrder
// =============================================================================

func TestOrderServiceUpdateOrder(t *testing.T) {
	ctx := context.Background()

	editRequest := func() EditOrderRequest {
		return EditOrderRequest{
			Name:          "Siti Rahma",
			Phone:         "0813",
			Address:       "Jl. Merdeka 2",
			Frame:         "Round",
			LensType:      "Bifocal",
			Left:          "-2.00",
			Right:         "-2.25",
			Price:         1000,
			Deposit:       300,
			OrderDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DeliveryDate:  time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			PaymentMethod: "Installments",
		}
	}

	// loadedOrderPair mimics the two reads the service performs: the
	// customer arrives with its own preloaded copy of the order, distinct
	// from the instance the glass repository hands back.
	loadedOrderPair := func(t *testing.T) (*customer.Customer, *glasses.Glass) {
		t.Helper()
		cust := existingTestCustomer(t)
		glass := existingTestGlass(t, cust.ID)
		preloaded := existingTestGlass(t, cust.ID)
		preloaded.ID = glass.ID
		cust.AttachGlass(preloaded)
		return cust, glass
	}

	t.Run("updates contact details and mirrors the deposit", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		cust, glass := loadedOrderPair(t)

		customerRepo.On("FindByID", ctx, cust.ID).Return(cust, nil)
		glassRepo.On("FindByID", ctx, glass.ID).Return(glass, nil)
		glassRepo.On("Save", ctx, glass).Return(nil)
		customerRepo.On("UpdateContact", ctx, cust).Return(nil)

		result, err := service.UpdateOrder(ctx, cust.ID, glass.ID, editRequest())
		require.NoError(t, err)

		assert.Equal(t, "Siti Rahma", result.Customer.Name)
		assert.Equal(t, float64(300), result.Glass.Deposit)
		require.NotEmpty(t, result.Glass.Installments)
		assert.Equal(t, float64(300), result.Glass.Installments[0].Amount)
		glassRepo.AssertExpectations(t)
		customerRepo.AssertExpectations(t)
	})

	t.Run("never re-saves the customer's preloaded ledger over the edit", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		cust, glass := loadedOrderPair(t)

		customerRepo.On("FindByID", ctx, cust.ID).Return(cust, nil)
		glassRepo.On("FindByID", ctx, glass.ID).Return(glass, nil)
		glassRepo.On("Save", ctx, glass).Return(nil)
		customerRepo.On("UpdateContact", ctx, cust).Return(nil)

		result, err := service.UpdateOrder(ctx, cust.ID, glass.ID, editRequest())
		require.NoError(t, err)

		// The edited aggregate is what reached the glass repository.
		assert.True(t, glass.Deposit.Equal(decimal.NewFromInt(300)))
		assert.True(t, glass.Installments[0].Amount.Equal(decimal.NewFromInt(300)))
		// A full customer save would upsert the stale preloaded ledger
		// and revert the terms just written.
		customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		// The nested payload reflects the edit, not the preloaded snapshot.
		require.Len(t, result.Customer.Glasses, 1)
		assert.Equal(t, float64(300), result.Customer.Glasses[0].Deposit)
		assert.Equal(t, float64(300), result.Customer.Glasses[0].Installments[0].Amount)
	})

	t.Run("unknown customer is not found", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		id := uuid.New()
		customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.UpdateOrder(ctx, id, uuid.New(), editRequest())
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeNotFound, domainErr.Code)
		assert.EqualError(t, err, "Customer not found")
	})

	t.Run("order of another customer is not found", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		cust := existingTestCustomer(t)
		stranger := existingTestGlass(t, uuid.New())

		customerRepo.On("FindByID", ctx, cust.ID).Return(cust, nil)
		glassRepo.On("FindByID", ctx, stranger.ID).Return(stranger, nil)

		_, err := service.UpdateOrder(ctx, cust.ID, stranger.ID, editRequest())
		assert.EqualError(t, err, "Glass not found")
		glassRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// =============================================================================
// GlassesForCustomer
// =============================================================================

func TestOrderServiceGlassesForCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("lists a customer's orders", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		cust := existingTestCustomer(t)
		glass := existingTestGlass(t, cust.ID)
		customerRepo.On("FindByID", ctx, cust.ID).Return(cust, nil)
		glassRepo.On("FindByCustomer", ctx, cust.ID).Return([]*glasses.Glass{glass}, nil)

		list, err := service.GlassesForCustomer(ctx, cust.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, glass.ID, list[0].ID)
	})

	t.Run("unknown customer is not found", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		glassRepo := new(MockGlassRepository)
		service := NewOrderService(customerRepo, glassRepo)

		id := uuid.New()
		customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.GlassesForCustomer(ctx, id)
		assert.EqualError(t, err, "Customer not found")
	})
}

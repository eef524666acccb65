package glasses

import (
	"context"
	"errors"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/customer"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService handles the order lifecycle: creation with the find-or-merge
// customer policy, and edits to order terms.
type OrderService struct {
	customerRepo customer.Repository
	glassRepo    glasses.Repository
}

// NewOrderService creates a new OrderService
func NewOrderService(customerRepo customer.Repository, glassRepo glasses.Repository) *OrderService {
	return &OrderService{
		customerRepo: customerRepo,
		glassRepo:    glassRepo,
	}
}

// CreateOrder creates a new order, seeded with a deposit installment. The
// customer is matched by exact name: a hit attaches the order to the
// existing customer, a miss creates customer and order together.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	method := glasses.PaymentMethod(req.PaymentMethod)
	price := decimal.NewFromFloat(req.Price)
	deposit := decimal.NewFromFloat(req.Deposit)

	existing, err := s.customerRepo.FindByName(ctx, req.Name)
	switch {
	case err == nil:
		glass, err := glasses.NewGlass(existing.ID,
			req.Frame, req.LensType, req.Left, req.Right,
			price, deposit, req.OrderDate, req.DeliveryDate, method)
		if err != nil {
			return nil, err
		}
		if err := s.glassRepo.Save(ctx, glass); err != nil {
			return nil, err
		}
		return &CreateOrderResult{
			ExistingCustomer: true,
			Customer:         ToCustomerResponse(existing),
			Glass:            ToGlassResponse(glass),
		}, nil

	case errors.Is(err, shared.ErrNotFound):
		newCustomer, err := customer.NewCustomer(req.Name, req.Phone, req.Address)
		if err != nil {
			return nil, err
		}
		glass, err := glasses.NewGlass(newCustomer.ID,
			req.Frame, req.LensType, req.Left, req.Right,
			price, deposit, req.OrderDate, req.DeliveryDate, method)
		if err != nil {
			return nil, err
		}
		newCustomer.AttachGlass(glass)
		if err := s.customerRepo.Save(ctx, newCustomer); err != nil {
			return nil, err
		}
		return &CreateOrderResult{
			Customer: ToCustomerResponse(newCustomer),
			Glass:    ToGlassResponse(glass),
		}, nil

	default:
		return nil, err
	}
}

// UpdateOrder replaces a customer's contact details and an order's terms.
// For installment orders the deposit change is mirrored into the earliest
// ledger entry and the whole ledger is recomputed and saved atomically.
func (s *OrderService) UpdateOrder(ctx context.Context, customerID, glassID uuid.UUID, req EditOrderRequest) (*EditOrderResult, error) {
	cust, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Customer not found")
		}
		return nil, err
	}

	glass, err := s.glassRepo.FindByID(ctx, glassID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Glass not found")
		}
		return nil, err
	}
	if glass.CustomerID != cust.ID {
		return nil, shared.NewNotFoundError("Glass not found")
	}

	if err := cust.Update(req.Name, req.Phone, req.Address); err != nil {
		return nil, err
	}
	if err := glass.UpdateTerms(
		req.Frame, req.LensType, req.Left, req.Right,
		decimal.NewFromFloat(req.Price), decimal.NewFromFloat(req.Deposit),
		req.OrderDate, req.DeliveryDate,
		glasses.PaymentMethod(req.PaymentMethod),
	); err != nil {
		return nil, err
	}

	// The ledger save carries the recalculation. The contact write must
	// touch only the customer row: cust still holds the ledger as it was
	// preloaded, and re-upserting that snapshot would revert the edit
	// just written.
	if err := s.glassRepo.Save(ctx, glass); err != nil {
		return nil, err
	}
	if err := s.customerRepo.UpdateContact(ctx, cust); err != nil {
		return nil, err
	}

	// Swap the preloaded snapshot for the edited aggregate so the nested
	// customer payload reflects the new terms.
	for i, nested := range cust.Glasses {
		if nested.ID == glass.ID {
			cust.Glasses[i] = glass
		}
	}

	return &EditOrderResult{
		Customer: ToCustomerResponse(cust),
		Glass:    ToGlassResponse(glass),
	}, nil
}

// GlassesForCustomer lists a customer's orders with their ledgers
func (s *OrderService) GlassesForCustomer(ctx context.Context, customerID uuid.UUID) ([]GlassResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Customer not found")
		}
		return nil, err
	}

	list, err := s.glassRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	responses := make([]GlassResponse, 0, len(list))
	for _, glass := range list {
		responses = append(responses, ToGlassResponse(glass))
	}
	return responses, nil
}

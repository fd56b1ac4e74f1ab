package service

import (
	"context"
	"fmt"
	"order-payment-service/internal/dto"
	"order-payment-service/internal/model"
	"order-payment-service/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService backs the order-facing web endpoints: building up the
// active order before payment and reading settled history after it.
type OrderService interface {
	AddItem(ctx context.Context, customer *model.Customer, item *dto.AddItemRequest) (*dto.OrderResponse, error)
	GetActiveOrder(ctx context.Context, customer *model.Customer) (*dto.OrderResponse, error)
	GetHistory(ctx context.Context, customer *model.Customer) ([]*model.OrderHistory, error)
}

type orderServiceImpl struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	historyRepo repository.OrderHistoryRepository
}

func NewOrderService(
	db *gorm.DB,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	historyRepo repository.OrderHistoryRepository,
) OrderService {
	return &orderServiceImpl{
		db:          db,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
	}
}

// AddItem appends a product to the customer's active order, creating the
// order first when none exists. Creation and append run in one transaction
// so the one-active-order invariant holds.
func (s *orderServiceImpl) AddItem(ctx context.Context, customer *model.Customer, item *dto.AddItemRequest) (*dto.OrderResponse, error) {
	if item.Quantity <= 0 {
		return nil, fmt.Errorf("item quantity must be positive")
	}

	product, err := s.productRepo.FindByID(ctx, item.Sku)
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", item.Sku, err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindActiveOrder(ctx, customer.ID)
		if err != nil {
			return fmt.Errorf("find active order: %w", err)
		}

		if order == nil {
			order = &model.Order{
				ID:         uuid.NewString(),
				CustomerID: customer.ID,
				Status:     model.OrderStatusActive,
			}
			if err := s.orderRepo.Create(ctx, tx, order); err != nil {
				return fmt.Errorf("create order: %w", err)
			}
		}

		return s.orderRepo.AddItem(ctx, tx, &model.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  item.Quantity,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.GetActiveOrder(ctx, customer)
}

func (s *orderServiceImpl) GetActiveOrder(ctx context.Context, customer *model.Customer) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindActiveOrder(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("find active order: %w", err)
	}
	if order == nil {
		return nil, &NoActiveOrderError{CustomerID: customer.ID}
	}

	return toOrderResponse(order), nil
}

func (s *orderServiceImpl) GetHistory(ctx context.Context, customer *model.Customer) ([]*model.OrderHistory, error) {
	return s.historyRepo.ListByCustomer(ctx, customer.ID)
}

func toOrderResponse(order *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItem{
			Sku:       item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			LineTotal: item.LineTotal().InexactFloat64(),
		}
	}

	return &dto.OrderResponse{
		OrderID: order.ID,
		Status:  string(order.Status),
		Total:   order.Total().InexactFloat64(),
		Items:   items,
	}
}

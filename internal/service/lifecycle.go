package service

import (
	"context"
	"errors"
	"fmt"
	"order-payment-service/internal/model"
	"order-payment-service/internal/repository"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLifecycleManager owns the Active -> Delivered transition and the
// settled-history write. It performs no provider calls.
type OrderLifecycleManager interface {
	// EnsureChargeable returns the customer's ACTIVE order, items and
	// products preloaded. No ACTIVE order -> *NoActiveOrderError; an ACTIVE
	// order with zero items -> *InvalidOrderError.
	EnsureChargeable(ctx context.Context, customer *model.Customer) (*model.Order, error)
	// Commit transitions the order to DELIVERED and records the settled
	// payment, both inside one local transaction. Call only after the
	// provider has confirmed and debited payment.
	Commit(ctx context.Context, order *model.Order, paymentMethod string, amountMajor decimal.Decimal) (*model.OrderHistory, error)
}

type orderLifecycleImpl struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	historyRepo repository.OrderHistoryRepository
}

func NewOrderLifecycleManager(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	historyRepo repository.OrderHistoryRepository,
) OrderLifecycleManager {
	return &orderLifecycleImpl{
		db:          db,
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
	}
}

func (m *orderLifecycleImpl) EnsureChargeable(ctx context.Context, customer *model.Customer) (*model.Order, error) {
	order, err := m.orderRepo.FindActiveOrder(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("find active order: %w", err)
	}
	if order == nil {
		return nil, &NoActiveOrderError{CustomerID: customer.ID}
	}
	if len(order.Items) == 0 {
		return nil, &InvalidOrderError{OrderID: order.ID, Reason: "order has no items"}
	}

	return order, nil
}

func (m *orderLifecycleImpl) Commit(ctx context.Context, order *model.Order, paymentMethod string, amountMajor decimal.Decimal) (*model.OrderHistory, error) {
	record := &model.OrderHistory{
		ID:            uuid.NewString(),
		OrderID:       order.ID,
		CustomerID:    order.CustomerID,
		PaymentMethod: paymentMethod,
		Amount:        amountMajor.InexactFloat64(),
		Status:        model.OrderStatusDelivered,
		PaidAt:        time.Now(),
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := m.orderRepo.MarkDelivered(ctx, tx, order.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// another attempt delivered the order first
				return &NoActiveOrderError{CustomerID: order.CustomerID}
			}
			return fmt.Errorf("mark order delivered: %w", err)
		}

		if err := m.historyRepo.Create(ctx, tx, record); err != nil {
			return fmt.Errorf("store order history: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

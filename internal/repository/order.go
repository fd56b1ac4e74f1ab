package repository

import (
	"context"
	"errors"
	"order-payment-service/internal/model"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	// FindActiveOrder returns (nil, nil) when the customer has no order in
	// ACTIVE status. Items and their products are preloaded so the total
	// can be derived.
	FindActiveOrder(ctx context.Context, customerID string) (*model.Order, error)
	AddItem(ctx context.Context, tx *gorm.DB, item *model.OrderItem) error
	// MarkDelivered flips an ACTIVE order to DELIVERED. The status guard in
	// the WHERE clause makes this a compare-and-swap: a concurrent attempt
	// that already delivered the order gets gorm.ErrRecordNotFound.
	MarkDelivered(ctx context.Context, tx *gorm.DB, orderID string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindActiveOrder(ctx context.Context, customerID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("customer_id = ? AND status = ?", customerID, model.OrderStatusActive).
		First(&order).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) AddItem(ctx context.Context, tx *gorm.DB, item *model.OrderItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *orderRepoImpl) MarkDelivered(ctx context.Context, tx *gorm.DB, orderID string) error {
	result := tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, model.OrderStatusActive).
		Updates(map[string]interface{}{
			"status":     model.OrderStatusDelivered,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

package repository

import (
	"context"
	"order-payment-service/internal/model"

	"gorm.io/gorm"
)

type OrderHistoryRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.OrderHistory) error
	ListByCustomer(ctx context.Context, customerID string) ([]*model.OrderHistory, error)
}

type historyRepoImpl struct {
	db *gorm.DB
}

func NewOrderHistoryRepository(db *gorm.DB) OrderHistoryRepository {
	return &historyRepoImpl{
		db: db,
	}
}

func (r *historyRepoImpl) Create(ctx context.Context, tx *gorm.DB, record *model.OrderHistory) error {
	return tx.WithContext(ctx).Create(record).Error
}

func (r *historyRepoImpl) ListByCustomer(ctx context.Context, customerID string) ([]*model.OrderHistory, error) {
	var records []*model.OrderHistory
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("paid_at DESC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

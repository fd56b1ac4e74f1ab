package repository

import (
	"context"
	"order-payment-service/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository interface {
	Seed(ctx context.Context) error
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	FindByID(ctx context.Context, customerID string) (*model.Customer, error)
}

type customerRepoImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepoImpl{
		db: db,
	}
}

func (r *customerRepoImpl) Seed(ctx context.Context) error {
	customers := []model.Customer{
		{ID: "cust-demo-001", Email: "demo@example.com", Name: "Demo Customer"},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&customers).Error
}

func (r *customerRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&customer).Error

	if err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *customerRepoImpl) FindByID(ctx context.Context, customerID string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		Where("id = ?", customerID).
		First(&customer).Error

	if err != nil {
		return nil, err
	}

	return &customer, nil
}

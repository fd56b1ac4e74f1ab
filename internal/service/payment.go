package service

import (
	"context"
	"fmt"
	"log"
	"order-payment-service/internal/dto"
	"order-payment-service/internal/model"
	"order-payment-service/internal/money"
	"time"
)

// PaymentService turns a customer's active order into a paid, delivered
// order: one sequential workflow per invocation, no fan-out, no internal
// retries, no compensation of provider-side effects already committed.
type PaymentService interface {
	CreateOrderPayment(ctx context.Context, customer *model.Customer, paymentMethod string) (*dto.PaymentReceipt, error)
}

type paymentServiceImpl struct {
	provisioner CustomerProvisioner
	lifecycle   OrderLifecycleManager
	intents     PaymentIntentManager
	balance     BalanceTransferService
}

func NewPaymentService(
	provisioner CustomerProvisioner,
	lifecycle OrderLifecycleManager,
	intents PaymentIntentManager,
	balance BalanceTransferService,
) PaymentService {
	return &paymentServiceImpl{
		provisioner: provisioner,
		lifecycle:   lifecycle,
		intents:     intents,
		balance:     balance,
	}
}

// CreateOrderPayment executes the payment as a strict sequence; the first
// failure aborts everything after it and propagates to the caller
// unchanged. Once the intent exists (step 3) money may already be reserved
// provider-side, so nothing here can be safely abandoned or undone.
func (s *paymentServiceImpl) CreateOrderPayment(ctx context.Context, customer *model.Customer, paymentMethod string) (*dto.PaymentReceipt, error) {
	// Order validation is local and goes first: a customer without a
	// chargeable order must fail before any provider round trip happens.
	order, err := s.lifecycle.EnsureChargeable(ctx, customer)
	if err != nil {
		return nil, err
	}

	remote, err := s.provisioner.Resolve(ctx, customer, paymentMethod)
	if err != nil {
		return nil, err
	}

	intent, err := s.intents.CreateIntent(ctx, remote, order.Total())
	if err != nil {
		return nil, err
	}

	confirmed, err := s.intents.Confirm(ctx, intent, paymentMethod)
	if err != nil {
		return nil, err
	}

	if err := s.intents.VerifySucceeded(confirmed); err != nil {
		return nil, err
	}

	transaction, err := s.balance.Debit(ctx, confirmed.CustomerID, confirmed.Amount)
	if err != nil {
		return nil, err
	}

	amountMajor := money.MinorToMajor(confirmed.Amount)

	if _, err := s.lifecycle.Commit(ctx, order, paymentMethod, amountMajor); err != nil {
		// The provider already debited the customer; there is no local
		// record of it now. Surface the gap for manual reconciliation.
		log.Printf("unreconciled payment: order %s, intent %s, transaction %s: %v",
			order.ID, confirmed.ID, transaction.ID, err)
		return nil, fmt.Errorf("commit paid order %s: %w", order.ID, err)
	}

	return &dto.PaymentReceipt{
		CreatedAt:     time.Unix(transaction.Created, 0).UTC(),
		Amount:        amountMajor.InexactFloat64(),
		EndingBalance: money.MinorToMajor(transaction.EndingBalance).InexactFloat64(),
	}, nil
}

package service

import (
	"context"
	"order-payment-service/internal/client"
	"order-payment-service/internal/model"
	"order-payment-service/internal/money"

	"github.com/shopspring/decimal"
)

type PaymentIntentManager interface {
	// CreateIntent requests a provider intent for the amount, converted to
	// minor units by truncation, in the remote customer's currency. The
	// intent comes back awaiting confirmation.
	CreateIntent(ctx context.Context, remoteCustomer *model.RemoteCustomer, amountMajor decimal.Decimal) (*model.PaymentIntent, error)
	Confirm(ctx context.Context, intent *model.PaymentIntent, paymentMethod string) (*model.PaymentIntent, error)
	// VerifySucceeded fails unless the intent's status is exactly the
	// provider's succeeded value. A confirmed intent stuck in any other
	// status aborts the whole operation; a fresh attempt must start over
	// with a brand-new intent.
	VerifySucceeded(intent *model.PaymentIntent) error
}

type paymentIntentImpl struct {
	providerClient client.ProviderClient
}

func NewPaymentIntentManager(providerClient client.ProviderClient) PaymentIntentManager {
	return &paymentIntentImpl{
		providerClient: providerClient,
	}
}

func (m *paymentIntentImpl) CreateIntent(ctx context.Context, remoteCustomer *model.RemoteCustomer, amountMajor decimal.Decimal) (*model.PaymentIntent, error) {
	amountMinor := money.MajorToMinor(amountMajor)

	intent, err := m.providerClient.CreatePaymentIntent(ctx, remoteCustomer.ID, amountMinor, remoteCustomer.Currency)
	if err != nil {
		return nil, &ProviderError{Op: "create payment intent", Err: err}
	}

	return intent, nil
}

func (m *paymentIntentImpl) Confirm(ctx context.Context, intent *model.PaymentIntent, paymentMethod string) (*model.PaymentIntent, error) {
	confirmed, err := m.providerClient.ConfirmPaymentIntent(ctx, intent.ID, paymentMethod)
	if err != nil {
		return nil, &ProviderError{Op: "confirm payment intent", Err: err}
	}

	return confirmed, nil
}

func (m *paymentIntentImpl) VerifySucceeded(intent *model.PaymentIntent) error {
	if intent.Status != model.IntentStatusSucceeded {
		return &InvalidPaymentStatusError{IntentID: intent.ID, Status: intent.Status}
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"order-payment-service/internal/client"
	"order-payment-service/internal/model"
	"sync"
)

// fakeProviderClient is an in-memory stand-in for the payment provider. It
// records every call in order so tests can assert which provider round
// trips happened, and lets tests inject failures per operation.
type fakeProviderClient struct {
	mu sync.Mutex

	calls           []string
	customersByID   map[string]*model.RemoteCustomer
	idByEmail       map[string]string
	intents         map[string]*model.PaymentIntent
	idempotencyKeys []string
	nextID          int

	// status Confirm stamps on the intent
	confirmStatus model.IntentStatus

	findErr     error
	createErr   error
	retrieveErr error
	intentErr   error
	confirmErr  error
	debitErr    error
}

var _ client.ProviderClient = (*fakeProviderClient)(nil)

func newFakeProviderClient() *fakeProviderClient {
	return &fakeProviderClient{
		customersByID: map[string]*model.RemoteCustomer{},
		idByEmail:     map[string]string{},
		intents:       map[string]*model.PaymentIntent{},
		confirmStatus: model.IntentStatusSucceeded,
	}
}

const fakeTransactionTime = 1700000000

func (f *fakeProviderClient) seedCustomer(email string, balance int64) *model.RemoteCustomer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	customer := &model.RemoteCustomer{
		ID:       fmt.Sprintf("cus_%d", f.nextID),
		Email:    email,
		Currency: "usd",
		Balance:  balance,
	}
	f.customersByID[customer.ID] = customer
	f.idByEmail[email] = customer.ID
	return customer
}

func (f *fakeProviderClient) recordedCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeProviderClient) FindCustomerByEmail(ctx context.Context, email string) (*model.RemoteCustomer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "find_customer")
	if f.findErr != nil {
		return nil, f.findErr
	}
	id, ok := f.idByEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *f.customersByID[id]
	return &copied, nil
}

func (f *fakeProviderClient) CreateCustomer(ctx context.Context, email, paymentMethod string, initialBalance int64, idempotencyKey string) (*model.RemoteCustomer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "create_customer")
	f.idempotencyKeys = append(f.idempotencyKeys, idempotencyKey)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	customer := &model.RemoteCustomer{
		ID:                   fmt.Sprintf("cus_%d", f.nextID),
		Email:                email,
		Currency:             "usd",
		Balance:              initialBalance,
		DefaultPaymentMethod: paymentMethod,
	}
	f.customersByID[customer.ID] = customer
	f.idByEmail[email] = customer.ID
	copied := *customer
	return &copied, nil
}

func (f *fakeProviderClient) RetrieveCustomer(ctx context.Context, customerID string) (*model.RemoteCustomer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "retrieve_customer")
	if f.retrieveErr != nil {
		return nil, f.retrieveErr
	}
	customer, ok := f.customersByID[customerID]
	if !ok {
		return nil, fmt.Errorf("no such customer: %s", customerID)
	}
	copied := *customer
	return &copied, nil
}

func (f *fakeProviderClient) CreatePaymentIntent(ctx context.Context, customerID string, amount int64, currency string) (*model.PaymentIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "create_intent")
	if f.intentErr != nil {
		return nil, f.intentErr
	}
	f.nextID++
	intent := &model.PaymentIntent{
		ID:         fmt.Sprintf("pi_%d", f.nextID),
		CustomerID: customerID,
		Amount:     amount,
		Currency:   currency,
		Status:     model.IntentStatusRequiresConfirmation,
	}
	f.intents[intent.ID] = intent
	copied := *intent
	return &copied, nil
}

func (f *fakeProviderClient) ConfirmPaymentIntent(ctx context.Context, intentID, paymentMethod string) (*model.PaymentIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "confirm_intent")
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	intent, ok := f.intents[intentID]
	if !ok {
		return nil, fmt.Errorf("no such intent: %s", intentID)
	}
	intent.Status = f.confirmStatus
	copied := *intent
	return &copied, nil
}

func (f *fakeProviderClient) DebitBalance(ctx context.Context, customerID string, amount int64) (*model.BalanceTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "debit_balance")
	if f.debitErr != nil {
		return nil, f.debitErr
	}
	customer, ok := f.customersByID[customerID]
	if !ok {
		return nil, fmt.Errorf("no such customer: %s", customerID)
	}
	customer.Balance -= amount
	f.nextID++
	return &model.BalanceTransaction{
		ID:            fmt.Sprintf("txn_%d", f.nextID),
		Amount:        -amount,
		EndingBalance: customer.Balance,
		Created:       fakeTransactionTime,
	}, nil
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"order-payment-service/internal/config"
	"order-payment-service/internal/model"
)

// ProviderClient is the typed surface of the external payment provider.
// Every call is a synchronous network round trip bounded by the configured
// timeout; callers must treat a timeout like any other provider rejection
// because the remote effect may or may not have happened.
type ProviderClient interface {
	// FindCustomerByEmail returns (nil, nil) when no customer exists.
	FindCustomerByEmail(ctx context.Context, email string) (*model.RemoteCustomer, error)
	CreateCustomer(ctx context.Context, email, paymentMethod string, initialBalance int64, idempotencyKey string) (*model.RemoteCustomer, error)
	RetrieveCustomer(ctx context.Context, customerID string) (*model.RemoteCustomer, error)
	CreatePaymentIntent(ctx context.Context, customerID string, amount int64, currency string) (*model.PaymentIntent, error)
	ConfirmPaymentIntent(ctx context.Context, intentID, paymentMethod string) (*model.PaymentIntent, error)
	DebitBalance(ctx context.Context, customerID string, amount int64) (*model.BalanceTransaction, error)
}

type providerClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewProviderClient(providerCfg *config.Provider) ProviderClient {
	return &providerClientImpl{
		httpClient: &http.Client{
			Timeout: providerCfg.Timeout,
		},
		baseApiURL: providerCfg.BaseApiURL,
		apiKey:     providerCfg.APIKey,
	}
}

type customerListResult struct {
	Data []model.RemoteCustomer `json:"data"`
}

func (c *providerClientImpl) FindCustomerByEmail(ctx context.Context, email string) (*model.RemoteCustomer, error) {
	endpoint := fmt.Sprintf("%s/v1/customers?email=%s", c.baseApiURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	var result customerListResult
	if err := c.send(req, &result); err != nil {
		return nil, fmt.Errorf("provider list customers: %w", err)
	}

	if len(result.Data) == 0 {
		return nil, nil
	}
	return &result.Data[0], nil
}

func (c *providerClientImpl) CreateCustomer(ctx context.Context, email, paymentMethod string, initialBalance int64, idempotencyKey string) (*model.RemoteCustomer, error) {
	payload := map[string]interface{}{
		"email":          email,
		"payment_method": paymentMethod,
		"balance":        initialBalance,
		"currency":       "usd",
	}

	req, err := c.newJSONRequest(ctx, c.baseApiURL+"/v1/customers", payload)
	if err != nil {
		return nil, err
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	var customer model.RemoteCustomer
	if err := c.send(req, &customer); err != nil {
		return nil, fmt.Errorf("provider create customer: %w", err)
	}

	return &customer, nil
}

func (c *providerClientImpl) RetrieveCustomer(ctx context.Context, customerID string) (*model.RemoteCustomer, error) {
	endpoint := fmt.Sprintf("%s/v1/customers/%s", c.baseApiURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	var customer model.RemoteCustomer
	if err := c.send(req, &customer); err != nil {
		return nil, fmt.Errorf("provider retrieve customer: %w", err)
	}

	return &customer, nil
}

func (c *providerClientImpl) CreatePaymentIntent(ctx context.Context, customerID string, amount int64, currency string) (*model.PaymentIntent, error) {
	payload := map[string]interface{}{
		"customer": customerID,
		"amount":   amount,
		"currency": currency,
	}

	req, err := c.newJSONRequest(ctx, c.baseApiURL+"/v1/payment_intents", payload)
	if err != nil {
		return nil, err
	}

	var intent model.PaymentIntent
	if err := c.send(req, &intent); err != nil {
		return nil, fmt.Errorf("provider create payment intent: %w", err)
	}

	return &intent, nil
}

func (c *providerClientImpl) ConfirmPaymentIntent(ctx context.Context, intentID, paymentMethod string) (*model.PaymentIntent, error) {
	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s/confirm", c.baseApiURL, intentID)
	payload := map[string]interface{}{
		"payment_method": paymentMethod,
	}

	req, err := c.newJSONRequest(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var intent model.PaymentIntent
	if err := c.send(req, &intent); err != nil {
		return nil, fmt.Errorf("provider confirm payment intent: %w", err)
	}

	return &intent, nil
}

func (c *providerClientImpl) DebitBalance(ctx context.Context, customerID string, amount int64) (*model.BalanceTransaction, error) {
	endpoint := fmt.Sprintf("%s/v1/customers/%s/balance_transactions", c.baseApiURL, customerID)
	payload := map[string]interface{}{
		// negative adjustment debits the balance
		"amount": -amount,
	}

	req, err := c.newJSONRequest(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}

	var tx model.BalanceTransaction
	if err := c.send(req, &tx); err != nil {
		return nil, fmt.Errorf("provider debit balance: %w", err)
	}

	return &tx, nil
}

func (c *providerClientImpl) newJSONRequest(ctx context.Context, endpoint string, payload interface{}) (*http.Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func (c *providerClientImpl) send(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider error %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}

	return nil
}

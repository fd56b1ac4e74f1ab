package service

import (
	"fmt"
	"order-payment-service/internal/model"
	"order-payment-service/internal/money"
)

// Typed failure modes of the payment flow. Each is surfaced unmodified to
// the caller so the web layer can map them to status codes with errors.As;
// the services never retry or suppress them.

type NoActiveOrderError struct {
	CustomerID string
}

func (e *NoActiveOrderError) Error() string {
	return fmt.Sprintf("customer %s has no active order", e.CustomerID)
}

type InvalidOrderError struct {
	OrderID string
	Reason  string
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("order %s is not chargeable: %s", e.OrderID, e.Reason)
}

type InsufficientBalanceError struct {
	RequiredMinor  int64
	AvailableMinor int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %s",
		money.FormatMinor(e.RequiredMinor), money.FormatMinor(e.AvailableMinor))
}

// ProviderError wraps any failed, rejected or timed-out provider call. A
// timeout is indistinguishable from "happened but the response was lost",
// so it gets no special treatment.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment provider: %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type InvalidPaymentStatusError struct {
	IntentID string
	Status   model.IntentStatus
}

func (e *InvalidPaymentStatusError) Error() string {
	return fmt.Sprintf("payment intent %s has status %q, expected %q",
		e.IntentID, e.Status, model.IntentStatusSucceeded)
}

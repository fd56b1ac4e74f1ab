package model

// Wire types for the payment provider API. Provider-owned: the service
// holds a read-through copy per call and never persists them.

type RemoteCustomer struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Currency             string `json:"currency"`
	Balance              int64  `json:"balance"` // minor units
	DefaultPaymentMethod string `json:"default_payment_method"`
}

type IntentStatus string

const (
	IntentStatusRequiresConfirmation IntentStatus = "requires_confirmation"
	IntentStatusRequiresAction       IntentStatus = "requires_action"
	IntentStatusProcessing           IntentStatus = "processing"
	IntentStatusSucceeded            IntentStatus = "succeeded"
	IntentStatusCanceled             IntentStatus = "canceled"
)

type PaymentIntent struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customer"`
	Amount     int64        `json:"amount"` // minor units
	Currency   string       `json:"currency"`
	Status     IntentStatus `json:"status"`
}

type BalanceTransaction struct {
	ID            string `json:"id"`
	Amount        int64  `json:"amount"` // minor units, negative for debits
	EndingBalance int64  `json:"ending_balance"`
	Created       int64  `json:"created"` // unix seconds
}

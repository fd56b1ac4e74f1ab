package service

import (
	"context"
	"order-payment-service/internal/client"
	"order-payment-service/internal/model"
)

type BalanceTransferService interface {
	// Debit re-reads the remote customer's balance, fails with
	// *InsufficientBalanceError if the amount exceeds it, and otherwise
	// issues a negative balance adjustment for the amount.
	Debit(ctx context.Context, remoteCustomerID string, amountMinor int64) (*model.BalanceTransaction, error)
}

type balanceTransferImpl struct {
	providerClient client.ProviderClient
}

func NewBalanceTransferService(providerClient client.ProviderClient) BalanceTransferService {
	return &balanceTransferImpl{
		providerClient: providerClient,
	}
}

func (s *balanceTransferImpl) Debit(ctx context.Context, remoteCustomerID string, amountMinor int64) (*model.BalanceTransaction, error) {
	remote, err := s.providerClient.RetrieveCustomer(ctx, remoteCustomerID)
	if err != nil {
		return nil, &ProviderError{Op: "retrieve customer", Err: err}
	}

	if amountMinor > remote.Balance {
		return nil, &InsufficientBalanceError{
			RequiredMinor:  amountMinor,
			AvailableMinor: remote.Balance,
		}
	}

	tx, err := s.providerClient.DebitBalance(ctx, remoteCustomerID, amountMinor)
	if err != nil {
		return nil, &ProviderError{Op: "debit balance", Err: err}
	}

	return tx, nil
}

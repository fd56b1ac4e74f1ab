package service

import (
	"context"
	"order-payment-service/internal/client"
	"order-payment-service/internal/model"

	"github.com/google/uuid"
)

// InitialBalancePolicy decides the starting balance (minor units) for a
// newly provisioned remote customer. Production deployments should replace
// the default with an explicit funding workflow.
type InitialBalancePolicy func(customer *model.Customer) int64

func FixedInitialBalance(amount int64) InitialBalancePolicy {
	return func(*model.Customer) int64 {
		return amount
	}
}

type CustomerProvisioner interface {
	// Resolve maps a local customer to the provider's customer record,
	// creating one with the given payment method if none exists.
	Resolve(ctx context.Context, customer *model.Customer, paymentMethod string) (*model.RemoteCustomer, error)
}

type customerProvisionerImpl struct {
	providerClient client.ProviderClient
	balancePolicy  InitialBalancePolicy
}

func NewCustomerProvisioner(providerClient client.ProviderClient, balancePolicy InitialBalancePolicy) CustomerProvisioner {
	return &customerProvisionerImpl{
		providerClient: providerClient,
		balancePolicy:  balancePolicy,
	}
}

// idemNamespace salts the per-email idempotency key for customer creation.
var idemNamespace = uuid.MustParse("9f2c1af0-5db3-4f6a-9c6e-3b7d1c2a8e41")

func (p *customerProvisionerImpl) Resolve(ctx context.Context, customer *model.Customer, paymentMethod string) (*model.RemoteCustomer, error) {
	remote, err := p.providerClient.FindCustomerByEmail(ctx, customer.Email)
	if err != nil {
		return nil, &ProviderError{Op: "find customer", Err: err}
	}
	if remote != nil {
		return remote, nil
	}

	// Lookup and create are separate round trips, so two concurrent
	// resolutions can race. The deterministic key lets the provider
	// collapse duplicate creates for the same email.
	idemKey := uuid.NewSHA1(idemNamespace, []byte(customer.Email)).String()

	created, err := p.providerClient.CreateCustomer(ctx, customer.Email, paymentMethod, p.balancePolicy(customer), idemKey)
	if err != nil {
		return nil, &ProviderError{Op: "create customer", Err: err}
	}

	return created, nil
}

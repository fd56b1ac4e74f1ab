package service

import (
	"context"
	"errors"
	"order-payment-service/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CreatesWhenAbsent(t *testing.T) {
	provider := newFakeProviderClient()
	provisioner := NewCustomerProvisioner(provider, FixedInitialBalance(25000))
	customer := &model.Customer{ID: "c1", Email: "bob@example.com"}

	remote, err := provisioner.Resolve(context.Background(), customer, "pm_card")
	require.NoError(t, err)

	assert.Equal(t, "bob@example.com", remote.Email)
	assert.Equal(t, int64(25000), remote.Balance)
	assert.Equal(t, "pm_card", remote.DefaultPaymentMethod)
	assert.Equal(t, []string{"find_customer", "create_customer"}, provider.recordedCalls())
}

func TestResolve_ReturnsExistingUnchanged(t *testing.T) {
	provider := newFakeProviderClient()
	seeded := provider.seedCustomer("bob@example.com", 123)
	provisioner := NewCustomerProvisioner(provider, FixedInitialBalance(25000))
	customer := &model.Customer{ID: "c1", Email: "bob@example.com"}

	first, err := provisioner.Resolve(context.Background(), customer, "pm_card")
	require.NoError(t, err)
	second, err := provisioner.Resolve(context.Background(), customer, "pm_other")
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, first.ID)
	assert.Equal(t, first.ID, second.ID, "resolving twice must yield the same remote customer")
	assert.Equal(t, int64(123), second.Balance, "existing customers are returned unchanged")
	assert.Equal(t, []string{"find_customer", "find_customer"}, provider.recordedCalls())
}

func TestResolve_IdempotencyKeyIsDeterministic(t *testing.T) {
	customer := &model.Customer{ID: "c1", Email: "bob@example.com"}

	// two independent provider instances see the same key for one email
	var keys []string
	for i := 0; i < 2; i++ {
		provider := newFakeProviderClient()
		provisioner := NewCustomerProvisioner(provider, FixedInitialBalance(0))
		_, err := provisioner.Resolve(context.Background(), customer, "pm_card")
		require.NoError(t, err)
		require.Len(t, provider.idempotencyKeys, 1)
		keys = append(keys, provider.idempotencyKeys[0])
	}

	assert.NotEmpty(t, keys[0])
	assert.Equal(t, keys[0], keys[1])
}

func TestResolve_WrapsProviderFailures(t *testing.T) {
	provider := newFakeProviderClient()
	provider.findErr = errors.New("connection reset")
	provisioner := NewCustomerProvisioner(provider, FixedInitialBalance(0))
	customer := &model.Customer{ID: "c1", Email: "bob@example.com"}

	_, err := provisioner.Resolve(context.Background(), customer, "pm_card")

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "find customer", providerErr.Op)
}

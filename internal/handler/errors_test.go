package handler

import (
	"errors"
	"net/http"
	"order-payment-service/internal/model"
	"order-payment-service/internal/service"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"no active order", &service.NoActiveOrderError{CustomerID: "c1"}, http.StatusNotFound},
		{"invalid order", &service.InvalidOrderError{OrderID: "o1", Reason: "no items"}, http.StatusUnprocessableEntity},
		{"insufficient balance", &service.InsufficientBalanceError{RequiredMinor: 1500, AvailableMinor: 1000}, http.StatusPaymentRequired},
		{"invalid payment status", &service.InvalidPaymentStatusError{IntentID: "pi_1", Status: model.IntentStatusProcessing}, http.StatusPaymentRequired},
		{"provider failure", &service.ProviderError{Op: "confirm", Err: errors.New("timeout")}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr, ok := toHTTPError(tc.err).(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, tc.code, httpErr.Code)
		})
	}
}

func TestToHTTPError_WrappedErrorsStillMap(t *testing.T) {
	// commit failures come back wrapped; the typed cause must still map
	wrapped := errors.Join(errors.New("commit paid order o1"), &service.NoActiveOrderError{CustomerID: "c1"})

	httpErr, ok := toHTTPError(wrapped).(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestToHTTPError_UnknownErrorPassesThrough(t *testing.T) {
	err := errors.New("something else")
	assert.Equal(t, err, toHTTPError(err))
}

package handler

import (
	"errors"
	"net/http"
	"order-payment-service/internal/service"

	"github.com/labstack/echo/v4"
)

// toHTTPError maps the payment flow's typed errors to transport status
// codes. Anything unrecognized falls through to echo's 500 handling.
func toHTTPError(err error) error {
	var (
		noOrder      *service.NoActiveOrderError
		invalidOrder *service.InvalidOrderError
		insufficient *service.InsufficientBalanceError
		badStatus    *service.InvalidPaymentStatusError
		provider     *service.ProviderError
	)

	switch {
	case errors.As(err, &noOrder):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &invalidOrder):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &insufficient):
		return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
	case errors.As(err, &badStatus):
		return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
	case errors.As(err, &provider):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return err
	}
}

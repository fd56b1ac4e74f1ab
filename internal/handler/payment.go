package handler

import (
	"net/http"
	"order-payment-service/internal/dto"
	"order-payment-service/internal/middleware"
	"order-payment-service/internal/model"
	"order-payment-service/internal/repository"
	"order-payment-service/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	customerRepo   repository.CustomerRepository
}

func NewPaymentHandler(paymentService service.PaymentService, customerRepo repository.CustomerRepository) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		customerRepo:   customerRepo,
	}
}

func customerFromContext(c echo.Context, customerRepo repository.CustomerRepository) (*model.Customer, error) {
	email, _ := c.Get(middleware.CustomerEmailKey).(string)
	if email == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no authenticated customer")
	}

	customer, err := customerRepo.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unknown customer")
	}

	return customer, nil
}

func (h *PaymentHandler) PayOrder(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := customerFromContext(c, h.customerRepo)
	if err != nil {
		return err
	}

	var req dto.PayOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	receipt, err := h.paymentService.CreateOrderPayment(ctx, customer, req.PaymentMethod)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, receipt)
}

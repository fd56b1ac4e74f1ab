package handler

import (
	"net/http"
	"order-payment-service/internal/dto"
	"order-payment-service/internal/repository"
	"order-payment-service/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
	customerRepo repository.CustomerRepository
}

func NewOrderHandler(orderService service.OrderService, customerRepo repository.CustomerRepository) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		customerRepo: customerRepo,
	}
}

func (h *OrderHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := customerFromContext(c, h.customerRepo)
	if err != nil {
		return err
	}

	var req dto.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.AddItem(ctx, customer, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetActiveOrder(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := customerFromContext(c, h.customerRepo)
	if err != nil {
		return err
	}

	order, err := h.orderService.GetActiveOrder(ctx, customer)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetHistory(c echo.Context) error {
	ctx := c.Request().Context()

	customer, err := customerFromContext(c, h.customerRepo)
	if err != nil {
		return err
	}

	records, err := h.orderService.GetHistory(ctx, customer)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, records)
}

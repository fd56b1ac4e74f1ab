package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"order-payment-service/internal/dto"
	"order-payment-service/internal/middleware"
	"order-payment-service/internal/model"
	"order-payment-service/internal/service"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentService struct {
	receipt *dto.PaymentReceipt
	err     error

	gotCustomer      *model.Customer
	gotPaymentMethod string
}

func (s *stubPaymentService) CreateOrderPayment(ctx context.Context, customer *model.Customer, paymentMethod string) (*dto.PaymentReceipt, error) {
	s.gotCustomer = customer
	s.gotPaymentMethod = paymentMethod
	return s.receipt, s.err
}

type stubCustomerRepo struct {
	customer *model.Customer
}

func (s *stubCustomerRepo) Seed(ctx context.Context) error { return nil }

func (s *stubCustomerRepo) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return s.customer, nil
}

func (s *stubCustomerRepo) FindByID(ctx context.Context, customerID string) (*model.Customer, error) {
	return s.customer, nil
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func payOrder(t *testing.T, payment *stubPaymentService, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}

	req := httptest.NewRequest(http.MethodPost, "/api/orders/payment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CustomerEmailKey, "alice@example.com")

	customerRepo := &stubCustomerRepo{customer: &model.Customer{ID: "c1", Email: "alice@example.com"}}
	h := NewPaymentHandler(payment, customerRepo)

	if err := h.PayOrder(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestPayOrder_Success(t *testing.T) {
	payment := &stubPaymentService{
		receipt: &dto.PaymentReceipt{Amount: 20.00, EndingBalance: 30.00},
	}

	rec := payOrder(t, payment, `{"payment_method":"pm_card"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":20`)
	assert.Contains(t, rec.Body.String(), `"ending_balance":30`)

	require.NotNil(t, payment.gotCustomer)
	assert.Equal(t, "c1", payment.gotCustomer.ID)
	assert.Equal(t, "pm_card", payment.gotPaymentMethod)
}

func TestPayOrder_MissingPaymentMethod(t *testing.T) {
	rec := payOrder(t, &stubPaymentService{}, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayOrder_MapsTypedErrors(t *testing.T) {
	payment := &stubPaymentService{
		err: &service.InsufficientBalanceError{RequiredMinor: 1500, AvailableMinor: 1000},
	}

	rec := payOrder(t, payment, `{"payment_method":"pm_card"}`)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "required 15.00, available 10.00")
}

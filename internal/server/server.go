package server

import (
	"order-payment-service/internal/handler"
	"order-payment-service/internal/repository"
	"order-payment-service/internal/service"

	authmw "order-payment-service/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
	orderHandler   *handler.OrderHandler
	jwtSecret      string
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(
	paymentService service.PaymentService,
	orderService service.OrderService,
	customerRepo repository.CustomerRepository,
	jwtSecret string,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &requestValidator{validate: validator.New()}

	s := &Server{
		echo:           e,
		paymentHandler: handler.NewPaymentHandler(paymentService, customerRepo),
		orderHandler:   handler.NewOrderHandler(orderService, customerRepo),
		jwtSecret:      jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- orders --------
	orders := api.Group("/orders", authmw.JWTAuth(s.jwtSecret))
	orders.POST("/items", s.orderHandler.AddItem)
	orders.GET("/active", s.orderHandler.GetActiveOrder)
	orders.GET("/history", s.orderHandler.GetHistory)
	orders.POST("/payment", s.paymentHandler.PayOrder)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

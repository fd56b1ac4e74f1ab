package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"order-payment-service/internal/client"
	"order-payment-service/internal/config"
	"order-payment-service/internal/repository"
	"order-payment-service/internal/server"
	"order-payment-service/internal/service"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabasePath)
	providerClient := client.NewProviderClient(&cfg.Provider)

	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	historyRepo := repository.NewOrderHistoryRepository(db)

	ctx := context.Background()
	if err := customerRepo.Seed(ctx); err != nil {
		log.Fatal("seed customers:", err)
	}
	if err := productRepo.Seed(ctx); err != nil {
		log.Fatal("seed products:", err)
	}

	provisioner := service.NewCustomerProvisioner(
		providerClient,
		service.FixedInitialBalance(cfg.Provider.InitialBalance),
	)
	lifecycle := service.NewOrderLifecycleManager(db, orderRepo, historyRepo)
	intents := service.NewPaymentIntentManager(providerClient)
	balance := service.NewBalanceTransferService(providerClient)

	paymentService := service.NewPaymentService(provisioner, lifecycle, intents, balance)
	orderService := service.NewOrderService(db, productRepo, orderRepo, historyRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(paymentService, orderService, customerRepo, cfg.Auth.JWTSecret)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}

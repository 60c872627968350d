package main

import (
	"log"

	"fishmarket-be/internal/api"
	"fishmarket-be/internal/config"
	"fishmarket-be/internal/customer"
	"fishmarket-be/internal/db"
	"fishmarket-be/internal/farmer"
	"fishmarket-be/internal/listing"
	"fishmarket-be/internal/logger"
	"fishmarket-be/internal/metrics"
	"fishmarket-be/internal/order"
	"fishmarket-be/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	uploader, err := storage.NewUploader(cfg.S3)
	if err != nil {
		log.Fatalf("failed to init document store: %v", err)
	}

	checkout := &metrics.Checkout{}

	farmerRepo := farmer.NewRepository(database)
	farmerSvc := farmer.NewService(farmerRepo, uploader, cfg.JWT.Secret)

	customerRepo := customer.NewRepository(database)
	customerSvc := customer.NewService(customerRepo, cfg.JWT.Secret)

	listingRepo := listing.NewRepository(database)
	listingSvc := listing.NewService(listingRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, checkout)

	router := api.NewRouter(api.Dependencies{
		Farmers:   farmerSvc,
		Customers: customerSvc,
		Listings:  listingSvc,
		Orders:    orderSvc,
		Checkout:  checkout,
		JWTSecret: cfg.JWT.Secret,
	})

	log.Printf("server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}

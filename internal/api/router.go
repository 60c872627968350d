package api

import (
	"time"

	"fishmarket-be/internal/customer"
	"fishmarket-be/internal/farmer"
	"fishmarket-be/internal/listing"
	"fishmarket-be/internal/metrics"
	"fishmarket-be/internal/middleware"
	"fishmarket-be/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Farmers   farmer.Service
	Customers customer.Service
	Listings  listing.Service
	Orders    order.Service
	Checkout  *metrics.Checkout
	JWTSecret string
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.Authenticate(deps.JWTSecret))
	router.Use(middleware.RequestLogger())

	authHandler := &AuthHandler{Farmers: deps.Farmers, Customers: deps.Customers}
	profileHandler := &ProfileHandler{Farmers: deps.Farmers, Customers: deps.Customers}
	listingHandler := &ListingHandler{Listings: deps.Listings}
	orderHandler := &OrderHandler{Orders: deps.Orders}
	systemHandler := &SystemHandler{Checkout: deps.Checkout}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/health", systemHandler.Health)
		apiV1.GET("/debug/metrics", systemHandler.Metrics)

		auth := apiV1.Group("/auth")
		auth.Use(middleware.RateLimit(true))
		{
			auth.POST("/farmers/register", authHandler.RegisterFarmer)
			auth.POST("/customers/register", authHandler.RegisterCustomer)
			auth.POST("/farmers/sign-in", authHandler.SignInFarmer)
			auth.POST("/customers/sign-in", authHandler.SignInCustomer)
			auth.POST("/sign-out", authHandler.SignOut)
		}

		protected := apiV1.Group("/")
		protected.Use(middleware.RequirePrincipal())
		protected.Use(middleware.RateLimit(false))
		{
			protected.GET("/farmers/:id", profileHandler.GetFarmer)
			protected.PATCH("/farmers/me", profileHandler.UpdateFarmer)
			protected.POST("/farmers/me/documents", profileHandler.UploadDocuments)
			protected.GET("/farmers/me/listings", listingHandler.OwnerFeed)

			protected.GET("/customers/me", profileHandler.GetCustomer)
			protected.PATCH("/customers/me", profileHandler.UpdateCustomer)

			protected.GET("/catalog", listingHandler.Catalog)
			protected.POST("/listings", listingHandler.Create)
			protected.GET("/listings/:id", listingHandler.Get)
			protected.PATCH("/listings/:id", listingHandler.Update)
			protected.DELETE("/listings/:id", listingHandler.Delete)

			protected.POST("/orders", orderHandler.Place)
			protected.GET("/orders", orderHandler.ListMine)
			protected.GET("/orders/:id", orderHandler.Get)
		}
	}

	return router
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/sda-clothing/storefront/internal"
	"github.com/sda-clothing/storefront/internal/backend"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	sessions := NewSessionStore(cfg.RedisAddress, cfg.JWTSecret, sugaredLogger)
	client := backend.NewClient(cfg.BackendAddress, sugaredLogger)

	service := NewService(client, repository, sessions, cfg.CheckoutTimeout, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/register", handlers.Register)
	auth.Post("/logout", handlers.Logout)
	auth.Get("/profile", handlers.Profile)
	auth.Put("/profile/update", handlers.UpdateProfile)

	api.Get("/products", handlers.Products)
	api.Get("/products/:id", handlers.Product)
	api.Get("/products/:id/reviews", handlers.ProductReviews)
	api.Post("/products/:id/reviews/add", handlers.AddReview)

	cart := api.Group("/cart")
	cart.Get("/", handlers.Cart)
	cart.Post("/add", handlers.AddToCart)
	cart.Post("/remove", handlers.RemoveFromCart)

	wishlist := api.Group("/wishlist")
	wishlist.Get("/", handlers.Wishlist)
	wishlist.Post("/add", handlers.AddToWishlist)
	wishlist.Delete("/:id", handlers.RemoveFromWishlist)

	orders := api.Group("/orders")
	orders.Get("/", handlers.Orders)
	orders.Get("/pending", handlers.PendingPayments)
	orders.Get("/:id", handlers.Order)
	orders.Get("/:id/track", handlers.TrackOrder)
	orders.Post("/:id/cancel", handlers.CancelOrder)
	orders.Post("/:id/refund", handlers.RequestRefund)

	checkout := api.Group("/checkout")
	checkout.Post("/", handlers.StartCheckout)
	checkout.Post("/place", handlers.PlaceOrder)
	checkout.Post("/resume/:id", handlers.ResumeCheckout)
	checkout.Post("/payment", handlers.UploadPayment)
	checkout.Get("/state", handlers.CheckoutState)
	checkout.Delete("/", handlers.AbandonCheckout)

	go sugaredLogger.Fatal(app.Listen(cfg.RunAddress))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}

package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/aurelia-jewels/jewelry-shop-backend/internal/cart"
	"github.com/aurelia-jewels/jewelry-shop-backend/internal/config"
	"github.com/aurelia-jewels/jewelry-shop-backend/internal/order"
	"github.com/aurelia-jewels/jewelry-shop-backend/internal/product"
	"github.com/aurelia-jewels/jewelry-shop-backend/internal/session"
	"github.com/aurelia-jewels/jewelry-shop-backend/internal/wishlist"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(session.Middleware())

	// catalog: in-memory seed by default, Postgres when DATABASE_URL is set
	var productRepo product.Repository = product.NewInMemoryRepository(product.SeedCatalog())
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		productRepo = product.NewPostgresRepository(db)
	}
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)
	productHandler.RegisterRoutes(app)

	// cart endpoints; mutations are published to subscribers instead of
	// being polled for
	cartRepo := cart.NewInMemoryRepository()
	cartRepo.Subscribe(func(sessionID string, occurrences []int) {
		fmt.Printf("[DEBUG] cart changed for session %s: %v\n", sessionID, occurrences)
	})
	cartService := cart.NewService(cartRepo, productService)
	cartHandler := cart.NewHandler(cartService)
	cartHandler.RegisterRoutes(app)

	// wishlist endpoints
	wishlistService := wishlist.NewService(wishlist.NewInMemoryRepository(), productService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	wishlistHandler.RegisterRoutes(app)

	// order endpoints; the order service needs the cart service so a
	// submission clears the cart of the session that placed it
	orderService := order.NewService(order.NewInMemoryRepository(), productService, cartService, order.FailurePolicy(cfg.CheckoutPolicy))
	orderHandler := order.NewHandler(orderService)
	orderHandler.RegisterRoutes(app)

	log.Printf("starting server on %s (checkout policy: %s)", cfg.Addr, cfg.CheckoutPolicy)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr string
	// DatabaseURL selects the Postgres catalog repository when set;
	// empty means the built-in in-memory catalog.
	DatabaseURL string
	// CheckoutPolicy is "strict" or "optimistic"; see the order package.
	CheckoutPolicy string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("SHOP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	policy := os.Getenv("CHECKOUT_FAILURE_POLICY")
	if policy == "" {
		policy = "strict"
	}

	return Config{
		Addr:           addr,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		CheckoutPolicy: policy,
	}
}

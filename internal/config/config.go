package config

import "os"

// Config holds all environment-derived settings for the catalog API.
//
// APIKey and JWTSecret intentionally have no defaults: when they are unset
// every API-key or bearer check fails with 401 instead of silently accepting
// a baked-in secret.
type Config struct {
	Port string

	APIKey    string
	JWTSecret string

	ProductsFile       string
	ProductsFileLegacy string
	UsersFile          string
	UsersFileLegacy    string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load collects configuration from the environment with defaults.
func Load() Config {
	return Config{
		Port:               getenv("PORT", "3000"),
		APIKey:             os.Getenv("API_KEY"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		ProductsFile:       getenv("PRODUCTS_FILE", "products.json"),
		ProductsFileLegacy: getenv("PRODUCTS_FILE_LEGACY", "Product.json"),
		UsersFile:          getenv("USERS_FILE", "users.json"),
		UsersFileLegacy:    getenv("USERS_FILE_LEGACY", "User.json"),
	}
}

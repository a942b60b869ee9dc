package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"caixa/models"

	"github.com/shopspring/decimal"
)

// Config carries everything read from the environment at startup.
type Config struct {
	Port           string
	JWTSecret      string
	AllowedOrigins []string
	Operator       models.Operator
	Catalog        models.Catalog
}

// Load reads the environment and the optional catalog file. A till nobody
// can sign into is misconfigured, so missing credentials are fatal.
func Load() *Config {
	cfg := &Config{
		Port:      getenv("PORT", "1414"),
		JWTSecret: getenv("JWT_SECRET", "my_secret_key"),
	}
	cfg.AllowedOrigins = strings.Split(getenv("ALLOWED_ORIGINS", "http://localhost:5173"), ",")

	cfg.Operator = models.Operator{
		Login:        getenv("OPERATOR_LOGIN", "caixa"),
		PasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
		Role:         "cashier",
	}
	if cfg.Operator.PasswordHash == "" {
		log.Fatal("OPERATOR_PASSWORD_HASH is not set")
	}

	cfg.Catalog = defaultCatalog()
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Error reading catalog file: %v", err)
		}
		if err := json.Unmarshal(data, &cfg.Catalog); err != nil {
			log.Fatalf("Error parsing catalog file: %v", err)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultCatalog is the counter's staples, used when CATALOG_FILE is not set.
func defaultCatalog() models.Catalog {
	return models.Catalog{
		Products: []models.Product{
			{Name: "Arroz", UnitPrice: decimal.RequireFromString("5.00")},
			{Name: "Feijão", UnitPrice: decimal.RequireFromString("3.50")},
			{Name: "Leite", UnitPrice: decimal.RequireFromString("4.80")},
			{Name: "Pão", UnitPrice: decimal.RequireFromString("0.75")},
			{Name: "Café", UnitPrice: decimal.RequireFromString("12.90")},
			{Name: "Açúcar", UnitPrice: decimal.RequireFromString("4.20")},
		},
		Customers: []string{"Ana", "Bruno", "Carla", "Davi", "Elisa"},
	}
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string
	StoreBackend    string
	BankWallet      string
	BaseChainID     string
	CatalogMax      int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		StoreBackend:    getEnv("STORE_BACKEND", "memory"),
		BankWallet:      getEnv("BANK_WALLET_ADDRESS", "0x53304048455325fBFFecC34a62976CB3f4D7b519"),
		BaseChainID:     getEnv("BASE_CHAIN_ID", "0x2105"), // Base mainnet (8453)
		CatalogMax:      getEnvAsInt64("CATALOG_MAX_NATURAL", 300),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

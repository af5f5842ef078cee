package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers understood by the persistence layer.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Persistence
	StoreDriver    string
	DataFile       string
	SeedFile       string
	SQLitePath     string
	IndexThreshold int

	// Database (postgres driver)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Basic auth
	AuthUsername     string
	AuthPassword     string
	AuthPasswordHash string
	AuthRealm        string

	// HTTP
	RateLimit   string
	CORSOrigins []string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8000"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverJSON)),
		DataFile:    getEnv("DATA_FILE", "data/transactions.json"),
		SeedFile:    getEnv("SEED_FILE", "data/processed/dashboard.json"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/transactions.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "momo"),
		DBPassword: getEnv("DB_PASSWORD", "momo"),
		DBName:     getEnv("DB_NAME", "momo"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AuthUsername:     getEnv("AUTH_USERNAME", "admin"),
		AuthPassword:     getEnv("AUTH_PASSWORD", "secure123"),
		AuthPasswordHash: getEnv("AUTH_PASSWORD_HASH", ""),
		AuthRealm:        getEnv("AUTH_REALM", "Transaction API"),

		RateLimit:   getEnv("RATE_LIMIT", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	thresholdStr := getEnv("INDEX_THRESHOLD", "64")
	threshold, err := strconv.Atoi(thresholdStr)
	if err != nil || threshold < 0 {
		log.Printf("Warning: invalid INDEX_THRESHOLD value '%s', falling back to 64\n", thresholdStr)
		threshold = 64
	}
	config.IndexThreshold = threshold

	switch config.StoreDriver {
	case DriverJSON, DriverSQLite, DriverPostgres:
	default:
		log.Printf("Warning: unknown STORE_DRIVER '%s', falling back to %s\n", config.StoreDriver, DriverJSON)
		config.StoreDriver = DriverJSON
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresURL returns the postgres:// connection URL used by the migrator.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// PostgresDSN returns the key/value DSN used by the GORM postgres driver.
func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"strings"

	"Backend-Medical-Intake/src/logger"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	AppURI         string // listen port
	MongoURI       string // empty means no remote database, local mode only
	MongoDB        string
	LedgerDriver   string // sqlite | redis | memory
	LedgerDir      string
	RedisURI       string
	JWTSecret      string
	AllowedOrigins string
	LogLevel       string
}

const (
	LedgerSQLite = "sqlite"
	LedgerRedis  = "redis"
	LedgerMemory = "memory"
)

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Warnf("⚠️ No .env file found, using process environment")
	}
	return FromEnv()
}

func FromEnv() Config {
	cfg := Config{
		AppURI:         getEnv("APP_URI", "8888"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getEnv("MONGO_DB", "MedicalIntakeDB"),
		LedgerDriver:   strings.ToLower(getEnv("LEDGER_DRIVER", LedgerSQLite)),
		LedgerDir:      getEnv("LEDGER_DIR", "data"),
		RedisURI:       os.Getenv("REDIS_URI"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

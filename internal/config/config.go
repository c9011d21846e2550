package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port            string
	AppTitle        string
	AppIcon         string
	RatesBaseURL    string
	CORSOrigins     []string
	ValuationDedupe bool
	LogLevel        string
	PostgresCfg     PostgresConfig
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
	SSLMode  string
}

func New() *Config {
	return &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		AppTitle:        getEnvOrDefault("APP_TITLE", "Invoices"),
		AppIcon:         getEnvOrDefault("APP_ICON", "/static/icon.png"),
		RatesBaseURL:    getEnvOrDefault("RATES_BASE_URL", "https://blockchain.info"),
		CORSOrigins:     splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),
		ValuationDedupe: getBoolOrDefault("VALUATION_DEDUPE", false),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "invoices"),
			Username: getEnvOrDefault("POSTGRES_USER", "user"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "password"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
			SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
		},
	}
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.Username, p.Password, p.DBname, p.SSLMode)
}

// InitDB opens the gorm connection used by every repository.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresCfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres %s:%s: %w", cfg.PostgresCfg.Host, cfg.PostgresCfg.Port, err)
	}
	return db, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

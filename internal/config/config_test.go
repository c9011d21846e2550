package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("VALUATION_DEDUPE", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := New()

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.ValuationDedupe)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "https://blockchain.info", cfg.RatesBaseURL)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VALUATION_DEDUPE", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("POSTGRES_HOST", "db")

	cfg := New()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.ValuationDedupe)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Contains(t, cfg.PostgresCfg.DSN(), "host=db ")
}

func TestGetBoolOrDefault_Invalid(t *testing.T) {
	t.Setenv("SOME_FLAG", "maybe")
	assert.True(t, getBoolOrDefault("SOME_FLAG", true))
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("MATDASH_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("MATDASH_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("MATDASH_TEST_MISSING", "fallback"))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("MATDASH_SERVER_ENVIRONMENT", "")
	assert.Equal(t, EnvDevelopment, GetEnvironment())
	assert.True(t, IsDevelopment())
	assert.False(t, IsProductionLike())

	t.Setenv("MATDASH_SERVER_ENVIRONMENT", "Production")
	assert.Equal(t, EnvProduction, GetEnvironment())
	assert.True(t, IsProductionLike())

	t.Setenv("MATDASH_SERVER_ENVIRONMENT", "staging")
	assert.True(t, IsProductionLike())
	assert.False(t, IsDevelopment())
}

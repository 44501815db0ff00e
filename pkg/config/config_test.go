package config_test

import (
	"testing"
	"time"

	"github.com/safebite/safebite/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "ingredients.txt", cfg.Taxonomy.IngredientsFile)
	assert.Equal(t, "additives.txt", cfg.Taxonomy.AdditivesFile)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://world.openfoodfacts.org/api/v0",
		cfg.Product.OpenFoodFactsURL)
	assert.Equal(t, "localhost:6379", cfg.Profile.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.Profile.UndoWindow)
	assert.Equal(t, "json", cfg.Log.Format)

	require.NoError(t, cfg.Validate())
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptServerPort(9000),
		config.OptCacheDir("/tmp/safebite-cache"),
		config.OptRedisAddr("redis:6379"),
		config.OptUndoWindow(time.Minute),
		config.OptLogLevel("DEBUG"),
	})

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/tmp/safebite-cache", cfg.Taxonomy.CacheDir)
	assert.Equal(t, "redis:6379", cfg.Profile.RedisAddr)
	assert.Equal(t, time.Minute, cfg.Profile.UndoWindow)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptServerPort(-1),
		config.OptIngredientsFile("  "),
		config.OptProductTimeout(0),
	})

	def := config.New()
	assert.Equal(t, def.Server.Port, cfg.Server.Port)
	assert.Equal(t, def.Taxonomy.IngredientsFile, cfg.Taxonomy.IngredientsFile)
	assert.Equal(t, def.Product.Timeout, cfg.Product.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := config.New()
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.Product.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.Profile.UndoWindow = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Port = 9000
	cfg.MergeWithDefaults()

	def := config.New()
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, def.Server.Host, cfg.Server.Host)
	assert.Equal(t, def.Product.OpenFoodFactsURL, cfg.Product.OpenFoodFactsURL)
	assert.Equal(t, def.Profile.UndoWindow, cfg.Profile.UndoWindow)
	assert.Equal(t, def.Log.Level, cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

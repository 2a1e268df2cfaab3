package jsonpath

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeschinkel/jsonpath/provider"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	require.NotNil(t, cfg.provider)
	assert.IsType(t, &provider.DefaultProvider{}, cfg.provider)
	assert.False(t, cfg.throwOnMissingProperty)
	assert.False(t, cfg.truthinessPredicates)
	assert.Equal(t, defaultMaxScanDepth, cfg.maxScanDepth)
	require.NotNil(t, cfg.logger)
}

func TestNewConfig_OptionsOverrideDefaults(t *testing.T) {
	customLogger := slog.Default()
	gjsonProvider := provider.NewGJSON()

	cfg := NewConfig(
		WithProvider(gjsonProvider),
		WithThrowOnMissingProperty(),
		WithTruthinessPredicates(),
		WithMaxScanDepth(10),
		WithLogger(customLogger),
	)

	assert.Same(t, gjsonProvider, cfg.provider)
	assert.True(t, cfg.throwOnMissingProperty)
	assert.True(t, cfg.truthinessPredicates)
	assert.Equal(t, 10, cfg.maxScanDepth)
	assert.Same(t, customLogger, cfg.logger)
}

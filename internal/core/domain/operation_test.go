package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/yango/internal/core/domain"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Operation
	}{
		{"format", domain.OperationFormat},
		{"Convert", domain.OperationConvert},
		{" compile ", domain.OperationCompile},
		{"VERSION", domain.OperationVersion},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := domain.ParseOperation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestParseOperation_Unknown(t *testing.T) {
	_, err := domain.ParseOperation("lint")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownOperation.Error())
}

func TestOperation_RoundTrip(t *testing.T) {
	for _, op := range append(domain.BatchOperations, domain.OperationVersion) {
		parsed, err := domain.ParseOperation(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, parsed)
	}
	assert.Equal(t, "unknown", domain.Operation(0).String())
}

func TestOperation_CacheStores(t *testing.T) {
	assert.Equal(t, "yang-format-cache.properties", domain.OperationFormat.CacheFileName())
	assert.Equal(t, "yin-yang-cache.properties", domain.OperationConvert.CacheFileName())
	assert.Equal(t, "yang-compile-cache.properties", domain.OperationCompile.CacheFileName())
	assert.Empty(t, domain.OperationVersion.CacheFileName())

	assert.True(t, domain.OperationCompile.IsBatch())
	assert.False(t, domain.OperationVersion.IsBatch())

	assert.Equal(t,
		filepath.Join("/p/target", "yin-yang-cache.properties"),
		domain.CacheStorePath("/p/target", domain.OperationConvert),
	)
}

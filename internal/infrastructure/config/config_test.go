package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "STORAGE_DRIVER", "WORKFLOW_ENGINE_MOCK", "EXTENSION_MAX_REMAINING_MAN_DAYS", "RATE_LIMIT_PER_MINUTE", "WORKFLOW_TIMEOUT", "FLOWABLE_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StorageDynamoDB, cfg.StorageDriver)
	assert.False(t, cfg.WorkflowEngineMock)
	assert.Equal(t, 10*time.Second, cfg.WorkflowTimeout)
	assert.Equal(t, 0, cfg.ExtensionMaxRemainingManDays)
	assert.Equal(t, int64(120), cfg.RateLimitPerMinute)
	assert.Equal(t, "http://localhost:8080/flowable-rest/service", cfg.FlowableBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("WORKFLOW_ENGINE_MOCK", "yes")
	t.Setenv("EXTENSION_MAX_REMAINING_MAN_DAYS", "5")
	t.Setenv("THIRD_PARTY_API_BASE", "http://catalog.local/api/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.True(t, cfg.WorkflowEngineMock)
	assert.Equal(t, 5, cfg.ExtensionMaxRemainingManDays)
	assert.Equal(t, "http://catalog.local/api", cfg.CatalogBaseURL)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "mongo"}},
		{"postgres without url", map[string]string{"STORAGE_DRIVER": "postgres", "DATABASE_URL": ""}},
		{"bad number", map[string]string{"STORAGE_DRIVER": "memory", "RATE_LIMIT_PER_MINUTE": "lots"}},
		{"negative policy", map[string]string{"STORAGE_DRIVER": "memory", "EXTENSION_MAX_REMAINING_MAN_DAYS": "-1"}},
		{"bad timeout", map[string]string{"STORAGE_DRIVER": "memory", "WORKFLOW_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

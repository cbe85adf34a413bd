package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "******", maskSecret(EmbeddingConfigKeyAPIKey, "sk-live-123"))
	assert.Equal(t, "******", maskSecret(RedisClientPassword, "hunter2"))
	assert.Equal(t, "******", maskSecret(BaseDbXormPassword, "pg-pass"))

	// an unset secret stays visibly empty
	assert.Equal(t, "", maskSecret(EmbeddingConfigKeyAPIKey, ""))

	// everything else passes through untouched
	assert.Equal(t, ":8080", maskSecret(AppHost, ":8080"))
	assert.Equal(t, 0.55, maskSecret(BotSimilarityThreshold, 0.55))
}

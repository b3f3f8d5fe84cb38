package redisclient

import (
	"context"
	"testing"

	"leafscan/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), &config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	mr.CheckGet(t, "k", "v")
}

func TestNewClient_Disabled(t *testing.T) {
	client, err := NewClient(context.Background(), &config.RedisConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), &config.RedisConfig{Addr: addr}, zap.NewNop())
	assert.Error(t, err)
}

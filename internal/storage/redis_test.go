package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKV(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectRedis(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	kv := NewRedisKV(client, "cart:")
	defer kv.Close()

	runKVContract(t, kv)

	t.Run("keys are namespaced with the prefix", func(t *testing.T) {
		require.NoError(t, kv.Set(context.Background(), "blububb_cart", "{}"))

		v, err := mr.Get("cart:blububb_cart")
		require.NoError(t, err)
		assert.Equal(t, "{}", v)
		assert.False(t, mr.Exists("blububb_cart"))
	})
}

func TestConnectRedisFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := ConnectRedis(context.Background(), addr, "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

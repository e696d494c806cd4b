package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "cart:u1:purchase", `{"items":[]}`))

	value, ok, err := store.Get(ctx, "cart:u1:purchase")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"items":[]}`, value)

	// Last writer wins
	require.NoError(t, store.Set(ctx, "cart:u1:purchase", `{"items":[1]}`))
	value, _, _ = store.Get(ctx, "cart:u1:purchase")
	assert.Equal(t, `{"items":[1]}`, value)

	require.NoError(t, store.Delete(ctx, "cart:u1:purchase"))
	_, ok, err = store.Get(ctx, "cart:u1:purchase")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "missing"))
}

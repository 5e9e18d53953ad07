package gateway_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkit/admin/app/gateway"
)

type doc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()

	require.NoError(t, store.Create(ctx, "things", "b", doc{ID: "b", Name: "second", N: 2}))
	require.NoError(t, store.Create(ctx, "things", "a", doc{ID: "a", Name: "first", N: 1}))

	var got doc
	require.NoError(t, store.Get(ctx, "things", "a", &got))
	assert.Equal(t, "first", got.Name)

	// List returns records in id order regardless of insertion order.
	var all []doc
	require.NoError(t, store.List(ctx, "things", &all))
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)

	// Update merges fields, leaving the rest of the record intact.
	require.NoError(t, store.Update(ctx, "things", "a", map[string]interface{}{"n": 10}))
	require.NoError(t, store.Get(ctx, "things", "a", &got))
	assert.Equal(t, 10, got.N)
	assert.Equal(t, "first", got.Name)

	require.NoError(t, store.Delete(ctx, "things", "a"))
	err := store.Get(ctx, "things", "a", &got)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestMemoryMissingRecords(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()

	var got doc
	assert.ErrorIs(t, store.Get(ctx, "things", "nope", &got), gateway.ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, "things", "nope", map[string]interface{}{"n": 1}), gateway.ErrNotFound)

	var all []doc
	require.NoError(t, store.List(ctx, "empty", &all))
	assert.Empty(t, all)
}

func TestMemorySubscribe(t *testing.T) {
	ctx := context.Background()
	store := gateway.NewMemory()

	var changes []string
	unsubscribe := store.Subscribe("things", func(collection string) {
		changes = append(changes, collection)
	})

	require.NoError(t, store.Create(ctx, "things", "a", doc{ID: "a"}))
	require.NoError(t, store.Update(ctx, "things", "a", map[string]interface{}{"n": 1}))
	require.NoError(t, store.Delete(ctx, "things", "a"))
	assert.Equal(t, []string{"things", "things", "things"}, changes)

	// Changes in other collections do not leak through.
	require.NoError(t, store.Create(ctx, "other", "x", doc{ID: "x"}))
	assert.Len(t, changes, 3)

	unsubscribe()
	require.NoError(t, store.Create(ctx, "things", "b", doc{ID: "b"}))
	assert.Len(t, changes, 3)
}

func TestMemoryCancelledContext(t *testing.T) {
	store := gateway.NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var all []doc
	assert.Error(t, store.List(ctx, "things", &all))
	assert.Error(t, store.Create(ctx, "things", "a", doc{ID: "a"}))
}

func TestNewID(t *testing.T) {
	a, b := gateway.NewID(), gateway.NewID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	for _, c := range a {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}

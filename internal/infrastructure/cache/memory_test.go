package cache

import (
	"context"
	"testing"
	"time"

	"github.com/mealcraft/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	err := c.Set(ctx, "key-1", "value-1", time.Minute)
	require.NoError(t, err)

	value, err := c.Get(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "value-1", value)
}

func TestMemoryCache_JSONRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	recipe := &domain.ScaledRecipe{
		Ingredients: []domain.IngredientLine{
			{ID: "ingredient-0", Text: "3 cups flour"},
		},
		OriginalServings: 2,
		TargetServings:   4,
		ScaleFactor:      2,
		Source:           "Computed",
	}

	err := c.Set(ctx, "scale-key", recipe, time.Minute)
	require.NoError(t, err)

	value, err := c.Get(ctx, "scale-key")
	require.NoError(t, err)

	// Stored values come back as generic JSON shapes, like Redis would produce
	dataMap, ok := value.(map[string]interface{})
	require.True(t, ok, "stored value should be a generic map, got %T", value)
	assert.Equal(t, "Computed", dataMap["source"])
	assert.Equal(t, 2.0, dataMap["scaleFactor"])
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	_, err := c.Get(ctx, "missing-key")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Expiration(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	err := c.Set(ctx, "short-lived", "value", time.Millisecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = c.Get(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	exists, err := c.Exists(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Exists(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	exists, err := c.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	exists, err = c.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	assert.Equal(t, 2, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestMemoryCache_CloseIsIdempotent(t *testing.T) {
	c := NewMemoryCache()
	c.Close()
	c.Close() // must not panic
}

func TestMemoryCache_RejectsUnmarshalableValue(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	err := c.Set(ctx, "bad", make(chan int), time.Minute)
	assert.Error(t, err)

	_, err = c.Get(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// IngredientScaler defines the interface for the quantity scaling engine.
// Implementations must be pure: no I/O, no shared mutable state, safe for
// concurrent use.
type IngredientScaler interface {
	Scale(lines []string, originalServings, targetServings float64) []IngredientLine
	ScaleLine(line string, factor float64) string
}

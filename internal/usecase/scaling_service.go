package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"strconv"
	"time"

	"github.com/mealcraft/backend/internal/domain"
)

// ScalingServiceConfig holds configuration for the scaling service
type ScalingServiceConfig struct {
	CacheTTL           time.Duration
	MaxIngredients     int
	EnableDebugLogging bool
}

// ScalingService handles recipe scaling with caching. The scaler itself is
// pure and cheap, but the rendering surface calls it on every serving-count
// change, so recent results are kept warm.
type ScalingService struct {
	cache              domain.CacheRepository
	scaler             domain.IngredientScaler
	cacheTTL           time.Duration
	maxIngredients     int
	enableDebugLogging bool
}

// NewScalingService creates a new scaling service with dependencies
func NewScalingService(cache domain.CacheRepository, config ScalingServiceConfig) *ScalingService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	maxIngredients := config.MaxIngredients
	if maxIngredients <= 0 {
		maxIngredients = 200
	}

	return &ScalingService{
		cache:              cache,
		scaler:             NewQuantityScaler(ScalerConfig{EnableDebugLogging: config.EnableDebugLogging}),
		cacheTTL:           cacheTTL,
		maxIngredients:     maxIngredients,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ScaleRecipe scales an ingredient list for a serving-count change.
// Flow: validate -> check cache -> compute -> cache -> return
func (s *ScalingService) ScaleRecipe(ctx context.Context, request *domain.ScaleRequest) (*domain.ScaledRecipe, error) {
	if request == nil || len(request.Ingredients) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if len(request.Ingredients) > s.maxIngredients {
		return nil, fmt.Errorf("%w: %d ingredients (max %d)",
			domain.ErrTooManyIngredients, len(request.Ingredients), s.maxIngredients)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	cacheKey := s.generateCacheKey(request)

	// Try cache first
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil && cached != nil {
		cached.Source = "Cache"
		// Checked state is request-scoped UI state, never trusted from cache
		carryCheckedState(cached.Ingredients, request.Checked)
		if s.enableDebugLogging {
			log.Printf("[SCALE] Cache hit for key %s", cacheKey)
		}
		return cached, nil
	}

	scaled := s.scaler.Scale(request.Ingredients, request.OriginalServings, request.TargetServings)
	carryCheckedState(scaled, request.Checked)

	result := &domain.ScaledRecipe{
		Ingredients:      scaled,
		OriginalServings: request.OriginalServings,
		TargetServings:   request.TargetServings,
		ScaleFactor:      scaleFactor(request.OriginalServings, request.TargetServings),
		Source:           "Computed",
	}

	// Pass-through results from an invalid baseline are not worth caching
	if validBaseline(request.OriginalServings, request.TargetServings) {
		if err := s.setInCache(ctx, cacheKey, result); err != nil && s.enableDebugLogging {
			// Cache write failures are tolerated - the result is still good
			log.Printf("[SCALE] Cache write failed for key %s: %v", cacheKey, err)
		}
	}

	return result, nil
}

// carryCheckedState copies per-line UI state onto the scaled lines by index
func carryCheckedState(lines []domain.IngredientLine, checked []bool) {
	for i := range lines {
		lines[i].Checked = i < len(checked) && checked[i]
	}
}

// scaleFactor returns targetServings/originalServings, or 1 when the
// baseline is invalid (matching the engine's pass-through behavior)
func scaleFactor(original, target float64) float64 {
	if !validBaseline(original, target) {
		return 1
	}
	return target / original
}

// generateCacheKey creates a stable cache key from the request.
// Format: "scale:{fnv64a of lines}:{originalServings}:{targetServings}"
func (s *ScalingService) generateCacheKey(request *domain.ScaleRequest) string {
	h := fnv.New64a()
	for _, line := range request.Ingredients {
		h.Write([]byte(line))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("scale:%x:%s:%s",
		h.Sum64(),
		strconv.FormatFloat(request.OriginalServings, 'f', -1, 64),
		strconv.FormatFloat(request.TargetServings, 'f', -1, 64))
}

// getFromCache retrieves a scaled recipe from cache
func (s *ScalingService) getFromCache(ctx context.Context, key string) (*domain.ScaledRecipe, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	recipe, ok := value.(*domain.ScaledRecipe)
	if !ok {
		// Values come back as generic maps after a JSON round-trip
		if dataMap, ok := value.(map[string]interface{}); ok {
			return mapToScaledRecipe(dataMap), nil
		}
		return nil, domain.ErrCacheMiss
	}

	return recipe, nil
}

// setInCache stores a scaled recipe in cache
func (s *ScalingService) setInCache(ctx context.Context, key string, recipe *domain.ScaledRecipe) error {
	recipe.CachedAt = time.Now()
	return s.cache.Set(ctx, key, recipe, s.cacheTTL)
}

// mapToScaledRecipe converts a map (from JSON cache) to a ScaledRecipe
func mapToScaledRecipe(data map[string]interface{}) *domain.ScaledRecipe {
	result := &domain.ScaledRecipe{}

	if v, ok := data["originalServings"].(float64); ok {
		result.OriginalServings = v
	}
	if v, ok := data["targetServings"].(float64); ok {
		result.TargetServings = v
	}
	if v, ok := data["scaleFactor"].(float64); ok {
		result.ScaleFactor = v
	}
	if v, ok := data["source"].(string); ok {
		result.Source = v
	}
	if v, ok := data["cachedAt"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			result.CachedAt = t
		}
	}

	if lines, ok := data["ingredients"].([]interface{}); ok {
		result.Ingredients = make([]domain.IngredientLine, 0, len(lines))
		for _, raw := range lines {
			lineMap, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			var line domain.IngredientLine
			if v, ok := lineMap["id"].(string); ok {
				line.ID = v
			}
			if v, ok := lineMap["text"].(string); ok {
				line.Text = v
			}
			if v, ok := lineMap["checked"].(bool); ok {
				line.Checked = v
			}
			result.Ingredients = append(result.Ingredients, line)
		}
	}

	return result
}

package domain

import "time"

// IngredientLine is a single display-ready ingredient row. Text is opaque
// natural language; ID is stable per position so the UI can track rows
// across rescales; Checked is UI state carried through unchanged.
type IngredientLine struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// ScaleRequest represents a recipe scaling request
type ScaleRequest struct {
	Ingredients      []string `json:"ingredients" binding:"required"`
	Checked          []bool   `json:"checked,omitempty"` // optional per-line UI state, matched by index
	OriginalServings float64  `json:"originalServings"`
	TargetServings   float64  `json:"targetServings"`
}

// ScaledRecipe is the result of scaling an ingredient list
type ScaledRecipe struct {
	Ingredients      []IngredientLine `json:"ingredients"`
	OriginalServings float64          `json:"originalServings"`
	TargetServings   float64          `json:"targetServings"`
	ScaleFactor      float64          `json:"scaleFactor"`
	Source           string           `json:"source"` // "Computed" or "Cache"
	CachedAt         time.Time        `json:"cachedAt,omitempty"`
}

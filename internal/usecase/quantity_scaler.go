package usecase

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mealcraft/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// Matches mixed fractions like "1 1/2"
	mixedFractionPattern = regexp.MustCompile(`(\d+)\s+(\d+)/(\d+)`)

	// Matches simple fractions like "3/4"
	simpleFractionPattern = regexp.MustCompile(`(\d+)/(\d+)`)

	// Matches word-bounded integers and decimals like "3" or "1.5".
	// Does NOT match numbers glued to a unit ("20g") - there is no word
	// boundary between the digit and the letter.
	bareNumberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

	// Matches numbers glued to an alphabetic unit with no separating
	// space, like "20g" or "500ml"
	unitGluedPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)([a-zA-Z]+)`)
)

// spanKind identifies which pattern produced a candidate span.
// Declaration order doubles as ownership priority: when two candidate
// spans overlap, the lower kind wins. This is what stops the fractional
// part of "1 1/2" from being rescaled a second time as a bare "1/2".
type spanKind int

const (
	spanMixedFraction spanKind = iota
	spanSimpleFraction
	spanBareNumber
	spanUnitGlued
)

// quantitySpan is a candidate numeric token tagged with its source offsets.
// Transient: lives only for the duration of one ScaleLine call.
type quantitySpan struct {
	kind  spanKind
	start int
	end   int
	text  string
}

// ScalerConfig holds configuration for the quantity scaler
type ScalerConfig struct {
	EnableDebugLogging bool
}

// QuantityScaler rescales numeric quantities embedded in free-text
// ingredient lines. Stateless and safe for concurrent use.
type QuantityScaler struct {
	enableDebugLogging bool
}

// NewQuantityScaler creates a new quantity scaler
func NewQuantityScaler(config ScalerConfig) *QuantityScaler {
	return &QuantityScaler{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Scale rescales every line by targetServings/originalServings and wraps
// each result with a stable per-position identifier.
//
// An invalid baseline (either serving count missing, zero, negative, or
// NaN) is not an error: ingredient text without a valid serving baseline
// cannot be meaningfully scaled, so the lines are passed through unchanged
// rather than breaking recipe rendering.
func (s *QuantityScaler) Scale(lines []string, originalServings, targetServings float64) []domain.IngredientLine {
	result := make([]domain.IngredientLine, 0, len(lines))

	if !validBaseline(originalServings, targetServings) {
		if s.enableDebugLogging {
			log.Printf("[SCALE] Invalid baseline (%v -> %v servings), passing %d lines through",
				originalServings, targetServings, len(lines))
		}
		for i, line := range lines {
			result = append(result, domain.IngredientLine{ID: ingredientID(i), Text: line})
		}
		return result
	}

	factor := targetServings / originalServings
	for i, line := range lines {
		result = append(result, domain.IngredientLine{ID: ingredientID(i), Text: s.ScaleLine(line, factor)})
	}
	return result
}

// ScaleLine rescales every numeric quantity in a single line by factor.
// Lines with no recognizable quantities come back unchanged. A non-positive
// or non-finite factor degrades to pass-through.
func (s *QuantityScaler) ScaleLine(line string, factor float64) string {
	if line == "" || !(factor > 0) || math.IsInf(factor, 1) {
		return line
	}

	spans := resolveOwnership(collectQuantitySpans(line))
	if len(spans) == 0 {
		return line
	}

	// Rebuild the line left to right: copy unmatched text verbatim,
	// insert formatted replacements for owned spans.
	var b strings.Builder
	b.Grow(len(line) + 8)
	last := 0
	for _, sp := range spans {
		b.WriteString(line[last:sp.start])
		b.WriteString(s.rewriteSpan(sp, factor))
		last = sp.end
	}
	b.WriteString(line[last:])
	scaled := b.String()

	if s.enableDebugLogging && scaled != line {
		log.Printf("[SCALE] %q x%.3f -> %q", line, factor, scaled)
	}
	return scaled
}

// validBaseline reports whether both serving counts are usable (> 0).
// NaN fails every comparison, so it is rejected here too.
func validBaseline(original, target float64) bool {
	return original > 0 && target > 0
}

// ingredientID derives the stable per-position identifier for a line
func ingredientID(index int) string {
	return fmt.Sprintf("ingredient-%d", index)
}

// collectQuantitySpans runs all four matchers over the line and returns
// every candidate span, ordered by kind priority then position.
func collectQuantitySpans(line string) []quantitySpan {
	patterns := []struct {
		kind spanKind
		re   *regexp.Regexp
	}{
		{spanMixedFraction, mixedFractionPattern},
		{spanSimpleFraction, simpleFractionPattern},
		{spanBareNumber, bareNumberPattern},
		{spanUnitGlued, unitGluedPattern},
	}

	var spans []quantitySpan
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(line, -1) {
			if p.kind == spanBareNumber && truncatedDecimal(line, loc[1]) {
				// "1.5l" backtracks to a bare "1"; drop it so the
				// unit-glued matcher can claim the full token
				continue
			}
			spans = append(spans, quantitySpan{
				kind:  p.kind,
				start: loc[0],
				end:   loc[1],
				text:  line[loc[0]:loc[1]],
			})
		}
	}
	return spans
}

// truncatedDecimal reports whether a match ending at end stopped in the
// middle of a decimal number (next characters are "." followed by a digit)
func truncatedDecimal(line string, end int) bool {
	return end+1 < len(line) && line[end] == '.' && line[end+1] >= '0' && line[end+1] <= '9'
}

// resolveOwnership resolves overlapping candidates by kind priority over a
// consumed-offset registry, then returns the surviving spans in source
// order. Candidates must already be sorted by priority (collectQuantitySpans
// guarantees this); a candidate touching any already-claimed offset is
// discarded, so no character is ever rescaled twice.
func resolveOwnership(candidates []quantitySpan) []quantitySpan {
	if len(candidates) == 0 {
		return nil
	}

	lineEnd := 0
	for _, c := range candidates {
		if c.end > lineEnd {
			lineEnd = c.end
		}
	}
	consumed := make([]bool, lineEnd)

	var owned []quantitySpan
	for _, c := range candidates {
		overlaps := false
		for i := c.start; i < c.end; i++ {
			if consumed[i] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for i := c.start; i < c.end; i++ {
			consumed[i] = true
		}
		owned = append(owned, c)
	}

	sort.Slice(owned, func(i, j int) bool { return owned[i].start < owned[j].start })
	return owned
}

// rewriteSpan produces the scaled replacement text for one owned span.
// Any malformed capture (parse failure, zero denominator, non-finite
// result) returns the original text unchanged so one bad token never
// corrupts the rest of the line.
func (s *QuantityScaler) rewriteSpan(sp quantitySpan, factor float64) string {
	switch sp.kind {
	case spanMixedFraction:
		m := mixedFractionPattern.FindStringSubmatch(sp.text)
		if m == nil {
			return sp.text
		}
		whole, err1 := strconv.ParseFloat(m[1], 64)
		num, err2 := strconv.ParseFloat(m[2], 64)
		den, err3 := strconv.ParseFloat(m[3], 64)
		if err1 != nil || err2 != nil || err3 != nil || den == 0 {
			return sp.text
		}
		return formatOrOriginal((whole+num/den)*factor, sp.text)

	case spanSimpleFraction:
		m := simpleFractionPattern.FindStringSubmatch(sp.text)
		if m == nil {
			return sp.text
		}
		num, err1 := strconv.ParseFloat(m[1], 64)
		den, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil || den == 0 {
			return sp.text
		}
		return formatOrOriginal(num/den*factor, sp.text)

	case spanBareNumber:
		value, err := strconv.ParseFloat(sp.text, 64)
		if err != nil {
			return sp.text
		}
		return formatOrOriginal(value*factor, sp.text)

	case spanUnitGlued:
		m := unitGluedPattern.FindStringSubmatch(sp.text)
		if m == nil {
			return sp.text
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return sp.text
		}
		scaled := value * factor
		if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
			return sp.text
		}
		return FormatQuantity(scaled) + m[2]
	}

	return sp.text
}

// formatOrOriginal formats a scaled value, falling back to the original
// matched text when the arithmetic produced a non-finite result
func formatOrOriginal(value float64, original string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return original
	}
	return FormatQuantity(value)
}

package fuzzy

import "unicode"

// Scorer calculates match scores. Higher scores indicate better
// matches.
type Scorer interface {
	// Score rates a successful subsequence match. query holds the
	// (possibly case-folded) query runes, text the candidate's original
	// runes, positions the matched rune indices in text.
	Score(query, text []rune, positions []int) int
}

// WeightedScorer scores matches from configurable weights.
type WeightedScorer struct {
	// BaseScore is the starting score for any match.
	BaseScore int

	// ConsecutiveBonus is added for each adjacent pair of matches.
	ConsecutiveBonus int

	// BoundaryBonus is added for matches on a word boundary: after a
	// separator, or on a camelCase transition.
	BoundaryBonus int

	// PrefixBonus is added when the first match sits at position 0.
	PrefixBonus int

	// GapPenalty is subtracted per unmatched character between the
	// first and last match.
	GapPenalty int

	// LeadingPenalty is subtracted per character before the first
	// match.
	LeadingPenalty int

	// LengthBonusThreshold grants shorter candidates up to this many
	// extra points, favoring the more specific match.
	LengthBonusThreshold int
}

// DefaultWeights returns the weights used by PathScorer's base.
func DefaultWeights() WeightedScorer {
	return WeightedScorer{
		BaseScore:            100,
		ConsecutiveBonus:     20,
		BoundaryBonus:        15,
		PrefixBonus:          25,
		GapPenalty:           2,
		LeadingPenalty:       1,
		LengthBonusThreshold: 20,
	}
}

// Score implements the Scorer interface.
func (s WeightedScorer) Score(query, text []rune, positions []int) int {
	if len(positions) == 0 {
		return 0
	}

	score := s.BaseScore

	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			score += s.ConsecutiveBonus
		}
	}

	for _, idx := range positions {
		if isBoundary(text, idx) {
			score += s.BoundaryBonus
		}
	}

	if positions[0] == 0 {
		score += s.PrefixBonus
	} else {
		score -= positions[0] * s.LeadingPenalty
	}

	if len(positions) > 1 {
		gap := positions[len(positions)-1] - positions[0] - len(positions) + 1
		score -= gap * s.GapPenalty
	}

	if len(text) < s.LengthBonusThreshold {
		score += s.LengthBonusThreshold - len(text)
	}

	if score < 1 {
		score = 1
	}
	return score
}

// isBoundary reports whether the rune at idx starts a word: the very
// first rune, a rune after a separator, or an uppercase rune after a
// lowercase one.
func isBoundary(text []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(text) {
		return false
	}
	prev, curr := text[idx-1], text[idx]
	// Path separators, dots, snake and kebab breaks are all punctuation.
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}

// PathScorer scores file path candidates: on top of the weighted base,
// matches inside the final path component count extra, so "conf"
// prefers touching "app/config.toml"'s filename over a directory hit.
type PathScorer struct{}

// Score implements the Scorer interface.
func (PathScorer) Score(query, text []rune, positions []int) int {
	score := DefaultWeights().Score(query, text, positions)

	lastSep := -1
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '/' || text[i] == '\\' {
			lastSep = i
			break
		}
	}
	if lastSep < 0 {
		return score
	}

	for _, idx := range positions {
		if idx > lastSep {
			score += 10
		}
	}
	return score
}

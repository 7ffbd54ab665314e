package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// Result is one ranked match.
type Result struct {
	// Item is the matched candidate.
	Item string

	// Score is the match score (higher is better).
	Score int

	// Positions holds the rune indices of the matched characters.
	Positions []int
}

// Options configures the matcher behavior.
type Options struct {
	// CacheSize is the maximum number of cached query results.
	// Zero disables caching.
	CacheSize int

	// MinScore is the minimum score for a match to be included.
	MinScore int
}

// Matcher performs fuzzy matching over candidate strings.
type Matcher struct {
	cache  *cache
	scorer Scorer
	opts   Options
}

// NewMatcher creates a matcher. The zero Options value means no cache
// and no score floor.
func NewMatcher(opts Options) *Matcher {
	m := &Matcher{
		scorer: PathScorer{},
		opts:   opts,
	}
	if opts.CacheSize > 0 {
		m.cache = newCache(opts.CacheSize)
	}
	return m
}

// SetScorer replaces the scoring algorithm.
func (m *Matcher) SetScorer(s Scorer) {
	m.scorer = s
	m.Invalidate()
}

// Invalidate drops all cached query results. Call it when the candidate
// list changes.
func (m *Matcher) Invalidate() {
	if m.cache != nil {
		m.cache.clear()
	}
}

// Match ranks the candidates against the query, best first. Ties break
// by candidate text for deterministic ordering. An empty query returns
// the candidates as given, zero-scored. At most limit results return
// when limit is positive.
func (m *Matcher) Match(query string, candidates []string, limit int) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return emptyQueryResults(candidates, limit)
	}

	if m.cache != nil {
		if hit, ok := m.cache.get(query); ok {
			return applyLimit(hit, limit)
		}
	}

	// Smart case: a lowercase query matches case-insensitively.
	foldCase := !strings.ContainsFunc(query, unicode.IsUpper)
	queryRunes := []rune(query)
	if foldCase {
		queryRunes = []rune(strings.ToLower(query))
	}

	results := make([]Result, 0, len(candidates))
	for _, cand := range candidates {
		score, positions := m.matchOne(queryRunes, cand, foldCase)
		if positions != nil && score >= m.opts.MinScore {
			results = append(results, Result{Item: cand, Score: score, Positions: positions})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item < results[j].Item
	})

	if m.cache != nil {
		m.cache.set(query, results)
	}
	return applyLimit(results, limit)
}

// matchOne scores a single candidate. Positions are nil when the query
// is not a subsequence of the candidate.
func (m *Matcher) matchOne(queryRunes []rune, cand string, foldCase bool) (int, []int) {
	if cand == "" {
		return 0, nil
	}

	original := []rune(cand)
	haystack := original
	if foldCase {
		haystack = []rune(strings.ToLower(cand))
	}

	positions := make([]int, 0, len(queryRunes))
	qi := 0
	for i := 0; i < len(haystack) && qi < len(queryRunes); i++ {
		if haystack[i] == queryRunes[qi] {
			positions = append(positions, i)
			qi++
		}
	}
	if qi != len(queryRunes) {
		return 0, nil
	}

	return m.scorer.Score(queryRunes, original, positions), positions
}

func emptyQueryResults(candidates []string, limit int) []Result {
	count := len(candidates)
	if limit > 0 && limit < count {
		count = limit
	}
	results := make([]Result, count)
	for i := 0; i < count; i++ {
		results[i] = Result{Item: candidates[i]}
	}
	return results
}

func applyLimit(results []Result, limit int) []Result {
	if limit <= 0 || limit >= len(results) {
		return results
	}
	return results[:limit]
}

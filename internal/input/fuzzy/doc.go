// Package fuzzy provides fuzzy string matching for the file finder.
//
// A query matches a candidate when its characters appear in the
// candidate in order (a subsequence). Matches are scored: consecutive
// runs, word boundaries (path separators, snake/kebab breaks, camelCase
// transitions), and filename hits score up; gaps and late first hits
// score down. Results come back ranked best first.
//
// # Case handling
//
// Matching is smart-case: an all-lowercase query matches without regard
// to case, while a query with any uppercase character matches exactly.
//
// # Usage
//
//	m := fuzzy.NewMatcher(fuzzy.Options{CacheSize: 64})
//	results := m.Match("maingo", paths, 10)
//	for _, r := range results {
//	    fmt.Printf("%s (score: %d)\n", r.Item, r.Score)
//	}
//
// A small LRU cache fronts repeated queries against the same candidate
// list generation; call Invalidate when the candidates change.
//
// The matcher is single-threaded like the editing session that owns it;
// it carries no locks.
package fuzzy

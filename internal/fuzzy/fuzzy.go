// Package fuzzy ranks project names against a query.
//
// Candidate selection is delegated to sahilm/fuzzy (case-insensitive subsequence
// matching). Each match is then given a normalized score in [0, 1], lower is
// better: a contiguous match scores only its distance from the start of the
// name, a scattered match additionally pays for every skipped character
// relative to the query length.
//
// Names that do not contain the query as a subsequence get a second chance
// through edit distance, so a typo such as "apu" still finds "api". The score
// is the number of edits divided by the query length.
package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

// Threshold is the worst score still considered a match.
const Threshold = 0.4

// proximity is the number of leading characters that cost a full point.
const proximity = 100.0

type Result struct {
	Index int
	Value string
	Score float64
}

// Search returns the candidates scoring at or below Threshold, best first.
// Equal scores keep candidate order. An empty query matches everything with score 0.
func Search(query string, candidates []string) []Result {
	if query == "" {
		results := make([]Result, len(candidates))
		for i, c := range candidates {
			results[i] = Result{Index: i, Value: c}
		}
		return results
	}

	var results []Result
	matched := make(map[int]bool)
	for _, m := range fuzzy.Find(query, candidates) {
		matched[m.Index] = true
		s := score(query, m.Str, m.MatchedIndexes)
		if s <= Threshold {
			results = append(results, Result{Index: m.Index, Value: m.Str, Score: s})
		}
	}
	for i, c := range candidates {
		if matched[i] {
			continue
		}
		if s := typoScore(query, c); s <= Threshold {
			results = append(results, Result{Index: i, Value: c, Score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Index < results[j].Index
	})
	return results
}

// Best returns the best-scoring candidate within Threshold.
func Best(query string, candidates []string) (Result, bool) {
	results := Search(query, candidates)
	if len(results) == 0 {
		return Result{}, false
	}
	return results[0], true
}

func score(query, candidate string, matched []int) float64 {
	lc, lq := strings.ToLower(candidate), strings.ToLower(query)
	if i := strings.Index(lc, lq); i >= 0 {
		return clamp(float64(utf8.RuneCountInString(lc[:i])) / proximity)
	}

	n := len(matched)
	if n == 0 {
		return 1
	}
	first, last := matched[0], matched[n-1]
	if first > last || last >= len(candidate) {
		return 1
	}
	span := utf8.RuneCountInString(candidate[first:last]) + 1
	gaps := max(span-n, 0)
	lead := utf8.RuneCountInString(candidate[:first])
	return clamp(float64(gaps)/float64(n) + float64(lead)/proximity)
}

// typoScore compares query with every window of candidate that is within one
// rune of the query's length and keeps the cheapest, offset included.
func typoScore(query, candidate string) float64 {
	q := strings.ToLower(query)
	c := []rune(strings.ToLower(candidate))
	n := utf8.RuneCountInString(q)
	if n == 0 {
		return 1
	}

	best := 1.0
	for i := range c {
		for w := max(n-1, 1); w <= n+1; w++ {
			end := min(i+w, len(c))
			edits := levenshtein.ComputeDistance(q, string(c[i:end]))
			best = min(best, float64(edits)/float64(n)+float64(i)/proximity)
			if end == len(c) {
				break
			}
		}
	}
	return clamp(best)
}

func clamp(v float64) float64 {
	return min(max(v, 0), 1)
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"strings"
)

// MaxDistance is the largest edit distance still considered a misspelling.
const MaxDistance = 2

// Suggest returns the candidate closest to word, ignoring case, when word is
// not itself a candidate and is at most MaxDistance edits away. Ties go to
// the earliest candidate.
func Suggest(word string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if candidate == word {
			return "", false
		}
	}

	var (
		best     string
		bestDist = MaxDistance + 1
	)
	lowerWord := strings.ToLower(word)

	for _, candidate := range candidates {
		dist := Distance(lowerWord, strings.ToLower(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best, bestDist <= MaxDistance
}

// Distance is the Levenshtein distance between a and b counted in runes.
func Distance(a, b string) int {
	ar, br := []rune(a), []rune(b)

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

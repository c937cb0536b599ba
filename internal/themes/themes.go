// Package themes extracts recurring short phrases from a game's comment text.
// The output is an optional side channel next to the timeline; extraction is
// plain term-frequency counting, no model involved.
package themes

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// MaxThemes bounds the side channel.
	MaxThemes = 5
	// minCount is the minimum occurrences before a phrase counts as a theme.
	minCount = 3
)

var wordPattern = regexp.MustCompile(`[a-z][a-z']*`)

var stopwords = toSet(
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "from",
	"had", "has", "have", "he", "her", "his", "i", "if", "in", "is", "it",
	"its", "just", "me", "my", "no", "not", "of", "on", "or", "our", "out",
	"she", "so", "that", "the", "their", "they", "this", "to", "up", "was", "we",
	"were", "what", "when", "who", "will", "with", "you", "your",
)

// Team codes and names never make interesting themes; they dominate raw
// counts in any game thread.
var teamWords = toSet(
	"lakers", "mavericks", "celtics", "bucks", "warriors", "grizzlies",
	"heat", "nuggets",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Top returns up to MaxThemes bigram/trigram phrases ranked by frequency over
// the concatenated bodies. Ties break on first appearance so output is stable
// across runs.
func Top(bodies []string) []string {
	counts := map[string]int{}
	firstSeen := map[string]int{}

	for _, body := range bodies {
		words := wordPattern.FindAllString(strings.ToLower(body), -1)
		for n := 2; n <= 3; n++ {
			for i := 0; i+n <= len(words); i++ {
				gram := words[i : i+n]
				if skippable(gram) {
					continue
				}
				phrase := strings.Join(gram, " ")
				if _, ok := counts[phrase]; !ok {
					firstSeen[phrase] = len(firstSeen)
				}
				counts[phrase]++
			}
		}
	}

	candidates := make([]string, 0, len(counts))
	for phrase, count := range counts {
		if count >= minCount {
			candidates = append(candidates, phrase)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if counts[candidates[i]] != counts[candidates[j]] {
			return counts[candidates[i]] > counts[candidates[j]]
		}
		return firstSeen[candidates[i]] < firstSeen[candidates[j]]
	})

	if len(candidates) > MaxThemes {
		candidates = candidates[:MaxThemes]
	}
	return candidates
}

func skippable(gram []string) bool {
	for _, w := range gram {
		if _, ok := stopwords[w]; ok {
			return true
		}
		if _, ok := teamWords[w]; ok {
			return true
		}
	}
	return false
}

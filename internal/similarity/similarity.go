// Package similarity reorders search results by how closely each filename
// resembles the query.
package similarity

import (
	"sort"

	"github.com/xrash/smetrics"

	"github.com/harrison/pathsearch/internal/models"
)

// Scorer computes a closeness score between two strings.
// Higher means more similar.
type Scorer interface {
	Score(a, b string) float64
}

// JaroWinkler scores strings with the Jaro-Winkler metric (0.0 to 1.0).
type JaroWinkler struct {
	// BoostThreshold is the Jaro score above which the common prefix bonus applies
	BoostThreshold float64

	// PrefixSize is the maximum prefix length that earns the bonus
	PrefixSize int
}

// NewJaroWinkler returns the conventional parameters: boost above 0.7,
// prefix of up to 4 characters.
func NewJaroWinkler() *JaroWinkler {
	return &JaroWinkler{
		BoostThreshold: 0.7,
		PrefixSize:     4,
	}
}

// Score returns the Jaro-Winkler similarity of a and b.
func (jw *JaroWinkler) Score(a, b string) float64 {
	switch {
	case a == b:
		return 1
	case a == "" || b == "":
		return 0
	}
	return smetrics.JaroWinkler(a, b, jw.BoostThreshold, jw.PrefixSize)
}

// Rank sorts entries in place by descending Jaro-Winkler similarity between
// each filename and query. Directories do not take part in the score.
func Rank(query string, entries []models.MatchedEntry) {
	RankWith(NewJaroWinkler(), query, entries)
}

// RankWith is Rank with a custom scorer. The sort is stable: entries with
// equal scores keep their scan order, so directory priority breaks ties.
func RankWith(scorer Scorer, query string, entries []models.MatchedEntry) {
	scored := make([]scoredEntry, len(entries))
	for i, e := range entries {
		scored[i] = scoredEntry{entry: e, score: scorer.Score(e.Name, query)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	for i := range scored {
		entries[i] = scored[i].entry
	}
}

type scoredEntry struct {
	entry models.MatchedEntry
	score float64
}

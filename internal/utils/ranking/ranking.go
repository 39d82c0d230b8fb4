// Package ranking orders journals by activity.
package ranking

import (
	"sort"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
)

// DefaultTopK is used when the caller asks for k <= 0.
const DefaultTopK = 3

// TopK returns at most k of userID's journals, ordered by entry count (desc),
// then creation time (desc), then journal ID (asc). Journals of other users are
// dropped. The input slice is not modified and the result is never padded.
func TopK(summaries []domain.JournalSummary, userID string, k int) []domain.JournalSummary {
	if k <= 0 {
		k = DefaultTopK
	}

	ranked := make([]domain.JournalSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.UserID == userID {
			ranked = append(ranked, s)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.EntryCount != b.EntryCount {
			return a.EntryCount > b.EntryCount
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.JournalID < b.JournalID
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

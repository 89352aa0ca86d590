package scheduling

import (
	"context"
	"sort"

	"slotwise/models"
)

// RankingStrategy reorders candidate slots before they are returned to the
// caller. Implementations may consult an external collaborator; any failure
// must surface as an error so the engine can fall back to deterministic
// chronological ordering.
type RankingStrategy interface {
	Rank(ctx context.Context, slots []models.CandidateSlot) ([]models.CandidateSlot, error)
}

// ChronologicalRanking is the default strategy: earliest start first, stable.
type ChronologicalRanking struct{}

func (ChronologicalRanking) Rank(_ context.Context, slots []models.CandidateSlot) ([]models.CandidateSlot, error) {
	ranked := make([]models.CandidateSlot, len(slots))
	copy(ranked, slots)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Interval.Start.Before(ranked[j].Interval.Start)
	})
	return ranked, nil
}

package scheduling

import (
	"context"
	"time"

	"slotwise/models"
	"slotwise/utils"

	"go.uber.org/zap"
)

// SchedulingEngine defines the scheduling core consumed by the HTTP and
// worker layers. Every method is a pure function of its inputs: no state is
// shared across calls, so the engine is safe to use from concurrent handlers.
type SchedulingEngine interface {
	Availability(ctx context.Context, busy []models.TimeInterval, windowStart, windowEnd time.Time,
		durationMinutes int, prefs models.SchedulePreferences, maxResults int) ([]models.CandidateSlot, error)
	Conflicts(proposed models.TimeInterval, busy []models.TimeInterval) []models.ConflictReport
	Alternatives(proposed models.TimeInterval, busy []models.TimeInterval,
		durationMinutes, maxSuggestions, searchDays int) []models.CandidateSlot
	Resolve(proposed models.TimeInterval, conflicts []models.ConflictReport,
		resolutionType string) models.ResolutionPlan
}

// DefaultSchedulingEngine is the production implementation. Ranker is
// optional: when nil, or when a ranker fails or returns a malformed result,
// chronological order is used so output stays deterministic.
type DefaultSchedulingEngine struct {
	Ranker RankingStrategy
}

func (se *DefaultSchedulingEngine) Availability(
	ctx context.Context,
	busy []models.TimeInterval,
	windowStart, windowEnd time.Time,
	durationMinutes int,
	prefs models.SchedulePreferences,
	maxResults int,
) ([]models.CandidateSlot, error) {
	slots, err := BuildAvailability(busy, windowStart, windowEnd, durationMinutes, prefs)
	if err != nil {
		return nil, err
	}
	ranked := se.rank(ctx, slots)
	if maxResults > 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked, nil
}

func (se *DefaultSchedulingEngine) Conflicts(proposed models.TimeInterval, busy []models.TimeInterval) []models.ConflictReport {
	return DetectConflicts(proposed, busy)
}

func (se *DefaultSchedulingEngine) Alternatives(
	proposed models.TimeInterval,
	busy []models.TimeInterval,
	durationMinutes, maxSuggestions, searchDays int,
) []models.CandidateSlot {
	return SuggestAlternatives(proposed, busy, durationMinutes, maxSuggestions, searchDays)
}

func (se *DefaultSchedulingEngine) Resolve(
	proposed models.TimeInterval,
	conflicts []models.ConflictReport,
	resolutionType string,
) models.ResolutionPlan {
	return ResolveConflict(proposed, conflicts, resolutionType)
}

func (se *DefaultSchedulingEngine) rank(ctx context.Context, slots []models.CandidateSlot) []models.CandidateSlot {
	if len(slots) < 2 {
		return slots
	}
	ranker := se.Ranker
	if ranker == nil {
		ranker = ChronologicalRanking{}
	}
	ranked, err := ranker.Rank(ctx, slots)
	if err != nil || len(ranked) != len(slots) {
		utils.GetLogger().Warn("ranking strategy failed, using chronological order",
			zap.Int("slots", len(slots)), zap.Error(err))
		ranked, _ = ChronologicalRanking{}.Rank(ctx, slots)
	}
	return ranked
}

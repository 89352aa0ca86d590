package intelligence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"slotwise/models"
)

// GeminiRanking asks Gemini to reorder candidate slots by how convenient they
// are for a typical user. It satisfies the scheduling engine's RankingStrategy
// seam: any API failure or malformed reply surfaces as an error, and the
// engine falls back to chronological ordering.
type GeminiRanking struct {
	client *GeminiClient
}

func NewGeminiRanking(client *GeminiClient) *GeminiRanking {
	return &GeminiRanking{client: client}
}

func (r *GeminiRanking) Rank(ctx context.Context, slots []models.CandidateSlot) ([]models.CandidateSlot, error) {
	if len(slots) < 2 {
		return slots, nil
	}

	reply, err := r.client.GenerateContent(ctx, buildRankingPrompt(slots))
	if err != nil {
		return nil, fmt.Errorf("rank slots: %w", err)
	}

	order, err := parseRankingReply(reply, len(slots))
	if err != nil {
		return nil, err
	}

	ranked := make([]models.CandidateSlot, 0, len(slots))
	for _, idx := range order {
		ranked = append(ranked, slots[idx])
	}
	return ranked, nil
}

func buildRankingPrompt(slots []models.CandidateSlot) string {
	var sb strings.Builder
	sb.WriteString("You are a scheduling assistant. Rank the following free time slots ")
	sb.WriteString("from most to least convenient for a typical working professional.\n\n")
	for i, s := range slots {
		fmt.Fprintf(&sb, "%d. %s - %s (%s)\n",
			i+1,
			s.Interval.Start.Format(time.RFC3339),
			s.Interval.End.Format(time.RFC3339),
			s.Reason,
		)
	}
	sb.WriteString("\nReply with only the slot numbers in ranked order, comma separated, e.g. \"2,1,3\".")
	return sb.String()
}

// parseRankingReply extracts a permutation of 1..n from the model's reply.
// Anything short of a full, duplicate-free permutation is rejected.
func parseRankingReply(reply string, n int) ([]int, error) {
	fields := strings.FieldsFunc(reply, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(fields) != n {
		return nil, fmt.Errorf("ranking reply has %d entries, want %d: %q", len(fields), n, reply)
	}

	order := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for _, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil || num < 1 || num > n {
			return nil, fmt.Errorf("ranking reply entry %q out of range 1-%d", f, n)
		}
		if seen[num] {
			return nil, fmt.Errorf("ranking reply repeats slot %d: %q", num, reply)
		}
		seen[num] = true
		order = append(order, num-1)
	}
	return order, nil
}

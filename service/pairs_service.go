package service

import (
	"context"
	"sort"
	"time"

	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/internal/partitioner"
	"github.com/groupmix/groupmix/internal/version"
)

// PairsServiceImpl implements the PairsService interface
type PairsServiceImpl struct{}

// NewPairsService creates a new pair co-occurrence report service
func NewPairsService() *PairsServiceImpl {
	return &PairsServiceImpl{}
}

// Report computes historical pair co-occurrence counts restricted to the
// current roster.
func (s *PairsServiceImpl) Report(ctx context.Context, req domain.PairsRequest) (*domain.PairsResponse, error) {
	if len(req.Members) == 0 {
		return nil, domain.NewInvalidConfigurationError("participant roster is empty", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.NewGroupingError("pair report canceled", err)
	}

	minCount := req.MinCount
	if minCount < 1 {
		minCount = 1
	}

	current := make(map[string]bool, len(req.Members))
	for _, m := range req.Members {
		current[m.Email] = true
	}
	pastGroups := make([][]string, len(req.History))
	for i, pg := range req.History {
		pastGroups[i] = pg.Members
	}

	counts := partitioner.CountPairs(pastGroups, current)

	pairs := make([]domain.PairCount, 0, len(counts))
	maxCount := 0
	for key, count := range counts {
		if count > maxCount {
			maxCount = count
		}
		if count >= minCount {
			pairs = append(pairs, domain.PairCount{A: key.A, B: key.B, Count: count})
		}
	}

	sortPairs(pairs, req.SortBy)

	return &domain.PairsResponse{
		Pairs: pairs,
		Summary: domain.PairsSummary{
			Participants: len(req.Members),
			PastGroups:   len(req.History),
			TrackedPairs: len(counts),
			MaxCount:     maxCount,
		},
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Short(),
	}, nil
}

func sortPairs(pairs []domain.PairCount, criteria domain.SortCriteria) {
	switch criteria {
	case domain.SortByName:
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].A != pairs[j].A {
				return pairs[i].A < pairs[j].A
			}
			return pairs[i].B < pairs[j].B
		})
	default: // SortByCount
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].Count != pairs[j].Count {
				return pairs[i].Count > pairs[j].Count
			}
			if pairs[i].A != pairs[j].A {
				return pairs[i].A < pairs[j].A
			}
			return pairs[i].B < pairs[j].B
		})
	}
}

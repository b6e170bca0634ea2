package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/groupmix/groupmix/domain"
	"github.com/groupmix/groupmix/internal/partitioner"
	"github.com/groupmix/groupmix/internal/version"
)

// GroupingServiceImpl implements the GroupingService interface
type GroupingServiceImpl struct {
	progress domain.ProgressManager
}

// NewGroupingService creates a new grouping service
func NewGroupingService() *GroupingServiceImpl {
	return &GroupingServiceImpl{}
}

// SetProgressManager attaches progress reporting to the restart search.
func (s *GroupingServiceImpl) SetProgressManager(pm domain.ProgressManager) {
	s.progress = pm
}

// Mix partitions the request's members into groups, running the greedy
// pass up to req.Attempts times and keeping the lowest-overlap result.
// The search stops early as soon as a grouping repeats no past pair.
func (s *GroupingServiceImpl) Mix(ctx context.Context, req domain.MixRequest) (*domain.MixResponse, error) {
	if len(req.Members) == 0 {
		return nil, domain.NewInvalidConfigurationError("participant roster is empty", nil)
	}
	if req.GroupSize < 2 {
		return nil, domain.NewInvalidConfigurationError(
			fmt.Sprintf("group size must be at least 2, got %d", req.GroupSize), nil)
	}
	if req.GroupSize > len(req.Members) {
		return nil, domain.NewInsufficientParticipantsError(len(req.Members), req.GroupSize)
	}

	attempts := req.Attempts
	if attempts < 1 {
		attempts = 1
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	nameOf := make(map[string]string, len(req.Members))
	emails := make([]string, 0, len(req.Members))
	current := make(map[string]bool, len(req.Members))
	for _, m := range req.Members {
		nameOf[m.Email] = m.Name
		emails = append(emails, m.Email)
		current[m.Email] = true
	}
	sort.Strings(emails)

	pastGroups := make([][]string, len(req.History))
	for i, pg := range req.History {
		pastGroups[i] = pg.Members
	}
	counts := partitioner.CountPairs(pastGroups, current)

	p := partitioner.New(rng)

	if s.progress != nil {
		s.progress.Initialize(attempts)
		s.progress.Start()
	}

	var best [][]string
	bestScore := -1
	attemptsUsed := 0
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, domain.NewGroupingError("grouping canceled", err)
		}

		groups, err := p.Partition(emails, req.GroupSize, counts)
		if err != nil {
			// Validation already covered the error cases, but surface
			// anything unexpected rather than looping on it.
			return nil, domain.NewGroupingError("partition failed", err)
		}

		attemptsUsed = attempt
		if s.progress != nil {
			s.progress.Update(attempt, attempts)
		}

		score := counts.PartitionScore(groups)
		if bestScore == -1 || score < bestScore {
			best = groups
			bestScore = score
		}
		if bestScore == 0 {
			break
		}
	}

	if s.progress != nil {
		s.progress.Complete(true)
	}

	response := s.buildResponse(req, best, counts, nameOf)
	response.Summary.Attempts = attemptsUsed
	response.Summary.Seed = seed
	return response, nil
}

func (s *GroupingServiceImpl) buildResponse(req domain.MixRequest, groups [][]string, counts partitioner.PairCounts, nameOf map[string]string) *domain.MixResponse {
	result := make([]domain.Group, len(groups))
	totalScore := 0
	totalRepeats := 0

	for i, emails := range groups {
		sorted := make([]string, len(emails))
		copy(sorted, emails)
		sort.Strings(sorted)

		members := make([]domain.Member, len(sorted))
		names := make([]string, len(sorted))
		for j, email := range sorted {
			members[j] = domain.Member{Email: email, Name: nameOf[email]}
			names[j] = nameOf[email]
		}

		group := domain.Group{
			Members:      members,
			RepeatPairs:  counts.RepeatPairs([][]string{sorted}),
			OverlapScore: counts.GroupScore(sorted),
		}
		if req.ShowGreeting {
			group.Greeting = Greeting(names)
		}

		totalScore += group.OverlapScore
		totalRepeats += group.RepeatPairs
		result[i] = group
	}

	response := &domain.MixResponse{
		Groups: result,
		Summary: domain.MixSummary{
			Participants: len(req.Members),
			GroupCount:   len(groups),
			GroupSize:    req.GroupSize,
			PastGroups:   len(req.History),
			RepeatPairs:  totalRepeats,
			OverlapScore: totalScore,
		},
		Warnings:    s.overlapWarnings(req, result),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Short(),
	}
	return response
}

// overlapWarnings flags generated groups that share more than
// req.MaxRepeat members with any single past group. The legacy workflow
// rejected such groupings outright; since the search already minimizes
// overlap, the best grouping found is kept and the excess is reported.
func (s *GroupingServiceImpl) overlapWarnings(req domain.MixRequest, groups []domain.Group) []string {
	if req.MaxRepeat <= 0 || len(req.History) == 0 {
		return nil
	}

	var warnings []string
	for i, group := range groups {
		emails := make(map[string]bool, len(group.Members))
		for _, m := range group.Members {
			emails[m.Email] = true
		}
		worst := 0
		var worstSource string
		for _, past := range req.History {
			overlap := 0
			for _, email := range past.Members {
				if emails[email] {
					overlap++
				}
			}
			if overlap > worst {
				worst = overlap
				worstSource = past.Source
			}
		}
		if worst > req.MaxRepeat {
			warnings = append(warnings, fmt.Sprintf(
				"group %d shares %d members with a past group (%s); max_repeat is %d",
				i+1, worst, worstSource, req.MaxRepeat))
		}
	}
	return warnings
}

// Greeting builds the email salutation for a group, matching the format
// the grouping emails have always used.
func Greeting(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return "Hi " + names[0] + ","
	default:
		head := names[:len(names)-1]
		last := names[len(names)-1]
		greeting := "Hi "
		for i, name := range head {
			if i > 0 {
				greeting += ", "
			}
			greeting += name
		}
		return greeting + ", and " + last + ","
	}
}

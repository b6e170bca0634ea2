// Package partitioner implements the greedy randomized group assignment
// that keeps newly generated groups from resembling past ones.
//
// The partitioner places participants one at a time, in random order, into
// the group where they have the least shared history. Randomness comes
// from an injected *rand.Rand, so runs are reproducible under a fixed
// seed.
package partitioner

import (
	"errors"
	"math/rand"
	"sort"
)

// Sentinel errors for invalid partition requests. The service layer maps
// these onto user-facing domain errors.
var (
	// ErrNoParticipants is returned when the participant list is empty.
	ErrNoParticipants = errors.New("no participants to partition")

	// ErrGroupSizeTooSmall is returned for group sizes below 2.
	ErrGroupSizeTooSmall = errors.New("group size must be at least 2")

	// ErrTooFewParticipants is returned when the group size exceeds the
	// number of participants, so not even one full group can be formed.
	ErrTooFewParticipants = errors.New("fewer participants than one group requires")
)

// Partitioner assigns participants to groups using a greedy heuristic
// with randomized tie-breaking.
type Partitioner struct {
	rng *rand.Rand
}

// New creates a Partitioner backed by the given random source. The source
// must not be shared with concurrent users.
func New(rng *rand.Rand) *Partitioner {
	return &Partitioner{rng: rng}
}

// Partition splits participants into groups of approximately groupSize
// members, minimizing repeated co-occurrence with groupmates recorded in
// counts.
//
// The number of groups is ceil(n / groupSize). Group sizes differ by at
// most one; the leading (n mod numGroups) groups take the extra member.
// Each participant, visited in random order, goes to the non-full group
// with the lowest summed co-occurrence against its current members. Ties
// prefer the emptier group, then break randomly.
//
// The result covers every participant exactly once. The heuristic is a
// local approximation: a single pass can miss a zero-overlap partition
// that exists, which is why callers typically retry with fresh random
// orders and keep the best score (see the grouping service).
func (p *Partitioner) Partition(participants []string, groupSize int, counts PairCounts) ([][]string, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if groupSize < 2 {
		return nil, ErrGroupSizeTooSmall
	}
	if groupSize > len(participants) {
		return nil, ErrTooFewParticipants
	}

	n := len(participants)
	numGroups := (n + groupSize - 1) / groupSize

	// Capacity per group: sizes differ by at most one, remainder on the
	// leading groups.
	base := n / numGroups
	extra := n % numGroups
	capacities := make([]int, numGroups)
	for g := range capacities {
		capacities[g] = base
		if g < extra {
			capacities[g]++
		}
	}

	// Sort before shuffling so the visit order is a pure function of the
	// seed, independent of the caller's slice order.
	order := make([]string, n)
	copy(order, participants)
	sort.Strings(order)
	p.rng.Shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	groups := make([][]string, numGroups)
	for g := range groups {
		groups[g] = make([]string, 0, capacities[g])
	}

	for _, id := range order {
		g := p.pickGroup(id, groups, capacities, counts)
		groups[g] = append(groups[g], id)
	}

	return groups, nil
}

// pickGroup returns the index of the open group where id has the least
// shared history, preferring emptier groups on score ties and picking
// randomly among exact ties.
func (p *Partitioner) pickGroup(id string, groups [][]string, capacities []int, counts PairCounts) int {
	bestScore := -1
	bestSize := -1
	var candidates []int

	for g, members := range groups {
		if len(members) >= capacities[g] {
			continue
		}
		score := 0
		for _, m := range members {
			score += counts.Count(id, m)
		}
		switch {
		case bestScore == -1 || score < bestScore || (score == bestScore && len(members) < bestSize):
			bestScore = score
			bestSize = len(members)
			candidates = candidates[:0]
			candidates = append(candidates, g)
		case score == bestScore && len(members) == bestSize:
			candidates = append(candidates, g)
		}
	}

	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[p.rng.Intn(len(candidates))]
}

package partitioner

// PairKey identifies an unordered pair of participants. A is always the
// lexicographically smaller identifier so that (a, b) and (b, a) map to
// the same key.
type PairKey struct {
	A string
	B string
}

// NewPairKey returns the canonical key for the pair (a, b).
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// PairCounts maps unordered participant pairs to the number of times the
// pair has shared a group in the recorded history.
type PairCounts map[PairKey]int

// Count returns how often a and b have been grouped together. The lookup
// is symmetric.
func (pc PairCounts) Count(a, b string) int {
	return pc[NewPairKey(a, b)]
}

// Add increments the count for the pair (a, b).
func (pc PairCounts) Add(a, b string) {
	pc[NewPairKey(a, b)]++
}

// CountPairs builds pair co-occurrence counts from past groups, restricted
// to the given participant set. Members of past groups that are not part of
// the current run contribute nothing.
func CountPairs(pastGroups [][]string, participants map[string]bool) PairCounts {
	counts := make(PairCounts)
	for _, group := range pastGroups {
		// Filter to current participants first so a large historical
		// group of mostly-departed people stays cheap.
		members := make([]string, 0, len(group))
		for _, m := range group {
			if participants[m] {
				members = append(members, m)
			}
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				counts.Add(members[i], members[j])
			}
		}
	}
	return counts
}

// GroupScore returns the total historical co-occurrence over all pairs
// inside a single group.
func (pc PairCounts) GroupScore(group []string) int {
	score := 0
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			score += pc.Count(group[i], group[j])
		}
	}
	return score
}

// PartitionScore returns the total historical co-occurrence over all
// in-group pairs of a partition. A score of zero means no pair of
// groupmates has ever been grouped together before.
func (pc PairCounts) PartitionScore(groups [][]string) int {
	score := 0
	for _, group := range groups {
		score += pc.GroupScore(group)
	}
	return score
}

// RepeatPairs returns the number of in-group pairs that have a non-zero
// historical count.
func (pc PairCounts) RepeatPairs(groups [][]string) int {
	repeats := 0
	for _, group := range groups {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if pc.Count(group[i], group[j]) > 0 {
					repeats++
				}
			}
		}
	}
	return repeats
}

package model

import "github.com/samber/lo"

// FindClosestCombination returns the index of the candidate that best matches
// the previously displayed combination, so the caller can keep the layout
// stable after a recomputation. Every course id shared with previous scores
// 10; every shared (course id, section id) pair scores a further 100, so an
// exact section match dominates a course-only match. Ties resolve to the
// lowest index; a nil previous or an empty candidate list yields 0.
func FindClosestCombination(previous Combination, candidates []Combination) int {
	if previous == nil || len(candidates) == 0 {
		return 0
	}

	bestIndex, bestScore := 0, 0
	for index, candidate := range candidates {
		score := 0

		for _, entry := range candidate {
			if lo.SomeBy(previous, func(previousEntry Entry) bool {
				return previousEntry.Course.Id == entry.Course.Id
			}) {
				score += 10
			}
		}

		for _, entry := range candidate {
			for _, previousEntry := range previous {
				if previousEntry.Course.Id == entry.Course.Id && previousEntry.Section.Id == entry.Section.Id {
					score += 100
				}
			}
		}

		if score > bestScore {
			bestScore = score
			bestIndex = index
		}
	}

	return bestIndex
}

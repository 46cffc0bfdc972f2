package model

import (
	"fmt"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
)

// Randomized schedules, checked against the engine's structural guarantees:
// no combination carries a time conflict, every combination holds one section
// per unblocked course, blocked courses never appear, and the ranking is
// monotone in the metric tuple.
func TestBuildProperties(t *testing.T) {
	g := NewWithT(t)
	combiner := NewCombiner()

	for seed := 0; seed < 25; seed++ {
		random := rand.New(rand.NewSource(int64(seed)))

		totalCourses := random.Intn(6) + 2
		courses := make([]Course, 0, totalCourses)
		for i := 0; i < totalCourses; i++ {
			totalSections := random.Intn(3) + 1
			sections := make([]Section, 0, totalSections)
			for j := 0; j < totalSections; j++ {
				weekday := random.Intn(NumWeekdays) + 1
				length := random.Intn(3) + 1
				start := random.Intn(NumSlots - length)
				sections = append(sections, section(
					fmt.Sprintf("C%v-T%v", i, j),
					block(weekday, slotSpan(start, length)...),
				))
			}
			courses = append(courses, course(fmt.Sprintf("C%v", i), sections...))
		}

		result := combiner.Build(courses)

		for _, combination := range result.Combinations {
			// No two entries share a (weekday, slot) pair.
			seen := make(map[slotKey]string)
			for _, entry := range combination {
				for _, classBlock := range entry.Section.Blocks {
					for _, slot := range classBlock.Slots {
						key := slotKey{classBlock.Weekday, slot}
						g.Expect(seen).NotTo(HaveKey(key), "conflict in seed %v", seed)
						seen[key] = entry.Course.Id
					}
				}
			}

			// Blocked courses never appear; unblocked courses appear exactly
			// once, in input order.
			expected := make([]string, 0, totalCourses)
			for _, candidate := range courses {
				if !result.BlockedCourses[candidate.Id] {
					expected = append(expected, candidate.Id)
				}
			}
			placed := make([]string, 0, len(combination))
			for _, entry := range combination {
				placed = append(placed, entry.Course.Id)
			}
			g.Expect(placed).To(Equal(expected), "membership in seed %v", seed)
		}

		// Ranking is ascending in (daysUsed, totalGaps, weightedSum).
		for i := 1; i < len(result.Combinations); i++ {
			previous := scoreCombination(result.Combinations[i-1])
			current := scoreCombination(result.Combinations[i])
			g.Expect(metricTuple(previous)).To(BeNumerically("<=", metricTuple(current)), "ordering in seed %v", seed)
		}
	}
}

func slotSpan(start, length int) []int {
	slots := make([]int, length)
	for i := range slots {
		slots[i] = start + i
	}
	return slots
}

func metricTuple(metrics scheduleMetrics) int {
	return (metrics.daysUsed*1000+metrics.totalGaps)*100000 + metrics.weightedSum
}

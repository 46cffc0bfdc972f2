package model

import (
	"log"
	"slices"

	"github.com/samber/lo"
)

// scheduleMetrics ranks a combination; lower is better on every field,
// compared in declaration order.
type scheduleMetrics struct {
	daysUsed    int // weekdays with at least one class
	totalGaps   int // empty slots between the first and last class of each day
	weightedSum int // sum of weekday*NumSlots+slot over occupied slots
}

// scoreCombination builds an occupancy grid from every block of every section
// in the combination and derives the three ranking metrics. Blocks with an
// out-of-range weekday or slot are skipped with a diagnostic: one malformed
// record must not blank the whole schedule.
func scoreCombination(combination Combination) scheduleMetrics {
	var occupied [NumWeekdays][NumSlots]bool

	for _, entry := range combination {
		for _, block := range entry.Section.Blocks {
			day := block.Weekday - 1
			if day < 0 || day >= NumWeekdays {
				log.Printf("scoreCombination: weekday %v out of range (1..%v) for section %v", block.Weekday, NumWeekdays, entry.Section.Id)
				continue
			}
			for _, slot := range block.Slots {
				if slot < 0 || slot >= NumSlots {
					log.Printf("scoreCombination: slot %v out of range (0..%v) for section %v", slot, NumSlots-1, entry.Section.Id)
					continue
				}
				occupied[day][slot] = true
			}
		}
	}

	var metrics scheduleMetrics
	for day := 0; day < NumWeekdays; day++ {
		first, last, count := -1, -1, 0
		for slot := 0; slot < NumSlots; slot++ {
			if !occupied[day][slot] {
				continue
			}
			count++
			if first == -1 {
				first = slot
			}
			last = slot
			// Earlier in the week and earlier in the day means a smaller
			// timeline index.
			metrics.weightedSum += day*NumSlots + slot
		}

		if count == 0 {
			continue
		}
		metrics.daysUsed++
		if gaps := last - first + 1 - count; gaps > 0 {
			metrics.totalGaps += gaps
		}
	}

	return metrics
}

// sortCombinations orders combinations ascending by (daysUsed, totalGaps,
// weightedSum). The sort is stable so equally scored combinations keep their
// generation order.
func sortCombinations(combinations []Combination) []Combination {
	type weighted struct {
		combination Combination
		metrics     scheduleMetrics
	}

	weightedCombinations := lo.Map(combinations, func(combination Combination, _ int) weighted {
		return weighted{combination: combination, metrics: scoreCombination(combination)}
	})

	slices.SortStableFunc(weightedCombinations, func(a, b weighted) int {
		if comparison := a.metrics.daysUsed - b.metrics.daysUsed; comparison != 0 {
			return comparison
		}
		if comparison := a.metrics.totalGaps - b.metrics.totalGaps; comparison != 0 {
			return comparison
		}
		return a.metrics.weightedSum - b.metrics.weightedSum
	})

	return lo.Map(weightedCombinations, func(entry weighted, _ int) Combination {
		return entry.combination
	})
}

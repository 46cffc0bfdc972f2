package model

import (
	"github.com/samber/lo"
)

// BuildResult is the outcome of one combination build: every conflict-free
// combination sorted by schedule quality, plus the ids of the courses that
// could not be fit into any of them.
type BuildResult struct {
	Combinations   []Combination
	BlockedCourses map[string]bool
}

type Combiner interface {
	// Build computes all conflict-free combinations across the selected
	// courses, one representative section per equivalence class. Courses are
	// processed in input order: a course none of whose sections fit any
	// partial combination is marked blocked and skipped, preserving prior
	// progress. Inputs are never mutated.
	Build(courses []Course) BuildResult
}

func NewCombiner() Combiner {
	return &combinerImplementation{merger: NewMerger()}
}

type combinerImplementation struct {
	merger Merger
}

func (c *combinerImplementation) Build(courses []Course) BuildResult {
	selected := lo.Filter(courses, func(course Course, _ int) bool {
		return course.Selected
	})

	combinations := []Combination{}
	blocked := make(map[string]bool)

	for _, course := range selected {
		representatives := c.representatives(course.Sections)
		// A course with no candidate sections contributes nothing and is
		// never blocked.
		if len(representatives) == 0 {
			continue
		}

		if len(combinations) == 0 {
			combinations = lo.Map(representatives, func(section Section, _ int) Combination {
				return Combination{{Course: course, Section: section}}
			})
			continue
		}

		extended := []Combination{}
		for _, combination := range combinations {
			occupied := occupancy(combination)
			for _, section := range representatives {
				if hasConflict(section, occupied) {
					continue
				}
				next := make(Combination, len(combination), len(combination)+1)
				copy(next, combination)
				extended = append(extended, append(next, Entry{Course: course, Section: section}))
			}
		}

		if len(extended) == 0 {
			// Keep the previous combinations and record the course as
			// unplaceable.
			blocked[course.Id] = true
			continue
		}
		combinations = extended
	}

	return BuildResult{
		Combinations:   sortCombinations(combinations),
		BlockedCourses: blocked,
	}
}

// representatives yields the first-encountered section of each equivalence
// class, in input order, considering only selected sections.
func (c *combinerImplementation) representatives(sections []Section) []Section {
	candidates := lo.Filter(sections, func(section Section, _ int) bool {
		return section.Selected
	})
	groups := c.merger.Merge(candidates)

	seen := make(map[string]bool)
	result := make([]Section, 0, len(groups))
	for _, section := range candidates {
		key := footprintKey(section)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, groups[key][0])
	}
	return result
}

type slotKey struct {
	weekday int
	slot    int
}

func occupancy(combination Combination) map[slotKey]bool {
	occupied := make(map[slotKey]bool)
	for _, entry := range combination {
		for _, block := range entry.Section.Blocks {
			for _, slot := range block.Slots {
				occupied[slotKey{block.Weekday, slot}] = true
			}
		}
	}
	return occupied
}

func hasConflict(section Section, occupied map[slotKey]bool) bool {
	// Sections with no meetings never conflict.
	if len(section.Blocks) == 0 {
		return false
	}

	for _, block := range section.Blocks {
		for _, slot := range block.Slots {
			if occupied[slotKey{block.Weekday, slot}] {
				return true
			}
		}
	}
	return false
}

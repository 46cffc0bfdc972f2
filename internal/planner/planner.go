// Package planner holds the mutable planning state: the current course list,
// the combinations computed from it and the combination being displayed.
// Every mutation recomputes the combinations, applies the returned blocked
// set onto fresh course records and re-selects the combination closest to
// the one previously displayed, so the layout does not jump after an edit.
package planner

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"montagrade/internal/model"
)

type Planner struct {
	combiner     model.Combiner
	courses      []model.Course
	combinations []model.Combination
	index        int
	colorIndex   int
}

func New() *Planner {
	return &Planner{combiner: model.NewCombiner()}
}

// Courses returns the current course list with up-to-date blocked flags.
func (p *Planner) Courses() []model.Course {
	return slices.Clone(p.courses)
}

func (p *Planner) Combinations() []model.Combination {
	return slices.Clone(p.combinations)
}

func (p *Planner) CurrentIndex() int {
	return p.index
}

// Current returns the combination being displayed, or false when there is
// none.
func (p *Planner) Current() (model.Combination, bool) {
	if p.index < 0 || p.index >= len(p.combinations) {
		return nil, false
	}
	return p.combinations[p.index], true
}

// AddCourse appends a course to the plan, assigning it the next display
// color. Adding an id already in the plan fails with ErrCourseExists.
func (p *Planner) AddCourse(course model.Course) error {
	exists := lo.SomeBy(p.courses, func(existing model.Course) bool {
		return existing.Id == course.Id
	})
	if exists {
		return fmt.Errorf("%v: %w", course.Id, ErrCourseExists)
	}

	p.colorIndex = (p.colorIndex + 1) % len(palette)
	course.Color = palette[p.colorIndex]
	course.Blocked = false

	p.courses = append(p.courses, course)
	p.recompute()
	return nil
}

// RemoveCourse removes the course with the given id, failing with
// ErrCourseNotFound when it is not in the plan. Removing the last course
// resets the planner.
func (p *Planner) RemoveCourse(id string) error {
	index := slices.IndexFunc(p.courses, func(course model.Course) bool {
		return course.Id == id
	})
	if index == -1 {
		return fmt.Errorf("%v: %w", id, ErrCourseNotFound)
	}

	p.courses = slices.Delete(slices.Clone(p.courses), index, index+1)
	if len(p.courses) == 0 {
		p.combinations = nil
		p.index = 0
		return nil
	}

	p.recompute()
	return nil
}

// SetCourseSelected toggles whether a course takes part in combination
// building. Unknown ids are ignored.
func (p *Planner) SetCourseSelected(id string, selected bool) {
	p.courses = lo.Map(p.courses, func(course model.Course, _ int) model.Course {
		if course.Id == id {
			course.Selected = selected
		}
		return course
	})
	p.recompute()
}

// SetSectionSelected toggles whether a section is a candidate for its course.
// Unknown ids are ignored.
func (p *Planner) SetSectionSelected(courseId, sectionId string, selected bool) {
	p.courses = lo.Map(p.courses, func(course model.Course, _ int) model.Course {
		if course.Id != courseId {
			return course
		}
		course.Sections = lo.Map(course.Sections, func(section model.Section, _ int) model.Section {
			if section.Id == sectionId {
				section.Selected = selected
			}
			return section
		})
		return course
	})
	p.recompute()
}

// SetCombinationIndex clamps the index into the valid range; with no
// combinations it is a no-op.
func (p *Planner) SetCombinationIndex(index int) {
	if len(p.combinations) == 0 {
		return
	}
	p.index = min(max(index, 0), len(p.combinations)-1)
}

func (p *Planner) NextCombination() {
	p.SetCombinationIndex(p.index + 1)
}

func (p *Planner) PreviousCombination() {
	p.SetCombinationIndex(p.index - 1)
}

func (p *Planner) recompute() {
	previous, _ := p.Current()

	result := p.combiner.Build(p.courses)

	// Apply the blocked set copy-on-write rather than flagging shared
	// records in place.
	p.courses = lo.Map(p.courses, func(course model.Course, _ int) model.Course {
		course.Blocked = result.BlockedCourses[course.Id]
		return course
	})

	p.combinations = result.Combinations
	p.index = model.FindClosestCombination(previous, result.Combinations)
}

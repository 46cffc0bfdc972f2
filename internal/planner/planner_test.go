package planner

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montagrade/internal/model"
)

func course(id string, sections ...model.Section) model.Course {
	return model.Course{Id: id, Name: id, Sections: sections, Selected: true}
}

func section(id string, blocks ...model.ClassBlock) model.Section {
	return model.Section{Id: id, Blocks: blocks, Selected: true}
}

func block(weekday int, slots ...int) model.ClassBlock {
	return model.ClassBlock{Weekday: weekday, Slots: slots}
}

func TestAddCourse(t *testing.T) {
	t.Run("Recomputes combinations and assigns a color", func(t *testing.T) {
		// Arrange
		plan := New()

		// Act
		err := plan.AddCourse(course("A", section("A1", block(2, 0, 1))))

		// Assert
		require.Nil(t, err)
		require.Len(t, plan.Combinations(), 1)
		courses := plan.Courses()
		require.Len(t, courses, 1)
		assert.NotEmpty(t, courses[0].Color)
		assert.False(t, courses[0].Blocked)
	})

	t.Run("Duplicate id is rejected", func(t *testing.T) {
		// Arrange
		plan := New()
		require.Nil(t, plan.AddCourse(course("A", section("A1", block(2, 0, 1)))))

		// Act
		err := plan.AddCourse(course("A", section("A2", block(3, 0, 1))))

		// Assert
		assert.ErrorIs(t, err, ErrCourseExists)
		assert.Len(t, plan.Courses(), 1)
	})

	t.Run("Conflicting course is flagged blocked on the stored records", func(t *testing.T) {
		// Arrange
		plan := New()
		require.Nil(t, plan.AddCourse(course("A", section("A1", block(2, 0, 1)))))

		// Act
		require.Nil(t, plan.AddCourse(course("B", section("B1", block(2, 0, 1)))))

		// Assert
		blocked, found := lo.Find(plan.Courses(), func(candidate model.Course) bool {
			return candidate.Id == "B"
		})
		require.True(t, found)
		assert.True(t, blocked.Blocked)
		require.Len(t, plan.Combinations(), 1)
	})
}

func TestRemoveCourse(t *testing.T) {
	t.Run("Missing id is rejected", func(t *testing.T) {
		// Arrange
		plan := New()

		// Act
		err := plan.RemoveCourse("A")

		// Assert
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("Removing the last course resets the plan", func(t *testing.T) {
		// Arrange
		plan := New()
		require.Nil(t, plan.AddCourse(course("A", section("A1", block(2, 0, 1)))))

		// Act
		require.Nil(t, plan.RemoveCourse("A"))

		// Assert
		assert.Empty(t, plan.Courses())
		assert.Empty(t, plan.Combinations())
		assert.Equal(t, 0, plan.CurrentIndex())
	})

	t.Run("Removal can unblock a conflicting course", func(t *testing.T) {
		// Arrange
		plan := New()
		require.Nil(t, plan.AddCourse(course("A", section("A1", block(2, 0, 1)))))
		require.Nil(t, plan.AddCourse(course("B", section("B1", block(2, 0, 1)))))

		// Act
		require.Nil(t, plan.RemoveCourse("A"))

		// Assert
		unblocked, found := lo.Find(plan.Courses(), func(candidate model.Course) bool {
			return candidate.Id == "B"
		})
		require.True(t, found)
		assert.False(t, unblocked.Blocked)
		require.Len(t, plan.Combinations(), 1)
	})

	t.Run("Displayed combination survives removal of an unrelated course", func(t *testing.T) {
		// Arrange: two variants for B; navigate to the one meeting Tuesday,
		// then drop the unrelated course C.
		plan := New()
		require.Nil(t, plan.AddCourse(course("A", section("A1", block(2, 0, 1)))))
		require.Nil(t, plan.AddCourse(course("B", section("T1", block(2, 2, 3)), section("T2", block(3, 0, 1)))))
		require.Nil(t, plan.AddCourse(course("C", section("C1", block(4, 5, 6)))))

		target := indexOfSection(t, plan.Combinations(), "B", "T2")
		plan.SetCombinationIndex(target)

		// Act
		require.Nil(t, plan.RemoveCourse("C"))

		// Assert
		current, found := plan.Current()
		require.True(t, found)
		assert.Equal(t, "T2", sectionOf(t, current, "B"))
	})
}

func TestSelectionToggles(t *testing.T) {
	t.Run("Deselecting a course removes it from combinations without blocking", func(t *testing.T) {
		// Arrange
		plan := New()
		require.Nil(t, plan.AddCourse(course("A", section("A1", block(2, 0, 1)))))
		require.Nil(t, plan.AddCourse(course("B", section("B1", block(2, 0, 1)))))

		// Act
		plan.SetCourseSelected("B", false)

		// Assert
		deselected, found := lo.Find(plan.Courses(), func(candidate model.Course) bool {
			return candidate.Id == "B"
		})
		require.True(t, found)
		assert.False(t, deselected.Blocked)
		require.Len(t, plan.Combinations(), 1)
		require.Len(t, plan.Combinations()[0], 1)
	})

	t.Run("Deselecting a section narrows the candidate pool", func(t *testing.T) {
		// Arrange
		plan := New()
		require.Nil(t, plan.AddCourse(course("A", section("T1", block(2, 0, 1)), section("T2", block(3, 0, 1)))))
		require.Len(t, plan.Combinations(), 2)

		// Act
		plan.SetSectionSelected("A", "T1", false)

		// Assert
		combinations := plan.Combinations()
		require.Len(t, combinations, 1)
		assert.Equal(t, "T2", combinations[0][0].Section.Id)
	})
}

func TestCombinationNavigation(t *testing.T) {
	t.Run("Index is clamped to the valid range", func(t *testing.T) {
		// Arrange
		plan := New()
		require.Nil(t, plan.AddCourse(course("A", section("T1", block(2, 0, 1)), section("T2", block(3, 0, 1)))))

		// Act + Assert
		plan.SetCombinationIndex(99)
		assert.Equal(t, 1, plan.CurrentIndex())
		plan.SetCombinationIndex(-5)
		assert.Equal(t, 0, plan.CurrentIndex())
		plan.NextCombination()
		assert.Equal(t, 1, plan.CurrentIndex())
		plan.NextCombination()
		assert.Equal(t, 1, plan.CurrentIndex())
		plan.PreviousCombination()
		assert.Equal(t, 0, plan.CurrentIndex())
	})

	t.Run("Setting an index with no combinations is a no-op", func(t *testing.T) {
		// Arrange
		plan := New()

		// Act
		plan.SetCombinationIndex(3)

		// Assert
		assert.Equal(t, 0, plan.CurrentIndex())
		_, found := plan.Current()
		assert.False(t, found)
	})
}

func indexOfSection(t *testing.T, combinations []model.Combination, courseId, sectionId string) int {
	t.Helper()
	for index, combination := range combinations {
		for _, entry := range combination {
			if entry.Course.Id == courseId && entry.Section.Id == sectionId {
				return index
			}
		}
	}
	t.Fatalf("no combination holds section %v of course %v", sectionId, courseId)
	return -1
}

func sectionOf(t *testing.T, combination model.Combination, courseId string) string {
	t.Helper()
	for _, entry := range combination {
		if entry.Course.Id == courseId {
			return entry.Section.Id
		}
	}
	t.Fatalf("course %v is not in the combination", courseId)
	return ""
}

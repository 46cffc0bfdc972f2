package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Sections with no meetings are grouped under this key: they are mutually
// equivalent and conflict with nothing.
const NoMeetingsKey = "NO_MEETINGS"

type Merger interface {
	// Merge groups sections by identical weekly time footprint. Within each
	// group insertion follows input order, so the first section is the
	// group's representative.
	Merge(sections []Section) map[string][]Section
}

func NewMerger() Merger {
	return &mergerImplementation{}
}

type mergerImplementation struct{}

func (m *mergerImplementation) Merge(sections []Section) map[string][]Section {
	merged := make(map[string][]Section)
	for _, section := range sections {
		key := footprintKey(section)
		merged[key] = append(merged[key], section)
	}
	return merged
}

// footprintKey flattens a section's weekly grid into a canonical string, e.g.
// "2_0730-0910/4_1330-1420". Per-block strings are sorted so the key does not
// depend on block declaration order.
func footprintKey(section Section) string {
	if len(section.Blocks) == 0 {
		return NoMeetingsKey
	}

	keys := lo.Map(section.Blocks, func(block ClassBlock, _ int) string {
		if len(block.Slots) == 0 {
			return fmt.Sprintf("%v_", block.Weekday)
		}
		first := slotLabel(block.Slots[0])
		last := slotLabel(block.Slots[len(block.Slots)-1])
		return fmt.Sprintf("%v_%v-%v", block.Weekday, first, last)
	})
	slices.Sort(keys)

	return strings.Join(keys, "/")
}

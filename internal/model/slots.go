package model

import "fmt"

const (
	// Weekday domain is 1..7, where 1 = Sunday and 7 = Saturday.
	NumWeekdays = 7
	// Number of daily start times in the slot table.
	NumSlots = 14
)

// SlotLabels are the daily start times of the university's class grid, in
// order. A ClassBlock's slot indices point into this table.
var SlotLabels = [NumSlots]string{
	"0730",
	"0820",
	"0910",
	"1010",
	"1100",
	"1330",
	"1420",
	"1510",
	"1620",
	"1710",
	"1830",
	"1920",
	"2020",
	"2110",
}

// Out-of-range indices come from malformed catalog data; keep the label total
// rather than panic so footprint keys stay well-defined.
func slotLabel(index int) string {
	if index < 0 || index >= NumSlots {
		return fmt.Sprintf("#%v", index)
	}
	return SlotLabels[index]
}

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	ErrUnknownStartTime = errors.New("start time not in slot table")
	ErrSlotOverflow     = errors.New("meeting extends past the last slot")
)

// Catalog is one semester's course offerings for a campus.
type Catalog struct {
	Campus      string
	ExtractedAt string
	Courses     []Course
}

// The catalog dump is a JSON envelope whose disciplinas are positional
// tuples: [code, fullName, name, sections], each section being
// [id, hours, offered, taken, reserved, free, excess, schedules, instructors]
// with schedules like "3.1620-3 / CTS-SL114A".
type catalogEnvelope struct {
	Campus      string `mapstructure:"campus"`
	ExtractedAt string `mapstructure:"data_extracao"`
	Disciplinas []any  `mapstructure:"disciplinas"`
}

func CatalogFromJson(file string) (Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Catalog{}, err
	}
	return ParseCatalog(bytes)
}

func ParseCatalog(data []byte) (Catalog, error) {
	var catalogJson map[string]any
	if err := json.Unmarshal(data, &catalogJson); err != nil {
		return Catalog{}, err
	}

	var envelope catalogEnvelope
	if err := mapstructure.Decode(catalogJson, &envelope); err != nil {
		return Catalog{}, fmt.Errorf("cannot decode catalog envelope: %v", err)
	}

	catalog := Catalog{Campus: envelope.Campus, ExtractedAt: envelope.ExtractedAt}
	for i, raw := range envelope.Disciplinas {
		course, err := parseCourse(raw)
		if err != nil {
			return Catalog{}, fmt.Errorf("disciplina %v: %w", i, err)
		}
		catalog.Courses = append(catalog.Courses, course)
	}

	return catalog, nil
}

func parseCourse(raw any) (Course, error) {
	tuple, ok := raw.([]any)
	if !ok || len(tuple) < 4 {
		return Course{}, errors.New("course tuple must have 4 entries: code, full name, name, sections")
	}

	code, _ := tuple[0].(string)
	fullName, _ := tuple[1].(string)
	name, _ := tuple[2].(string)
	rawSections, ok := tuple[3].([]any)
	if !ok {
		return Course{}, fmt.Errorf("course %v: sections must be a list", code)
	}

	course := Course{Id: code, Name: name, FullName: fullName, Selected: true}
	for _, rawSection := range rawSections {
		section, err := parseSection(rawSection)
		if err != nil {
			return Course{}, fmt.Errorf("course %v: %w", code, err)
		}
		course.Sections = append(course.Sections, section)
	}

	return course, nil
}

func parseSection(raw any) (Section, error) {
	tuple, ok := raw.([]any)
	if !ok || len(tuple) < 9 {
		return Section{}, errors.New("section tuple must have 9 entries")
	}

	id, _ := tuple[0].(string)
	section := Section{
		Id:    id,
		Hours: intAt(tuple, 1),
		Vacancies: Vacancies{
			Offered:  intAt(tuple, 2),
			Taken:    intAt(tuple, 3),
			Reserved: intAt(tuple, 4),
			Free:     intAt(tuple, 5),
			Excess:   intAt(tuple, 6),
		},
		Selected: true,
	}

	rawSchedules, ok := tuple[7].([]any)
	if !ok {
		return Section{}, fmt.Errorf("section %v: schedules must be a list", id)
	}
	for _, rawSchedule := range rawSchedules {
		schedule, ok := rawSchedule.(string)
		if !ok {
			return Section{}, fmt.Errorf("section %v: schedule entries must be strings", id)
		}
		block, err := parseBlock(schedule)
		if err != nil {
			return Section{}, fmt.Errorf("section %v: %w", id, err)
		}
		section.Blocks = append(section.Blocks, block)
	}

	if rawInstructors, ok := tuple[8].([]any); ok {
		for _, rawInstructor := range rawInstructors {
			if instructor, ok := rawInstructor.(string); ok {
				section.Instructors = append(section.Instructors, instructor)
			}
		}
	}

	return section, nil
}

// parseBlock converts a raw schedule string such as "3.1620-3 / CTS-SL114A"
// into a ClassBlock: weekday 3, three consecutive slots starting at the 1620
// entry, room CTS-SL114A.
func parseBlock(raw string) (ClassBlock, error) {
	meeting, room, _ := strings.Cut(raw, " / ")

	weekdayPart, timePart, found := strings.Cut(meeting, ".")
	if !found {
		return ClassBlock{}, fmt.Errorf("malformed schedule %q", raw)
	}
	weekday, err := strconv.Atoi(weekdayPart)
	if err != nil || weekday < 1 || weekday > NumWeekdays {
		return ClassBlock{}, fmt.Errorf("malformed schedule %q: weekday must be 1..%v", raw, NumWeekdays)
	}

	start, creditsPart, found := strings.Cut(timePart, "-")
	if !found {
		return ClassBlock{}, fmt.Errorf("malformed schedule %q", raw)
	}
	credits, err := strconv.Atoi(creditsPart)
	if err != nil || credits < 1 {
		return ClassBlock{}, fmt.Errorf("malformed schedule %q: credit count must be a positive integer", raw)
	}

	slots, err := slotRange(start, credits)
	if err != nil {
		return ClassBlock{}, err
	}

	return ClassBlock{Weekday: weekday, Slots: slots, Room: room}, nil
}

// slotRange resolves a start label plus a credit count into consecutive slot
// indices, validating both ends against the slot table.
func slotRange(start string, credits int) ([]int, error) {
	first := slices.Index(SlotLabels[:], start)
	if first == -1 {
		return nil, fmt.Errorf("%q: %w", start, ErrUnknownStartTime)
	}
	if first+credits > NumSlots {
		return nil, fmt.Errorf("%v for %v slots: %w", start, credits, ErrSlotOverflow)
	}

	slots := make([]int, credits)
	for i := range slots {
		slots[i] = first + i
	}
	return slots, nil
}

func intAt(tuple []any, index int) int {
	value, _ := tuple[index].(float64)
	return int(value)
}

package model

// ClassBlock is one contiguous weekly meeting of a section.
type ClassBlock struct {
	Weekday int   // 1 = Sunday, ..., 7 = Saturday
	Slots   []int // ascending, contiguous indices into SlotLabels
	Room    string
}

// Vacancies carries the enrollment counters of a section as reported by the
// catalog. The planner never reads them; they exist for display.
type Vacancies struct {
	Offered  int
	Taken    int
	Reserved int
	Free     int
	Excess   int
}

// Section is one offering of a course with a fixed weekly time grid. A
// section with no blocks is valid (cancelled or meeting-free offerings) and
// conflicts with nothing.
type Section struct {
	Id          string
	Hours       int
	Vacancies   Vacancies
	Blocks      []ClassBlock
	Instructors []string
	Selected    bool // user keeps this section as a candidate
}

// Course is a subject the student may enroll in.
type Course struct {
	Id       string
	Name     string
	FullName string
	Sections []Section
	Color    string // display metadata, opaque to the engine
	Selected bool   // user wants this course in the plan
	Blocked  bool   // computed: no section fits any combination
}

// Entry pairs a course with the section chosen for it.
type Entry struct {
	Course  Course
	Section Section
}

// Combination is one conflict-free assignment of one section per included
// course, in the order the courses were provided.
type Combination []Entry

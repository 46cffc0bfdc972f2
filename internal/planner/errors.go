package planner

import "errors"

var (
	// ErrCourseExists reports an attempt to add a course whose id is already
	// in the plan.
	ErrCourseExists = errors.New("course already added to the plan")
	// ErrCourseNotFound reports an attempt to remove a course that is not in
	// the plan.
	ErrCourseNotFound = errors.New("course not found in the plan")
)

package attendance

import (
	"github.com/syedfiras/student-attendance-app/core"
)

// ClassItem is a roster group of students sharing attendance sessions.
type ClassItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section,omitempty"`
}

// Student belongs to exactly one class via ClassID. A student whose
// class no longer exists is invisible to all class-scoped queries.
type Student struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RollNo  string `json:"rollNo,omitempty"`
	USN     string `json:"usn,omitempty"`
	ClassID string `json:"classId"`
}

// RecordMap maps a student id to presence (true) or absence (false).
// A student missing from the map is "unknown": absent for reporting,
// present when initializing a fresh date.
type RecordMap map[string]bool

// Entry is one recorded session for a class on a specific date.
// At most one Entry exists per (classId, date) pair.
type Entry struct {
	ID      string    `json:"id"`
	ClassID string    `json:"classId"`
	Date    string    `json:"date"` // YYYY-MM-DD
	Records RecordMap `json:"records"`
}

// Document is the root aggregate; the entire persisted state, loaded
// and saved as one unit on every operation.
type Document struct {
	Classes    []ClassItem `json:"classes"`
	Students   []Student   `json:"students"`
	Attendance []Entry     `json:"attendance"`
}

// NewClass contains information needed to create a new ClassItem.
type NewClass struct {
	Name    string `json:"name" validate:"required"`
	Section string `json:"section"`
}

func (nc *NewClass) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Section = core.CleanString(nc.Section)
	return core.TranslateError(core.Validate.Struct(nc))
}

// UpdateClass defines what information may be provided to modify an existing ClassItem.
type UpdateClass struct {
	Name    string `json:"name" validate:"required"`
	Section string `json:"section"`
}

func (uc *UpdateClass) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	uc.Section = core.CleanString(uc.Section)
	return core.TranslateError(core.Validate.Struct(uc))
}

// NewStudent contains information needed to create a new Student.
// ClassID is not checked against existing classes here; an invalid
// class id produces an orphaned, invisible student.
type NewStudent struct {
	ClassID string `json:"classId"`
	Name    string `json:"name" validate:"required"`
	RollNo  string `json:"rollNo"`
	USN     string `json:"usn"`
}

func (ns *NewStudent) Validate() error {
	ns.ClassID = core.CleanString(ns.ClassID)
	ns.Name = core.CleanString(ns.Name)
	ns.RollNo = core.CleanString(ns.RollNo)
	ns.USN = core.CleanString(ns.USN)
	return core.TranslateError(core.Validate.Struct(ns))
}

// UpdateStudent defines what information may be provided to modify an existing Student.
type UpdateStudent struct {
	Name   string `json:"name" validate:"required"`
	RollNo string `json:"rollNo"`
	USN    string `json:"usn"`
}

func (us *UpdateStudent) Validate() error {
	us.Name = core.CleanString(us.Name)
	us.RollNo = core.CleanString(us.RollNo)
	us.USN = core.CleanString(us.USN)
	return core.TranslateError(core.Validate.Struct(us))
}

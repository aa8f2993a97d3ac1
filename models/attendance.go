package models

import "encoding/json"

// AttendanceHeader is one entry of the attendance "headerlist".
type AttendanceHeader struct {
	BranchDesc  string `json:"branchdesc"`
	Name        string `json:"name"`
	ProgramDesc string `json:"programdesc"`
	StyNumber   ID     `json:"stynumber"`
}

// Semester identifies a registration period.
type Semester struct {
	RegistrationID   ID     `json:"registrationid"`
	RegistrationCode string `json:"registrationcode"`
}

// AttendanceMeta is the response of the attendance registration lookup:
// the student's programme headers and the semesters attendance exists for.
type AttendanceMeta struct {
	Headers   []AttendanceHeader `json:"headerlist"`
	Semesters []Semester         `json:"semlist"`

	RawResponse json.RawMessage `json:"-"`
}

// LatestHeader returns the last header the portal listed.
func (m AttendanceMeta) LatestHeader() (AttendanceHeader, bool) {
	if len(m.Headers) == 0 {
		return AttendanceHeader{}, false
	}
	return m.Headers[len(m.Headers)-1], true
}

// LatestSemester returns the last semester the portal listed.
func (m AttendanceMeta) LatestSemester() (Semester, bool) {
	if len(m.Semesters) == 0 {
		return Semester{}, false
	}
	return m.Semesters[len(m.Semesters)-1], true
}

// SemesterList is the registered-semesters response.
type SemesterList struct {
	Registrations []Semester `json:"registrations"`
}

// ExamSemesterList is the exam-events semester response.
type ExamSemesterList struct {
	SemesterCodeInfo struct {
		SemesterCode []Semester `json:"semestercode"`
	} `json:"semesterCodeinfo"`
}

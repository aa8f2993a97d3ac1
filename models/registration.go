package models

import "encoding/json"

// RegisteredSubject is one subject component a student is registered for,
// together with the faculty member teaching it.
type RegisteredSubject struct {
	EmployeeName         string      `json:"employeename"`
	EmployeeCode         string      `json:"employeecode"`
	MinorSubject         string      `json:"minorsubject"`
	Remarks              string      `json:"remarks"`
	StyType              string      `json:"stytype"`
	Credits              json.Number `json:"credits"`
	SubjectCode          string      `json:"subjectcode"`
	SubjectComponentCode string      `json:"subjectcomponentcode"`
	SubjectDesc          string      `json:"subjectdesc"`
	SubjectID            ID          `json:"subjectid"`
	AuditSubject         string      `json:"audtsubject"`
}

// Registrations holds all registered subjects of a semester and its total
// credit points.
type Registrations struct {
	TotalCredits json.Number         `json:"totalcreditpoints"`
	Subjects     []RegisteredSubject `json:"registrations"`

	RawResponse json.RawMessage `json:"-"`
}

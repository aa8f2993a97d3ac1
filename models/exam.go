package models

import "encoding/json"

// ExamEvent is an examination event (mid-term, end-term, ...) of a semester.
type ExamEvent struct {
	ExamEventCode  string      `json:"exameventcode"`
	EventFrom      json.Number `json:"eventfrom"`
	ExamEventDesc  string      `json:"exameventdesc"`
	RegistrationID ID          `json:"registrationid"`
	ExamEventID    ID          `json:"exameventid"`
}

// ExamEventList is the exam-events response.
type ExamEventList struct {
	EventCode struct {
		ExamEvent []ExamEvent `json:"examevent"`
	} `json:"eventcode"`
}

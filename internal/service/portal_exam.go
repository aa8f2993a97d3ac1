package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-jportal/models"
)

const (
	examSemestersPath = "/studentcommonsontroller/getsemestercode-withstudentexamevents"
	examEventsPath    = "/studentcommonsontroller/getstudentexamevents"
	examSchedulePath  = "/studentsttattview/getstudent-examschedule"
)

// GetSemestersForExamEvents implements [PortalService].
func (s *portalService) GetSemestersForExamEvents(ctx context.Context) ([]models.Semester, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	raw, err := s.post(ctx, session, examSemestersPath, map[string]any{
		"clientid":    session.ClientID,
		"instituteid": session.InstituteID,
		"memberid":    session.MemberID,
	})
	if err != nil {
		return nil, fmt.Errorf("get exam semesters: %w", err)
	}

	var list models.ExamSemesterList
	if err = decodeResponse(examSemestersPath, raw, &list); err != nil {
		return nil, err
	}

	return list.SemesterCodeInfo.SemesterCode, nil
}

// GetExamEvents implements [PortalService].
func (s *portalService) GetExamEvents(ctx context.Context, semester models.Semester) ([]models.ExamEvent, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	// "registationid" is the portal's spelling.
	raw, err := s.post(ctx, session, examEventsPath, map[string]any{
		"instituteid":   session.InstituteID,
		"registationid": semester.RegistrationID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("get exam events: %w", err)
	}

	var list models.ExamEventList
	if err = decodeResponse(examEventsPath, raw, &list); err != nil {
		return nil, err
	}

	return list.EventCode.ExamEvent, nil
}

// GetExamSchedule implements [PortalService].
func (s *portalService) GetExamSchedule(ctx context.Context, event models.ExamEvent) (map[string]any, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	raw, err := s.post(ctx, session, examSchedulePath, map[string]any{
		"instituteid":    session.InstituteID,
		"registrationid": event.RegistrationID.String(),
		"exameventid":    event.ExamEventID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("get exam schedule: %w", err)
	}

	return decodeObject(examSchedulePath, raw)
}

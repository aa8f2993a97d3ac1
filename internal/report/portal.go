package report

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/internal/utils"
	"github.com/MKhiriev/go-jportal/models"
)

// pickSemester returns the semester with registration code, or the last
// listed one when code is empty.
func pickSemester(semesters []models.Semester, code string) (models.Semester, error) {
	if len(semesters) == 0 {
		return models.Semester{}, ErrNoData
	}
	if code == "" {
		return semesters[len(semesters)-1], nil
	}

	for _, s := range semesters {
		if s.RegistrationCode == code {
			return s, nil
		}
	}
	return models.Semester{}, fmt.Errorf("%w: %s", ErrUnknownSemester, code)
}

// Attendance reports per-subject attendance of the latest attendance
// semester, or of the semester with registration code.
func Attendance(ctx context.Context, portal service.PortalService, code string) (Report, error) {
	meta, err := portal.GetAttendanceMeta(ctx)
	if err != nil {
		return Report{}, err
	}

	header, ok := meta.LatestHeader()
	if !ok {
		return Report{}, ErrNoData
	}
	semester, err := pickSemester(meta.Semesters, code)
	if err != nil {
		return Report{}, err
	}

	detail, err := portal.GetAttendance(ctx, header, semester)
	if err != nil {
		return Report{}, err
	}

	var rows [][]string
	for _, s := range objects(detail, "studentattendancelist") {
		rows = append(rows, []string{
			text(s["subjectcode"]),
			text(s["Ltotalpres"]) + "/" + text(s["Ltotalclass"]),
			text(s["LTpercantage"]),
		})
	}

	return Report{
		Title:   "Attendance " + semester.RegistrationCode,
		Headers: []string{"Subject", "Attended", "%"},
		Rows:    rows,
		Raw:     detail,
	}, nil
}

// Subjects reports the registered subjects and faculty of one semester.
func Subjects(ctx context.Context, portal service.PortalService, code string) (Report, error) {
	semesters, err := portal.GetRegisteredSemesters(ctx)
	if err != nil {
		return Report{}, err
	}
	semester, err := pickSemester(semesters, code)
	if err != nil {
		return Report{}, err
	}

	regs, err := portal.GetRegisteredSubjectsAndFaculties(ctx, semester)
	if err != nil {
		return Report{}, err
	}

	rows := make([][]string, 0, len(regs.Subjects))
	for _, s := range regs.Subjects {
		rows = append(rows, []string{
			s.SubjectCode,
			s.SubjectDesc,
			s.SubjectComponentCode,
			s.EmployeeName,
			text(s.Credits),
		})
	}

	return Report{
		Title:   fmt.Sprintf("Subjects %s (total credits %s)", semester.RegistrationCode, text(regs.TotalCredits)),
		Headers: []string{"Code", "Subject", "Component", "Faculty", "Credits"},
		Rows:    rows,
		Raw:     regs.RawResponse,
	}, nil
}

// Semesters lists the registered semesters.
func Semesters(ctx context.Context, portal service.PortalService) (Report, error) {
	semesters, err := portal.GetRegisteredSemesters(ctx)
	if err != nil {
		return Report{}, err
	}

	rows := make([][]string, 0, len(semesters))
	for _, s := range semesters {
		rows = append(rows, []string{s.RegistrationCode, s.RegistrationID.String()})
	}

	return Report{
		Title:   "Registered semesters",
		Headers: []string{"Code", "Registration id"},
		Rows:    rows,
		Raw:     semesters,
	}, nil
}

// ExamSchedule reports the schedule of every exam event of one semester.
func ExamSchedule(ctx context.Context, portal service.PortalService, code string) (Report, error) {
	semesters, err := portal.GetSemestersForExamEvents(ctx)
	if err != nil {
		return Report{}, err
	}
	semester, err := pickSemester(semesters, code)
	if err != nil {
		return Report{}, err
	}

	events, err := portal.GetExamEvents(ctx, semester)
	if err != nil {
		return Report{}, err
	}
	if len(events) == 0 {
		return Report{}, ErrNoData
	}

	var rows [][]string
	schedules := make(map[string]any, len(events))
	for _, event := range events {
		schedule, err := portal.GetExamSchedule(ctx, event)
		if err != nil {
			return Report{}, err
		}
		schedules[event.ExamEventID.String()] = schedule

		for _, s := range objects(schedule, "subjectinfo") {
			rows = append(rows, []string{
				event.ExamEventCode,
				text(s["subjectdesc"]),
				text(s["datetime"]),
				text(s["datetimeupto"]),
				text(s["roomcode"]),
			})
		}
	}

	return Report{
		Title:   "Exam schedule " + semester.RegistrationCode,
		Headers: []string{"Event", "Subject", "Date", "Time", "Room"},
		Rows:    rows,
		Raw:     schedules,
	}, nil
}

// BankInfo reports the student's bank details field by field.
func BankInfo(ctx context.Context, portal service.PortalService) (Report, error) {
	info, err := portal.GetStudentBankInfo(ctx)
	if err != nil {
		return Report{}, err
	}
	return keyValue("Bank details", info), nil
}

// SessionInfo reports the current session without contacting the portal.
// The token itself is never shown.
func SessionInfo(portal service.PortalService) (Report, error) {
	session := portal.Session()
	if session == nil {
		return Report{}, service.ErrNotLoggedIn
	}

	return Report{
		Title:   "Session",
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Name", session.Name},
			{"Institute", session.Institute},
			{"Member id", session.MemberID},
			{"Member type", session.MemberType},
			{"State", portal.State().String()},
			{"Expires", utils.ToPortal(session.Expiry).Format(time.DateTime) + " IST"},
		},
		Raw: map[string]string{
			"name":        session.Name,
			"institute":   session.Institute,
			"memberid":    session.MemberID,
			"membertype":  session.MemberType,
			"instituteid": session.InstituteID,
		},
	}, nil
}

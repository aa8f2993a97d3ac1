package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-jportal/internal/service"
	"github.com/MKhiriev/go-jportal/internal/service/mock"
	"github.com/MKhiriev/go-jportal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	odd  = models.Semester{RegistrationID: "R1", RegistrationCode: "2025ODDSEM"}
	even = models.Semester{RegistrationID: "R2", RegistrationCode: "2026EVESEM"}
)

func TestPickSemester(t *testing.T) {
	tests := []struct {
		name      string
		semesters []models.Semester
		code      string
		want      models.Semester
		wantErr   error
	}{
		{name: "latest", semesters: []models.Semester{odd, even}, want: even},
		{name: "by code", semesters: []models.Semester{odd, even}, code: "2025ODDSEM", want: odd},
		{name: "unknown code", semesters: []models.Semester{odd}, code: "1999", wantErr: ErrUnknownSemester},
		{name: "empty", wantErr: ErrNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pickSemester(tt.semesters, tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "-", text(nil))
	assert.Equal(t, "-", text("  "))
	assert.Equal(t, "abc", text("abc"))
	assert.Equal(t, "89.3", text(json.Number("89.3")))
	assert.Equal(t, "true", text(true))
	assert.Equal(t, `{"a":1}`, text(map[string]any{"a": 1}))
}

func TestReport_Render(t *testing.T) {
	r := Report{
		Title:   "Bank details",
		Headers: []string{"Field", "Value"},
		Rows:    [][]string{{"bankname", "STATE BANK OF INDIA"}},
		Raw:     map[string]any{"bankname": "STATE BANK OF INDIA"},
	}

	out := r.String()
	assert.Contains(t, out, "Bank details")
	assert.Contains(t, out, "bankname")
	assert.Contains(t, out, "STATE BANK OF INDIA")

	raw, err := r.RawJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"bankname":"STATE BANK OF INDIA"}`, raw)

	assert.Equal(t, "no entries", Report{}.Table())
}

func TestAttendance(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalService(ctrl)

	header := models.AttendanceHeader{StyNumber: "6"}
	portal.EXPECT().GetAttendanceMeta(gomock.Any()).Return(models.AttendanceMeta{
		Headers:   []models.AttendanceHeader{{StyNumber: "5"}, header},
		Semesters: []models.Semester{odd, even},
	}, nil)
	portal.EXPECT().GetAttendance(gomock.Any(), header, even).Return(map[string]any{
		"studentattendancelist": []any{
			map[string]any{
				"subjectcode":  "COMPILER DESIGN(15B11CI611)",
				"Ltotalclass":  json.Number("28"),
				"Ltotalpres":   json.Number("25"),
				"LTpercantage": json.Number("89.3"),
			},
			"ignored",
		},
	}, nil)

	r, err := Attendance(context.Background(), portal, "")
	require.NoError(t, err)
	assert.Equal(t, "Attendance 2026EVESEM", r.Title)
	assert.Equal(t, [][]string{{"COMPILER DESIGN(15B11CI611)", "25/28", "89.3"}}, r.Rows)
}

func TestAttendance_NoHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalService(ctrl)
	portal.EXPECT().GetAttendanceMeta(gomock.Any()).Return(models.AttendanceMeta{Semesters: []models.Semester{odd}}, nil)

	_, err := Attendance(context.Background(), portal, "")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSubjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalService(ctrl)

	portal.EXPECT().GetRegisteredSemesters(gomock.Any()).Return([]models.Semester{odd, even}, nil)
	portal.EXPECT().GetRegisteredSubjectsAndFaculties(gomock.Any(), odd).Return(models.Registrations{
		TotalCredits: json.Number("8.5"),
		Subjects: []models.RegisteredSubject{{
			SubjectCode:          "15B11CI611",
			SubjectDesc:          "COMPILER DESIGN",
			SubjectComponentCode: "L",
			EmployeeName:         "DR. MEERA RAO",
			Credits:              json.Number("4"),
		}},
	}, nil)

	r, err := Subjects(context.Background(), portal, "2025ODDSEM")
	require.NoError(t, err)
	assert.Equal(t, "Subjects 2025ODDSEM (total credits 8.5)", r.Title)
	assert.Equal(t, [][]string{{"15B11CI611", "COMPILER DESIGN", "L", "DR. MEERA RAO", "4"}}, r.Rows)
}

func TestExamSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalService(ctrl)

	t1 := models.ExamEvent{ExamEventCode: "T1", ExamEventID: "E1", RegistrationID: "R2"}
	t2 := models.ExamEvent{ExamEventCode: "T2", ExamEventID: "E2", RegistrationID: "R2"}

	portal.EXPECT().GetSemestersForExamEvents(gomock.Any()).Return([]models.Semester{even}, nil)
	portal.EXPECT().GetExamEvents(gomock.Any(), even).Return([]models.ExamEvent{t1, t2}, nil)
	portal.EXPECT().GetExamSchedule(gomock.Any(), t1).Return(map[string]any{
		"subjectinfo": []any{map[string]any{
			"subjectdesc": "COMPILER DESIGN", "datetime": "16/02/2026", "datetimeupto": "09:00 AM", "roomcode": "CR-301",
		}},
	}, nil)
	portal.EXPECT().GetExamSchedule(gomock.Any(), t2).Return(map[string]any{}, nil)

	r, err := ExamSchedule(context.Background(), portal, "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"T1", "COMPILER DESIGN", "16/02/2026", "09:00 AM", "CR-301"}}, r.Rows)
	assert.Len(t, r.Raw, 2)
}

func TestExamSchedule_NoEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalService(ctrl)

	portal.EXPECT().GetSemestersForExamEvents(gomock.Any()).Return([]models.Semester{even}, nil)
	portal.EXPECT().GetExamEvents(gomock.Any(), even).Return(nil, nil)

	_, err := ExamSchedule(context.Background(), portal, "")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBankInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalService(ctrl)
	portal.EXPECT().GetStudentBankInfo(gomock.Any()).Return(map[string]any{
		"ifsccode": "SBIN0011234",
		"bankname": "STATE BANK OF INDIA",
	}, nil)

	r, err := BankInfo(context.Background(), portal)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"bankname", "STATE BANK OF INDIA"}, {"ifsccode", "SBIN0011234"}}, r.Rows)
}

func TestPortalErrorsPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalService(ctrl)
	portal.EXPECT().GetRegisteredSemesters(gomock.Any()).Return(nil, service.ErrSessionExpired).Times(2)

	_, err := Subjects(context.Background(), portal, "")
	assert.True(t, errors.Is(err, service.ErrSessionExpired))

	_, err = Semesters(context.Background(), portal)
	assert.ErrorIs(t, err, service.ErrSession)
}

func TestSessionInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	portal := mock.NewMockPortalService(ctrl)

	portal.EXPECT().Session().Return(nil)
	_, err := SessionInfo(portal)
	assert.ErrorIs(t, err, service.ErrNotLoggedIn)

	portal.EXPECT().Session().Return(&models.Session{
		Token:  "secret-token",
		Name:   "ASHA SHARMA",
		Expiry: time.Date(2026, 2, 16, 6, 30, 0, 0, time.UTC),
	})
	portal.EXPECT().State().Return(service.StateAuthenticated)

	r, err := SessionInfo(portal)
	require.NoError(t, err)
	assert.Contains(t, r.Rows, []string{"Expires", "2026-02-16 12:00:00 IST"})
	assert.Contains(t, r.Rows, []string{"State", "authenticated"})
	assert.NotContains(t, r.String(), "secret-token")
}

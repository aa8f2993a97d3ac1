package fakeportal

import (
	"strings"

	"github.com/MKhiriev/go-jportal/models"
	"github.com/google/uuid"
)

// studentNamespace derives stable ids from the username.
var studentNamespace = uuid.MustParse("6f1d8c5e-3b0a-4c7e-9a55-1b7f2e9d4c10")

// Student is the fixture account.
type Student struct {
	Username    string
	Name        string
	MemberID    string
	UserID      string
	ClientID    string
	MemberType  string
	Institute   string
	InstituteID string
}

// NewStudent builds the fixture student for username. Ids are name-based
// UUIDs, so they are stable across restarts.
func NewStudent(username string) Student {
	id := func(kind string) string {
		return strings.ToUpper(uuid.NewSHA1(studentNamespace, []byte(kind+":"+username)).String())
	}

	return Student{
		Username:    username,
		Name:        "ASHA SHARMA",
		MemberID:    id("member"),
		UserID:      id("user"),
		ClientID:    "JAYPEE",
		MemberType:  "S",
		Institute:   "JIIT",
		InstituteID: "11IN1902J000001",
	}
}

func (s Student) regData(token string) map[string]any {
	return map[string]any{
		"regdata": map[string]any{
			"institutelist": []map[string]string{
				{"label": s.Institute, "value": s.InstituteID},
			},
			"memberid":     s.MemberID,
			"userid":       s.UserID,
			"token":        token,
			"clientid":     s.ClientID,
			"membertype":   s.MemberType,
			"name":         s.Name,
			"enrollmentno": s.Username,
		},
		"clientidforlink": "",
	}
}

var semesters = []models.Semester{
	{RegistrationID: "JIIRUM25100000001", RegistrationCode: "2025ODDSEM"},
	{RegistrationID: "JIIRUM26010000001", RegistrationCode: "2026EVESEM"},
}

var attendanceHeaders = []models.AttendanceHeader{
	{BranchDesc: "COMPUTER SCIENCE AND ENGINEERING", Name: "ASHA SHARMA", ProgramDesc: "B.Tech", StyNumber: "5"},
	{BranchDesc: "COMPUTER SCIENCE AND ENGINEERING", Name: "ASHA SHARMA", ProgramDesc: "B.Tech", StyNumber: "6"},
}

func registeredSubjects() []map[string]any {
	return []map[string]any{
		{
			"employeename": "DR. MEERA RAO", "employeecode": "JIIT1042", "minorsubject": "N",
			"remarks": "REG", "stytype": "REG", "credits": 4,
			"subjectcode": "15B11CI611", "subjectcomponentcode": "L",
			"subjectdesc": "COMPILER DESIGN", "subjectid": "150001", "audtsubject": "N",
		},
		{
			"employeename": "PROF. ANIL VERMA", "employeecode": "JIIT1107", "minorsubject": "N",
			"remarks": "REG", "stytype": "REG", "credits": 3.5,
			"subjectcode": "15B11CI612", "subjectcomponentcode": "L",
			"subjectdesc": "COMPUTER NETWORKS", "subjectid": "150002", "audtsubject": "N",
		},
		{
			"employeename": "DR. KAVYA IYER", "employeecode": "JIIT1211", "minorsubject": "Y",
			"remarks": "REG", "stytype": "REG", "credits": 1,
			"subjectcode": "15B17CI671", "subjectcomponentcode": "P",
			"subjectdesc": "COMPUTER NETWORKS LAB", "subjectid": "150003", "audtsubject": "N",
		},
	}
}

func attendanceDetail(semester models.Semester) map[string]any {
	return map[string]any{
		"registrationcode": semester.RegistrationCode,
		"studentattendancelist": []map[string]any{
			{"subjectcode": "COMPILER DESIGN(15B11CI611)", "Ltotalclass": 28, "Ltotalpres": 25, "LTpercantage": 89.3},
			{"subjectcode": "COMPUTER NETWORKS(15B11CI612)", "Ltotalclass": 30, "Ltotalpres": 22, "LTpercantage": 73.3},
		},
	}
}

func examEvents(semester models.Semester) []models.ExamEvent {
	return []models.ExamEvent{
		{ExamEventCode: "T1", EventFrom: "1771200000000", ExamEventDesc: "T1 " + semester.RegistrationCode, RegistrationID: semester.RegistrationID, ExamEventID: "EV" + semester.RegistrationID + "T1"},
		{ExamEventCode: "T2", EventFrom: "1774400000000", ExamEventDesc: "T2 " + semester.RegistrationCode, RegistrationID: semester.RegistrationID, ExamEventID: "EV" + semester.RegistrationID + "T2"},
	}
}

func examSchedule(eventID models.ID) map[string]any {
	return map[string]any{
		"exameventid": eventID,
		"subjectinfo": []map[string]any{
			{"subjectdesc": "COMPILER DESIGN(15B11CI611)", "datetime": "16/02/2026", "datetimeupto": "09:00 AM - 10:00 AM", "roomcode": "CR-301"},
			{"subjectdesc": "COMPUTER NETWORKS(15B11CI612)", "datetime": "17/02/2026", "datetimeupto": "11:00 AM - 12:00 PM", "roomcode": "CR-302"},
		},
	}
}

func findSemester(registrationID models.ID) (models.Semester, bool) {
	for _, s := range semesters {
		if s.RegistrationID == registrationID {
			return s, true
		}
	}
	return models.Semester{}, false
}

package fakeportal

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/models"
)

// studentRequest is the union of the identity fields the endpoints expect.
type studentRequest struct {
	ClientID         string    `json:"clientid"`
	InstituteID      string    `json:"instituteid"`
	StudentID        string    `json:"studentid"`
	MemberID         string    `json:"memberid"`
	MemberType       string    `json:"membertype"`
	RegistrationID   models.ID `json:"registrationid"`
	RegistrationCode string    `json:"registrationcode"`
	RegistationID    models.ID `json:"registationid"`
	StyNumber        models.ID `json:"stynumber"`
	ExamEventID      models.ID `json:"exameventid"`
	OldPassword      string    `json:"oldpassword"`
	NewPassword      string    `json:"newpassword"`
	ConfirmPassword  string    `json:"confirmpassword"`
}

// decodeStudentRequest parses the JSON body and checks the institute id. It
// writes the failure response itself and reports whether to continue.
func (p *Portal) decodeStudentRequest(w http.ResponseWriter, r *http.Request) (studentRequest, bool) {
	var req studentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, r, "Invalid JSON was passed")
		return req, false
	}

	if req.InstituteID != p.student.InstituteID {
		writeFailure(w, r, "Invalid institute")
		return req, false
	}
	return req, true
}

func (p *Portal) checkMember(w http.ResponseWriter, r *http.Request, id string) bool {
	memberID, _ := r.Context().Value(memberIDCtxKey).(string)
	if id != memberID {
		writeFailure(w, r, "Invalid student")
		return false
	}
	return true
}

func (p *Portal) checkClient(w http.ResponseWriter, r *http.Request, clientID string) bool {
	if clientID != p.student.ClientID {
		writeFailure(w, r, "Invalid client")
		return false
	}
	return true
}

func (p *Portal) bankInfo(w http.ResponseWriter, r *http.Request) {
	req, ok := p.decodeStudentRequest(w, r)
	if !ok || !p.checkMember(w, r, req.StudentID) {
		return
	}

	writeSuccess(w, r, map[string]any{
		"studentname":   p.student.Name,
		"bankname":      "STATE BANK OF INDIA",
		"branchname":    "SECTOR 62 NOIDA",
		"bankaccountno": "XXXXXXXX4821",
		"ifsccode":      "SBIN0011234",
	})
}

func (p *Portal) attendanceMeta(w http.ResponseWriter, r *http.Request) {
	req, ok := p.decodeStudentRequest(w, r)
	if !ok || !p.checkClient(w, r, req.ClientID) {
		return
	}
	if req.MemberType != p.student.MemberType {
		writeFailure(w, r, "Invalid member type")
		return
	}

	writeSuccess(w, r, map[string]any{
		"headerlist": attendanceHeaders,
		"semlist":    semesters,
	})
}

func (p *Portal) attendanceDetail(w http.ResponseWriter, r *http.Request) {
	req, ok := p.decodeStudentRequest(w, r)
	if !ok || !p.checkClient(w, r, req.ClientID) {
		return
	}

	semester, found := findSemester(req.RegistrationID)
	if !found || semester.RegistrationCode != req.RegistrationCode {
		writeFailure(w, r, "Invalid registration")
		return
	}
	if req.StyNumber == "" {
		writeFailure(w, r, "Missing stynumber")
		return
	}

	writeSuccess(w, r, attendanceDetail(semester))
}

func (p *Portal) changePassword(w http.ResponseWriter, r *http.Request) {
	var req studentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeFailure(w, r, "Invalid JSON was passed")
		return
	}

	if req.MemberType != p.student.MemberType {
		writeFailure(w, r, "Invalid member type")
		return
	}
	if req.NewPassword == "" || req.NewPassword != req.ConfirmPassword {
		writeFailure(w, r, "New password and confirm password do not match")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if req.OldPassword != p.password {
		writeFailure(w, r, "Old password is incorrect")
		return
	}
	p.password = req.NewPassword

	writeSuccess(w, r, map[string]any{"message": "Password changed successfully"})
}

func (p *Portal) registrationList(w http.ResponseWriter, r *http.Request) {
	req, ok := p.decodeStudentRequest(w, r)
	if !ok || !p.checkMember(w, r, req.StudentID) {
		return
	}

	writeSuccess(w, r, map[string]any{"registrations": semesters})
}

func (p *Portal) faculties(w http.ResponseWriter, r *http.Request) {
	req, ok := p.decodeStudentRequest(w, r)
	if !ok || !p.checkMember(w, r, req.StudentID) {
		return
	}
	if _, found := findSemester(req.RegistrationID); !found {
		writeFailure(w, r, "Invalid registration")
		return
	}

	writeSuccess(w, r, map[string]any{
		"totalcreditpoints": 8.5,
		"registrations":     registeredSubjects(),
	})
}

func (p *Portal) examSemesters(w http.ResponseWriter, r *http.Request) {
	req, ok := p.decodeStudentRequest(w, r)
	if !ok || !p.checkClient(w, r, req.ClientID) || !p.checkMember(w, r, req.MemberID) {
		return
	}

	writeSuccess(w, r, map[string]any{
		"semesterCodeinfo": map[string]any{"semestercode": semesters},
	})
}

func (p *Portal) examEvents(w http.ResponseWriter, r *http.Request) {
	req, ok := p.decodeStudentRequest(w, r)
	if !ok {
		return
	}

	semester, found := findSemester(req.RegistationID)
	if !found {
		writeFailure(w, r, "Invalid registration")
		return
	}

	writeSuccess(w, r, map[string]any{
		"eventcode": map[string]any{"examevent": examEvents(semester)},
	})
}

func (p *Portal) examSchedule(w http.ResponseWriter, r *http.Request) {
	req, ok := p.decodeStudentRequest(w, r)
	if !ok {
		return
	}

	semester, found := findSemester(req.RegistrationID)
	if !found {
		writeFailure(w, r, "Invalid registration")
		return
	}

	var event models.ExamEvent
	for _, e := range examEvents(semester) {
		if e.ExamEventID == req.ExamEventID {
			event = e
		}
	}
	if event.ExamEventID == "" {
		writeFailure(w, r, "Invalid exam event")
		return
	}

	writeSuccess(w, r, examSchedule(event.ExamEventID))
}

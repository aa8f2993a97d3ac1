package fakeportal

import (
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/utils"
	"github.com/google/uuid"
)

type pretokenRequest struct {
	Username string `json:"username"`
	UserType string `json:"usertype"`
	Captcha  struct {
		Captcha string `json:"captcha"`
		Hidden  string `json:"hidden"`
	} `json:"captcha"`
}

type tokenRequest struct {
	Username     string `json:"username"`
	UserType     string `json:"usertype"`
	RequestID    string `json:"requestid"`
	ModuleName   string `json:"Modulename"`
	Password     string `json:"passwordotpvalue"`
	RejectedData any    `json:"rejectedData"`
}

// readEncrypted decrypts a login body sealed with today's key.
func (p *Portal) readEncrypted(r *http.Request, target any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return p.envelope.DeserializeInto(strings.TrimSpace(string(body)), target)
}

func (p *Portal) pretokenCheck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req pretokenRequest
	if err := p.readEncrypted(r, &req); err != nil {
		log.Err(err).Msg("cannot decrypt pretoken request")
		writeFailure(w, r, "Invalid request payload")
		return
	}

	if !p.captchas.redeem(req.Captcha.Hidden, req.Captcha.Captcha) {
		writeFailure(w, r, "Invalid captcha")
		return
	}
	if req.UserType != "S" || req.Username != p.student.Username {
		writeFailure(w, r, "Invalid username")
		return
	}

	requestID := uuid.NewString()
	p.mu.Lock()
	p.pretokens[requestID] = req.Username
	p.mu.Unlock()

	writeSuccess(w, r, map[string]any{
		"username":     req.Username,
		"usertype":     req.UserType,
		"requestid":    requestID,
		"rejectedData": map[string]any{"hidden": req.Captcha.Hidden},
	})
}

func (p *Portal) generateToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req tokenRequest
	if err := p.readEncrypted(r, &req); err != nil {
		log.Err(err).Msg("cannot decrypt token request")
		writeFailure(w, r, "Invalid request payload")
		return
	}

	if req.RejectedData != nil {
		writeFailure(w, r, "Unexpected rejectedData")
		return
	}
	if req.ModuleName != "STUDENTMODULE" {
		writeFailure(w, r, "Invalid module")
		return
	}

	p.mu.Lock()
	username, ok := p.pretokens[req.RequestID]
	delete(p.pretokens, req.RequestID)
	password := p.password
	p.mu.Unlock()

	if !ok || username != req.Username {
		writeFailure(w, r, "Pretoken check required")
		return
	}
	if req.Password != password {
		writeFailure(w, r, "Invalid password")
		return
	}

	token, err := utils.IssueToken(p.student.MemberID, p.now().Add(p.tokenTTL), p.signKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("member_id", p.student.MemberID).Msg("student logged in")
	writeSuccess(w, r, p.student.regData(token))
}

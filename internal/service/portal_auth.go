package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-jportal/models"
)

const (
	captchaPath  = "/token/getcaptcha"
	pretokenPath = "/token/pretoken-check"
	tokenPath    = "/token/generate-token1"

	studentUserType   = "S"
	studentModuleName = "STUDENTMODULE"
)

// GetCaptcha implements [PortalService].
func (s *portalService) GetCaptcha(ctx context.Context) (models.Captcha, error) {
	raw, err := s.hit(ctx, models.Request{Method: http.MethodGet, Path: captchaPath}, nil)
	if err != nil {
		return models.Captcha{}, fmt.Errorf("get captcha: %w", err)
	}

	var resp models.CaptchaResponse
	if err = decodeResponse(captchaPath, raw, &resp); err != nil {
		return models.Captcha{}, err
	}

	resp.Captcha.Answer = ""
	return resp.Captcha, nil
}

// StudentLogin implements [PortalService].
//
// Step one sends the username and the solved captcha to pretoken-check. Its
// response object, minus "rejectedData" and plus the module name and the
// password, is sent to generate-token1, whose response carries the session.
func (s *portalService) StudentLogin(ctx context.Context, username, password string, captcha models.Captcha) (*models.Session, error) {
	raw, err := s.hit(ctx, models.Request{
		Method: http.MethodPost,
		Path:   pretokenPath,
		Body: map[string]any{
			"username": username,
			"usertype": studentUserType,
			"captcha":  captcha.Payload(),
		},
		Encrypted: true,
		Failure:   ErrLogin,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("pretoken check: %w", err)
	}

	payload, err := decodeObject(pretokenPath, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogin, err)
	}
	delete(payload, "rejectedData")
	payload["Modulename"] = studentModuleName
	payload["passwordotpvalue"] = password

	raw, err = s.hit(ctx, models.Request{
		Method:    http.MethodPost,
		Path:      tokenPath,
		Body:      payload,
		Encrypted: true,
		Failure:   ErrLogin,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	session, err := models.NewSession(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLogin, err)
	}

	s.setSession(session)
	s.logger.Info().
		Str("user_id", session.UserID).
		Str("institute", session.Institute).
		Time("expiry", session.Expiry).
		Msg("student logged in")

	return session, nil
}

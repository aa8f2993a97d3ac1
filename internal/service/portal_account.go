package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-jportal/models"
)

const (
	bankInfoPath       = "/studentbankdetails/getstudentbankinfo"
	changePasswordPath = "/clxuser/changepassword"
)

// GetStudentBankInfo implements [PortalService].
func (s *portalService) GetStudentBankInfo(ctx context.Context) (map[string]any, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	raw, err := s.post(ctx, session, bankInfoPath, map[string]any{
		"instituteid": session.InstituteID,
		"studentid":   session.MemberID,
	})
	if err != nil {
		return nil, fmt.Errorf("get bank info: %w", err)
	}

	return decodeObject(bankInfoPath, raw)
}

// SetPassword implements [PortalService].
func (s *portalService) SetPassword(ctx context.Context, oldPassword, newPassword string) error {
	session, err := s.requireSession()
	if err != nil {
		return err
	}

	_, err = s.hit(ctx, models.Request{
		Method: http.MethodPost,
		Path:   changePasswordPath,
		Body: map[string]any{
			"membertype":      session.MemberType,
			"oldpassword":     oldPassword,
			"newpassword":     newPassword,
			"confirmpassword": newPassword,
		},
		Authenticated: true,
		Failure:       ErrAccountAPI,
	}, session)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.logger.Info().Str("user_id", session.UserID).Msg("password changed")
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-jportal/models"
)

const (
	attendanceMetaPath   = "/StudentClassAttendance/getstudentInforegistrationforattendence"
	attendanceDetailPath = "/StudentClassAttendance/getstudentattendancedetail"
)

// GetAttendanceMeta implements [PortalService].
func (s *portalService) GetAttendanceMeta(ctx context.Context) (models.AttendanceMeta, error) {
	session, err := s.requireSession()
	if err != nil {
		return models.AttendanceMeta{}, err
	}

	raw, err := s.post(ctx, session, attendanceMetaPath, map[string]any{
		"clientid":    session.ClientID,
		"instituteid": session.InstituteID,
		"membertype":  session.MemberType,
	})
	if err != nil {
		return models.AttendanceMeta{}, fmt.Errorf("get attendance meta: %w", err)
	}

	var meta models.AttendanceMeta
	if err = decodeResponse(attendanceMetaPath, raw, &meta); err != nil {
		return models.AttendanceMeta{}, err
	}
	meta.RawResponse = raw

	return meta, nil
}

// GetAttendance implements [PortalService].
func (s *portalService) GetAttendance(ctx context.Context, header models.AttendanceHeader, semester models.Semester) (map[string]any, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	raw, err := s.post(ctx, session, attendanceDetailPath, map[string]any{
		"clientid":         session.ClientID,
		"instituteid":      session.InstituteID,
		"registrationcode": semester.RegistrationCode,
		"registrationid":   semester.RegistrationID.String(),
		"stynumber":        header.StyNumber.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	return decodeObject(attendanceDetailPath, raw)
}

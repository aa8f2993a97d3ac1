package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-jportal/models"
)

const (
	registrationListPath = "/reqsubfaculty/getregistrationList"
	facultiesPath        = "/reqsubfaculty/getfaculties"
)

// GetRegisteredSemesters implements [PortalService].
func (s *portalService) GetRegisteredSemesters(ctx context.Context) ([]models.Semester, error) {
	session, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	raw, err := s.post(ctx, session, registrationListPath, map[string]any{
		"instituteid": session.InstituteID,
		"studentid":   session.MemberID,
	})
	if err != nil {
		return nil, fmt.Errorf("get registered semesters: %w", err)
	}

	var list models.SemesterList
	if err = decodeResponse(registrationListPath, raw, &list); err != nil {
		return nil, err
	}

	return list.Registrations, nil
}

// GetRegisteredSubjectsAndFaculties implements [PortalService].
func (s *portalService) GetRegisteredSubjectsAndFaculties(ctx context.Context, semester models.Semester) (models.Registrations, error) {
	session, err := s.requireSession()
	if err != nil {
		return models.Registrations{}, err
	}

	raw, err := s.post(ctx, session, facultiesPath, map[string]any{
		"instituteid":    session.InstituteID,
		"studentid":      session.MemberID,
		"registrationid": semester.RegistrationID.String(),
	})
	if err != nil {
		return models.Registrations{}, fmt.Errorf("get registered subjects: %w", err)
	}

	var regs models.Registrations
	if err = decodeResponse(facultiesPath, raw, &regs); err != nil {
		return models.Registrations{}, err
	}
	regs.RawResponse = raw

	return regs, nil
}

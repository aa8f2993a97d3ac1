// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the JIIT portal client: the session state
// machine, the two-step student login and typed accessors for every
// supported portal endpoint.
//
// A [PortalService] starts Anonymous. A successful [PortalService.StudentLogin]
// makes it Authenticated until the token's expiry passes, after which it is
// Expired and every guarded call fails with [ErrSessionExpired] until the next
// login. Guarded calls never touch the network without a live session.
package service

import (
	"context"

	"github.com/MKhiriev/go-jportal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/portal_service_mock.go -package=mock

// PortalService is the student-facing portal client.
type PortalService interface {
	// GetCaptcha fetches a fresh login captcha. The returned captcha has an
	// empty Answer for the caller to fill in.
	GetCaptcha(ctx context.Context) (models.Captcha, error)

	// StudentLogin performs the two-step login and installs the new session.
	// Any portal-level failure is reported as [ErrLogin]; the previous session,
	// if any, is left untouched.
	StudentLogin(ctx context.Context, username, password string, captcha models.Captcha) (*models.Session, error)

	// Logout forgets the current session. It does not contact the portal.
	Logout()

	// Session returns the current session, or nil when logged out.
	Session() *models.Session

	// State reports the current authentication state.
	State() State

	// GetStudentBankInfo returns the student's bank details as the portal
	// sends them.
	GetStudentBankInfo(ctx context.Context) (map[string]any, error)

	// GetAttendanceMeta returns the attendance headers and semesters.
	GetAttendanceMeta(ctx context.Context) (models.AttendanceMeta, error)

	// GetAttendance returns the attendance details of one semester.
	GetAttendance(ctx context.Context, header models.AttendanceHeader, semester models.Semester) (map[string]any, error)

	// SetPassword changes the account password. Portal-level failures are
	// reported as [ErrAccountAPI].
	SetPassword(ctx context.Context, oldPassword, newPassword string) error

	// GetRegisteredSemesters lists semesters the student registered for.
	GetRegisteredSemesters(ctx context.Context) ([]models.Semester, error)

	// GetRegisteredSubjectsAndFaculties lists the subjects and teaching
	// faculty of one semester.
	GetRegisteredSubjectsAndFaculties(ctx context.Context, semester models.Semester) (models.Registrations, error)

	// GetSemestersForExamEvents lists semesters that have exam events.
	GetSemestersForExamEvents(ctx context.Context) ([]models.Semester, error)

	// GetExamEvents lists exam events of one semester.
	GetExamEvents(ctx context.Context, semester models.Semester) ([]models.ExamEvent, error)

	// GetExamSchedule returns the schedule of one exam event.
	GetExamSchedule(ctx context.Context, event models.ExamEvent) (map[string]any, error)
}

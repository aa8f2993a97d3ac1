// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-jportal/internal/crypto"
	"github.com/MKhiriev/go-jportal/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrLogin):
		return "Login failed: check username, password and captcha"
	case errors.Is(err, service.ErrSessionExpired):
		return "Session expired, please log in again"
	case errors.Is(err, service.ErrNotLoggedIn):
		return "Not logged in"
	case errors.Is(err, crypto.ErrDecrypt):
		return "Portal response could not be decrypted (clock or date mismatch?)"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the portal is unreachable"
	}

	return err.Error()
}

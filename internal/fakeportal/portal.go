// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeportal emulates the JIIT student portal API closely enough for
// jportal to be exercised without the real service: the same encrypted login
// bodies, LocalName checks, status envelope and endpoint paths, backed by a
// single fixture student.
//
// It is used by the end-to-end tests of the portal client and served by
// cmd/fakeportal for manual runs of the CLI and TUI.
package fakeportal

import (
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-jportal/internal/config"
	"github.com/MKhiriev/go-jportal/internal/crypto"
	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/utils"
)

const (
	// DefaultUsername and DefaultPassword form the account served when the
	// configuration names none.
	DefaultUsername = "21103001"
	DefaultPassword = "jportal-demo"

	defaultTokenDuration = 2 * time.Hour
)

// Portal is the fake portal: an http.Handler factory plus the in-memory
// state of one student account.
type Portal struct {
	student  Student
	signKey  string
	tokenTTL time.Duration

	envelope crypto.Envelope
	now      func() time.Time

	captchas *captchaStore

	mu        sync.Mutex
	password  string
	pretokens map[string]string

	logger *logger.Logger
}

// New constructs a [Portal] from cfg. clock drives both the envelope key and
// token expiry; nil means [utils.PortalNow].
func New(cfg config.FakePortal, clock func() time.Time, logger *logger.Logger) (*Portal, error) {
	if clock == nil {
		clock = utils.PortalNow
	}

	username, password := cfg.Username, cfg.Password
	if username == "" {
		username = DefaultUsername
	}
	if password == "" {
		password = DefaultPassword
	}

	signKey := cfg.TokenSignKey
	if signKey == "" {
		var err error
		if signKey, err = utils.RandomCharSeq(32); err != nil {
			return nil, err
		}
	}

	ttl := cfg.TokenDuration
	if ttl == 0 {
		ttl = defaultTokenDuration
	}
	if ttl < 0 {
		return nil, errors.New("token duration must be positive")
	}

	return &Portal{
		student:   NewStudent(username),
		signKey:   signKey,
		tokenTTL:  ttl,
		envelope:  crypto.NewEnvelope(clock),
		now:       clock,
		captchas:  newCaptchaStore(),
		password:  password,
		pretokens: make(map[string]string),
		logger:    logger,
	}, nil
}

// Student returns the fixture account served by the portal.
func (p *Portal) Student() Student {
	return p.student
}

// CaptchaAnswer returns the answer of an issued, not yet used captcha.
func (p *Portal) CaptchaAnswer(hidden string) (string, bool) {
	return p.captchas.answer(hidden)
}

// Password returns the current account password.
func (p *Portal) Password() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.password
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-jportal/internal/utils"
)

var (
	// ErrMalformedSession is returned when a login response lacks the
	// fields a session is built from.
	ErrMalformedSession = errors.New("malformed login response")
)

// Institute is one entry of regdata.institutelist.
type Institute struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// regData mirrors the "regdata" object of a successful login response.
type regData struct {
	InstituteList []Institute `json:"institutelist"`
	MemberID      string      `json:"memberid"`
	UserID        string      `json:"userid"`
	Token         string      `json:"token"`
	ClientID      string      `json:"clientid"`
	MemberType    string      `json:"membertype"`
	Name          string      `json:"name"`
}

// Session is the authenticated state of one student. It is created once by
// a successful login and replaced wholesale by the next one.
type Session struct {
	Token       string
	Expiry      time.Time
	Institute   string
	InstituteID string
	MemberID    string
	UserID      string
	ClientID    string
	MemberType  string
	Name        string

	// RawResponse is the login response the session was built from.
	RawResponse json.RawMessage
}

// NewSession builds a [Session] from the "response" object returned by the
// final login step. The expiry is read from the token's "exp" claim.
func NewSession(response json.RawMessage) (*Session, error) {
	var body struct {
		RegData *regData `json:"regdata"`
	}
	if err := json.Unmarshal(response, &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSession, err)
	}
	if body.RegData == nil {
		return nil, fmt.Errorf("%w: missing regdata", ErrMalformedSession)
	}

	reg := body.RegData
	if len(reg.InstituteList) == 0 {
		return nil, fmt.Errorf("%w: empty institute list", ErrMalformedSession)
	}

	expiry, err := utils.ParseTokenExpiry(reg.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSession, err)
	}

	institute := reg.InstituteList[0]
	return &Session{
		Token:       reg.Token,
		Expiry:      expiry,
		Institute:   institute.Label,
		InstituteID: institute.Value,
		MemberID:    reg.MemberID,
		UserID:      reg.UserID,
		ClientID:    reg.ClientID,
		MemberType:  reg.MemberType,
		Name:        reg.Name,
		RawResponse: append(json.RawMessage(nil), response...),
	}, nil
}

// Headers returns the headers of an authenticated request. localName must be
// freshly generated for each request.
func (s *Session) Headers(localName string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + s.Token,
		"LocalName":     localName,
	}
}

// Expired reports whether the session token is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.Expiry)
}

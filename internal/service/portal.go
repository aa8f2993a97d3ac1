// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-jportal/internal/adapter"
	"github.com/MKhiriev/go-jportal/internal/crypto"
	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/models"
)

type portalService struct {
	adapter  adapter.PortalAdapter
	envelope crypto.Envelope
	now      func() time.Time

	logger *logger.Logger

	mu      sync.RWMutex
	session *models.Session
}

// NewPortalService constructs a [PortalService] in the Anonymous state.
// portalAdapter performs the HTTP round trips and envelope encrypts login
// bodies and builds LocalName headers.
func NewPortalService(portalAdapter adapter.PortalAdapter, envelope crypto.Envelope, logger *logger.Logger) PortalService {
	return &portalService{
		adapter:  portalAdapter,
		envelope: envelope,
		now:      time.Now,
		logger:   logger,
	}
}

// Session implements [PortalService].
func (s *portalService) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// State implements [PortalService].
func (s *portalService) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.session == nil:
		return StateAnonymous
	case s.session.Expired(s.now()):
		return StateExpired
	default:
		return StateAuthenticated
	}
}

// Logout implements [PortalService].
func (s *portalService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.logger.Info().Str("user_id", s.session.UserID).Msg("logged out")
	}
	s.session = nil
}

func (s *portalService) setSession(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

// requireSession is the precondition of every guarded call. It returns the
// session to use for the call so that a concurrent login cannot swap it
// midway.
func (s *portalService) requireSession() (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, ErrNotLoggedIn
	}
	if s.session.Expired(s.now()) {
		return nil, ErrSessionExpired
	}
	return s.session, nil
}

// hit executes one portal call. session is nil for unauthenticated calls.
// The response object is returned only for a Success status.
func (s *portalService) hit(ctx context.Context, req models.Request, session *models.Session) (json.RawMessage, error) {
	localName, err := s.envelope.LocalName()
	if err != nil {
		return nil, fmt.Errorf("build LocalName header: %w", err)
	}

	headers := make(map[string]string, len(req.Headers)+2)
	maps.Copy(headers, req.Headers)
	if req.Authenticated {
		if session == nil {
			return nil, ErrNotLoggedIn
		}
		maps.Copy(headers, session.Headers(localName))
	} else {
		headers["LocalName"] = localName
	}
	req.Headers = headers

	if req.Encrypted && req.Body != nil {
		body, err := s.envelope.SerializePayload(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encrypt %s payload: %w", req.Path, err)
		}
		req.Body = body
	}

	envelope, err := s.adapter.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	if !envelope.Status.Success() {
		kind := req.Failure
		if kind == nil {
			kind = ErrAPI
		}
		return nil, &StatusError{Kind: kind, Status: envelope.Status}
	}

	return envelope.Response, nil
}

// post sends payload as plain JSON to an authenticated endpoint.
func (s *portalService) post(ctx context.Context, session *models.Session, path string, payload any) (json.RawMessage, error) {
	return s.hit(ctx, models.Request{
		Method:        http.MethodPost,
		Path:          path,
		Body:          payload,
		Authenticated: true,
	}, session)
}

// decodeResponse decodes a response object into target, keeping numbers as
// json.Number.
func decodeResponse(path string, raw json.RawMessage, target any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, path, err)
	}
	return nil
}

// decodeObject decodes a response that must be a JSON object.
func decodeObject(path string, raw json.RawMessage) (map[string]any, error) {
	var object map[string]any
	if err := decodeResponse(path, raw, &object); err != nil {
		return nil, err
	}
	if object == nil {
		return nil, fmt.Errorf("%w: %s: response is not an object", ErrUnexpectedResponse, path)
	}
	return object, nil
}

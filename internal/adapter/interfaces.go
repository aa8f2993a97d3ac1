// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the JIIT
// student portal.
//
// The primary abstraction is [PortalAdapter], which decouples the portal
// client from the underlying HTTP library. The package ships a resty-based
// implementation ([NewHTTPPortalAdapter]).
//
// HTTP-level failures are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
// Portal-level failures (a non-Success status inside a 200 response) are not
// errors here; they are returned in the envelope for the caller to judge.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-jportal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// PortalAdapter performs exactly one HTTP round trip per call. It does not
// retry, cache, or interpret the portal status.
type PortalAdapter interface {
	// Do sends req and decodes the response into a [models.Envelope].
	//
	// req.Headers are sent verbatim; the adapter adds only Content-Type for
	// requests with a body. A string body is sent as-is (the encrypted
	// envelope text); any other non-nil body is sent as JSON.
	//
	// Returns a wrapped HTTP sentinel for non-2xx responses and
	// [ErrMalformedResponse] when the body is not a portal envelope.
	Do(ctx context.Context, req models.Request) (models.Envelope, error)
}

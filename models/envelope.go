// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// StatusSuccess is the only responseStatus value the portal uses for success.
const StatusSuccess = "Success"

// Status is the portal's free-form status object, e.g.
//
//	{"responseStatus":"Success","errors":null,"responseCode":"200","httpStatus":"OK"}
//
// It is kept whole so failures can be reported with everything the server said.
type Status map[string]any

// ResponseStatus returns status.responseStatus, or "" if it is missing.
func (s Status) ResponseStatus() string {
	v, _ := s["responseStatus"].(string)
	return v
}

// Success reports whether the server accepted the request.
func (s Status) Success() bool {
	return s.ResponseStatus() == StatusSuccess
}

// String renders the status as compact JSON for diagnostics.
func (s Status) String() string {
	raw, err := json.Marshal(map[string]any(s))
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(s))
	}
	return string(raw)
}

// Envelope is the outermost JSON object of every portal response.
type Envelope struct {
	// Status reports whether the call succeeded.
	Status Status `json:"status"`

	// Response is the endpoint-specific payload, left raw for the caller.
	Response json.RawMessage `json:"response"`
}

// Request describes one portal call. It is built by the client for every
// operation and passed by value to a single execution routine.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodPost.
	Method string

	// Path is the endpoint path below the portal base URL.
	Path string

	// Headers are sent as-is. The execution routine adds LocalName and,
	// for authenticated calls, Authorization.
	Headers map[string]string

	// Body is the request payload. When Encrypted is set the client replaces
	// it with its base64 envelope text before sending; otherwise it is sent
	// as JSON. Nil means no body.
	Body any

	// Encrypted selects the encrypted envelope for the body.
	Encrypted bool

	// Authenticated marks calls that need a live session.
	Authenticated bool

	// Failure is the error class reported when the portal answers with a
	// non-Success status. Nil means the generic API error.
	Failure error
}

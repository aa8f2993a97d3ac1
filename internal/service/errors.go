package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-jportal/models"
)

var (
	// ErrAPI is the generic portal failure: the portal answered with a
	// non-Success status.
	ErrAPI = errors.New("portal api error")
	// ErrLogin is a failure of either login step.
	ErrLogin = fmt.Errorf("login failed: %w", ErrAPI)
	// ErrAccountAPI is a failure of an account-management call.
	ErrAccountAPI = errors.New("account api error")

	// ErrSession groups the precondition failures of guarded calls.
	ErrSession = errors.New("session error")
	// ErrNotLoggedIn is returned by guarded calls before any login.
	ErrNotLoggedIn = fmt.Errorf("not logged in: %w", ErrSession)
	// ErrSessionExpired is returned by guarded calls once the token expired.
	ErrSessionExpired = fmt.Errorf("session expired: %w", ErrSession)

	// ErrUnexpectedResponse is returned when a Success response does not
	// have the shape the endpoint is known to send.
	ErrUnexpectedResponse = errors.New("unexpected response shape")
)

// StatusError carries the portal status object of a failed call. Kind is
// the failure class of the call (ErrAPI, ErrLogin or ErrAccountAPI), so
// errors.Is(err, ErrLogin) works on it.
type StatusError struct {
	Kind   error
	Status models.Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status: %s", e.Kind, e.Status)
}

func (e *StatusError) Unwrap() error {
	return e.Kind
}

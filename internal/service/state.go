package service

// State is the authentication state of a [PortalService].
type State int

const (
	// StateAnonymous means no login has succeeded, or the session was
	// dropped by Logout.
	StateAnonymous State = iota
	// StateAuthenticated means a session exists and has not expired.
	StateAuthenticated
	// StateExpired means a session exists but its token expired.
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

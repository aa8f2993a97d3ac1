package crypto

import "errors"

var (
	// ErrDecrypt marks payloads that cannot be opened with the current key:
	// corrupt input, or data sealed on another portal day (the key rolled over
	// at midnight IST while the session was in use).
	ErrDecrypt = errors.New("payload cannot be decrypted with the current key")

	// ErrLocalNameMismatch is returned by CheckLocalName when the header
	// decrypts but does not carry the expected date seed.
	ErrLocalNameMismatch = errors.New("local name does not carry the date seed")
)

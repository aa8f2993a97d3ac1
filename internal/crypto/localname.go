package crypto

import (
	"encoding/base64"
	"fmt"
	"time"
)

// CheckLocalName verifies a LocalName header the way the portal does: it
// must decrypt under the key of t's date and carry DateSeed(t) between the
// random prefix and suffix.
func CheckLocalName(header string, t time.Time) error {
	ciphertext, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return fmt.Errorf("%w: decode base64: %v", ErrDecrypt, err)
	}

	plaintext, err := DecryptWithKey(GenerateKey(t), ciphertext)
	if err != nil {
		return err
	}

	seed := DateSeed(t)
	if len(plaintext) != localNamePrefixLen+len(seed)+localNameSuffixLen {
		return fmt.Errorf("%w: unexpected length %d", ErrLocalNameMismatch, len(plaintext))
	}
	if got := string(plaintext[localNamePrefixLen : localNamePrefixLen+len(seed)]); got != seed {
		return fmt.Errorf("%w: got %q", ErrLocalNameMismatch, got)
	}

	return nil
}

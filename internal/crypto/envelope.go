// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-jportal/internal/utils"
	"github.com/emmansun/gmsm/padding"
)

// IV is the initialization vector shared by every portal payload.
const IV = "dcek9wb8frty1pnm"

const (
	keyPrefix = "qa8y"
	keySuffix = "ty1pn"

	localNamePrefixLen = 4
	localNameSuffixLen = 5
)

var pkcs7 = padding.NewPKCS7Padding(aes.BlockSize)

// GenerateKey returns the 16-byte AES key for the calendar date of t.
func GenerateKey(t time.Time) []byte {
	return []byte(keyPrefix + DateSeed(t) + keySuffix)
}

// EncryptWithKey pads plaintext and encrypts it with AES-CBC under key and [IV].
func EncryptWithKey(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7.Pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, []byte(IV)).CryptBlocks(ciphertext, padded)

	return ciphertext, nil
}

// DecryptWithKey decrypts ciphertext with AES-CBC under key and [IV] and
// strips the PKCS#7 padding.
func DecryptWithKey(key, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of block size %d",
			ErrDecrypt, len(ciphertext), aes.BlockSize)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, []byte(IV)).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7.Unpad(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return unpadded, nil
}

// envelope is the private implementation of [Envelope].
type envelope struct {
	now func() time.Time
}

// NewEnvelope constructs an [Envelope] whose daily key follows clock.
// A nil clock means [utils.PortalNow], which is what the real portal expects.
func NewEnvelope(clock func() time.Time) Envelope {
	if clock == nil {
		clock = utils.PortalNow
	}
	return &envelope{now: clock}
}

func (e *envelope) key() []byte {
	return GenerateKey(e.now())
}

// Encrypt implements [Envelope].
func (e *envelope) Encrypt(plaintext []byte) ([]byte, error) {
	return EncryptWithKey(e.key(), plaintext)
}

// Decrypt implements [Envelope].
func (e *envelope) Decrypt(ciphertext []byte) ([]byte, error) {
	return DecryptWithKey(e.key(), ciphertext)
}

// SerializePayload implements [Envelope]. JSON is written without HTML
// escaping and without the encoder's trailing newline.
func (e *envelope) SerializePayload(payload any) (string, error) {
	raw, err := marshalCompact(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	ciphertext, err := e.Encrypt(raw)
	if err != nil {
		return "", fmt.Errorf("encrypt payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DeserializePayload implements [Envelope].
func (e *envelope) DeserializePayload(payload string) (any, error) {
	var v any
	if err := e.DeserializeInto(payload, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeserializeInto implements [Envelope]. Decrypted bytes that are not a
// single JSON value are reported as [ErrDecrypt]: a stale key occasionally
// produces valid-looking padding over garbage.
func (e *envelope) DeserializeInto(payload string, target any) error {
	ciphertext, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: decode base64: %v", ErrDecrypt, err)
	}

	plaintext, err := e.Decrypt(ciphertext)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.UseNumber()
	if err = dec.Decode(target); err != nil {
		return fmt.Errorf("%w: decode json: %v", ErrDecrypt, err)
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after json value", ErrDecrypt)
	}

	return nil
}

// LocalName implements [Envelope].
func (e *envelope) LocalName() (string, error) {
	prefix, err := utils.RandomCharSeq(localNamePrefixLen)
	if err != nil {
		return "", fmt.Errorf("generate local name: %w", err)
	}
	suffix, err := utils.RandomCharSeq(localNameSuffixLen)
	if err != nil {
		return "", fmt.Errorf("generate local name: %w", err)
	}

	// One clock read: seed and key must belong to the same day.
	now := e.now()
	name := prefix + DateSeed(now) + suffix

	ciphertext, err := EncryptWithKey(GenerateKey(now), []byte(name))
	if err != nil {
		return "", fmt.Errorf("encrypt local name: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the portal's payload envelope.
//
// Every login body exchanged with the portal is
// base64(AES-128-CBC(PKCS#7(compact JSON))) under a key that changes at
// 00:00 IST each day, and every request carries a LocalName header built
// from the same daily seed. Key and IV are fixed by the remote protocol.
//
//	seed      = DateSeed(today)                  7 digits
//	key       = "qa8y" + seed + "ty1pn"          16 bytes
//	iv        = "dcek9wb8frty1pnm"               16 bytes
//	envelope  = base64(AES-CBC(key, iv, pad(json)))
//	LocalName = base64(AES-CBC(key, iv, pad(rand4 + seed + rand5)))
package crypto

// Envelope encrypts and decrypts portal payloads with the key of the
// current portal day. The day is taken from the envelope's clock on every
// call, so a long-lived Envelope follows the key rotation.
type Envelope interface {
	// Encrypt pads plaintext with PKCS#7 and encrypts it with AES-128-CBC
	// under today's key and the fixed IV.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Ciphertext produced under another day's key,
	// or corrupt input, yields an error wrapping [ErrDecrypt].
	Decrypt(ciphertext []byte) ([]byte, error)

	// SerializePayload encodes payload as compact JSON, encrypts it and
	// returns standard base64 text.
	SerializePayload(payload any) (string, error)

	// DeserializePayload reverses SerializePayload. The result is whatever
	// the JSON holds (object, array or scalar); numbers are [encoding/json.Number].
	DeserializePayload(payload string) (any, error)

	// DeserializeInto is DeserializePayload decoding into target, which must
	// be a non-nil pointer.
	DeserializeInto(payload string, target any) error

	// LocalName returns a fresh value for the LocalName request header.
	LocalName() (string, error)
}

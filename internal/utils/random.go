// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"math/big"
)

// alphanumeric mirrors the portal web client's charset: digits, then ASCII letters.
const alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomCharSeq returns n characters drawn uniformly from [0-9a-zA-Z] using
// the OS CSPRNG.
func RandomCharSeq(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(alphanumeric)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[i] = alphanumeric[idx.Int64()]
	}

	return string(out), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenWithoutExpiry is returned when a token carries no "exp" claim.
	ErrTokenWithoutExpiry = errors.New("token has no expiry claim")
	// ErrMalformedToken is returned when a token has no claims segment.
	ErrMalformedToken = errors.New("token has no claims segment")
)

// ParseTokenExpiry reads the "exp" claim of a portal bearer token without
// verifying it. The portal token is opaque apart from its middle segment,
// which is base64 JSON; the header and signature segments are not inspected.
//
// The segment may use the URL-safe or the standard alphabet, with or without
// padding.
func ParseTokenExpiry(tokenString string) (time.Time, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("error parsing token claims: %w", ErrMalformedToken)
	}

	payload, err := decodeTokenSegment(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("error decoding token claims: %w", err)
	}

	claims := jwt.MapClaims{}
	if err = json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, fmt.Errorf("error parsing token claims: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrTokenWithoutExpiry
	}

	return exp.Time, nil
}

func decodeTokenSegment(seg string) ([]byte, error) {
	raw, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(seg)
	if err == nil {
		return raw, nil
	}

	if l := len(seg) % 4; l > 0 {
		seg += strings.Repeat("=", 4-l)
	}
	raw, stdErr := base64.StdEncoding.DecodeString(seg)
	if stdErr != nil {
		return nil, err
	}
	return raw, nil
}

// IssueToken creates an HMAC-SHA256 signed token for subject that expires at
// expiresAt. Only the local fake portal issues tokens; the real portal's
// tokens are opaque to the client.
//
// Returns an error if subject or signKey is empty, or if signing fails.
func IssueToken(subject string, expiresAt time.Time, signKey string) (string, error) {
	if subject == "" || signKey == "" {
		return "", errors.New("invalid params for issuing token")
	}

	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifies signature and expiry of a token issued by
// [IssueToken] and returns its subject.
func ValidateToken(tokenString, signKey string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("error occurred validating token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject error")
	}

	return subject, nil
}

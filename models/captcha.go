// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"fmt"
)

// Captcha is the challenge the portal requires for a student login.
// Answer is filled in by the caller (a human or an external solver) before
// the captcha is submitted with the login request.
type Captcha struct {
	// Answer is the solved text; empty when freshly fetched.
	Answer string `json:"captcha"`

	// Hidden is the server-side verification token for this challenge.
	Hidden string `json:"hidden"`

	// Image is the base64 encoded challenge image.
	Image string `json:"image"`
}

// CaptchaResponse is the response body of the captcha endpoint.
type CaptchaResponse struct {
	Captcha Captcha `json:"captcha"`
}

// Payload returns the captcha as the login request expects it.
func (c Captcha) Payload() map[string]string {
	return map[string]string{
		"captcha": c.Answer,
		"hidden":  c.Hidden,
	}
}

// ImageBytes decodes the challenge image.
func (c Captcha) ImageBytes() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(c.Image)
	if err != nil {
		return nil, fmt.Errorf("decode captcha image: %w", err)
	}
	return raw, nil
}

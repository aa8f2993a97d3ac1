// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinels in errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Portal.BaseURL == "" {
		return fmt.Errorf("%w: empty base url", ErrInvalidPortalConfigs)
	}
	if u, err := url.Parse(cfg.Portal.BaseURL); err != nil || u.Host == "" {
		return fmt.Errorf("%w: base url %q is not absolute", ErrInvalidPortalConfigs, cfg.Portal.BaseURL)
	}
	if cfg.Portal.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidPortalConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	if cfg.FakePortal.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidFakePortalConfigs)
	}

	return nil
}

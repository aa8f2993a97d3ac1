// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the environment: CONFIG plus the PORTAL_,
// CREDENTIALS_, LOG_ and FAKE_PORTAL_ groups declared by the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// Durations (PORTAL_REQUEST_TIMEOUT, FAKE_PORTAL_TOKEN_DURATION) accept Go
// duration strings such as "30s" or a bare number of seconds.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(time.Duration(0)): parseDuration,
		},
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func parseDuration(v string) (any, error) {
	if seconds, err := strconv.Atoi(v); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return nil, fmt.Errorf("duration %q: want e.g. 30s or a number of seconds", v)
	}
	return d, nil
}

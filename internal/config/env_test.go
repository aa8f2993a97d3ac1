// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"PORTAL_BASE_URL":             "http://127.0.0.1:8090/StudentPortalAPI",
		"PORTAL_REQUEST_TIMEOUT":      "5s",
		"PORTAL_INSECURE_SKIP_VERIFY": "true",

		"CREDENTIALS_USERNAME": "21103001",
		"CREDENTIALS_PASSWORD": "secret",

		"LOG_FILE":  "/tmp/jportal.log",
		"LOG_LEVEL": "debug",

		"FAKE_PORTAL_ADDRESS":        "127.0.0.1:9000",
		"FAKE_PORTAL_USERNAME":       "demo",
		"FAKE_PORTAL_PASSWORD":       "demo-pass",
		"FAKE_PORTAL_TOKEN_SIGN_KEY": "sign",
		"FAKE_PORTAL_TOKEN_DURATION": "1h",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "http://127.0.0.1:8090/StudentPortalAPI", cfg.Portal.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Portal.RequestTimeout)
	assert.True(t, cfg.Portal.InsecureSkipVerify)

	assert.Equal(t, "21103001", cfg.Credentials.Username)
	assert.Equal(t, "secret", cfg.Credentials.Password)

	assert.Equal(t, "/tmp/jportal.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)

	assert.Equal(t, "127.0.0.1:9000", cfg.FakePortal.Address)
	assert.Equal(t, "demo", cfg.FakePortal.Username)
	assert.Equal(t, "demo-pass", cfg.FakePortal.Password)
	assert.Equal(t, "sign", cfg.FakePortal.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.FakePortal.TokenDuration)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"PORTAL_BASE_URL": "http://localhost:8090",
		"LOG_LEVEL":       "warn",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8090", cfg.Portal.BaseURL)
	assert.Zero(t, cfg.Portal.RequestTimeout)
	assert.False(t, cfg.Portal.InsecureSkipVerify)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)

	assert.Equal(t, Credentials{}, cfg.Credentials)
	assert.Equal(t, FakePortal{}, cfg.FakePortal)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"PORTAL_REQUEST_TIMEOUT": "soon"})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
}

func TestParseEnv_Durations(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "go duration", value: "1m30s", want: 90 * time.Second},
		{name: "bare seconds", value: "45", want: 45 * time.Second},
		{name: "zero", value: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"PORTAL_REQUEST_TIMEOUT":     tt.value,
				"FAKE_PORTAL_TOKEN_DURATION": tt.value,
			})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))

			assert.Equal(t, tt.want, cfg.Portal.RequestTimeout)
			assert.Equal(t, tt.want, cfg.FakePortal.TokenDuration)
		})
	}
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"PORTAL_INSECURE_SKIP_VERIFY": "maybe"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"PORTAL_BASE_URL",
		"PORTAL_REQUEST_TIMEOUT",
		"PORTAL_INSECURE_SKIP_VERIFY",

		"CREDENTIALS_USERNAME",
		"CREDENTIALS_PASSWORD",

		"LOG_FILE",
		"LOG_LEVEL",

		"FAKE_PORTAL_ADDRESS",
		"FAKE_PORTAL_USERNAME",
		"FAKE_PORTAL_PASSWORD",
		"FAKE_PORTAL_TOKEN_SIGN_KEY",
		"FAKE_PORTAL_TOKEN_DURATION",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}

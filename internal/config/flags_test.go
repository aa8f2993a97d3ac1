package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8090}, expected: "localhost:8090"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8090}, expected: ":8090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests parsing of host:port values.
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8090", want: NetAddress{Host: "localhost", Port: 8090}},
		{name: "ipv4", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "all interfaces", input: ":8090", want: NetAddress{Port: 8090}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "portal.example:8090", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

// TestFlags_Register verifies that every flag lands in its config field.
func TestFlags_Register(t *testing.T) {
	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Register(fs)

	err := fs.Parse([]string{
		"--base-url", "http://127.0.0.1:8090/api",
		"--timeout", "15s",
		"--insecure",
		"-u", "21103001",
		"--log-file", "/tmp/j.log",
		"--log-level", "debug",
		"-a", "127.0.0.1:9000",
		"-c", "/etc/jportal.json",
		"--env-file", "local.env",
	})
	require.NoError(t, err)

	cfg := flags.toConfig()
	assert.Equal(t, Portal{BaseURL: "http://127.0.0.1:8090/api", RequestTimeout: 15 * time.Second, InsecureSkipVerify: true}, cfg.Portal)
	assert.Equal(t, "21103001", cfg.Credentials.Username)
	assert.Empty(t, cfg.Credentials.Password)
	assert.Equal(t, Log{File: "/tmp/j.log", Level: "debug"}, cfg.Log)
	assert.Equal(t, "127.0.0.1:9000", cfg.FakePortal.Address)
	assert.Equal(t, "/etc/jportal.json", cfg.JSONFilePath)
	assert.Equal(t, "local.env", flags.EnvFile)
}

// TestFlags_Defaults verifies that unset flags produce a zero config.
func TestFlags_Defaults(t *testing.T) {
	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Register(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, flags.toConfig())
}

// TestFlags_BadAddress verifies that an invalid address fails flag parsing.
func TestFlags_BadAddress(t *testing.T) {
	var flags Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(nil)
	flags.Register(fs)

	assert.Error(t, fs.Parse([]string{"--address", "nowhere"}))
}

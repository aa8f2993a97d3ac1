package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags are the configuration values that may be given on the command line.
// Register binds them to a flag set; cobra commands register them as
// persistent flags.
type Flags struct {
	BaseURL            string
	RequestTimeout     time.Duration
	InsecureSkipVerify bool
	Username           string
	LogFile            string
	LogLevel           string
	FakePortalAddress  NetAddress
	JSONFilePath       string
	EnvFile            string
}

// Register defines all configuration flags on fs.
//
// Flags:
//
//	--base-url          portal API root
//	--timeout           request timeout (e.g. "30s", "1m")
//	--insecure          skip TLS certificate verification
//	-u/--username       portal username
//	--log-file          log file of the terminal UI
//	--log-level         zerolog level
//	-a/--address        fake portal listen address host:port
//	-c/--config         JSON file path with configs
//	--env-file          dotenv file path
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.BaseURL, "base-url", "", "Portal API base URL")
	fs.DurationVar(&f.RequestTimeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&f.InsecureSkipVerify, "insecure", false, "Skip TLS certificate verification")
	fs.StringVarP(&f.Username, "username", "u", "", "Portal username (enrollment number)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file used by the terminal UI")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.VarP(&f.FakePortalAddress, "address", "a", "Fake portal listen address host:port")
	fs.StringVarP(&f.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.EnvFile, "env-file", "", "Dotenv file path (default .env)")
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Portal: Portal{
			BaseURL:            f.BaseURL,
			RequestTimeout:     f.RequestTimeout,
			InsecureSkipVerify: f.InsecureSkipVerify,
		},
		Credentials: Credentials{
			Username: f.Username,
		},
		Log: Log{
			File:  f.LogFile,
			Level: f.LogLevel,
		},
		FakePortal: FakePortal{
			Address: f.FakePortalAddress.String(),
		},
		JSONFilePath: f.JSONFilePath,
	}
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

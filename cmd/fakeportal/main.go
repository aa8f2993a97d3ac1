package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-jportal/internal/config"
	"github.com/MKhiriev/go-jportal/internal/fakeportal"
	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/server"
	"github.com/MKhiriev/go-jportal/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Printf("fakeportal %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	var flags config.Flags
	fs := pflag.NewFlagSet("fakeportal", pflag.ExitOnError)
	flags.Register(fs)
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("fakeportal")
	cfg, err := config.GetStructuredConfig(&flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	portal, err := fakeportal.New(cfg.FakePortal, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating fake portal")
	}

	student := portal.Student()
	log.Info().
		Str("username", student.Username).
		Str("base_url", "http://"+cfg.FakePortal.Address+fakeportal.APIPrefix).
		Msg("serving fixture student")

	srv, err := server.NewServer(portal.Init(), cfg.FakePortal.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

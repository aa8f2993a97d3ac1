package main

import (
	"os"

	"github.com/MKhiriev/go-jportal/internal/cli"
	"github.com/MKhiriev/go-jportal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(cli.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))
}

package main

import (
	"context"
	"os"

	"github.com/fatih/color"

	"github.com/MKhiriev/smart-plant-guard/internal/cli"
	"github.com/MKhiriev/smart-plant-guard/internal/config"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetCLIConfig()
	if err != nil {
		logger.NewCLILogger("plantctl", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewCLILogger("plantctl", cfg.App.LogLevel)
	ctx := log.WithContext(context.Background())

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	root := cli.New(*cfg, build, log).RootCommand()

	if err = root.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "✗ "+err.Error())
		os.Exit(1)
	}
}

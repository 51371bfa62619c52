package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zenmcp/zenconfig/internal/config"
	"github.com/zenmcp/zenconfig/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("zenconfig")
	cfg, err := config.GetEffectiveConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.LogLevel()); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("resolved configs")

	out, err := json.MarshalIndent(cfg.Redacted(), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding configs")
	}

	fmt.Println(string(out))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}

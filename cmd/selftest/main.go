package main

import (
	"fmt"
	"os"

	"github.com/mtrqq/safecopy/pkg/config"
	"github.com/mtrqq/safecopy/pkg/raw"
	"github.com/mtrqq/safecopy/pkg/selftest"
	"github.com/rs/zerolog/log"
)

func runSelfTests() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	log.Logger = logger

	opts, err := cfg.EngineOptions()
	if err != nil {
		return fmt.Errorf("failed to configure copy engine: %w", err)
	}
	engine := raw.NewEngine(opts...)

	log.Info().Stringer("overlap_mode", engine.OverlapMode()).Bool("word_copy", cfg.WordCopy).Msg("Running test cases...")

	report := selftest.Run(engine, selftest.Cases())
	for _, result := range report.Results {
		if result.Passed() {
			log.Info().Str("case", result.Name).Msg("passed")
		} else {
			log.Error().Err(result.Err).Str("case", result.Name).Msg("failed")
		}
	}

	if !report.Passed() {
		return fmt.Errorf("%d of %d cases failed", len(report.Failed()), len(report.Results))
	}

	log.Info().Int("count", len(report.Results)).Msg("All cases passed")
	return nil
}

func main() {
	err := runSelfTests()
	if err != nil {
		log.Fatal().Err(err).Msg("Self tests failed")
	}
}

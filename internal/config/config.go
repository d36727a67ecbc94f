// Package config contains the configuration handling of the michango service.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains the configuration parameters of the michango service.
type Config struct {
	RunAddress      string        `env:"RUN_ADDRESS"`
	SessionFile     string        `env:"SESSION_FILE"`
	SettlementDelay time.Duration `env:"SETTLEMENT_DELAY"`
	ReportDelay     time.Duration `env:"REPORT_DELAY"`
	SuccessRate     float64       `env:"SUCCESS_RATE"`
	SeedDemoUser    bool          `env:"SEED_DEMO_USER"`
}

// Parse reads the configuration from command-line flags and environment
// variables; environment variables win. A .env file is loaded when present.
func Parse() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envSessionFile := cfg.SessionFile
	envSettlementDelay := cfg.SettlementDelay
	envReportDelay := cfg.ReportDelay
	envSuccessRate := cfg.SuccessRate
	envSeedDemoUser := cfg.SeedDemoUser

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.SessionFile, "s", "session.json", "path of the session slot file")
	flag.DurationVar(&cfg.SettlementDelay, "d", 2*time.Second, "simulated payment settlement delay")
	flag.DurationVar(&cfg.ReportDelay, "p", 2*time.Second, "simulated report rendering delay")
	flag.Float64Var(&cfg.SuccessRate, "r", 0.9, "payment success probability (0..1]")
	flag.BoolVar(&cfg.SeedDemoUser, "demo", false, "seed the demo user on startup")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envSessionFile != "" {
		cfg.SessionFile = envSessionFile
	}
	if envSettlementDelay != 0 {
		cfg.SettlementDelay = envSettlementDelay
	}
	if envReportDelay != 0 {
		cfg.ReportDelay = envReportDelay
	}
	if envSuccessRate != 0 {
		cfg.SuccessRate = envSuccessRate
	}
	if envSeedDemoUser {
		cfg.SeedDemoUser = true
	}

	if cfg.SuccessRate <= 0 || cfg.SuccessRate > 1 {
		return nil, fmt.Errorf("success rate must be in (0, 1], got %v", cfg.SuccessRate)
	}

	return cfg, nil
}

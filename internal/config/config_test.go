package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	type want struct {
		runAddress      string
		sessionFile     string
		settlementDelay time.Duration
		successRate     float64
		seedDemoUser    bool
	}

	tests := []struct {
		name  string
		env   map[string]string
		flags []string
		want  want
	}{
		{
			name:  "defaults",
			env:   map[string]string{},
			flags: []string{},
			want: want{
				runAddress:      "localhost:8080",
				sessionFile:     "session.json",
				settlementDelay: 2 * time.Second,
				successRate:     0.9,
			},
		},
		{
			name: "env only",
			env: map[string]string{
				"RUN_ADDRESS":      "localhost:9999",
				"SESSION_FILE":     "/tmp/session.json",
				"SETTLEMENT_DELAY": "500ms",
				"SUCCESS_RATE":     "0.5",
				"SEED_DEMO_USER":   "true",
			},
			flags: []string{},
			want: want{
				runAddress:      "localhost:9999",
				sessionFile:     "/tmp/session.json",
				settlementDelay: 500 * time.Millisecond,
				successRate:     0.5,
				seedDemoUser:    true,
			},
		},
		{
			name: "flags only",
			env:  map[string]string{},
			flags: []string{
				"-a", "localhost:7777",
				"-s", "/var/run/session.json",
				"-d", "1s",
				"-r", "0.75",
				"-demo",
			},
			want: want{
				runAddress:      "localhost:7777",
				sessionFile:     "/var/run/session.json",
				settlementDelay: time.Second,
				successRate:     0.75,
				seedDemoUser:    true,
			},
		},
		{
			name: "env overrides flags",
			env: map[string]string{
				"RUN_ADDRESS":      "env:9000",
				"SESSION_FILE":     "/env/session.json",
				"SETTLEMENT_DELAY": "250ms",
				"SUCCESS_RATE":     "0.25",
			},
			flags: []string{
				"-a", "flag:8000",
				"-s", "/flag/session.json",
				"-d", "3s",
				"-r", "0.99",
			},
			want: want{
				runAddress:      "env:9000",
				sessionFile:     "/env/session.json",
				settlementDelay: 250 * time.Millisecond,
				successRate:     0.25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			os.Args = append([]string{"test"}, tt.flags...)

			cfg, err := Parse()
			require.NoError(t, err)

			assert.Equal(t, tt.want.runAddress, cfg.RunAddress)
			assert.Equal(t, tt.want.sessionFile, cfg.SessionFile)
			assert.Equal(t, tt.want.settlementDelay, cfg.SettlementDelay)
			assert.Equal(t, tt.want.successRate, cfg.SuccessRate)
			assert.Equal(t, tt.want.seedDemoUser, cfg.SeedDemoUser)
		})
	}
}

func TestParseConfig_RejectsBadSuccessRate(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	t.Setenv("SUCCESS_RATE", "1.5")
	os.Args = []string{"test"}

	_, err := Parse()
	require.Error(t, err)
}

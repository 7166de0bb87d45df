package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures process-level configuration. Two constant tables aside
// (restriction rules, offline holiday calendar), this is the only process-wide
// state and it is read-only after FromEnv.
type Config struct {
	// Addr is the HTTP listen address for the server binary.
	Addr string

	// HolidaysAPIKey authenticates against the external holiday lookup.
	// Required only for online mode.
	HolidaysAPIKey string

	// HolidaysBaseURL overrides the lookup endpoint, mainly for tests.
	HolidaysBaseURL string

	// LookupTimeout bounds each outbound holiday request.
	LookupTimeout time.Duration

	// LookupRetries is the number of additional attempts after a retryable
	// lookup failure.
	LookupRetries int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("PICO_PLACA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("PICO_PLACA_LOOKUP_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}

	retries := 1
	if raw := os.Getenv("PICO_PLACA_LOOKUP_RETRIES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			retries = n
		}
	}

	return Config{
		Addr:            addr,
		HolidaysAPIKey:  os.Getenv("HOLIDAYS_API_KEY"),
		HolidaysBaseURL: os.Getenv("HOLIDAYS_API_URL"),
		LookupTimeout:   timeout,
		LookupRetries:   retries,
	}
}

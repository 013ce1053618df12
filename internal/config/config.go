// Package config provides functionality for managing configuration options
// for the panel using command-line flags, environment variables, and an
// optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
)

// Options holds the configuration values for the panel.
type Options struct {
	// APIURL is the backend base URL, including the /api prefix.
	APIURL string `env:"API_URL" json:"api_url"`

	// PayPalClientID is the client id used by the PayPal payment form.
	PayPalClientID string `env:"PAYPAL_CLIENT_ID" json:"paypal_client_id"`

	// SessionFile is the path of the file holding the token/user session.
	SessionFile string `env:"SESSION_FILE" json:"session_file"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// Config is the path to the config file.
	Config string `env:"CONFIG" json:"-"`
}

// DefaultAPIURL is used when no base URL is configured.
const DefaultAPIURL = "http://localhost:5000/api"

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.APIURL, "url", DefaultAPIURL, "backend base URL")
	flag.StringVar(&options.SessionFile, "session", "session.json", "path to session file")
	flag.StringVar(&options.LogLevel, "log-level", "info", "log level")
	flag.StringVar(&options.Config, "config", "", "path to config file")
	flag.StringVar(&options.Config, "c", "", "path to config file (shorthand)")
}

// Parse parses command-line flags, the optional config file, and environment
// variables (in that order, later sources win) and returns the resulting
// Options.
func Parse() *Options {
	flag.Parse()

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	// Environment variables override flags and the config file.
	if err := env.Parse(options); err != nil {
		log.Fatalf("error while parsing environment: %v", err)
	}

	if options.APIURL == "" {
		options.APIURL = DefaultAPIURL
	}

	return options
}

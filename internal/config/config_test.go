package config

import "testing"

func TestParseEnvOverride(t *testing.T) {
	t.Setenv("API_URL", "http://staging.example:9000/api")
	t.Setenv("SESSION_FILE", "/tmp/panel-session.json")
	t.Setenv("LOG_LEVEL", "debug")

	opts := Parse()

	if opts.APIURL != "http://staging.example:9000/api" {
		t.Errorf("APIURL = %q; want the environment to win", opts.APIURL)
	}
	if opts.SessionFile != "/tmp/panel-session.json" {
		t.Errorf("SessionFile = %q; want the environment to win", opts.SessionFile)
	}
	if opts.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want debug", opts.LogLevel)
	}
}

func TestParseEmptyURLFallsBack(t *testing.T) {
	t.Setenv("API_URL", "")
	options.APIURL = ""

	opts := Parse()

	if opts.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q; want default %q", opts.APIURL, DefaultAPIURL)
	}
}

// Package models defines the core data structures for the sl_tools CLI.
// It includes the credential configuration model and the SoftLayer API
// record structures the commands consume.
package models

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// DefaultEndpointURL is the public SoftLayer REST endpoint used when the
// credential file does not name one.
const DefaultEndpointURL = "https://api.softlayer.com/rest/v3.1"

// Config represents the credential file contents. The [softlayer] section is
// required; [telemetry] is optional and disabled by default.
//
// The file is INI-formatted:
//
//	[softlayer]
//	username     = SL000000
//	api_key      = 0123456789abcdef
//	endpoint_url = https://api.softlayer.com/rest/v3.1
//	timeout      = 0
type Config struct {
	SoftLayer struct {
		Username    string `ini:"username"`
		APIKey      string `ini:"api_key"`
		EndpointURL string `ini:"endpoint_url"`
		// Timeout is in seconds; empty or "0" means no client timeout,
		// matching the vendor CLI convention of leaving it unset.
		Timeout string `ini:"timeout"`
	} `ini:"softlayer"`

	Telemetry struct {
		Enabled      bool    `ini:"enabled"`
		Endpoint     string  `ini:"endpoint"`
		Insecure     bool    `ini:"insecure"`
		SamplingRate float64 `ini:"sampling_rate"`
	} `ini:"telemetry"`
}

// SetDefaults fills optional fields: the public API endpoint and a full
// trace sampling rate. Called automatically by Validate.
func (c *Config) SetDefaults() {
	if c.SoftLayer.EndpointURL == "" {
		c.SoftLayer.EndpointURL = DefaultEndpointURL
	}
	if c.Telemetry.SamplingRate == 0 {
		c.Telemetry.SamplingRate = 1.0
	}
}

// Validate checks the credential fields and returns an error describing the
// first problem found. Defaults are applied before validation.
func (c *Config) Validate() error {
	c.SetDefaults()

	if c.SoftLayer.Username == "" {
		return errors.New("softlayer username is required")
	}
	if c.SoftLayer.APIKey == "" {
		return errors.New("softlayer api_key is required")
	}

	u, err := url.Parse(c.SoftLayer.EndpointURL)
	if err != nil {
		return fmt.Errorf("invalid endpoint_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint_url scheme: %s (must be http or https)", u.Scheme)
	}

	if c.SoftLayer.Timeout != "" {
		secs, err := strconv.Atoi(c.SoftLayer.Timeout)
		if err != nil || secs < 0 {
			return fmt.Errorf("invalid timeout: %s (must be a non-negative number of seconds)", c.SoftLayer.Timeout)
		}
	}

	if c.Telemetry.Enabled && c.Telemetry.Endpoint == "" {
		return errors.New("telemetry endpoint is required when telemetry is enabled")
	}

	return nil
}

// Timeout returns the configured HTTP client timeout. Zero means no timeout;
// remote calls then block until the server answers.
func (c *Config) Timeout() time.Duration {
	if c.SoftLayer.Timeout == "" {
		return 0
	}
	secs, err := strconv.Atoi(c.SoftLayer.Timeout)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// MaskAPIKey returns a redacted form of the API key safe for logging.
func (c *Config) MaskAPIKey() string {
	key := c.SoftLayer.APIKey
	if len(key) <= 8 {
		return "********"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// IsTelemetryEnabled reports whether OpenTelemetry tracing was requested.
func (c *Config) IsTelemetryEnabled() bool {
	return c.Telemetry.Enabled
}

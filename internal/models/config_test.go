package models

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	var cfg Config
	cfg.SoftLayer.Username = "SL000000"
	cfg.SoftLayer.APIKey = "0123456789abcdef0123"
	return cfg
}

func TestConfig_SetDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.SetDefaults()
	if cfg.SoftLayer.EndpointURL != DefaultEndpointURL {
		t.Errorf("EndpointURL = %q, want %q", cfg.SoftLayer.EndpointURL, DefaultEndpointURL)
	}
	if cfg.Telemetry.SamplingRate != 1.0 {
		t.Errorf("SamplingRate = %v, want 1.0", cfg.Telemetry.SamplingRate)
	}

	cfg.SoftLayer.EndpointURL = "https://private.example.com/rest/v3.1"
	cfg.SetDefaults()
	if cfg.SoftLayer.EndpointURL != "https://private.example.com/rest/v3.1" {
		t.Error("SetDefaults must not overwrite an explicit endpoint")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "missing username",
			mutate:  func(c *Config) { c.SoftLayer.Username = "" },
			wantErr: "username is required",
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.SoftLayer.APIKey = "" },
			wantErr: "api_key is required",
		},
		{
			name:    "bad endpoint scheme",
			mutate:  func(c *Config) { c.SoftLayer.EndpointURL = "ftp://api.softlayer.com" },
			wantErr: "scheme",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.SoftLayer.Timeout = "-1" },
			wantErr: "invalid timeout",
		},
		{
			name:    "non-numeric timeout",
			mutate:  func(c *Config) { c.SoftLayer.Timeout = "later" },
			wantErr: "invalid timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() returned error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "unset means no timeout", value: "", want: 0},
		{name: "zero means no timeout", value: "0", want: 0},
		{name: "seconds", value: "30", want: 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.SoftLayer.Timeout = tt.value
			if got := cfg.Timeout(); got != tt.want {
				t.Errorf("Timeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_MaskAPIKey(t *testing.T) {
	cfg := validConfig()
	masked := cfg.MaskAPIKey()
	if masked == cfg.SoftLayer.APIKey {
		t.Error("MaskAPIKey must not return the raw key")
	}
	if !strings.Contains(masked, "...") {
		t.Errorf("MaskAPIKey() = %q, want a redacted form", masked)
	}

	cfg.SoftLayer.APIKey = "short"
	if got := cfg.MaskAPIKey(); got != "********" {
		t.Errorf("MaskAPIKey() for short key = %q, want fully masked", got)
	}
}

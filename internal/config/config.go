// Package config locates and loads the SoftLayer credential file. The first
// existing file among the candidate paths wins: a per-command file in the
// working directory, then ~/.softlayer, then /etc/softlayer.conf.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fjacquet/sl_tools/internal/logging"
	"github.com/fjacquet/sl_tools/internal/models"
	"github.com/fjacquet/sl_tools/internal/utils"
	"gopkg.in/ini.v1"
)

// Shared fallback locations, tried after the command's own file.
const (
	userConfigName   = ".softlayer"
	systemConfigPath = "/etc/softlayer.conf"
)

// Candidates returns the ordered list of paths probed for the given primary
// file name.
func Candidates(primary string) []string {
	paths := []string{primary}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, userConfigName))
	}
	return append(paths, systemConfigPath)
}

// Load reads credentials from the first existing candidate for primary and
// validates them. It returns a descriptive error when no candidate exists,
// when the file cannot be parsed, or when required keys are missing.
func Load(primary string) (*models.Config, error) {
	path, ok := utils.FirstExisting(Candidates(primary)...)
	if !ok {
		return nil, fmt.Errorf("no credential file found (looked for %s)",
			strings.Join(Candidates(primary), ", "))
	}
	return LoadFile(path)
}

// LoadFile reads and validates credentials from an explicit path.
func LoadFile(path string) (*models.Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file %s: %w", path, err)
	}

	cfg := &models.Config{}
	if err := f.Section("softlayer").MapTo(&cfg.SoftLayer); err != nil {
		return nil, fmt.Errorf("failed to parse [softlayer] section in %s: %w", path, err)
	}
	if f.HasSection("telemetry") {
		if err := f.Section("telemetry").MapTo(&cfg.Telemetry); err != nil {
			return nil, fmt.Errorf("failed to parse [telemetry] section in %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credential file %s: %w", path, err)
	}

	logging.LogDebug(fmt.Sprintf("Loaded credentials from %s (user %s, key %s)",
		path, cfg.SoftLayer.Username, cfg.MaskAPIKey()))
	return cfg, nil
}

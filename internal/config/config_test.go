package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

const validINI = `[softlayer]
username     = SL000000
api_key      = 0123456789abcdef0123
endpoint_url = https://api.softlayer.com/rest/v3.1
timeout      = 0
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "valid credentials",
			content: validINI,
		},
		{
			name: "missing username",
			content: `[softlayer]
api_key = abc123abc123abc123
`,
			wantErr: "username is required",
		},
		{
			name: "missing api key",
			content: `[softlayer]
username = SL000000
`,
			wantErr: "api_key is required",
		},
		{
			name: "bad timeout",
			content: `[softlayer]
username = SL000000
api_key  = abc123abc123abc123
timeout  = soon
`,
			wantErr: "invalid timeout",
		},
		{
			name: "telemetry enabled without endpoint",
			content: validINI + `
[telemetry]
enabled = true
`,
			wantErr: "telemetry endpoint is required",
		},
		{
			name:    "no softlayer section",
			content: "[other]\nkey = value\n",
			wantErr: "username is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".ini", tt.content)
			cfg, err := LoadFile(path)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("LoadFile expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("LoadFile error = %q, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile returned error: %v", err)
			}
			if cfg.SoftLayer.Username != "SL000000" {
				t.Errorf("Username = %q, want SL000000", cfg.SoftLayer.Username)
			}
			if cfg.Timeout() != 0 {
				t.Errorf("Timeout() = %v, want 0 (unset)", cfg.Timeout())
			}
		})
	}
}

func TestLoadFile_TelemetrySection(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "telemetry.ini", validINI+`
[telemetry]
enabled       = true
endpoint      = localhost:4317
insecure      = true
sampling_rate = 0.5
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if !cfg.IsTelemetryEnabled() {
		t.Error("telemetry should be enabled")
	}
	if cfg.Telemetry.Endpoint != "localhost:4317" {
		t.Errorf("Endpoint = %q", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.SamplingRate != 0.5 {
		t.Errorf("SamplingRate = %v, want 0.5", cfg.Telemetry.SamplingRate)
	}
}

func TestCandidates(t *testing.T) {
	candidates := Candidates("order_storage.ini")
	if candidates[0] != "order_storage.ini" {
		t.Errorf("first candidate = %q, want the primary file", candidates[0])
	}
	last := candidates[len(candidates)-1]
	if last != "/etc/softlayer.conf" {
		t.Errorf("last candidate = %q, want /etc/softlayer.conf", last)
	}
}

func TestLoad_PrimaryWinsOverFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "primary.ini", validINI)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := Load("primary.ini")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SoftLayer.Username != "SL000000" {
		t.Errorf("Username = %q", cfg.SoftLayer.Username)
	}
}

func TestLoad_NoCandidateIsDescriptive(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(cwd) }()

	// Point HOME somewhere empty so ~/.softlayer cannot exist.
	t.Setenv("HOME", dir)

	_, err = Load("does_not_exist.ini")
	if err == nil {
		t.Fatal("Load expected an error when no candidate exists")
	}
	if !strings.Contains(err.Error(), "does_not_exist.ini") {
		t.Errorf("error %q should name the probed candidates", err)
	}
}

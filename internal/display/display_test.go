package display

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fjacquet/sl_tools/internal/guests"
)

func sampleRows() []guests.Row {
	return []guests.Row{
		{
			ID:       1,
			Hostname: "web01",
			Location: guests.LocationPath{
				Datacenter: "dal10", ServerRoom: "sr01", Rack: "rk42", Slot: "sl07",
			},
			Pod:          "dal10.pod01",
			MaxCPU:       4,
			MaxMemoryMB:  8192,
			PublicSpeed:  1000,
			PrivateSpeed: 1000,
			Disks:        "Disk 1 25 GB",
			OS:           "UBUNTU_22_64",
			Migration:    "migrate",
		},
		{
			ID:           2,
			Hostname:     "db01",
			Pod:          "",
			MaxCPU:       8,
			MaxMemoryMB:  16384,
			PublicSpeed:  100,
			PrivateSpeed: 1000,
			Disks:        "Disk 1 100 GB",
			OS:           "CENTOS_7_64",
			Migration:    "",
		},
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name        string
		cols        Columns
		wantPresent []string
		wantAbsent  []string
	}{
		{
			name:        "base columns only",
			cols:        Columns{},
			wantPresent: []string{"id", "hostname", "disks", "os"},
			wantAbsent:  []string{"datacenter", "pod", "rack", "migration"},
		},
		{
			name:        "location columns",
			cols:        Columns{Location: true},
			wantPresent: []string{"datacenter", "pod", "rack"},
			wantAbsent:  []string{"migration"},
		},
		{
			name:        "migration column",
			cols:        Columns{Migration: true},
			wantPresent: []string{"migration"},
			wantAbsent:  []string{"datacenter", "pod", "rack"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := strings.Join(Header(tt.cols), "|")
			for _, want := range tt.wantPresent {
				if !strings.Contains(header, want) {
					t.Errorf("header %q missing column %q", header, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(header, absent) {
					t.Errorf("header %q should not contain %q", header, absent)
				}
			}
		})
	}
}

func TestCellsMatchHeaderWidth(t *testing.T) {
	for _, cols := range []Columns{{}, {Location: true}, {Migration: true}, {Location: true, Migration: true}} {
		header := Header(cols)
		for _, row := range sampleRows() {
			cells := Cells(row, cols)
			if len(cells) != len(header) {
				t.Errorf("cols %+v: %d cells for %d header columns", cols, len(cells), len(header))
			}
		}
	}
}

func TestRenderTable_ShowsAllRowsRegardlessOfMigration(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, sampleRows(), Columns{Migration: true})

	out := buf.String()
	for _, hostname := range []string{"web01", "db01"} {
		if !strings.Contains(out, hostname) {
			t.Errorf("table output missing %s:\n%s", hostname, out)
		}
	}
	if !strings.Contains(out, "migrate") {
		t.Errorf("table output missing migration literal:\n%s", out)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	return records
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	if err := WriteCSV(path, sampleRows(), Columns{Location: true}); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 { // header + both rows
		t.Fatalf("CSV has %d records, want 3", len(records))
	}
	if records[1][1] != "web01" || records[2][1] != "db01" {
		t.Errorf("unexpected CSV rows: %v", records[1:])
	}
}

func TestWriteCSV_MigrationFilterKeepsPendingOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	if err := WriteCSV(path, sampleRows(), Columns{Migration: true}); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 2 { // header + web01 only
		t.Fatalf("CSV has %d records, want 2 (header + migrating row)", len(records))
	}
	if records[1][1] != "web01" {
		t.Errorf("CSV row = %v, want the migrating guest only", records[1])
	}
	last := records[1][len(records[1])-1]
	if last != "migrate" {
		t.Errorf("migration cell = %q, want %q", last, "migrate")
	}
}

func TestWriteCSV_NoFilterWithoutMigrationColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.csv")
	if err := WriteCSV(path, sampleRows(), Columns{}); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}
	if got := len(readCSV(t, path)); got != 3 {
		t.Errorf("CSV has %d records, want 3 (no migration filter)", got)
	}
}

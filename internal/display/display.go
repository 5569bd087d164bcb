// Package display renders guest listing rows as an aligned text table on
// standard output and, on request, as a CSV file at a fixed path.
package display

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fjacquet/sl_tools/internal/guests"
	"github.com/olekukonko/tablewriter"
)

// CSVFileName is the fixed export path, relative to the working directory.
const CSVFileName = "output.csv"

// Columns selects the optional column groups. Location adds the
// datacenter/pod/rack columns, Migration adds the migration column.
type Columns struct {
	Location  bool
	Migration bool
}

// Header returns the column headers under the given selection.
func Header(c Columns) []string {
	header := []string{"id", "hostname"}
	if c.Location {
		header = append(header, "datacenter", "pod", "rack")
	}
	header = append(header, "cpus", "memory", "public nic", "private nic", "disks", "os")
	if c.Migration {
		header = append(header, "migration")
	}
	return header
}

// Cells returns one row's cells under the given selection, in header order.
func Cells(row guests.Row, c Columns) []string {
	cells := []string{strconv.Itoa(row.ID), row.Hostname}
	if c.Location {
		cells = append(cells, row.Location.Datacenter, row.Pod, row.Location.Rack)
	}
	cells = append(cells,
		strconv.Itoa(row.MaxCPU),
		fmt.Sprintf("%d MB", row.MaxMemoryMB),
		fmt.Sprintf("%d Mbps", row.PublicSpeed),
		fmt.Sprintf("%d Mbps", row.PrivateSpeed),
		row.Disks,
		row.OS,
	)
	if c.Migration {
		cells = append(cells, row.Migration)
	}
	return cells
}

// RenderTable writes the aligned text table. The table always shows every
// row; the migration filter applies to CSV export only.
func RenderTable(w io.Writer, rows []guests.Row, c Columns) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(Header(c))
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range rows {
		table.Append(Cells(row, c))
	}
	table.Render()
}

// WriteCSV writes the rows to path with the same column selection rules as
// the table. When the migration column is selected, only rows with a
// non-empty migration flag are exported.
func WriteCSV(path string, rows []guests.Row, c Columns) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header(c)); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if c.Migration && row.Migration == "" {
			continue
		}
		if err := w.Write(Cells(row, c)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

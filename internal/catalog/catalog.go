// Package catalog carries the static SoftLayer location knowledge the
// commands validate against: the known datacenter codes and the datacenter
// allow-list used when enumerating network pods. A datacenters.yaml file in
// the working directory overrides the built-in lists without a rebuild.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/fjacquet/sl_tools/internal/utils"
	"gopkg.in/yaml.v2"
)

// OverrideFile is probed in the working directory by Load.
const OverrideFile = "datacenters.yaml"

// Catalog lists the datacenter codes orders may target and the datacenters
// whose pods are resolved for the VM listing.
type Catalog struct {
	Datacenters    []string `yaml:"datacenters"`
	PodDatacenters []string `yaml:"pod_datacenters"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Datacenters: []string{
			"ams01", "ams03", "che01", "dal09", "dal10", "dal12", "dal13",
			"fra02", "fra04", "fra05", "hkg02", "lon02", "lon04", "lon06",
			"mel01", "mex01", "mil01", "mon01", "osa21", "par01", "sao01",
			"seo01", "sjc03", "sjc04", "sng01", "syd01", "syd04", "syd05",
			"tok02", "tok04", "tok05", "tor01", "wdc04", "wdc06", "wdc07",
		},
		PodDatacenters: []string{
			"dal10", "dal12", "dal13", "fra02", "lon02", "tok02",
			"wdc04", "wdc06", "wdc07",
		},
	}
}

// Load returns the override catalog when path exists, the built-in one
// otherwise. A present but unreadable override is an error rather than a
// silent fallback.
func Load(path string) (Catalog, error) {
	if !utils.FileExists(path) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog override %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog override %s: %w", path, err)
	}

	def := Default()
	if len(c.Datacenters) == 0 {
		c.Datacenters = def.Datacenters
	}
	if len(c.PodDatacenters) == 0 {
		c.PodDatacenters = def.PodDatacenters
	}
	return c, nil
}

// IsKnownDatacenter reports whether code is an orderable datacenter.
func (c Catalog) IsKnownDatacenter(code string) bool {
	for _, dc := range c.Datacenters {
		if dc == code {
			return true
		}
	}
	return false
}

// KnownDatacenters returns the orderable codes sorted ascending, for usage
// messages.
func (c Catalog) KnownDatacenters() []string {
	out := make([]string, len(c.Datacenters))
	copy(out, c.Datacenters)
	sort.Strings(out)
	return out
}

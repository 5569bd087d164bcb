// Package guests reshapes SoftLayer virtual guest records into the flat
// display rows the vms command prints: location path splitting, disk
// summaries, pod resolution and migration flag formatting.
package guests

import (
	"fmt"
	"strings"

	"github.com/fjacquet/sl_tools/internal/models"
)

// MigrationLiteral is printed for guests with a pending host migration.
const MigrationLiteral = "migrate"

// swapSuffix marks swap volumes in block device descriptions.
const swapSuffix = "SWAP"

// LocationPath is the dotted vendor location split into its parts:
// datacenter.server-room.rack.slot. Missing trailing parts stay empty.
type LocationPath struct {
	Datacenter string
	ServerRoom string
	Rack       string
	Slot       string
}

// ParseLocationPath splits "dc1.room2.rack3.slot4" into its components.
func ParseLocationPath(path string) LocationPath {
	var lp LocationPath
	if path == "" {
		return lp
	}
	parts := strings.Split(path, ".")
	fields := []*string{&lp.Datacenter, &lp.ServerRoom, &lp.Rack, &lp.Slot}
	for i := 0; i < len(parts) && i < len(fields); i++ {
		*fields[i] = parts[i]
	}
	return lp
}

// DiskSummary enumerates the non-swap block devices as
// "Disk 1 100 GB, Disk 2 250 GB". Swap volumes (description ending in
// "SWAP") are skipped and do not consume a disk index.
func DiskSummary(devices []models.BlockDevice) string {
	var parts []string
	n := 0
	for _, dev := range devices {
		if dev.DiskImage == nil {
			continue
		}
		if strings.HasSuffix(dev.DiskImage.Description, swapSuffix) {
			continue
		}
		n++
		parts = append(parts, fmt.Sprintf("Disk %d %d %s", n, dev.DiskImage.Capacity, dev.DiskImage.Units))
	}
	return strings.Join(parts, ", ")
}

// MigrationFlag formats the pending-migration boolean as the literal
// "migrate" or the empty string.
func MigrationFlag(pending bool) string {
	if pending {
		return MigrationLiteral
	}
	return ""
}

// PodIndex maps backend router hostnames to pod names.
type PodIndex map[string]string

// BuildPodIndex builds the router-to-pod lookup from the pod listing.
func BuildPodIndex(pods []models.NetworkPod) PodIndex {
	index := make(PodIndex, len(pods))
	for _, pod := range pods {
		if pod.BackendRouterName != "" {
			index[pod.BackendRouterName] = pod.Name
		}
	}
	return index
}

// Resolve returns the pod name for a guest's backend router, or empty when
// the router is unknown.
func (p PodIndex) Resolve(guest models.VirtualGuest) string {
	nc := guest.PrimaryBackendNetworkComponent
	if nc == nil || nc.Router == nil {
		return ""
	}
	return p[nc.Router.Hostname]
}

// Row is one display row of the guest listing.
type Row struct {
	ID           int
	Hostname     string
	Location     LocationPath
	Pod          string
	MaxCPU       int
	MaxMemoryMB  int
	PublicSpeed  int
	PrivateSpeed int
	Disks        string
	OS           string
	Migration    string
}

// BuildRow flattens one guest record.
func BuildRow(guest models.VirtualGuest, pods PodIndex) Row {
	row := Row{
		ID:        guest.ID,
		Hostname:  guest.Hostname,
		Pod:       pods.Resolve(guest),
		MaxCPU:    guest.MaxCPU,
		Disks:     DiskSummary(guest.BlockDevices),
		OS:        guest.OperatingSystemReferenceCode,
		Migration: MigrationFlag(guest.PendingMigrationFlag),
	}
	row.MaxMemoryMB = guest.MaxMemory
	if guest.Location != nil {
		row.Location = ParseLocationPath(guest.Location.PathString)
	}
	if guest.PrimaryNetworkComponent != nil {
		row.PublicSpeed = guest.PrimaryNetworkComponent.MaxSpeed
	}
	if guest.PrimaryBackendNetworkComponent != nil {
		row.PrivateSpeed = guest.PrimaryBackendNetworkComponent.MaxSpeed
	}
	return row
}

// BuildRows flattens a guest listing in order.
func BuildRows(list []models.VirtualGuest, pods PodIndex) []Row {
	rows := make([]Row, 0, len(list))
	for _, guest := range list {
		rows = append(rows, BuildRow(guest, pods))
	}
	return rows
}

// Package ordering implements the storage-device order flow: argument
// validation, price selection, payload building and the verify/confirm/place
// sequence against the SoftLayer API.
package ordering

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fjacquet/sl_tools/internal/catalog"
	"github.com/fjacquet/sl_tools/internal/models"
	"github.com/fjacquet/sl_tools/internal/slapi"
)

// Request is the order built from the positional arguments. It is
// constructed once and sent once.
type Request struct {
	Type        string
	CapacityGB  int
	Datacenter  string
	Description string
}

// ValidationError marks an argument that failed local validation. No remote
// call is made once one of these is raised; the command prints usage and
// exits 1.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// LookupError marks a remote lookup that did not return exactly one match
// where one was required. The command reports it and exits 1 without retry.
type LookupError struct {
	What    string
	Matches int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup returned %d matches, expected exactly 1", e.What, e.Matches)
}

// OrderTypes returns the accepted TYPE values.
func OrderTypes() []string {
	return []string{models.OrderTypePortableStorage, models.OrderTypeNAS}
}

// ParseCapacity validates that s is a canonical non-negative integer
// literal: digits only, no sign, no leading zeros (a lone "0" is fine).
func ParseCapacity(s string) (int, error) {
	if s == "" {
		return 0, &ValidationError{Msg: "CAPACITY_IN_GB must be a non-negative integer"}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &ValidationError{Msg: fmt.Sprintf("CAPACITY_IN_GB must be a non-negative integer, got %q", s)}
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, &ValidationError{Msg: fmt.Sprintf("CAPACITY_IN_GB must be a canonical integer, got %q", s)}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Msg: fmt.Sprintf("CAPACITY_IN_GB must be a non-negative integer, got %q", s)}
	}
	return n, nil
}

// ParseArgs validates the four positional arguments against the datacenter
// catalog and builds the request. Error messages name the valid value sets.
func ParseArgs(args []string, cat catalog.Catalog) (Request, error) {
	if len(args) != 4 {
		return Request{}, &ValidationError{Msg: "expected TYPE CAPACITY_IN_GB DATA_CENTER DESCRIPTION"}
	}

	orderType := args[0]
	if orderType != models.OrderTypePortableStorage && orderType != models.OrderTypeNAS {
		return Request{}, &ValidationError{
			Msg: fmt.Sprintf("invalid TYPE %q, valid values: %s", orderType, strings.Join(OrderTypes(), ", ")),
		}
	}

	capacity, err := ParseCapacity(args[1])
	if err != nil {
		return Request{}, err
	}

	dc := args[2]
	if !cat.IsKnownDatacenter(dc) {
		return Request{}, &ValidationError{
			Msg: fmt.Sprintf("invalid DATA_CENTER %q, valid values: %s", dc, strings.Join(cat.KnownDatacenters(), ", ")),
		}
	}

	return Request{
		Type:        orderType,
		CapacityGB:  capacity,
		Datacenter:  dc,
		Description: args[3],
	}, nil
}

// availableInDatacenter reports whether a price applies to the datacenter:
// standard pricing (no location group) or membership in one of the
// datacenter's price-location groups.
func availableInDatacenter(price models.ItemPrice, dc models.Location) bool {
	if price.LocationGroupID == 0 {
		return true
	}
	for _, g := range dc.PriceGroups {
		if g.ID == price.LocationGroupID {
			return true
		}
	}
	return false
}

// SelectPrices filters the package prices down to those matching the
// requested capacity and applying to the datacenter. An empty result is a
// valid outcome, not an error.
func SelectPrices(prices []models.ItemPrice, capacityGB int, dc models.Location) []models.ItemPrice {
	var selected []models.ItemPrice
	for _, price := range prices {
		capGB, ok := price.CapacityGB()
		if !ok || capGB != capacityGB {
			continue
		}
		if availableInDatacenter(price, dc) {
			selected = append(selected, price)
		}
	}
	return selected
}

// AvailableCapacities returns the distinct capacities orderable in the
// datacenter, sorted ascending. Used as the fallback listing when no price
// matches the requested capacity.
func AvailableCapacities(prices []models.ItemPrice, dc models.Location) []int {
	seen := map[int]bool{}
	for _, price := range prices {
		capGB, ok := price.CapacityGB()
		if !ok || !availableInDatacenter(price, dc) {
			continue
		}
		seen[capGB] = true
	}

	capacities := make([]int, 0, len(seen))
	for capGB := range seen {
		capacities = append(capacities, capGB)
	}
	sort.Ints(capacities)
	return capacities
}

// BuildOrder assembles the order container. The shape is an explicit
// two-way switch on the already-validated type: portable storage is a
// disk-image order carrying the description as diskDescription, NAS is a
// network-storage order carrying it as message.
func BuildOrder(req Request, dc models.Location, pkg models.ProductPackage, prices []models.ItemPrice) models.ProductOrder {
	order := models.ProductOrder{
		PackageID: pkg.ID,
		Location:  strconv.Itoa(dc.ID),
		Quantity:  1,
		Prices:    prices,
	}

	switch req.Type {
	case models.OrderTypePortableStorage:
		order.ComplexType = models.ComplexTypeVirtualDiskImageOrder
		order.DiskDescription = req.Description
	case models.OrderTypeNAS:
		order.ComplexType = models.ComplexTypeNasOrder
		order.Message = req.Description
	}
	return order
}

// Options carries the interactive pieces of the flow so tests can fake them.
type Options struct {
	// SkipConfirm suppresses the interactive prompt (--yes).
	SkipConfirm bool

	// Confirm asks the operator to approve the order. Required unless
	// SkipConfirm is set.
	Confirm func(Request) (bool, error)

	// Out receives informational output (fallback listings, diagnostics,
	// the success indicator).
	Out io.Writer
}

// Run executes the order flow after argument validation: resolve the
// datacenter and package (exactly one match each), select prices, verify,
// confirm, place. Lookup-cardinality failures return a *LookupError; any
// other non-nil error is a remote failure the command reports without an
// exit-code mapping.
func Run(ctx context.Context, client slapi.Client, req Request, opts Options) error {
	datacenters, err := client.GetDatacenters(ctx, req.Datacenter)
	if err != nil {
		return err
	}
	if len(datacenters) != 1 {
		return &LookupError{What: "datacenter " + req.Datacenter, Matches: len(datacenters)}
	}
	dc := datacenters[0]

	packages, err := client.GetActivePackagesByType(ctx, req.Type)
	if err != nil {
		return err
	}
	if len(packages) != 1 {
		return &LookupError{What: "package " + req.Type, Matches: len(packages)}
	}
	pkg := packages[0]

	prices, err := client.GetItemPrices(ctx, pkg.ID)
	if err != nil {
		return err
	}
	selected := SelectPrices(prices, req.CapacityGB, dc)
	if len(selected) == 0 {
		capacities := AvailableCapacities(prices, dc)
		fmt.Fprintf(opts.Out, "No %d GB price found for %s in %s.\n", req.CapacityGB, req.Type, req.Datacenter)
		fmt.Fprintf(opts.Out, "Available capacities (GB): %s\n", joinInts(capacities))
	}

	order := BuildOrder(req, dc, pkg, selected)

	verification, raw, err := client.VerifyOrder(ctx, order)
	if err != nil {
		return err
	}
	if !verification.IsValid() {
		fmt.Fprintf(opts.Out, "Order verification failed, not placing the order.\n%s\n", string(raw))
		return nil
	}

	if !opts.SkipConfirm {
		ok, err := opts.Confirm(req)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(opts.Out, "Order cancelled.")
			return nil
		}
	}

	receipt, err := client.PlaceOrder(ctx, order)
	if err != nil {
		return err
	}
	fmt.Fprintf(opts.Out, "✓ Order placed (order id %d)\n", receipt.OrderID)
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

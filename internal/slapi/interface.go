// Package slapi provides the HTTP client facade for the SoftLayer REST API.
// It handles authentication, object filters and object masks, and maps the
// named service calls the commands need onto REST requests.
package slapi

import (
	"context"

	"github.com/fjacquet/sl_tools/internal/models"
)

// Client defines the interface for the SoftLayer API calls the commands
// perform. This interface abstracts the HTTP implementation and enables
// fakes in unit tests without server connectivity.
//
// The primary implementation is RestClient, which uses Resty for HTTP
// communication.
type Client interface {
	// GetDatacenters returns the datacenter records matching the short
	// location code (e.g. "dal13"). Callers enforce their own cardinality
	// expectations on the result.
	GetDatacenters(ctx context.Context, name string) ([]models.Location, error)

	// GetActivePackagesByType returns the active product packages whose
	// type key name matches typeKeyName.
	GetActivePackagesByType(ctx context.Context, typeKeyName string) ([]models.ProductPackage, error)

	// GetItemPrices returns the item prices of a package, with the item
	// capacity and location-group association included.
	GetItemPrices(ctx context.Context, packageID int) ([]models.ItemPrice, error)

	// VerifyOrder submits the order container for verification without
	// placing it. The raw response body is returned alongside the parsed
	// verification so callers can surface the vendor diagnostic verbatim.
	VerifyOrder(ctx context.Context, order models.ProductOrder) (models.OrderVerification, []byte, error)

	// PlaceOrder places the order and returns the vendor receipt.
	PlaceOrder(ctx context.Context, order models.ProductOrder) (models.OrderReceipt, error)

	// GetVirtualGuests lists the account's virtual guests with the wide
	// listing mask applied. A non-empty hostnameQuery restricts the result
	// to hostnames containing the substring, filtered server-side.
	GetVirtualGuests(ctx context.Context, hostnameQuery string) ([]models.VirtualGuest, error)

	// GetNetworkPods lists the network pods of the given datacenters.
	GetNetworkPods(ctx context.Context, datacenters []string) ([]models.NetworkPod, error)
}

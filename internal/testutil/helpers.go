// Package testutil provides shared test utilities: a fluent builder for
// mock SoftLayer API servers and credential fixtures. It keeps endpoint
// setup out of the individual test files.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/fjacquet/sl_tools/internal/models"
)

// REST paths served by the mock API.
const (
	PathDatacenters = "/SoftLayer_Location_Datacenter/getDatacenters.json"
	PathPackages    = "/SoftLayer_Product_Package/getAllObjects.json"
	PathVerifyOrder = "/SoftLayer_Product_Order/verifyOrder.json"
	PathPlaceOrder  = "/SoftLayer_Product_Order/placeOrder.json"
	PathGuests      = "/SoftLayer_Account/getVirtualGuests.json"
	PathPods        = "/SoftLayer_Network_Pod/getAllObjects.json"
)

// ItemPricesPath returns the item-price path for a package id.
func ItemPricesPath(packageID int) string {
	return fmt.Sprintf("/SoftLayer_Product_Package/%d/getItemPrices.json", packageID)
}

func writeJSONResponse(w http.ResponseWriter, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

// MockServerBuilder provides a fluent interface for creating mock SoftLayer
// API servers.
//
// Example usage:
//
//	server := testutil.NewMockServer().
//	    WithDatacenters(dal13).
//	    WithPackages(portablePkg).
//	    Build()
//	defer server.Close()
type MockServerBuilder struct {
	handlers map[string]http.HandlerFunc
}

// NewMockServer creates a new MockServerBuilder.
func NewMockServer() *MockServerBuilder {
	return &MockServerBuilder{handlers: map[string]http.HandlerFunc{}}
}

// WithDatacenters serves the datacenter lookup.
func (b *MockServerBuilder) WithDatacenters(datacenters ...models.Location) *MockServerBuilder {
	b.handlers[PathDatacenters] = func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, datacenters)
	}
	return b
}

// WithPackages serves the package lookup.
func (b *MockServerBuilder) WithPackages(packages ...models.ProductPackage) *MockServerBuilder {
	b.handlers[PathPackages] = func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, packages)
	}
	return b
}

// WithItemPrices serves the price listing of a package.
func (b *MockServerBuilder) WithItemPrices(packageID int, prices []models.ItemPrice) *MockServerBuilder {
	b.handlers[ItemPricesPath(packageID)] = func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, prices)
	}
	return b
}

// WithVerification serves verifyOrder with the given container.
func (b *MockServerBuilder) WithVerification(verification models.OrderVerification) *MockServerBuilder {
	b.handlers[PathVerifyOrder] = func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, verification)
	}
	return b
}

// WithReceipt serves placeOrder with the given receipt.
func (b *MockServerBuilder) WithReceipt(receipt models.OrderReceipt) *MockServerBuilder {
	b.handlers[PathPlaceOrder] = func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, receipt)
	}
	return b
}

// WithGuests serves the virtual guest listing.
func (b *MockServerBuilder) WithGuests(guests ...models.VirtualGuest) *MockServerBuilder {
	b.handlers[PathGuests] = func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, guests)
	}
	return b
}

// WithPods serves the network pod listing.
func (b *MockServerBuilder) WithPods(pods ...models.NetworkPod) *MockServerBuilder {
	b.handlers[PathPods] = func(w http.ResponseWriter, r *http.Request) {
		writeJSONResponse(w, pods)
	}
	return b
}

// WithCustomEndpoint adds a custom handler for the specified path.
func (b *MockServerBuilder) WithCustomEndpoint(path string, handler http.HandlerFunc) *MockServerBuilder {
	b.handlers[path] = handler
	return b
}

// WithError serves the given path with a SoftLayer error document.
func (b *MockServerBuilder) WithError(path string, status int, message, code string) *MockServerBuilder {
	b.handlers[path] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
	}
	return b
}

// Build creates the httptest server. Unhandled paths return 404 with an
// empty JSON body so accidental calls fail loudly in tests.
func (b *MockServerBuilder) Build() *httptest.Server {
	mux := http.NewServeMux()
	for path, handler := range b.handlers {
		mux.HandleFunc(path, handler)
	}
	if _, exists := b.handlers["/"]; !exists {
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "unhandled path " + r.URL.Path,
				"code":  "SoftLayer_Exception_NotFound",
			})
		})
	}
	return httptest.NewServer(mux)
}

// TestConfig returns a credential config pointed at a mock server endpoint.
func TestConfig(endpoint string) models.Config {
	var cfg models.Config
	cfg.SoftLayer.Username = "SL000000"
	cfg.SoftLayer.APIKey = "test-api-key-0123456789"
	cfg.SoftLayer.EndpointURL = endpoint
	cfg.SetDefaults()
	return cfg
}

package slapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fjacquet/sl_tools/internal/models"
	"github.com/fjacquet/sl_tools/internal/telemetry"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	contentType = "application/json"

	headerAccept = "Accept"

	queryParamFilter = "objectFilter"
	queryParamMask   = "objectMask"

	tracerName = "github.com/fjacquet/sl_tools/internal/slapi"
)

// REST paths for the SoftLayer services the commands call.
const (
	pathDatacenters = "/SoftLayer_Location_Datacenter/getDatacenters.json"
	pathPackages    = "/SoftLayer_Product_Package/getAllObjects.json"
	pathVerifyOrder = "/SoftLayer_Product_Order/verifyOrder.json"
	pathPlaceOrder  = "/SoftLayer_Product_Order/placeOrder.json"
	pathGuests      = "/SoftLayer_Account/getVirtualGuests.json"
	pathPods        = "/SoftLayer_Network_Pod/getAllObjects.json"
)

// Object masks shaping the responses. The guest mask is deliberately wide:
// one listing call carries everything the transformer needs.
const (
	maskDatacenter = "mask[id,name,longName,priceGroups[id,name]]"
	maskPackage    = "mask[id,keyName,name,isActive,type[keyName]]"
	maskItemPrice  = "mask[id,locationGroupId,item[id,capacity,units,description]]"
	maskGuest      = "mask[id,globalIdentifier,hostname,fullyQualifiedDomainName," +
		"maxCpu,maxMemory,operatingSystemReferenceCode,pendingMigrationFlag," +
		"location[pathString],primaryNetworkComponent[maxSpeed]," +
		"primaryBackendNetworkComponent[maxSpeed,router[hostname]]," +
		"blockDevices[device,diskImage[capacity,units,description]]]"
	maskPod = "mask[name,datacenterName,backendRouterName,frontendRouterName]"
)

// apiError is the error document SoftLayer returns with non-2xx statuses.
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ClientOption configures optional RestClient settings.
type ClientOption func(*clientOptions)

type clientOptions struct {
	tracerProvider trace.TracerProvider
}

// WithTracerProvider sets the TracerProvider for distributed tracing. When
// absent, API calls run untraced with no overhead.
func WithTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(o *clientOptions) {
		o.tracerProvider = tp
	}
}

// RestClient is the resty-backed Client implementation. Authentication is
// HTTP basic with the account username and API key. Calls are single-attempt
// by design: no retries, and no timeout unless the credential file sets one.
type RestClient struct {
	client *resty.Client
	cfg    models.Config
	tracer trace.Tracer
}

var _ Client = (*RestClient)(nil)

// NewRestClient creates a SoftLayer API client from the loaded credentials.
func NewRestClient(cfg models.Config, opts ...ClientOption) *RestClient {
	var options clientOptions
	for _, opt := range opts {
		opt(&options)
	}

	client := resty.New().
		SetBaseURL(cfg.SoftLayer.EndpointURL).
		SetBasicAuth(cfg.SoftLayer.Username, cfg.SoftLayer.APIKey).
		SetTimeout(cfg.Timeout()).
		SetHeader(headerAccept, contentType)

	c := &RestClient{client: client, cfg: cfg}
	if options.tracerProvider != nil {
		c.tracer = options.tracerProvider.Tracer(tracerName)
	}
	return c
}

// createSpan starts a client span for one API call. Returns the original
// context and a nil span when tracing is disabled.
func (c *RestClient) createSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	if c.tracer == nil {
		return ctx, nil
	}
	return c.tracer.Start(ctx, operation, trace.WithSpanKind(trace.SpanKindClient))
}

// endSpan records the outcome on the span, if any.
func endSpan(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if span == nil {
		return
	}
	span.SetAttributes(attrs...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// doGet issues a GET with the given filter and mask and unmarshals the JSON
// response into target.
func (c *RestClient) doGet(ctx context.Context, path string, filter ObjectFilter, mask string, target interface{}) error {
	req := c.client.R().SetContext(ctx)
	if mask != "" {
		req.SetQueryParam(queryParamMask, mask)
	}
	if filter != nil {
		encoded, err := filter.Encode()
		if err != nil {
			return err
		}
		req.SetQueryParam(queryParamFilter, encoded)
	}

	log.Debugf("GET %s", path)
	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	return decodeResponse(resp, path, target)
}

// doPost issues a POST with the given body and unmarshals the JSON response
// into target. The raw body is returned for diagnostics.
func (c *RestClient) doPost(ctx context.Context, path string, body, target interface{}) ([]byte, error) {
	log.Debugf("POST %s", path)
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	return resp.Body(), decodeResponse(resp, path, target)
}

// decodeResponse maps vendor error documents to errors and unmarshals
// successful bodies.
func decodeResponse(resp *resty.Response, path string, target interface{}) error {
	if resp.IsError() {
		var apiErr apiError
		if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s returned %s: %s (%s)", path, resp.Status(), apiErr.Error, apiErr.Code)
		}
		return fmt.Errorf("%s returned %s", path, resp.Status())
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("failed to unmarshal response from %s: %w", path, err)
	}
	return nil
}

// GetDatacenters implements Client.
func (c *RestClient) GetDatacenters(ctx context.Context, name string) ([]models.Location, error) {
	ctx, span := c.createSpan(ctx, "GetDatacenters")

	var datacenters []models.Location
	err := c.doGet(ctx, pathDatacenters, FilterEq(name, "name"), maskDatacenter, &datacenters)

	endSpan(span, err,
		attribute.String(telemetry.AttrSLService, "SoftLayer_Location_Datacenter"),
		attribute.String(telemetry.AttrSLDatacenter, name),
	)
	return datacenters, err
}

// GetActivePackagesByType implements Client.
func (c *RestClient) GetActivePackagesByType(ctx context.Context, typeKeyName string) ([]models.ProductPackage, error) {
	ctx, span := c.createSpan(ctx, "GetActivePackagesByType")

	filter := Merge(
		FilterEq(typeKeyName, "type", "keyName"),
		FilterEq(1, "isActive"),
	)
	var packages []models.ProductPackage
	err := c.doGet(ctx, pathPackages, filter, maskPackage, &packages)

	endSpan(span, err,
		attribute.String(telemetry.AttrSLService, "SoftLayer_Product_Package"),
		attribute.String(telemetry.AttrSLOrderType, typeKeyName),
	)
	return packages, err
}

// GetItemPrices implements Client.
func (c *RestClient) GetItemPrices(ctx context.Context, packageID int) ([]models.ItemPrice, error) {
	ctx, span := c.createSpan(ctx, "GetItemPrices")

	path := fmt.Sprintf("/SoftLayer_Product_Package/%d/getItemPrices.json", packageID)
	var prices []models.ItemPrice
	err := c.doGet(ctx, path, nil, maskItemPrice, &prices)

	endSpan(span, err,
		attribute.String(telemetry.AttrSLService, "SoftLayer_Product_Package"),
		attribute.Int(telemetry.AttrSLPackageID, packageID),
	)
	return prices, err
}

// VerifyOrder implements Client.
func (c *RestClient) VerifyOrder(ctx context.Context, order models.ProductOrder) (models.OrderVerification, []byte, error) {
	ctx, span := c.createSpan(ctx, "VerifyOrder")

	var verification models.OrderVerification
	body := models.ProductOrderParameters{Parameters: []models.ProductOrder{order}}
	raw, err := c.doPost(ctx, pathVerifyOrder, body, &verification)

	endSpan(span, err,
		attribute.String(telemetry.AttrSLService, "SoftLayer_Product_Order"),
		attribute.String(telemetry.AttrSLMethod, "verifyOrder"),
	)
	return verification, raw, err
}

// PlaceOrder implements Client.
func (c *RestClient) PlaceOrder(ctx context.Context, order models.ProductOrder) (models.OrderReceipt, error) {
	ctx, span := c.createSpan(ctx, "PlaceOrder")

	var receipt models.OrderReceipt
	body := models.ProductOrderParameters{Parameters: []models.ProductOrder{order}}
	_, err := c.doPost(ctx, pathPlaceOrder, body, &receipt)

	endSpan(span, err,
		attribute.String(telemetry.AttrSLService, "SoftLayer_Product_Order"),
		attribute.String(telemetry.AttrSLMethod, "placeOrder"),
	)
	return receipt, err
}

// GetVirtualGuests implements Client.
func (c *RestClient) GetVirtualGuests(ctx context.Context, hostnameQuery string) ([]models.VirtualGuest, error) {
	ctx, span := c.createSpan(ctx, "GetVirtualGuests")

	var filter ObjectFilter
	if hostnameQuery != "" {
		filter = FilterContains(hostnameQuery, "virtualGuests", "hostname")
	}
	var guests []models.VirtualGuest
	err := c.doGet(ctx, pathGuests, filter, maskGuest, &guests)

	endSpan(span, err,
		attribute.String(telemetry.AttrSLService, "SoftLayer_Account"),
		attribute.Int(telemetry.AttrSLGuestCount, len(guests)),
	)
	return guests, err
}

// GetNetworkPods implements Client.
func (c *RestClient) GetNetworkPods(ctx context.Context, datacenters []string) ([]models.NetworkPod, error) {
	ctx, span := c.createSpan(ctx, "GetNetworkPods")

	var pods []models.NetworkPod
	err := c.doGet(ctx, pathPods, FilterIn(datacenters, "datacenterName"), maskPod, &pods)

	endSpan(span, err,
		attribute.String(telemetry.AttrSLService, "SoftLayer_Network_Pod"),
		attribute.Int(telemetry.AttrSLPodCount, len(pods)),
	)
	return pods, err
}

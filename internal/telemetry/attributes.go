package telemetry

// HTTP semantic convention attributes
const (
	AttrHTTPMethod     = "http.method"
	AttrHTTPURL        = "http.url"
	AttrHTTPStatusCode = "http.status_code"
)

// SoftLayer-specific attributes
const (
	AttrSLService    = "softlayer.service"
	AttrSLMethod     = "softlayer.method"
	AttrSLDatacenter = "softlayer.datacenter"
	AttrSLPackageID  = "softlayer.package_id"
	AttrSLGuestCount = "softlayer.guest_count"
	AttrSLPodCount   = "softlayer.pod_count"
	AttrSLOrderType  = "softlayer.order_type"
)

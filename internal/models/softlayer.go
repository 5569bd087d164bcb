package models

import "strconv"

// Order types accepted by the order command. TYPE is validated against this
// set before any remote call is made.
const (
	OrderTypePortableStorage = "PORTABLE_STORAGE"
	OrderTypeNAS             = "NETWORK_ATTACHED_STORAGE"
)

// Product-order container complex types. The portable-storage order is a
// disk-image order; the NAS order is a network-storage order.
const (
	ComplexTypeVirtualDiskImageOrder = "SoftLayer_Container_Product_Order_Virtual_Disk_Image"
	ComplexTypeNasOrder              = "SoftLayer_Container_Product_Order_Network_Storage_Nas"
)

// Location is a SoftLayer_Location_Datacenter record.
type Location struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	LongName    string          `json:"longName,omitempty"`
	PriceGroups []LocationGroup `json:"priceGroups,omitempty"`
}

// LocationGroup is a SoftLayer_Location_Group record. Item prices reference
// these groups for region-specific pricing.
type LocationGroup struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// ProductPackage is a SoftLayer_Product_Package record.
type ProductPackage struct {
	ID       int                 `json:"id"`
	KeyName  string              `json:"keyName"`
	Name     string              `json:"name,omitempty"`
	IsActive int                 `json:"isActive,omitempty"`
	Type     *ProductPackageType `json:"type,omitempty"`
}

// ProductPackageType carries the package type key name used for filtering.
type ProductPackageType struct {
	KeyName string `json:"keyName"`
}

// ItemPrice is a SoftLayer_Product_Item_Price record. LocationGroupID is
// zero for standard (location-neutral) pricing.
type ItemPrice struct {
	ID              int          `json:"id"`
	LocationGroupID int          `json:"locationGroupId,omitempty"`
	Item            *ProductItem `json:"item,omitempty"`
}

// ProductItem is the item a price points at. Capacity is transported as a
// decimal string by the API.
type ProductItem struct {
	ID          int    `json:"id,omitempty"`
	Capacity    string `json:"capacity,omitempty"`
	Units       string `json:"units,omitempty"`
	Description string `json:"description,omitempty"`
}

// CapacityGB parses the item capacity as whole gigabytes. The second return
// is false when the item carries no parseable capacity.
func (p ItemPrice) CapacityGB() (int, bool) {
	if p.Item == nil || p.Item.Capacity == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(p.Item.Capacity, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// ProductOrder is the SoftLayer_Container_Product_Order payload sent to
// verifyOrder and placeOrder. DiskDescription is set on portable-storage
// orders only; Message on NAS orders only.
type ProductOrder struct {
	ComplexType     string      `json:"complexType"`
	PackageID       int         `json:"packageId"`
	Location        string      `json:"location,omitempty"`
	Quantity        int         `json:"quantity,omitempty"`
	Prices          []ItemPrice `json:"prices,omitempty"`
	DiskDescription string      `json:"diskDescription,omitempty"`
	Message         string      `json:"message,omitempty"`
}

// ProductOrderParameters wraps an order container in the parameter envelope
// the REST endpoints expect.
type ProductOrderParameters struct {
	Parameters []ProductOrder `json:"parameters"`
}

// OrderReceipt is the SoftLayer_Container_Product_Order_Receipt returned by
// placeOrder.
type OrderReceipt struct {
	OrderID int `json:"orderId"`
}

// OrderVerification is the container echoed back by verifyOrder. A
// verification that did not resolve to a priced order is treated as invalid.
type OrderVerification struct {
	ComplexType string      `json:"complexType,omitempty"`
	PackageID   int         `json:"packageId,omitempty"`
	Location    string      `json:"location,omitempty"`
	Prices      []ItemPrice `json:"prices,omitempty"`
}

// IsValid reports whether the verification resolved the order against the
// catalog. The remote side strips prices it could not match.
func (v OrderVerification) IsValid() bool {
	return v.PackageID != 0 && len(v.Prices) > 0
}

// VirtualGuest is a SoftLayer_Virtual_Guest record shaped by the wide list
// mask: identity, location path, network components, block devices, OS code
// and the pending-migration flag.
type VirtualGuest struct {
	ID                             int               `json:"id"`
	GlobalIdentifier               string            `json:"globalIdentifier,omitempty"`
	Hostname                       string            `json:"hostname"`
	FullyQualifiedDomainName       string            `json:"fullyQualifiedDomainName,omitempty"`
	MaxCPU                         int               `json:"maxCpu"`
	MaxMemory                      int               `json:"maxMemory"`
	OperatingSystemReferenceCode   string            `json:"operatingSystemReferenceCode,omitempty"`
	PendingMigrationFlag           bool              `json:"pendingMigrationFlag"`
	Location                       *GuestLocation    `json:"location,omitempty"`
	PrimaryNetworkComponent        *NetworkComponent `json:"primaryNetworkComponent,omitempty"`
	PrimaryBackendNetworkComponent *NetworkComponent `json:"primaryBackendNetworkComponent,omitempty"`
	BlockDevices                   []BlockDevice     `json:"blockDevices,omitempty"`
}

// GuestLocation carries the dotted location path, e.g.
// "dal10.sr01.rk123.sl02".
type GuestLocation struct {
	PathString string `json:"pathString"`
}

// NetworkComponent is a guest NIC; the backend component references the
// backend router the guest hangs off.
type NetworkComponent struct {
	MaxSpeed int     `json:"maxSpeed"`
	Router   *Router `json:"router,omitempty"`
}

// Router identifies a backend or frontend router by hostname.
type Router struct {
	Hostname string `json:"hostname"`
}

// BlockDevice is a guest disk attachment.
type BlockDevice struct {
	Device    string     `json:"device,omitempty"`
	DiskImage *DiskImage `json:"diskImage,omitempty"`
}

// DiskImage describes the disk behind a block device. Swap volumes carry a
// description ending in "SWAP".
type DiskImage struct {
	Capacity    int    `json:"capacity"`
	Units       string `json:"units,omitempty"`
	Description string `json:"description,omitempty"`
}

// NetworkPod is a SoftLayer_Network_Pod record mapping backend routers to
// pod names within a datacenter.
type NetworkPod struct {
	Name               string `json:"name"`
	DatacenterName     string `json:"datacenterName"`
	BackendRouterName  string `json:"backendRouterName"`
	FrontendRouterName string `json:"frontendRouterName,omitempty"`
}

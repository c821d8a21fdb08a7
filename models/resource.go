package models

// ResourceRatios is the requested proportional allocation of each resource
// class for a node, in percent of the corresponding limit. Every field is
// independently optional; a nil field means "not requested", which is
// distinct from an explicit 0. No sum-to-100 rule applies: a node may
// under- or over-subscribe, and enforcing a global budget is the deployment
// planner's policy, not this layer's.
//
// Example JSON representation:
//
//	{
//	  "cpu": 50,
//	  "ram": 25.5,
//	  "storage": 30
//	}
type ResourceRatios struct {
	// CPU is the requested CPU ratio in percent
	CPU *float64 `json:"cpu,omitempty"`

	// RAM is the requested memory ratio in percent
	RAM *float64 `json:"ram,omitempty"`

	// Storage is the requested storage ratio in percent
	Storage *float64 `json:"storage,omitempty"`

	// State is the requested size of the state partition in percent of its
	// capacity
	State *float64 `json:"state,omitempty"`
}

// DeviceInfo describes a host device a node can grant to running services.
// Its own constraint rules belong to the node agent that owns the device
// inventory; this layer carries it as an opaque validated sub-object.
type DeviceInfo struct {
	// Name of the device (e.g. camera0, mic0)
	Name string `json:"name"`

	// SharedCount is how many service instances may hold the device at once;
	// 0 means unlimited
	SharedCount int `json:"sharedCount,omitempty"`

	// Groups are the system groups granting access to the device
	Groups []string `json:"groups,omitempty"`

	// HostDevices are the host device paths backing this device
	HostDevices []string `json:"hostDevices,omitempty"`
}

// FileSystemMount describes a filesystem mount made available to services.
type FileSystemMount struct {
	// Destination is the mount point inside the service
	Destination string `json:"destination"`

	// Type is the filesystem type (e.g. bind, proc, tmpfs)
	Type string `json:"type,omitempty"`

	// Source is the mount source on the host
	Source string `json:"source,omitempty"`

	// Options are the mount options
	Options []string `json:"options,omitempty"`
}

// HostRecord is a hostname-to-address entry injected into services.
type HostRecord struct {
	// IP address of the host entry
	IP string `json:"ip"`

	// Hostname mapped to the address
	Hostname string `json:"hostname"`
}

// ResourceInfo is a named grantable capability bundle: the mounts,
// environment variables, host records, and group memberships a service
// receives when it requests the resource by name. Only the name is
// required; every list defaults to "no entries" when absent, so a resource
// with no mounts is legal. Uniqueness of names within a node's resource
// list is enforced by the consumer, not here.
//
// Example JSON representation:
//
//	{
//	  "name": "bluetooth",
//	  "groups": ["bluetooth"],
//	  "envs": ["BT_STACK=bluez"]
//	}
type ResourceInfo struct {
	// Name of the resource (required)
	Name string `json:"name" validate:"required,max=256"`

	// Groups are the system group names granted with the resource
	Groups []string `json:"groups,omitempty"`

	// Mounts are the filesystem mounts granted with the resource
	Mounts []FileSystemMount `json:"mounts,omitempty" validate:"omitempty,dive"`

	// Envs are the environment variables granted with the resource
	Envs []string `json:"envs,omitempty"`

	// Hosts are the host records granted with the resource
	Hosts []HostRecord `json:"hosts,omitempty" validate:"omitempty,dive"`
}

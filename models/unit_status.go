package models

// MessageTypeUnitStatus is the messageType discriminator of a UnitStatus
// document.
const MessageTypeUnitStatus = "unitStatus"

// ErrorInfo carries the failure details a unit attaches to a status entry.
type ErrorInfo struct {
	// AosCode is the platform error code
	AosCode int `json:"aosCode,omitempty"`

	// ExitCode is the process exit code, when the failure came from one
	ExitCode int `json:"exitCode,omitempty"`

	// Message is the human-readable failure description
	Message string `json:"message,omitempty" validate:"omitempty,max=32768"`
}

// UnitConfigStatus reports the state of one configuration document applied
// to a unit: which version is installed, whether applying it succeeded, and
// the failure details when it did not. This is the unit's answer to a
// UnitConfig sent by the control plane.
//
// Example JSON representation:
//
//	{
//	  "version": "1.4.0",
//	  "status": "installed"
//	}
type UnitConfigStatus struct {
	// Version of the configuration this entry reports on
	Version *string `json:"version,omitempty" validate:"omitempty,max=256"`

	// Status of the configuration on the unit (required)
	Status string `json:"status" validate:"required,max=30"`

	// ErrorInfo carries failure details when the status is an error
	ErrorInfo *ErrorInfo `json:"errorInfo,omitempty"`
}

// NodePartitionInfo describes one disk partition a node reports.
type NodePartitionInfo struct {
	// Name of the partition (required)
	Name string `json:"name" validate:"required,max=256"`

	// Types the partition is used for (required)
	Types []string `json:"types" validate:"required"`

	// TotalSize of the partition in bytes (required)
	TotalSize *int64 `json:"totalSize" validate:"required"`
}

// NodeCPUInfo describes one CPU of a node.
type NodeCPUInfo struct {
	// ModelName of the CPU
	ModelName string `json:"modelName,omitempty"`

	// TotalNumCores of the CPU
	TotalNumCores *int64 `json:"totalNumCores,omitempty"`

	// TotalNumThreads of the CPU
	TotalNumThreads *int64 `json:"totalNumThreads,omitempty"`

	// Arch is the CPU architecture (e.g. x86_64, arm64) (required)
	Arch string `json:"arch" validate:"required"`

	// ArchFamily is the architecture family (e.g. ARMv8)
	ArchFamily *string `json:"archFamily,omitempty"`

	// MaxDMIPS is the CPU performance in DMIPS
	MaxDMIPS *int64 `json:"maxDmips,omitempty"`
}

// NodeStatusInfo describes one node attached to the unit as the unit
// reports it: identity, hardware inventory, and current state. It is the
// status-side counterpart of NodeConfig.
type NodeStatusInfo struct {
	// ID is the unique node identifier (required)
	ID string `json:"id" validate:"required,max=256"`

	// Name is the user-friendly node name
	Name *string `json:"name,omitempty" validate:"omitempty,max=256"`

	// Type of the node (required)
	Type string `json:"type" validate:"required,max=256"`

	// MaxDMIPS is the total node performance in DMIPS (required)
	MaxDMIPS *int64 `json:"maxDmips" validate:"required"`

	// CPUs is the per-CPU hardware inventory
	CPUs []NodeCPUInfo `json:"cpus,omitempty" validate:"omitempty,dive"`

	// OSType is the node operating system (required)
	OSType string `json:"osType" validate:"required"`

	// Attrs are free-form node attributes
	Attrs map[string]string `json:"attrs,omitempty"`

	// TotalRAM of the node in bytes (required, >= 1)
	TotalRAM *int64 `json:"totalRam" validate:"required,gte=1"`

	// Partitions is the disk partition inventory
	Partitions []NodePartitionInfo `json:"partitions,omitempty" validate:"omitempty,dive"`

	// Status is the current node state (required)
	Status string `json:"status" validate:"required,max=30"`

	// ErrorInfo carries failure details when the status is an error
	ErrorInfo *ErrorInfo `json:"errorInfo,omitempty"`
}

// UnitStatus is the status report document a unit sends to the control
// plane: the applied configuration versions and the attached nodes,
// discriminated by messageType. Service, layer, and component lifecycle
// reporting belongs to the deployment pipeline and is not part of this
// contract.
//
// Example JSON representation:
//
//	{
//	  "messageType": "unitStatus",
//	  "isDeltaInfo": false,
//	  "unitConfig": [{"version": "1.4.0", "status": "installed"}],
//	  "nodes": [
//	    {"id": "node0", "type": "main", "maxDmips": 10000, "osType": "linux",
//	     "totalRam": 2147483648, "status": "provisioned"}
//	  ]
//	}
type UnitStatus struct {
	// MessageType is the document discriminator; always "unitStatus"
	MessageType string `json:"messageType" validate:"required,eq=unitStatus"`

	// IsDeltaInfo reports whether this is a delta from the previous report
	// rather than the full state
	IsDeltaInfo *bool `json:"isDeltaInfo,omitempty"`

	// UnitConfig is the status of the installed configuration documents
	UnitConfig []UnitConfigStatus `json:"unitConfig,omitempty" validate:"omitempty,dive"`

	// Nodes are the nodes attached to the unit
	Nodes []NodeStatusInfo `json:"nodes,omitempty" validate:"omitempty,dive"`

	// UnitSubjects are the subjects registered on the unit
	UnitSubjects []string `json:"unitSubjects,omitempty"`
}

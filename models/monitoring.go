package models

import "time"

// MessageTypeMonitoring is the messageType discriminator of a
// MonitoringBatch document.
const MessageTypeMonitoring = "monitoringData"

// PartitionUsage is the usage of one disk partition within a monitoring
// sample.
type PartitionUsage struct {
	// Name of the disk partition (required)
	Name string `json:"name" validate:"required,max=256"`

	// UsedSize of the partition in bytes (required, >= 0)
	UsedSize *int64 `json:"usedSize" validate:"required,gte=0"`
}

// MonitoringSample is one recorded measurement of a node's or a service
// instance's resource usage. It is the report-side counterpart of the
// limits configured through AlertRules: the rebalancer compares these
// samples against the configured thresholds.
//
// Example JSON representation:
//
//	{
//	  "timestamp": "2024-06-01T12:00:00Z",
//	  "ram": 1073741824,
//	  "cpu": 42,
//	  "download": 4096,
//	  "partitions": [{"name": "state", "usedSize": 8192}]
//	}
type MonitoringSample struct {
	// Timestamp of the measurement in ISO8601 format (required)
	Timestamp time.Time `json:"timestamp" validate:"required"`

	// RAM usage in bytes (required)
	RAM *int64 `json:"ram" validate:"required,gte=0"`

	// CPU usage (required)
	CPU *int64 `json:"cpu" validate:"required,gte=0"`

	// Download is the incoming traffic in bytes since the previous sample
	Download *int64 `json:"download,omitempty" validate:"omitempty,gte=0"`

	// Upload is the outgoing traffic in bytes since the previous sample
	Upload *int64 `json:"upload,omitempty" validate:"omitempty,gte=0"`

	// Partitions is the per-partition disk usage
	Partitions []PartitionUsage `json:"partitions,omitempty" validate:"omitempty,dive"`
}

// NodeMonitoring is the list of monitoring samples recorded by one node.
type NodeMonitoring struct {
	// NodeID identifies the reporting node (required)
	NodeID string `json:"nodeId" validate:"required,max=256"`

	// Items are the recorded samples (required)
	Items []MonitoringSample `json:"items" validate:"required,dive"`
}

// InstanceMonitoring is the list of monitoring samples recorded for one
// service instance on one node.
type InstanceMonitoring struct {
	// ServiceID identifies the monitored service (required)
	ServiceID string `json:"serviceId" validate:"required,max=256"`

	// SubjectID identifies the subject the instance runs for (required)
	SubjectID string `json:"subjectId" validate:"required,max=256"`

	// Instance is the instance number (required, >= 0)
	Instance *int64 `json:"instance" validate:"required,gte=0"`

	// NodeID identifies the node running the instance (required)
	NodeID string `json:"nodeId" validate:"required,max=256"`

	// Items are the recorded samples (required)
	Items []MonitoringSample `json:"items" validate:"required,dive"`
}

// MonitoringBatch is the monitoring report document a unit sends to the
// control plane: per-node samples plus optional per-service-instance
// samples, discriminated by messageType.
type MonitoringBatch struct {
	// MessageType is the document discriminator; always "monitoringData"
	MessageType string `json:"messageType" validate:"required,eq=monitoringData"`

	// Nodes is the list of per-node monitoring records (required)
	Nodes []NodeMonitoring `json:"nodes" validate:"required,dive"`

	// ServiceInstances is the list of per-instance monitoring records
	ServiceInstances []InstanceMonitoring `json:"serviceInstances,omitempty" validate:"omitempty,dive"`
}

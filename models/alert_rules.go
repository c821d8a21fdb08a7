package models

// AlertRules is the default alerting policy for services running on a node.
// It is a pure aggregation: each slot is independently optional and
// independently validated by its threshold type, and no cross-slot rule
// exists. A nil slot means "no monitoring rule configured for this metric",
// which is not the same as a rule with zero-valued bounds.
//
// Example JSON representation:
//
//	{
//	  "cpu": {"minThreshold": 10, "maxThreshold": 80, "minTimeout": 30},
//	  "partitions": [
//	    {"name": "state", "minThreshold": 20, "maxThreshold": 90, "minTimeout": 5}
//	  ],
//	  "download": {"minThreshold": 1048576, "maxThreshold": 10485760, "minTimeout": 60}
//	}
type AlertRules struct {
	// CPU thresholds in percent of the node CPU limit
	CPU *PercentThreshold `json:"cpu,omitempty"`

	// RAM thresholds in percent of the node memory limit
	RAM *PercentThreshold `json:"ram,omitempty"`

	// Partitions are per-partition disk usage thresholds
	Partitions []PercentThresholdNamed `json:"partitions,omitempty" validate:"omitempty,dive"`

	// Download is the incoming traffic threshold in bytes
	Download *PointThreshold `json:"download,omitempty"`

	// Upload is the outgoing traffic threshold in bytes
	Upload *PointThreshold `json:"upload,omitempty"`
}

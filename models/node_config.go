package models

// NodeConfig carries the full configuration of one node within a unit:
// identity, default alert policy, requested resource ratios, and the
// device/resource inventory it offers to services.
//
// NodeID is optional so a single-node unit or a node whose id is assigned
// late can still be described by type alone. Priority orders nodes for
// service placement; the ordering policy itself is the deployment planner's
// concern, while this layer only range-checks the value.
//
// Example JSON representation:
//
//	{
//	  "nodeType": "main",
//	  "nodeId": "node0",
//	  "priority": 5,
//	  "alertRules": {
//	    "cpu": {"minThreshold": 10, "maxThreshold": 80, "minTimeout": 30}
//	  },
//	  "resourceRatios": {"cpu": 50, "ram": 25},
//	  "labels": ["vision", "hmi"]
//	}
type NodeConfig struct {
	// NodeType is the type of the node (required)
	NodeType string `json:"nodeType" validate:"required,max=256"`

	// NodeID is the unique node identifier, optional until assigned
	NodeID *string `json:"nodeId,omitempty" validate:"omitempty,max=256"`

	// AlertRules are the default thresholds for services running on the
	// node; nil means no alerting policy is configured
	AlertRules *AlertRules `json:"alertRules,omitempty"`

	// ResourceRatios are the requested ratios for each resource class
	ResourceRatios *ResourceRatios `json:"resourceRatios,omitempty"`

	// Devices is the device inventory available for running services
	Devices []DeviceInfo `json:"devices,omitempty"`

	// Resources are the named capability bundles available for running
	// services
	Resources []ResourceInfo `json:"resources,omitempty" validate:"omitempty,dive"`

	// Labels are free-form scheduling labels for this node
	Labels []string `json:"labels,omitempty"`

	// Priority of the node for deploying services (required,
	// 0 <= priority < 2^32-1)
	Priority *int64 `json:"priority" validate:"required,gte=0,lt=4294967295"`
}

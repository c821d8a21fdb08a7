package models

// UnitConfig is the top-level configuration document for one unit: the
// envelope the control plane sends to a unit and the unit's node agents
// consume. Once it has passed validation it is treated as immutable by
// every consumer.
//
// FormatVersion versions this document format; Version is the semantic
// version of the configuration content and the two are unrelated. Nodes is
// order-preserving: the authoring order carries precedence meaning for
// downstream consumers and survives round-trips. This layer does not
// require the list to be non-empty; that is a business rule of the
// consumer.
//
// Example JSON representation:
//
//	{
//	  "formatVersion": 2,
//	  "version": "1.4.0",
//	  "nodes": [
//	    {"nodeType": "main", "nodeId": "node0", "priority": 5}
//	  ]
//	}
type UnitConfig struct {
	// FormatVersion is the version of the configuration object itself,
	// string or integer on the wire (required)
	FormatVersion FormatVersion `json:"formatVersion" validate:"required"`

	// Version is the semantic version of this configuration (required)
	Version string `json:"version" validate:"required,max=256"`

	// Nodes is the ordered list of node configurations (required; may be
	// empty)
	Nodes []NodeConfig `json:"nodes" validate:"required,dive"`
}

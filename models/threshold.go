package models

// PercentThreshold is a hysteresis rule over a percentage metric.
//
// The threshold is treated as a node resource limit for rebalancing. When a
// node's usage of the metric stays above MaxThreshold for MinTimeout, the
// rebalancer redistributes service instances away from the node; rebalancing
// is considered complete once usage stays below MinThreshold for MinTimeout.
// That state machine lives in the rebalancing controller, not here; this type only
// carries the rule.
//
// Both bounds are percentages in [0, 100]. MinThreshold <= MaxThreshold is
// the authoring intent but is not enforced here; each bound is range-checked
// independently.
//
// Example JSON representation:
//
//	{
//	  "minThreshold": 10,
//	  "maxThreshold": 80,
//	  "minTimeout": 30.5
//	}
type PercentThreshold struct {
	// MinThreshold is the lowest percentage below which the resource can be
	// rebalanced back (required, 0-100)
	MinThreshold *float64 `json:"minThreshold" validate:"required,gte=0,lte=100"`

	// MaxThreshold is the highest percentage above which the resource has to
	// be rebalanced (required, 0-100)
	MaxThreshold *float64 `json:"maxThreshold" validate:"required,gte=0,lte=100"`

	// MinTimeout is the dwell period in seconds a bound must hold before the
	// rule fires; the fractional part carries millisecond resolution
	// (required, > 0)
	MinTimeout *float64 `json:"minTimeout" validate:"required,gt=0"`
}

// PercentThresholdNamed is a PercentThreshold scoped to a named disk
// partition. The partition name is mandatory and non-empty.
type PercentThresholdNamed struct {
	// Name of the disk partition the rule applies to (required)
	Name string `json:"name" validate:"required,max=256"`

	// MinThreshold is the lowest percentage below which the partition can be
	// rebalanced back (required, 0-100)
	MinThreshold *float64 `json:"minThreshold" validate:"required,gte=0,lte=100"`

	// MaxThreshold is the highest percentage above which the partition has
	// to be rebalanced (required, 0-100)
	MaxThreshold *float64 `json:"maxThreshold" validate:"required,gte=0,lte=100"`

	// MinTimeout is the dwell period in seconds, fractional part in
	// milliseconds (required, > 0)
	MinTimeout *float64 `json:"minTimeout" validate:"required,gt=0"`
}

// PointThreshold is a hysteresis rule over an absolute count such as bytes
// or DMIPS. Bounds are non-negative integers with no upper ceiling; the
// timeout convention matches PercentThreshold.
//
// Example JSON representation:
//
//	{
//	  "minThreshold": 1048576,
//	  "maxThreshold": 10485760,
//	  "minTimeout": 0.5
//	}
type PointThreshold struct {
	// MinThreshold is the lowest point count below which the resource can be
	// rebalanced back (required, >= 0)
	MinThreshold *int64 `json:"minThreshold" validate:"required,gte=0"`

	// MaxThreshold is the highest point count above which the resource has
	// to be rebalanced (required, >= 0)
	MaxThreshold *int64 `json:"maxThreshold" validate:"required,gte=0"`

	// MinTimeout is the dwell period in seconds, fractional part in
	// milliseconds (required, > 0)
	MinTimeout *float64 `json:"minTimeout" validate:"required,gt=0"`
}

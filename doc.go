// Package fleetconfig is the validated configuration contract exchanged
// between a fleet-management control plane and the units it governs.
//
// # Overview
//
// A unit is a deployable group of nodes managed as a single configuration
// document. The document describes, per node, its resource limits, alerting
// thresholds, and the hardware/mount/device resources it offers to running
// services. fleetconfig owns the contract types and their validation
// semantics; everything downstream of acceptance belongs to external
// collaborators:
//
//	┌──────────────────┐    unit config     ┌─────────────────┐
//	│  Control Plane   ├───────────────────►│   fleetconfig   │
//	│  (authoring)     │                    │ parse+validate  │
//	└──────────────────┘                    └────────┬────────┘
//	                                                 │ accepted value
//	                    ┌────────────────────────────┼──────────────┐
//	              ┌─────▼─────┐                ┌─────▼─────┐  ┌─────▼─────┐
//	              │ Rebalancer│                │ Deployment│  │ Node Agent│
//	              │           │                │  Planner  │  │           │
//	              └───────────┘                └───────────┘  └───────────┘
//
// # Packages
//
//   - models: the value-object types (UnitConfig, NodeConfig, AlertRules,
//     thresholds, resource descriptors) with their wire-name aliases.
//   - validation: turns raw JSON documents into accepted immutable values
//     or structured rejections with dotted field paths.
//   - config: the validation policy (strictness, size ceilings) loaded
//     from file and FC_-prefixed environment variables.
//
// # Contract Rules
//
// Validation is whole-document: any invalid field rejects the document with
// no clamping or partial acceptance. Optional fields absent from the wire
// mean "not configured", never a default zero. Accepted values are
// immutable and safe to share across goroutines.
package fleetconfig

package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int64) *int64       { return &n }
func strPtr(s string) *string     { return &s }

func TestUnitConfig_JSONMarshaling(t *testing.T) {
	cfg := &UnitConfig{
		FormatVersion: IntFormatVersion(2),
		Version:       "1.4.0",
		Nodes: []NodeConfig{
			{
				NodeType: "main",
				NodeID:   strPtr("node0"),
				Priority: intPtr(5),
				AlertRules: &AlertRules{
					CPU: &PercentThreshold{
						MinThreshold: floatPtr(10),
						MaxThreshold: floatPtr(80),
						MinTimeout:   floatPtr(30),
					},
					Partitions: []PercentThresholdNamed{
						{
							Name:         "state",
							MinThreshold: floatPtr(20),
							MaxThreshold: floatPtr(90),
							MinTimeout:   floatPtr(5),
						},
					},
					Download: &PointThreshold{
						MinThreshold: intPtr(1048576),
						MaxThreshold: intPtr(10485760),
						MinTimeout:   floatPtr(60),
					},
				},
				ResourceRatios: &ResourceRatios{
					CPU: floatPtr(50),
					RAM: floatPtr(25.5),
				},
				Devices: []DeviceInfo{
					{Name: "camera0", SharedCount: 2, Groups: []string{"video"}},
				},
				Resources: []ResourceInfo{
					{
						Name:   "bluetooth",
						Groups: []string{"bluetooth"},
						Mounts: []FileSystemMount{
							{Destination: "/dev/bt", Type: "bind", Source: "/dev/bt"},
						},
						Hosts: []HostRecord{
							{IP: "10.0.0.1", Hostname: "cloud"},
						},
					},
				},
				Labels: []string{"vision", "hmi"},
			},
			{
				NodeType: "secondary",
				Priority: intPtr(1),
			},
		},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded UnitConfig
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if !reflect.DeepEqual(cfg, &decoded) {
		t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", &decoded, cfg)
	}

	if !decoded.FormatVersion.IsInt() {
		t.Error("Expected integer formatVersion form to survive the round trip")
	}

	if decoded.Nodes[0].NodeType != "main" || decoded.Nodes[1].NodeType != "secondary" {
		t.Error("Expected node order to be preserved")
	}
}

func TestUnitConfig_WireNames(t *testing.T) {
	cfg := &UnitConfig{
		FormatVersion: StringFormatVersion("2"),
		Version:       "1.0.0",
		Nodes: []NodeConfig{
			{
				NodeType: "main",
				NodeID:   strPtr("node0"),
				Priority: intPtr(5),
				AlertRules: &AlertRules{
					CPU: &PercentThreshold{
						MinThreshold: floatPtr(10),
						MaxThreshold: floatPtr(80),
						MinTimeout:   floatPtr(30),
					},
				},
			},
		},
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to unmarshal into map: %v", err)
	}

	for _, key := range []string{"formatVersion", "version", "nodes"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("Expected wire name %q at document root", key)
		}
	}

	node := doc["nodes"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{"nodeType", "nodeId", "priority", "alertRules"} {
		if _, ok := node[key]; !ok {
			t.Errorf("Expected wire name %q on node", key)
		}
	}

	cpu := node["alertRules"].(map[string]interface{})["cpu"].(map[string]interface{})
	for _, key := range []string{"minThreshold", "maxThreshold", "minTimeout"} {
		if _, ok := cpu[key]; !ok {
			t.Errorf("Expected wire name %q on threshold", key)
		}
	}
}

func TestNodeConfig_OptionalFieldsOmitted(t *testing.T) {
	cfg := &NodeConfig{
		NodeType: "main",
		Priority: intPtr(0),
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to unmarshal into map: %v", err)
	}

	for _, key := range []string{"nodeId", "alertRules", "resourceRatios", "devices", "resources", "labels"} {
		if _, ok := doc[key]; ok {
			t.Errorf("Expected absent field %q to be omitted from the wire", key)
		}
	}

	// Priority 0 is a configured value, not an absent one.
	if p, ok := doc["priority"]; !ok || p.(float64) != 0 {
		t.Errorf("Expected priority 0 on the wire, got %v (present=%v)", p, ok)
	}
}

func TestResourceRatios_AbsentVersusZero(t *testing.T) {
	var absent ResourceRatios
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if absent.CPU != nil {
		t.Error("Expected absent cpu ratio to stay nil")
	}

	var zero ResourceRatios
	if err := json.Unmarshal([]byte(`{"cpu": 0}`), &zero); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if zero.CPU == nil || *zero.CPU != 0 {
		t.Error("Expected explicit zero cpu ratio to be present")
	}
}

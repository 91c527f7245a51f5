package bridge

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/feinstaub/airbridge/internal/catalog"
)

func TestNewDevice(t *testing.T) {
	identity := DeviceIdentity{HardwareID: "abc123"}
	dev := newDevice(identity, "NRZ-2020-129")

	wantIdentifiers := []string{
		"airrohr-abc123",
		"Feinstaubsensor-abc123",
		"Particulate Matter abc123",
	}
	if !reflect.DeepEqual(dev.Identifiers, wantIdentifiers) {
		t.Errorf("Identifiers = %v, want %v", dev.Identifiers, wantIdentifiers)
	}
	if dev.Name != "airrohr-abc123" {
		t.Errorf("Name = %q, want %q", dev.Name, "airrohr-abc123")
	}
	if dev.SWVersion != "NRZ-2020-129" {
		t.Errorf("SWVersion = %q, want %q", dev.SWVersion, "NRZ-2020-129")
	}
	if dev.Manufacturer == "" || dev.Model == "" {
		t.Error("Manufacturer and Model must be set")
	}
}

func TestNewDiscoveryConfig(t *testing.T) {
	identity := DeviceIdentity{HardwareID: "abc123"}
	meta := catalog.Meta{DeviceClass: "pm25", Unit: "µg/m³", ValueTemplate: "{{ value }}"}

	cfg := newDiscoveryConfig(identity, "1.0", "SDS_P2", meta, "airrohr/airrohr-abc123/SDS_P2")

	if cfg.UniqueID != "airrohr-abc123-SDS_P2" {
		t.Errorf("UniqueID = %q, want %q", cfg.UniqueID, "airrohr-abc123-SDS_P2")
	}
	if cfg.Name != cfg.UniqueID {
		t.Errorf("Name = %q, want it equal to UniqueID %q", cfg.Name, cfg.UniqueID)
	}
	if cfg.StateTopic != "airrohr/airrohr-abc123/SDS_P2" {
		t.Errorf("StateTopic = %q", cfg.StateTopic)
	}
	if cfg.DeviceClass != "pm25" {
		t.Errorf("DeviceClass = %q, want pm25", cfg.DeviceClass)
	}
	if cfg.UnitOfMeasurement != "µg/m³" {
		t.Errorf("UnitOfMeasurement = %q, want µg/m³", cfg.UnitOfMeasurement)
	}
}

// The JSON shape is what Home Assistant parses; entity fields must sit at
// the top level next to the device block, with snake_case keys.
func TestDiscoveryConfig_JSONShape(t *testing.T) {
	identity := DeviceIdentity{HardwareID: "abc123"}
	meta := catalog.Meta{DeviceClass: "pm25", Unit: "µg/m³", ValueTemplate: "{{ value }}"}
	cfg := newDiscoveryConfig(identity, "1.0", "SDS_P2", meta, "airrohr/airrohr-abc123/SDS_P2")

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"device", "name", "state_topic", "unique_id", "device_class", "unit_of_measurement", "value_template"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("marshalled config missing top-level key %q", key)
		}
	}

	device, ok := decoded["device"].(map[string]any)
	if !ok {
		t.Fatal("device block missing or not an object")
	}
	for _, key := range []string{"identifiers", "manufacturer", "model", "name", "sw_version"} {
		if _, ok := device[key]; !ok {
			t.Errorf("device block missing key %q", key)
		}
	}
}

func TestTopicBuilders(t *testing.T) {
	if got := discoveryTopic("airrohr-abc123", "SDS_P2"); got != "homeassistant/sensor/airrohr-abc123/SDS_P2/config" {
		t.Errorf("discoveryTopic() = %q", got)
	}
	if got := stateTopic("airrohr", "airrohr-abc123", "SDS_P2"); got != "airrohr/airrohr-abc123/SDS_P2" {
		t.Errorf("stateTopic() = %q", got)
	}
}

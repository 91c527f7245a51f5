package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for catalog loading.
var (
	// ErrEmptyCatalog is returned when a loaded catalog contains no entries.
	ErrEmptyCatalog = errors.New("catalog: no sensor definitions")

	// ErrInvalidEntry is returned when a loaded entry is missing required fields.
	ErrInvalidEntry = errors.New("catalog: invalid sensor definition")
)

// Meta describes how a sensor channel is presented to Home Assistant.
//
// The JSON tags match the sensors.json definition file format:
//
//	{
//	  "SDS_P2": {"class": "pm25", "unit": "µg/m³", "value_template": "{{ value }}"}
//	}
type Meta struct {
	// DeviceClass is the Home Assistant device class (e.g., "pm25", "temperature").
	DeviceClass string `json:"class"`

	// Unit is the unit of measurement shown for the entity (e.g., "µg/m³").
	Unit string `json:"unit"`

	// ValueTemplate is the rendering expression applied by Home Assistant,
	// typically the identity template "{{ value }}".
	ValueTemplate string `json:"value_template"`
}

// Catalog maps measurement value types to their display metadata.
//
// A Catalog is immutable after construction and therefore safe for
// unsynchronized concurrent reads. Value types absent from the catalog
// are unsupported and are skipped by the bridge.
type Catalog struct {
	entries map[string]Meta
}

// identityTemplate passes the raw state value through unchanged.
const identityTemplate = "{{ value }}"

// Builtin returns the static catalog covering the stock airrohr sensor fleet:
// SDS011 particulate sensors, the common temperature/humidity/pressure
// modules, and the WiFi signal report.
func Builtin() *Catalog {
	return &Catalog{entries: map[string]Meta{
		"SDS_P1":             {DeviceClass: "pm10", Unit: "µg/m³", ValueTemplate: identityTemplate},
		"SDS_P2":             {DeviceClass: "pm25", Unit: "µg/m³", ValueTemplate: identityTemplate},
		"PMS_P1":             {DeviceClass: "pm10", Unit: "µg/m³", ValueTemplate: identityTemplate},
		"PMS_P2":             {DeviceClass: "pm25", Unit: "µg/m³", ValueTemplate: identityTemplate},
		"temperature":        {DeviceClass: "temperature", Unit: "°C", ValueTemplate: identityTemplate},
		"humidity":           {DeviceClass: "humidity", Unit: "%", ValueTemplate: identityTemplate},
		"pressure":           {DeviceClass: "pressure", Unit: "Pa", ValueTemplate: identityTemplate},
		"BME280_temperature": {DeviceClass: "temperature", Unit: "°C", ValueTemplate: identityTemplate},
		"BME280_humidity":    {DeviceClass: "humidity", Unit: "%", ValueTemplate: identityTemplate},
		"BME280_pressure":    {DeviceClass: "pressure", Unit: "Pa", ValueTemplate: identityTemplate},
		"BMP280_temperature": {DeviceClass: "temperature", Unit: "°C", ValueTemplate: identityTemplate},
		"BMP280_pressure":    {DeviceClass: "pressure", Unit: "Pa", ValueTemplate: identityTemplate},
		"HTU21D_temperature": {DeviceClass: "temperature", Unit: "°C", ValueTemplate: identityTemplate},
		"HTU21D_humidity":    {DeviceClass: "humidity", Unit: "%", ValueTemplate: identityTemplate},
		"signal":             {DeviceClass: "signal_strength", Unit: "dBm", ValueTemplate: identityTemplate},
	}}
}

// LoadFile reads a JSON sensor definition file mapping value types to Meta.
//
// Use this instead of Builtin() when a deployment needs to support value
// types the built-in table does not know, or wants different units/classes.
//
// Parameters:
//   - path: Path to the JSON definition file
//
// Returns:
//   - *Catalog: Loaded catalog
//   - error: If the file cannot be read or parsed, is empty, or contains
//     entries without a class, unit, or value template
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sensor definitions: %w", err)
	}

	var entries map[string]Meta
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing sensor definitions: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	for valueType, meta := range entries {
		if meta.DeviceClass == "" || meta.Unit == "" || meta.ValueTemplate == "" {
			return nil, fmt.Errorf("%w: %q requires class, unit, and value_template", ErrInvalidEntry, valueType)
		}
	}

	return &Catalog{entries: entries}, nil
}

// Lookup returns the metadata for a value type.
//
// The second return value reports whether the value type is supported.
func (c *Catalog) Lookup(valueType string) (Meta, bool) {
	meta, ok := c.entries[valueType]
	return meta, ok
}

// Len returns the number of supported value types.
func (c *Catalog) Len() int {
	return len(c.entries)
}

package bridge

import (
	"fmt"

	"github.com/feinstaub/airbridge/internal/catalog"
)

// Home Assistant discovery constants.
const (
	// discoveryTopicPrefix is the Home Assistant MQTT discovery root for
	// the sensor platform.
	discoveryTopicPrefix = "homeassistant/sensor"

	// deviceManufacturer appears on the Home Assistant device page.
	deviceManufacturer = "Open Knowledge Lab Stuttgart a.o. (Code for Germany)"

	// deviceModel appears on the Home Assistant device page.
	deviceModel = "Particulate matter sensor"
)

// Device is the device block of a Home Assistant discovery config.
// It groups all of a sensor node's entities under one device entry.
type Device struct {
	Identifiers  []string `json:"identifiers"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	Name         string   `json:"name"`
	SWVersion    string   `json:"sw_version"`
}

// DiscoveryConfig is the retained config message that registers one
// entity (device + channel) with Home Assistant. Entity fields sit at
// the top level next to the device block, per the discovery convention.
type DiscoveryConfig struct {
	Device            Device `json:"device"`
	Name              string `json:"name"`
	StateTopic        string `json:"state_topic"`
	UniqueID          string `json:"unique_id"`
	DeviceClass       string `json:"device_class"`
	UnitOfMeasurement string `json:"unit_of_measurement"`
	ValueTemplate     string `json:"value_template"`
}

// newDevice builds the device block. The identifier list carries the
// canonical name plus the two aliases the vendor firmware has used over
// time, so entities keep attaching to the same Home Assistant device
// across firmware generations.
func newDevice(identity DeviceIdentity, swVersion string) Device {
	return Device{
		Identifiers: []string{
			identity.Name(),
			"Feinstaubsensor-" + identity.HardwareID,
			"Particulate Matter " + identity.HardwareID,
		},
		Manufacturer: deviceManufacturer,
		Model:        deviceModel,
		Name:         identity.Name(),
		SWVersion:    swVersion,
	}
}

// newDiscoveryConfig assembles the discovery payload for one channel of
// a device. Pure function of its inputs; the caller resolves catalog
// metadata first and never calls this for unsupported channels.
func newDiscoveryConfig(identity DeviceIdentity, swVersion, valueType string, meta catalog.Meta, stateTopic string) DiscoveryConfig {
	uniqueID := identity.Name() + "-" + valueType
	return DiscoveryConfig{
		Device:            newDevice(identity, swVersion),
		Name:              uniqueID,
		StateTopic:        stateTopic,
		UniqueID:          uniqueID,
		DeviceClass:       meta.DeviceClass,
		UnitOfMeasurement: meta.Unit,
		ValueTemplate:     meta.ValueTemplate,
	}
}

// discoveryTopic returns the config topic for one (device, channel) pair.
func discoveryTopic(deviceName, valueType string) string {
	return fmt.Sprintf("%s/%s/%s/config", discoveryTopicPrefix, deviceName, valueType)
}

// stateTopic returns the state topic for one (device, channel) pair
// under the configured namespace prefix.
func stateTopic(prefix, deviceName, valueType string) string {
	return fmt.Sprintf("%s/%s/%s", prefix, deviceName, valueType)
}

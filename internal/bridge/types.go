package bridge

// SensorValue is one measurement channel reading as reported by the
// firmware. Value stays a string end to end; the bridge republishes it
// verbatim and lets Home Assistant's value template interpret it.
type SensorValue struct {
	ValueType string `json:"value_type"`
	Value     string `json:"value"`
}

// Measurement is the JSON report body POSTed by an airrohr device.
type Measurement struct {
	SensorID         string        `json:"esp8266id"`
	SoftwareVersion  string        `json:"software_version"`
	SensorDataValues []SensorValue `json:"sensordatavalues"`
}

// Identity derives the device identity from the report.
func (m *Measurement) Identity() DeviceIdentity {
	return DeviceIdentity{HardwareID: m.SensorID}
}

// DeviceIdentity identifies a reporting device by its hardware chip ID.
type DeviceIdentity struct {
	HardwareID string
}

// Name returns the canonical device name used in topics, discovery
// payloads, and registry keys.
func (d DeviceIdentity) Name() string {
	return "airrohr-" + d.HardwareID
}

package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteSensorReading writes a single numeric sensor reading to InfluxDB.
//
// This is the primary method for archiving measurement data that passes
// through the bridge. The write is non-blocking; data is batched and sent
// asynchronously.
//
// Parameters:
//   - device: Device name the reading came from (e.g., "airrohr-abc123")
//   - valueType: The reported channel (e.g., "SDS_P2", "temperature")
//   - value: The numeric value to record
//
// Example:
//
//	client.WriteSensorReading("airrohr-abc123", "SDS_P2", 7.5)
func (c *Client) WriteSensorReading(device string, valueType string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"sensor_readings",
		map[string]string{
			"device":     device,
			"value_type": valueType,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

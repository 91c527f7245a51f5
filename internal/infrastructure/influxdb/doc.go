// Package influxdb provides InfluxDB connectivity for airbridge.
//
// It wraps the official influxdb-client-go v2 library with airbridge-specific
// patterns for connection management, reading archival, and health monitoring.
//
// # Purpose
//
// This package provides an optional time-series archive of the numeric
// sensor readings flowing through the bridge, so that particulate-matter
// history survives beyond the MQTT bus.
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    Enabled: true,
//	    URL:     "http://localhost:8086",
//	    Token:   "your-token",
//	    Org:     "airbridge",
//	    Bucket:  "sensors",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteSensorReading("airrohr-abc123", "SDS_P2", 7.5)
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via a
// callback. Connection and health check errors are returned directly.
// Archive failures never affect the bridge's publish outcome.
package influxdb

// Package api provides the HTTP ingest endpoint for airbridge.
//
// Sensor devices POST their measurement reports here; the server decodes
// them and hands them to the bridge, which republishes on MQTT. A small
// health endpoint reports liveness and the number of devices seen.
//
// The server follows the same lifecycle pattern as the other
// infrastructure components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api

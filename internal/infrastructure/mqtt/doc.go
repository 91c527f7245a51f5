// Package mqtt provides MQTT client connectivity for airbridge.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// airbridge is publish-only: sensor measurements arrive over HTTP and are
// republished onto the MQTT bus, where Home Assistant picks them up via
// its MQTT discovery convention.
//
//	airrohr device → HTTP → airbridge → MQTT Broker → Home Assistant
//
// # Security Considerations
//
//   - TLS is recommended for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//   - Message payloads are not encrypted beyond TLS transport
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	err = client.Publish("airrohr/airrohr-abc123/SDS_P2", []byte("7.5"), 0, false)
package mqtt

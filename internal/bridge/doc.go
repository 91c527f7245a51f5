// Package bridge translates airrohr measurement reports into Home
// Assistant MQTT discovery and state messages.
//
// # Flow
//
// A report arrives as a Measurement (decoded by the HTTP layer). Handle
// walks its channels in order; for each channel the catalog knows, it
// publishes a retained discovery config the first time the (device,
// channel) pair is seen, then publishes the raw value to the state
// topic. Discovery is announced at most once per pair for the process
// lifetime, and only after the broker accepted the config message.
//
// # Topics
//
//	homeassistant/sensor/<device>/<value_type>/config   discovery, QoS 1, retained
//	<prefix>/<device>/<value_type>                       state, QoS 0
//
// # Authorization
//
// Optional trust-on-first-use: the first key a device presents binds for
// the process lifetime and later requests must match it. This only stops
// accidental cross-talk, not a deliberate impersonator racing the first
// report.
//
// # Thread Safety
//
// All exported methods are safe for concurrent use. Same-device requests
// are serialized on the device record; distinct devices do not contend.
package bridge

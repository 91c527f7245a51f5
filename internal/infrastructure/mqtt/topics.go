package mqtt

import "fmt"

// TopicPrefixSystem is the base for the bridge's own system topics.
// Sensor state and discovery topics are owned by the bridge package,
// which derives them from device identity and catalog entries.
const TopicPrefixSystem = "airbridge/system"

// Topics provides builders for airbridge system MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
type Topics struct{}

// SystemStatus returns the system status topic used for LWT and
// online/offline announcements.
//
// Example: airbridge/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

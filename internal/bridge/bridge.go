package bridge

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/feinstaub/airbridge/internal/catalog"
)

// QoS levels for the two publish kinds. Discovery configs must survive a
// Home Assistant restart, so they go out retained at QoS 1; state values
// are ephemeral and a lost sample is replaced by the next report.
const (
	discoveryQoS byte = 1
	stateQoS     byte = 0
)

// Outcome classifies the result of handling one measurement report.
type Outcome int

const (
	// OutcomeAccepted means every supported channel was republished.
	OutcomeAccepted Outcome = iota

	// OutcomeUnauthorized means the presented key did not match the key
	// bound to the device. Nothing was published.
	OutcomeUnauthorized

	// OutcomePublishFailure means a discovery or state publish failed
	// partway through. Channels handled before the failure stay
	// published and announced.
	OutcomePublishFailure
)

// String returns a human-readable outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomePublishFailure:
		return "publish_failure"
	default:
		return "unknown"
	}
}

// Publisher sends messages to the MQTT broker.
// Satisfied by *mqtt.Client; narrowed for testing with fakes.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Archiver stores numeric sensor readings in a time-series database.
// Optional; if nil the bridge skips archiving. Writes must be
// non-blocking and never influence the request outcome.
type Archiver interface {
	WriteSensorReading(device, valueType string, value float64)
}

// Logger defines the logging interface used by the Bridge.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Options configures a Bridge.
type Options struct {
	// Catalog maps value types to Home Assistant metadata. Required.
	Catalog *catalog.Catalog

	// Publisher sends discovery and state messages. Required.
	Publisher Publisher

	// Archiver receives numeric readings after successful state
	// publishes. Optional.
	Archiver Archiver

	// StateTopicPrefix is the namespace for state topics.
	// Defaults to "airrohr".
	StateTopicPrefix string

	// TrustOnFirstUse enables per-device key binding. When false, the
	// presented key is ignored and every request is authorized.
	TrustOnFirstUse bool

	// Logger is optional structured logger.
	Logger Logger
}

// Bridge translates accepted measurement reports into Home Assistant
// discovery and state publishes.
//
// Thread Safety: Handle is safe for concurrent use. Requests for the
// same device are serialized on the device record; requests for
// different devices proceed in parallel.
type Bridge struct {
	catalog         *catalog.Catalog
	publisher       Publisher
	archiver        Archiver
	registry        *Registry
	statePrefix     string
	trustOnFirstUse bool
	logger          Logger
}

// New creates a Bridge from the given options.
func New(opts Options) (*Bridge, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("%w: catalog is required", ErrInvalidOptions)
	}
	if opts.Publisher == nil {
		return nil, fmt.Errorf("%w: publisher is required", ErrInvalidOptions)
	}
	if opts.StateTopicPrefix == "" {
		opts.StateTopicPrefix = "airrohr"
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}

	return &Bridge{
		catalog:         opts.Catalog,
		publisher:       opts.Publisher,
		archiver:        opts.Archiver,
		registry:        NewRegistry(),
		statePrefix:     opts.StateTopicPrefix,
		trustOnFirstUse: opts.TrustOnFirstUse,
		logger:          opts.Logger,
	}, nil
}

// Registry exposes the device registry for health reporting.
func (b *Bridge) Registry() *Registry {
	return b.registry
}

// DeviceCount returns the number of devices seen since startup.
func (b *Bridge) DeviceCount() int {
	return b.registry.Count()
}

// Handle processes one measurement report.
//
// For each supported channel, in report order: if the channel has not
// been announced for this device, a retained discovery config is
// published first and the channel is marked announced only after that
// publish succeeds; then the raw value is published to the state topic.
// The first failed publish aborts the request, keeping the progress made
// so far, so a device retry resumes exactly where the broker lost the
// previous attempt.
//
// Parameters:
//   - m: Decoded measurement report
//   - presentedKey: Key from the request path, empty if none
//
// Returns:
//   - Outcome: Accepted, Unauthorized, or PublishFailure
//   - error: Detail for non-accepted outcomes
func (b *Bridge) Handle(m *Measurement, presentedKey string) (Outcome, error) {
	identity := m.Identity()
	rec := b.registry.Ensure(identity)

	// Holding the record lock for the whole report serializes
	// same-device requests without blocking other devices.
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if b.trustOnFirstUse && !rec.authorizeLocked(presentedKey) {
		b.logger.Warn("rejected device report", "device", identity.Name(), "reason", "key mismatch")
		return OutcomeUnauthorized, fmt.Errorf("%w: %s", ErrUnauthorized, identity.Name())
	}

	for _, v := range m.SensorDataValues {
		meta, ok := b.catalog.Lookup(v.ValueType)
		if !ok {
			b.logger.Debug("skipping unsupported channel", "device", identity.Name(), "value_type", v.ValueType)
			continue
		}

		topic := stateTopic(b.statePrefix, identity.Name(), v.ValueType)

		if !rec.announcedLocked(v.ValueType) {
			if err := b.announce(identity, m.SoftwareVersion, v.ValueType, meta, topic); err != nil {
				return OutcomePublishFailure, err
			}
			rec.markAnnouncedLocked(v.ValueType)
			b.logger.Info("announced channel", "device", identity.Name(), "value_type", v.ValueType)
		}

		if err := b.publisher.Publish(topic, []byte(v.Value), stateQoS, false); err != nil {
			b.logger.Error("state publish failed", "device", identity.Name(), "value_type", v.ValueType, "error", err)
			return OutcomePublishFailure, fmt.Errorf("%w: state for %s/%s: %v", ErrPublishFailed, identity.Name(), v.ValueType, err)
		}

		b.archive(identity, v)
	}

	return OutcomeAccepted, nil
}

// announce publishes the retained discovery config for one channel.
func (b *Bridge) announce(identity DeviceIdentity, swVersion, valueType string, meta catalog.Meta, topic string) error {
	cfg := newDiscoveryConfig(identity, swVersion, valueType, meta, topic)
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: encoding discovery for %s/%s: %v", ErrPublishFailed, identity.Name(), valueType, err)
	}

	if err := b.publisher.Publish(discoveryTopic(identity.Name(), valueType), payload, discoveryQoS, true); err != nil {
		b.logger.Error("discovery publish failed", "device", identity.Name(), "value_type", valueType, "error", err)
		return fmt.Errorf("%w: discovery for %s/%s: %v", ErrPublishFailed, identity.Name(), valueType, err)
	}
	return nil
}

// archive forwards a numeric reading to the archiver, if configured.
// Non-numeric values (some firmware channels report strings) are skipped.
func (b *Bridge) archive(identity DeviceIdentity, v SensorValue) {
	if b.archiver == nil {
		return
	}
	value, err := strconv.ParseFloat(v.Value, 64)
	if err != nil {
		return
	}
	b.archiver.WriteSensorReading(identity.Name(), v.ValueType, value)
}

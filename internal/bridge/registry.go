package bridge

import "sync"

// DeviceRecord tracks per-device bridge state: which channels have been
// announced to Home Assistant and the key the device first presented.
//
// Records live for the process lifetime; after a restart every device is
// re-announced on its next report, which Home Assistant treats as an
// idempotent upsert.
type DeviceRecord struct {
	mu        sync.Mutex
	announced map[string]struct{}
	key       string
	keyBound  bool
}

// announcedLocked reports whether the channel has been announced.
// Caller must hold rec.mu.
func (rec *DeviceRecord) announcedLocked(valueType string) bool {
	_, ok := rec.announced[valueType]
	return ok
}

// markAnnouncedLocked records that the channel has been announced.
// Idempotent. Caller must hold rec.mu.
func (rec *DeviceRecord) markAnnouncedLocked(valueType string) {
	rec.announced[valueType] = struct{}{}
}

// authorizeLocked applies trust-on-first-use: the first key a device
// presents is bound for the process lifetime, and every later request
// must present the same key. Caller must hold rec.mu.
//
// Known weakness: whoever reports a hardware ID first owns it until the
// next restart. Deployments that need real authentication should put the
// bridge behind a reverse proxy.
func (rec *DeviceRecord) authorizeLocked(presentedKey string) bool {
	if !rec.keyBound {
		rec.key = presentedKey
		rec.keyBound = true
		return true
	}
	return rec.key == presentedKey
}

// Registry is the shared device table. The registry lock guards only the
// map; each record carries its own mutex so slow MQTT publishes for one
// device never block requests for another.
type Registry struct {
	mu      sync.RWMutex
	devices map[string]*DeviceRecord
}

// NewRegistry creates an empty device registry.
func NewRegistry() *Registry {
	return &Registry{devices: make(map[string]*DeviceRecord)}
}

// Ensure returns the record for the device, creating it if this is the
// first time the device has been seen. Atomic get-or-create.
func (r *Registry) Ensure(identity DeviceIdentity) *DeviceRecord {
	name := identity.Name()

	r.mu.RLock()
	rec, ok := r.devices[name]
	r.mu.RUnlock()
	if ok {
		return rec
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.devices[name]; ok {
		return rec
	}
	rec = &DeviceRecord{announced: make(map[string]struct{})}
	r.devices[name] = rec
	return rec
}

// HasAnnounced reports whether the channel has been announced for the
// device. Returns false for devices the registry has never seen.
func (r *Registry) HasAnnounced(identity DeviceIdentity, valueType string) bool {
	r.mu.RLock()
	rec, ok := r.devices[identity.Name()]
	r.mu.RUnlock()
	if !ok {
		return false
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.announcedLocked(valueType)
}

// MarkAnnounced records that the channel has been announced for the
// device. Idempotent; no-op for devices the registry has never seen.
func (r *Registry) MarkAnnounced(identity DeviceIdentity, valueType string) {
	r.mu.RLock()
	rec, ok := r.devices[identity.Name()]
	r.mu.RUnlock()
	if !ok {
		return
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.markAnnouncedLocked(valueType)
}

// Authorize applies trust-on-first-use for the device, creating its
// record if needed. See DeviceRecord.authorizeLocked for the semantics.
func (r *Registry) Authorize(identity DeviceIdentity, presentedKey string) bool {
	rec := r.Ensure(identity)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.authorizeLocked(presentedKey)
}

// Count returns the number of devices seen since startup.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

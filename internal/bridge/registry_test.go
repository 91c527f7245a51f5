package bridge

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegistry_EnsureReturnsSameRecord(t *testing.T) {
	r := NewRegistry()
	identity := DeviceIdentity{HardwareID: "abc123"}

	first := r.Ensure(identity)
	second := r.Ensure(identity)

	if first != second {
		t.Error("Ensure() returned different records for the same device")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestRegistry_HasAnnounced(t *testing.T) {
	r := NewRegistry()
	identity := DeviceIdentity{HardwareID: "abc123"}

	if r.HasAnnounced(identity, "SDS_P2") {
		t.Error("HasAnnounced() = true for unknown device")
	}

	r.Ensure(identity)
	if r.HasAnnounced(identity, "SDS_P2") {
		t.Error("HasAnnounced() = true before MarkAnnounced()")
	}

	r.MarkAnnounced(identity, "SDS_P2")
	if !r.HasAnnounced(identity, "SDS_P2") {
		t.Error("HasAnnounced() = false after MarkAnnounced()")
	}
	if r.HasAnnounced(identity, "signal") {
		t.Error("HasAnnounced() = true for a different channel")
	}
}

func TestRegistry_MarkAnnouncedUnknownDevice(t *testing.T) {
	r := NewRegistry()
	identity := DeviceIdentity{HardwareID: "ghost"}

	// Must not create a record as a side effect.
	r.MarkAnnounced(identity, "SDS_P2")

	if r.Count() != 0 {
		t.Errorf("Count() = %d after MarkAnnounced on unknown device, want 0", r.Count())
	}
}

func TestRegistry_MarkAnnouncedIdempotent(t *testing.T) {
	r := NewRegistry()
	identity := DeviceIdentity{HardwareID: "abc123"}
	r.Ensure(identity)

	r.MarkAnnounced(identity, "SDS_P2")
	r.MarkAnnounced(identity, "SDS_P2")

	if !r.HasAnnounced(identity, "SDS_P2") {
		t.Error("HasAnnounced() = false after repeated MarkAnnounced()")
	}
}

func TestRegistry_AuthorizeTrustOnFirstUse(t *testing.T) {
	r := NewRegistry()
	identity := DeviceIdentity{HardwareID: "abc123"}

	if !r.Authorize(identity, "secret") {
		t.Fatal("Authorize() = false on first use")
	}
	if !r.Authorize(identity, "secret") {
		t.Error("Authorize() = false for matching key")
	}
	if r.Authorize(identity, "other") {
		t.Error("Authorize() = true for mismatched key")
	}

	// The bound key survives a failed attempt.
	if !r.Authorize(identity, "secret") {
		t.Error("Authorize() = false for original key after a mismatch")
	}
}

func TestRegistry_AuthorizeEmptyKeyBinds(t *testing.T) {
	r := NewRegistry()
	identity := DeviceIdentity{HardwareID: "abc123"}

	if !r.Authorize(identity, "") {
		t.Fatal("Authorize() = false for first empty key")
	}
	if r.Authorize(identity, "late-key") {
		t.Error("Authorize() = true for non-empty key after empty key bound")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			identity := DeviceIdentity{HardwareID: fmt.Sprintf("dev%d", n%4)}
			for j := 0; j < 100; j++ {
				r.Ensure(identity)
				r.MarkAnnounced(identity, "SDS_P2")
				r.HasAnnounced(identity, "SDS_P2")
				r.Authorize(identity, "key")
			}
		}(i)
	}
	wg.Wait()

	if r.Count() != 4 {
		t.Errorf("Count() = %d, want 4", r.Count())
	}
}

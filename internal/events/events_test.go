package events

import "testing"

func TestBus_PublishInvokesSubscribersInOrder(t *testing.T) {
	bus := NewBus()

	var calls []int
	bus.Subscribe(ManifestNeedsRebuild, func() { calls = append(calls, 1) })
	bus.Subscribe(ManifestNeedsRebuild, func() { calls = append(calls, 2) })

	bus.Publish(ManifestNeedsRebuild)

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatalf("calls = %v, want [1 2]", calls)
	}
}

func TestBus_EventsAreIndependent(t *testing.T) {
	bus := NewBus()

	manifest, keysSync := 0, 0
	bus.Subscribe(ManifestNeedsRebuild, func() { manifest++ })
	bus.Subscribe(SendKeysSyncMessage, func() { keysSync++ })

	bus.Publish(SendKeysSyncMessage)

	if manifest != 0 || keysSync != 1 {
		t.Fatalf("manifest=%d keysSync=%d, want 0/1", manifest, keysSync)
	}
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus()
	bus.Publish(ManifestNeedsRebuild) // must not panic
}

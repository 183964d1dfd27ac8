package repositories

import (
	"context"
	"testing"
	"time"

	"voyago/internal/models/request_models"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	input := request_models.TravelInput{
		Destinations: []string{"Japan"},
		Experiences:  []string{"temple visits"},
	}
	if err := store.Save(ctx, "s1", input, time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Get(ctx, "s1")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%t err=%v, want found", ok, err)
	}
	if len(got.Destinations) != 1 || got.Destinations[0] != "Japan" {
		t.Errorf("Get destinations = %v, want [Japan]", got.Destinations)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "s1"); ok {
		t.Error("Get after Delete still finds the session")
	}
}

func TestMemorySessionStoreMissingSession(t *testing.T) {
	store := NewMemorySessionStore()
	_, ok, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get of unknown session reported found")
	}
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	input := request_models.TravelInput{Destinations: []string{"Iceland"}}
	if err := store.Save(ctx, "short", input, -time.Second); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "short"); ok {
		t.Error("Get returned an expired session")
	}
}

func TestMemorySessionStoreIsolatesCallerSlices(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	input := request_models.TravelInput{Destinations: []string{"Peru"}}
	if err := store.Save(ctx, "iso", input, time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating the original after Save must not leak into the store.
	input.Destinations[0] = "mutated"

	got, ok, err := store.Get(ctx, "iso")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%t err=%v", ok, err)
	}
	if got.Destinations[0] != "Peru" {
		t.Errorf("stored input was mutated through caller slice: %v", got.Destinations)
	}

	// And mutating what Get handed back must not corrupt the stored copy.
	got.Destinations[0] = "mutated again"
	again, _, _ := store.Get(ctx, "iso")
	if again.Destinations[0] != "Peru" {
		t.Errorf("stored input was mutated through returned slice: %v", again.Destinations)
	}
}

package stats

import (
	"context"
	"errors"
	"testing"
)

// Without a database pool every write surfaces ErrUnavailable so handlers
// can degrade instead of failing hard.
func TestNilPoolReturnsUnavailable(t *testing.T) {
	store := NewStore(nil, nil)
	ctx := context.Background()

	if store.Enabled() {
		t.Error("Enabled() true without a pool")
	}
	if err := store.RecordUsage(ctx, "budget", nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("RecordUsage error = %v, expected ErrUnavailable", err)
	}
	if err := store.Subscribe(ctx, "a@b.com", "budget"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Subscribe error = %v, expected ErrUnavailable", err)
	}
	if _, err := store.UsageCounts(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("UsageCounts error = %v, expected ErrUnavailable", err)
	}
	if _, err := store.AdConfig(ctx); !errors.Is(err, ErrUnavailable) {
		t.Errorf("AdConfig error = %v, expected ErrUnavailable", err)
	}
	if err := store.SetAdConfig(ctx, DefaultAdConfig()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("SetAdConfig error = %v, expected ErrUnavailable", err)
	}
}

func TestConnectWithEmptyURL(t *testing.T) {
	store, err := Connect(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("Connect with empty URL failed: %v", err)
	}
	defer store.Close()

	if store.Enabled() {
		t.Error("empty URL should yield a disabled store")
	}
}

func TestDefaultAdConfig(t *testing.T) {
	cfg := DefaultAdConfig()

	if cfg.Provider != "google-adsense" {
		t.Errorf("Provider = %q, expected google-adsense", cfg.Provider)
	}
	if !cfg.GoogleAdTags.Enabled || cfg.GoogleAdTags.PublisherID == "" {
		t.Errorf("GoogleAdSense default = %+v", cfg.GoogleAdTags)
	}
	if cfg.MediaNet.Enabled || cfg.PropellerAds.Enabled || cfg.Adsterra.Enabled {
		t.Error("secondary networks enabled by default")
	}
}

package stats

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const adConfigKey = "ad_config"

// AdConfig selects which ad network the frontend renders and carries the
// per-network identifiers.
type AdConfig struct {
	Provider     string          `json:"provider"`
	GoogleAdTags GoogleAdSense   `json:"googleAdSense"`
	MediaNet     MediaNetConfig  `json:"mediaNet"`
	PropellerAds PropellerConfig `json:"propellerAds"`
	Adsterra     AdsterraConfig  `json:"adsterra"`
}

type GoogleAdSense struct {
	PublisherID string `json:"publisherId"`
	Enabled     bool   `json:"enabled"`
}

type MediaNetConfig struct {
	SiteID  string `json:"siteId"`
	Enabled bool   `json:"enabled"`
}

type PropellerConfig struct {
	ZoneID  string `json:"zoneId"`
	Enabled bool   `json:"enabled"`
}

type AdsterraConfig struct {
	PublisherID string `json:"publisherId"`
	Enabled     bool   `json:"enabled"`
}

// DefaultAdConfig is served when no config row exists or when the database
// is unavailable, so ad rendering never blocks on storage.
func DefaultAdConfig() AdConfig {
	return AdConfig{
		Provider:     "google-adsense",
		GoogleAdTags: GoogleAdSense{PublisherID: "ca-pub-2928849251278370", Enabled: true},
	}
}

// AdConfig returns the stored configuration, falling back to the default
// when no row exists.
func (s *Store) AdConfig(ctx context.Context) (AdConfig, error) {
	if s.pool == nil {
		return AdConfig{}, ErrUnavailable
	}

	var raw string
	err := s.pool.QueryRow(ctx,
		`SELECT setting_value FROM site_settings WHERE setting_key = $1`, adConfigKey,
	).Scan(&raw)
	if err != nil {
		// No row (or any read failure) means the site runs on defaults.
		s.logger.Debug("serving default ad config", zap.Error(err))
		return DefaultAdConfig(), nil
	}

	var cfg AdConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return AdConfig{}, fmt.Errorf("failed to decode stored ad config, %w", err)
	}
	return cfg, nil
}

// SetAdConfig upserts the single ad configuration row.
func (s *Store) SetAdConfig(ctx context.Context, cfg AdConfig) error {
	if s.pool == nil {
		return ErrUnavailable
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode ad config, %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO site_settings (id, setting_key, setting_value, updated_at)
		 VALUES (1, $1, $2, $3)
		 ON CONFLICT (setting_key)
		 DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = EXCLUDED.updated_at`,
		adConfigKey, string(data), s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to store ad config, %w", err)
	}
	return nil
}

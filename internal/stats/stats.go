// Package stats records calculator usage and email subscriptions, and serves
// the ad network configuration, all backed by PostgreSQL.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrUnavailable is returned when no database pool is configured. Handlers
// map it to 503 so the calculators keep working without analytics.
var ErrUnavailable = errors.New("stats database not configured")

// Store provides usage tracking on top of a pgx connection pool. A nil pool
// is allowed; every method then returns ErrUnavailable.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
	now    func() time.Time
}

// NewStore wraps pool. pool may be nil when analytics is disabled.
func NewStore(pool *pgxpool.Pool, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{pool: pool, logger: logger, now: time.Now}
}

// Connect opens a pgx pool for the given URL. An empty URL yields a store
// with no pool, which is the analytics-disabled mode.
func Connect(ctx context.Context, databaseURL string, logger *zap.Logger) (*Store, error) {
	if databaseURL == "" {
		return NewStore(nil, logger), nil
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config, %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to stats database, %w", err)
	}
	return NewStore(pool, logger), nil
}

// Close releases the pool if one is configured.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Enabled reports whether a database pool is configured.
func (s *Store) Enabled() bool {
	return s.pool != nil
}

// Migrate creates the stats tables when they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	if s.pool == nil {
		return ErrUnavailable
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS usage_stats (
			id BIGSERIAL PRIMARY KEY,
			calculator_name TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL,
			financial_health_score INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS subscribers (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			calculator_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS site_settings (
			id INTEGER PRIMARY KEY,
			setting_key TEXT NOT NULL UNIQUE,
			setting_value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run stats migration, %w", err)
		}
	}
	return nil
}

// RecordUsage logs one calculator visit. healthScore is optional and stored
// as NULL when absent.
func (s *Store) RecordUsage(ctx context.Context, calculatorName string, healthScore *int) error {
	if s.pool == nil {
		return ErrUnavailable
	}
	if calculatorName == "" {
		return errors.New("calculatorName is required")
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO usage_stats (calculator_name, timestamp, financial_health_score) VALUES ($1, $2, $3)`,
		calculatorName, s.now().UTC(), healthScore,
	)
	if err != nil {
		return fmt.Errorf("failed to record usage, %w", err)
	}
	return nil
}

// Subscribe stores an email signup tied to the calculator it came from.
func (s *Store) Subscribe(ctx context.Context, email, calculatorID string) error {
	if s.pool == nil {
		return ErrUnavailable
	}
	if email == "" || calculatorID == "" {
		return errors.New("email and calculatorId are required")
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO subscribers (email, calculator_id, created_at) VALUES ($1, $2, $3)`,
		email, calculatorID, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to store subscription, %w", err)
	}
	return nil
}

// UsageCount is the visit total for one calculator.
type UsageCount struct {
	CalculatorName string `json:"calculator_name"`
	Count          int64  `json:"count"`
}

// UsageCounts returns per-calculator visit totals.
func (s *Store) UsageCounts(ctx context.Context) ([]UsageCount, error) {
	if s.pool == nil {
		return nil, ErrUnavailable
	}

	rows, err := s.pool.Query(ctx,
		`SELECT calculator_name, COUNT(*) AS count FROM usage_stats GROUP BY calculator_name ORDER BY count DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage stats, %w", err)
	}
	defer rows.Close()

	counts := []UsageCount{}
	for rows.Next() {
		var c UsageCount
		if err := rows.Scan(&c.CalculatorName, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan usage row, %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

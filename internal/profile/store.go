package profile

import (
	"fmt"
	"sync"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage keys, kept stable because exported profiles reference them.
const (
	keyProfile = "sharedCalculatorData"
	keyFlow    = "calculatorFlowProgress"
)

// StoreConfig controls where and how the profile store keeps its data.
type StoreConfig struct {
	// Path is the badger directory. Ignored when InMemory is set.
	Path string
	// InMemory keeps all data in process memory, used by tests.
	InMemory bool
	Logger   *zap.Logger
}

// Store persists the financial profile and flow progress. It is an explicit
// dependency handed to whatever needs profile access; there is no package
// global. All methods are safe for concurrent use.
type Store struct {
	db     *badger.DB
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	profile FinancialProfile
	flow    FlowProgress
}

// OpenStore opens the backing database and loads any existing profile and
// flow progress into memory.
func OpenStore(cfg StoreConfig) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := badger.DefaultOptions(cfg.Path).WithLogger(nil)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile database at %s, %w", cfg.Path, err)
	}

	s := &Store{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the backing database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) load() error {
	return s.db.View(func(txn *badger.Txn) error {
		if err := readJSON(txn, keyProfile, &s.profile); err != nil {
			return fmt.Errorf("failed to load stored profile, %w", err)
		}
		if err := readJSON(txn, keyFlow, &s.flow); err != nil {
			return fmt.Errorf("failed to load stored flow progress, %w", err)
		}
		return nil
	})
}

func readJSON(txn *badger.Txn, key string, dst interface{}) error {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dst)
	})
}

func writeJSON(txn *badger.Txn, key string, src interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return txn.Set([]byte(key), data)
}

// Profile returns a snapshot of the current profile.
func (s *Store) Profile() FinancialProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Flow returns a snapshot of the current flow progress.
func (s *Store) Flow() FlowProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flow
}

// Patch merges the non-nil fields of partial into the stored profile and
// persists the result. Fields absent from partial are left untouched, so a
// patch never clears a value; Clear is the only way to discard data.
func (s *Store) Patch(partial FinancialProfile) (FinancialProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range partial.BudgetCategories {
		if partial.BudgetCategories[i].ID == "" {
			partial.BudgetCategories[i].ID = uuid.NewString()
		}
	}

	merged := s.profile
	data, err := json.Marshal(partial)
	if err != nil {
		return FinancialProfile{}, fmt.Errorf("failed to encode profile patch, %w", err)
	}
	if err := json.Unmarshal(data, &merged); err != nil {
		return FinancialProfile{}, fmt.Errorf("failed to merge profile patch, %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return writeJSON(txn, keyProfile, merged)
	})
	if err != nil {
		return FinancialProfile{}, fmt.Errorf("failed to persist profile, %w", err)
	}

	s.profile = merged
	s.logger.Debug("profile patched")
	return merged, nil
}

// Clear discards the stored profile. Flow progress is kept.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyProfile))
	})
	if err != nil {
		return fmt.Errorf("failed to clear profile, %w", err)
	}
	s.profile = FinancialProfile{}
	s.logger.Info("profile cleared")
	return nil
}

// MarkStepComplete records step as done. Marking an already-complete step is
// a no-op, so repeated calculator submissions do not grow the step list.
func (s *Store) MarkStepComplete(step FlowStep) (FlowProgress, error) {
	if !ValidStep(step) {
		return FlowProgress{}, fmt.Errorf("unknown flow step %s", step)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flow.Completed(step) {
		return s.flow, nil
	}

	updated := s.flow
	updated.CompletedSteps = append(append([]FlowStep{}, s.flow.CompletedSteps...), step)
	updated.LastUpdated = s.now().Unix()

	err := s.db.Update(func(txn *badger.Txn) error {
		return writeJSON(txn, keyFlow, updated)
	})
	if err != nil {
		return FlowProgress{}, fmt.Errorf("failed to persist flow progress, %w", err)
	}
	s.flow = updated
	s.logger.Debug("flow step completed", zap.String("step", string(step)))
	return updated, nil
}

// Dismiss hides the guided flow prompt without touching completed steps.
func (s *Store) Dismiss() (FlowProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.flow
	updated.Dismissed = true
	updated.LastUpdated = s.now().Unix()

	err := s.db.Update(func(txn *badger.Txn) error {
		return writeJSON(txn, keyFlow, updated)
	})
	if err != nil {
		return FlowProgress{}, fmt.Errorf("failed to persist flow progress, %w", err)
	}
	s.flow = updated
	return updated, nil
}

// Reset discards both the profile and the flow progress in one transaction.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(keyProfile)); err != nil {
			return err
		}
		return txn.Delete([]byte(keyFlow))
	})
	if err != nil {
		return fmt.Errorf("failed to reset stored data, %w", err)
	}
	s.profile = FinancialProfile{}
	s.flow = FlowProgress{}
	s.logger.Info("profile and flow progress reset")
	return nil
}

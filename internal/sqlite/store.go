package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// warehouseFile is the SQLite database file name under the data directory.
const warehouseFile = "warehouse.db"

// Store is the SQLite warehouse backend. It is not usable until Attach is
// called with a validated Config; Detach releases the connection.
type Store struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
	dataDir  string
}

// NewStore creates an unattached Store.
func NewStore() *Store {
	return &Store{}
}

// Attach validates the config, creates the data directory if needed, opens
// the warehouse database, and ensures the schema exists. Existing bronze,
// silver, and gold contents are preserved.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(config.DataDir, warehouseFile))
	if err != nil {
		return fmt.Errorf("opening warehouse: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating indexes: %w", err)
		}
	}

	s.db = db
	s.dataDir = config.DataDir
	s.attached = true
	return nil
}

// Detach closes the database connection. Idempotent; after Detach all
// operations return ErrNotAttached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// DB returns the underlying database handle for read-only consumers such as
// the quality verifier. Returns ErrNotAttached when the store is detached.
func (s *Store) DB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrNotAttached
	}
	return s.db, nil
}

// handle returns the database or ErrNotAttached. Internal callers use this
// instead of touching s.db directly.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrNotAttached
	}
	return s.db, nil
}

// TableCounts returns the row count of every warehouse table, keyed by
// table name.
func (s *Store) TableCounts() (map[string]int, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(types.BronzeTableNames)+len(types.SilverTableNames)+len(types.GoldTableNames))
	names = append(names, types.BronzeTableNames...)
	names = append(names, types.SilverTableNames...)
	names = append(names, types.GoldTableNames...)

	counts := make(map[string]int, len(names))
	for _, name := range names {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + name).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

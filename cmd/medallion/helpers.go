// Shared helpers for medallion CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/medallion/internal/sqlite"
	"github.com/mesh-intelligence/medallion/pkg/types"
)

// attachStore loads the config and attaches the warehouse store. The caller
// must defer store.Detach().
func attachStore() (*sqlite.Store, types.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, types.Config{}, err
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, types.Config{}, fmt.Errorf("attach store: %w", err)
	}
	return store, cfg, nil
}

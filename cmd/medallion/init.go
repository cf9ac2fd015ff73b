// Init command: create configuration and data directories and the
// warehouse schema.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/medallion/internal/sqlite"
	"github.com/mesh-intelligence/medallion/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize warehouse storage",
	Long:  "Create the configuration directory, a default config.yaml, and the warehouse schema.",
	RunE:  runInitCmd,
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	configDir := resolveConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := writeConfigIfMissing(filepath.Join(configDir, "config.yaml")); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := store.Detach(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Warehouse initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists the function returns nil, so init is
// idempotent.
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := types.Config{
		DataDir: defaultDataDir,
		Sources: types.SourceConfig{
			Dir:       defaultSourceDir,
			Delimiter: ",",
			Files:     types.DefaultSourceFiles(),
		},
		Mappings: types.DefaultMappings(),
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

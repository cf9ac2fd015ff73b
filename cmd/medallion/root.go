package main

import (
	"github.com/spf13/cobra"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
}

var flags rootFlags

var rootCmd = &cobra.Command{
	Use:   "medallion",
	Short: "Batch warehouse pipeline for CRM and ERP extracts",
	Long: `Medallion cleans raw CRM and ERP extracts into a conformed dimensional
model: staged bronze tables are transformed into canonical silver entities
and assembled into gold dimension and fact views, recomputed fully on each
run.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .medallion)")
	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default from config, else .medallion-db)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

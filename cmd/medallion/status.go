// Status command: layer counts and the last run summary.
package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show table counts per layer and the last run",
	RunE:  runStatusCmd,
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	store, _, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	counts, err := store.TableCounts()
	if err != nil {
		return fmt.Errorf("count tables: %w", err)
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %d\n", name, counts[name])
	}

	last, err := store.LastRun()
	if err != nil {
		return fmt.Errorf("read run history: %w", err)
	}
	if last == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Last run %s: %s at %s (%s)\n",
		last.RunID, last.Status, last.StartedAt.Format("2006-01-02 15:04:05"), last.Duration().Round(time.Millisecond))
	if last.FailedEntity != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  failed entity: %s\n  reason: %s\n", last.FailedEntity, last.FailureReason)
	}
	return nil
}

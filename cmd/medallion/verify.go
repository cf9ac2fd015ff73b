// Verify command: quality assertions over the published state.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/medallion/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run quality checks against the published silver and gold state",
	Long: `Verify runs the post-hoc quality assertions: surrogate key density,
unresolved fact references, sales arithmetic, and date ordering. It reports
violations and exits non-zero when any are found.`,
	RunE: runVerifyCmd,
}

func runVerifyCmd(cmd *cobra.Command, args []string) error {
	store, _, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	verifier, err := verify.New(store)
	if err != nil {
		return err
	}
	violations, err := verifier.Run()
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	if len(violations) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All quality checks passed")
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(cmd.OutOrStdout(), v.String())
	}
	return fmt.Errorf("%d quality check(s) reported violations", len(violations))
}

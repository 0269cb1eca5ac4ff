package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/ui"
)

// rebalanceCmd is the rebalance command
var rebalanceCmd = &cobra.Command{
	Use:   "rebalance",
	Short: "run one priority rebalancing pass (admin)",
	Long: `Trigger one synchronous priority rebalancing pass on the server.

The pass examines every open and processing request, promotes requests of
premium users to High priority and demotes the rest to Low. Requires an
administrator token. The same pass also runs periodically on the server.`,
	Example: `  # Run a rebalancing pass now
  $ sourcingctl rebalance`,
	Args: cobra.NoArgs,
	RunE: runRebalance,
}

func init() {
	// Silence usage to avoid showing help on every error
	rebalanceCmd.SilenceUsage = true
}

func runRebalance(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	ui.PrintInfo("Running priority rebalance...")

	report, err := apiClient.TriggerRebalance(ctx)
	if err != nil {
		ui.PrintError("rebalance failed: %v", err)
		return fmt.Errorf("rebalance failed")
	}

	content := fmt.Sprintf(`Examined:  %d
Promoted:  %d
Demoted:   %d
Skipped:   %d`,
		report.Examined,
		report.Promoted,
		report.Demoted,
		report.Skipped,
	)
	ui.PrintSuccessBox("✓ Rebalance Complete", content)

	return nil
}

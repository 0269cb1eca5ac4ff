package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/ui"
)

var (
	getWithHistory     bool
	getExtendedHistory bool
)

// getCmd is the get command
var getCmd = &cobra.Command{
	Use:   "get <resource-type> <id>",
	Short: "show a data request or data sourcing entity",
	Long: `Show the details of one data request or data sourcing entity.

Resource Types:
  • request, req           - data request
  • sourcing, ds           - data sourcing entity

For requests, --history appends the reconciled status timeline and
--extended-history the full timeline with admin comments (administrators
only).`,
	Example: `  # Show a data request
  $ sourcingctl get request 6b2d6a4e-8c1f-4b53-9f6e-1f0c9d9e2a11

  # Show a request with its status timeline
  $ sourcingctl get request 6b2d6a4e-8c1f-4b53-9f6e-1f0c9d9e2a11 --history

  # Show a data sourcing entity with its associated requests
  $ sourcingctl get ds 9d5e0f3a-1b2c-4d5e-8f90-abcdef012345`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getWithHistory, "history", false, "Include the status timeline")
	getCmd.Flags().BoolVar(&getExtendedHistory, "extended-history", false, "Include the extended timeline (admin)")

	// Silence usage to avoid showing help on every error
	getCmd.SilenceUsage = true
}

func runGet(cmd *cobra.Command, args []string) error {
	resourceType := strings.ToLower(args[0])
	resourceID := args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	switch resourceType {
	case "request", "req":
		request, err := apiClient.GetRequest(ctx, resourceID)
		if err != nil {
			ui.PrintError("failed to get request: %v", err)
			return fmt.Errorf("get operation failed")
		}

		fmt.Println()
		fmt.Println(ui.RenderRequestDetails(request))

		if getWithHistory || getExtendedHistory {
			entries, err := apiClient.GetRequestHistory(ctx, resourceID, getExtendedHistory)
			if err != nil {
				ui.PrintError("failed to get history: %v", err)
				return fmt.Errorf("get operation failed")
			}
			fmt.Println(ui.RenderHistoryTimeline(entries))
		}

	case "sourcing", "ds":
		sourcing, err := apiClient.GetDataSourcing(ctx, resourceID)
		if err != nil {
			ui.PrintError("failed to get data sourcing: %v", err)
			return fmt.Errorf("get operation failed")
		}

		fmt.Println()
		fmt.Println(ui.RenderDataSourcingTree(sourcing))

	default:
		ui.PrintError("invalid resource type: %s", resourceType)
		fmt.Println("\nValid types:")
		fmt.Println("  • request, req")
		fmt.Println("  • sourcing, ds")
		return fmt.Errorf("invalid resource type")
	}

	return nil
}

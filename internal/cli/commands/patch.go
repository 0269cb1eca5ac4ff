package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/types"
	"github.com/d-fine/dataland-sourcing-service/internal/cli/ui"
)

var (
	patchState    string
	patchPriority string
	patchComment  string
	patchForce    bool
)

// patchCmd is the patch command
var patchCmd = &cobra.Command{
	Use:   "patch <resource-type> <id>",
	Short: "change the state or priority of a resource",
	Long: `Change the state or priority of a data request, or the state of a data
sourcing entity.

Resource Types:
  • request, req           - data request
  • sourcing, ds           - data sourcing entity

Request states: Open, Processing, Processed, Withdrawn
Sourcing states: Initialized, DocumentSourcing, DataExtraction, Done
Priorities: Low, High

Withdrawing a request asks for confirmation; use --force to skip it.
Moving a sourcing entity to Done marks every associated request as
Processed.`,
	Example: `  # Withdraw a request
  $ sourcingctl patch request 6b2d6a4e-8c1f-4b53-9f6e-1f0c9d9e2a11 --state Withdrawn

  # Raise a request's priority with a comment
  $ sourcingctl patch request 6b2d6a4e-... --priority High --comment "premium customer"

  # Advance a sourcing entity
  $ sourcingctl patch ds 9d5e0f3a-... --state DocumentSourcing`,
	Args: cobra.ExactArgs(2),
	RunE: runPatch,
}

func init() {
	patchCmd.Flags().StringVar(&patchState, "state", "", "Target state")
	patchCmd.Flags().StringVar(&patchPriority, "priority", "", "Target priority (requests only)")
	patchCmd.Flags().StringVar(&patchComment, "comment", "", "Admin comment to record")
	patchCmd.Flags().BoolVarP(&patchForce, "force", "f", false, "Skip confirmation prompt")

	// Silence usage to avoid showing help on every error
	patchCmd.SilenceUsage = true
}

func runPatch(cmd *cobra.Command, args []string) error {
	resourceType := strings.ToLower(args[0])
	resourceID := args[1]

	if patchState == "" && patchPriority == "" {
		ui.PrintError("either --state or --priority is required")
		return fmt.Errorf("missing arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	var comment *string
	if patchComment != "" {
		comment = &patchComment
	}

	switch resourceType {
	case "request", "req":
		if patchState != "" {
			// Withdrawal is permanent, ask before sending
			if patchState == "Withdrawn" && !patchForce {
				confirm := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Withdraw request '%s'? This cannot be undone.", resourceID),
				}
				if err := survey.AskOne(prompt, &confirm); err != nil {
					return fmt.Errorf("confirmation prompt failed: %w", err)
				}
				if !confirm {
					ui.PrintInfo("Patch cancelled")
					return nil
				}
			}

			request, err := apiClient.PatchRequestState(ctx, resourceID, &types.PatchStateBody{
				State:        patchState,
				AdminComment: comment,
			})
			if err != nil {
				ui.PrintError("failed to patch state: %v", err)
				return fmt.Errorf("patch failed")
			}
			ui.PrintSuccess("Request %s is now %s", request.ID, request.State)
		}

		if patchPriority != "" {
			request, err := apiClient.PatchRequestPriority(ctx, resourceID, &types.PatchPriorityBody{
				Priority:     patchPriority,
				AdminComment: comment,
			})
			if err != nil {
				ui.PrintError("failed to patch priority: %v", err)
				return fmt.Errorf("patch failed")
			}
			ui.PrintSuccess("Request %s priority is now %s", request.ID, request.Priority)
		}

	case "sourcing", "ds":
		if patchPriority != "" {
			ui.PrintError("--priority applies to requests only")
			return fmt.Errorf("invalid arguments")
		}

		// Done closes the entity and all its requests, ask before sending
		if patchState == "Done" && !patchForce {
			confirm := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Complete data sourcing '%s'? All associated requests become Processed.", resourceID),
			}
			if err := survey.AskOne(prompt, &confirm); err != nil {
				return fmt.Errorf("confirmation prompt failed: %w", err)
			}
			if !confirm {
				ui.PrintInfo("Patch cancelled")
				return nil
			}
		}

		sourcing, err := apiClient.PatchDataSourcingState(ctx, resourceID, patchState)
		if err != nil {
			ui.PrintError("failed to patch state: %v", err)
			return fmt.Errorf("patch failed")
		}
		ui.PrintSuccess("Data sourcing %s is now %s", sourcing.ID, sourcing.State)

	default:
		ui.PrintError("invalid resource type: %s", resourceType)
		fmt.Println("\nValid types:")
		fmt.Println("  • request, req")
		fmt.Println("  • sourcing, ds")
		return fmt.Errorf("invalid resource type")
	}

	return nil
}

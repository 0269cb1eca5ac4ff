package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/ui"
)

var (
	listCompanyID       string
	listDataType        string
	listReportingPeriod string
	listUserID          string
	listStates          string
	listChunkSize       int
	listChunkIndex      int
)

// listCmd is the list command
var listCmd = &cobra.Command{
	Use:   "list <resource-type>",
	Short: "list data requests or data sourcing entities",
	Long: `List data requests or data sourcing entities.

Resource Types:
  • requests, req          - data requests
  • sourcings, ds          - data sourcing entities

Request listing requires an administrator token; filter flags narrow the
result set. Results are returned in chunks ordered by creation time.`,
	Example: `  # List data requests
  $ sourcingctl list requests

  # List open requests of one company
  $ sourcingctl list requests --company c-42 --states Open

  # List data sourcing entities for a reporting period
  $ sourcingctl list ds --period 2024

  # Page through large result sets
  $ sourcingctl list requests --chunk-size 50 --chunk-index 2`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCompanyID, "company", "", "Filter by company id")
	listCmd.Flags().StringVar(&listDataType, "data-type", "", "Filter by data type")
	listCmd.Flags().StringVar(&listReportingPeriod, "period", "", "Filter by reporting period")
	listCmd.Flags().StringVar(&listUserID, "user", "", "Filter requests by requesting user id")
	listCmd.Flags().StringVar(&listStates, "states", "", "Filter requests by comma separated states")
	listCmd.Flags().IntVar(&listChunkSize, "chunk-size", 100, "Number of results per chunk")
	listCmd.Flags().IntVar(&listChunkIndex, "chunk-index", 0, "Chunk to return")

	// Silence usage to avoid showing help on every error
	listCmd.SilenceUsage = true
}

func runList(cmd *cobra.Command, args []string) error {
	resourceType := strings.ToLower(args[0])

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	query := map[string]string{
		"companyId":       listCompanyID,
		"dataType":        listDataType,
		"reportingPeriod": listReportingPeriod,
		"chunkSize":       strconv.Itoa(listChunkSize),
		"chunkIndex":      strconv.Itoa(listChunkIndex),
	}

	switch resourceType {
	case "requests", "request", "req":
		query["userId"] = listUserID
		query["states"] = listStates

		ui.PrintInfo("Fetching data requests...")
		requests, total, err := apiClient.SearchRequests(ctx, query)
		if err != nil {
			ui.PrintError("failed to list requests: %v", err)
			return fmt.Errorf("list operation failed")
		}

		fmt.Println()
		fmt.Println(ui.RenderRequestTable(requests))
		fmt.Println(ui.RenderListSummary(len(requests), total))

	case "sourcings", "sourcing", "ds":
		ui.PrintInfo("Fetching data sourcing entities...")
		sourcings, total, err := apiClient.SearchDataSourcings(ctx, query)
		if err != nil {
			ui.PrintError("failed to list data sourcings: %v", err)
			return fmt.Errorf("list operation failed")
		}

		fmt.Println()
		fmt.Println(ui.RenderDataSourcingTable(sourcings))
		fmt.Println(ui.RenderListSummary(len(sourcings), total))

	default:
		ui.PrintError("invalid resource type: %s", resourceType)
		fmt.Println("\nValid types:")
		fmt.Println("  • requests, req")
		fmt.Println("  • sourcings, ds")
		return fmt.Errorf("invalid resource type")
	}

	return nil
}

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/loader"
	"github.com/d-fine/dataland-sourcing-service/internal/cli/types"
	"github.com/d-fine/dataland-sourcing-service/internal/cli/ui"
)

var (
	createFile            string
	createCompanyID       string
	createDataType        string
	createReportingPeriod string
	createComment         string
)

// createCmd is the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "create data requests",
	Long: `Create one or more data requests.

Requests can be defined inline with flags or loaded from a YAML file.
A file may contain several requests:

  kind: DataRequest
  spec:
    - companyId: c-42
      dataType: sfdr
      reportingPeriod: "2024"
      memberComment: needed for the quarterly review
    - companyId: c-42
      dataType: lksg
      reportingPeriod: "2024"`,
	Example: `  # Create a request with flags
  $ sourcingctl create --company c-42 --data-type sfdr --period 2024

  # Create requests from a YAML file
  $ sourcingctl create -f requests.yaml`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "YAML file with request definitions")
	createCmd.Flags().StringVar(&createCompanyID, "company", "", "Company id")
	createCmd.Flags().StringVar(&createDataType, "data-type", "", "Framework data type")
	createCmd.Flags().StringVar(&createReportingPeriod, "period", "", "Reporting period")
	createCmd.Flags().StringVar(&createComment, "comment", "", "Member comment")

	// Silence usage to avoid showing help on every error
	createCmd.SilenceUsage = true
}

func runCreate(cmd *cobra.Command, args []string) error {
	bodies, err := collectRequestBodies()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := authenticatedClient()
	if err != nil {
		return err
	}

	created := 0
	for _, body := range bodies {
		request, err := apiClient.CreateRequest(ctx, body)
		if err != nil {
			ui.PrintError("failed to create request for %s/%s/%s: %v",
				body.CompanyID, body.DataType, body.ReportingPeriod, err)
			continue
		}
		created++
		ui.PrintSuccess("Created request %s (%s/%s/%s)",
			request.ID, request.CompanyID, request.DataType, request.ReportingPeriod)
	}

	if created < len(bodies) {
		return fmt.Errorf("created %d of %d requests", created, len(bodies))
	}
	return nil
}

// collectRequestBodies builds the request payloads from flags or file.
func collectRequestBodies() ([]*types.CreateRequestBody, error) {
	if createFile != "" {
		file, err := loader.LoadFromFile(createFile)
		if err != nil {
			ui.PrintError("failed to load file: %v", err)
			return nil, fmt.Errorf("file load failed")
		}
		bodies, err := file.ToCreateRequestBodies()
		if err != nil {
			ui.PrintError("invalid request definition: %v", err)
			return nil, fmt.Errorf("file load failed")
		}
		return bodies, nil
	}

	if createCompanyID == "" || createDataType == "" || createReportingPeriod == "" {
		ui.PrintError("either --file or --company, --data-type and --period are required")
		return nil, fmt.Errorf("missing arguments")
	}

	body := &types.CreateRequestBody{
		CompanyID:       createCompanyID,
		DataType:        createDataType,
		ReportingPeriod: createReportingPeriod,
	}
	if createComment != "" {
		comment := createComment
		body.MemberComment = &comment
	}
	return []*types.CreateRequestBody{body}, nil
}

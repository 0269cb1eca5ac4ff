package commands

import (
	"fmt"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/client"
	"github.com/d-fine/dataland-sourcing-service/internal/cli/config"
	"github.com/d-fine/dataland-sourcing-service/internal/cli/ui"
)

// authenticatedClient loads the stored config and builds an API client, or
// fails with a login hint.
func authenticatedClient() (*client.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed")
	}

	if !cfg.IsAuthenticated() {
		ui.PrintError("not authenticated, please login first")
		fmt.Println("\nRun 'sourcingctl login' to authenticate.")
		return nil, fmt.Errorf("authentication required")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}

	return apiClient, nil
}

package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/client"
	"github.com/d-fine/dataland-sourcing-service/internal/cli/config"
	"github.com/d-fine/dataland-sourcing-service/internal/cli/ui"
)

var loginToken string

// loginCmd is the login command
var loginCmd = &cobra.Command{
	Use:   "login [server]",
	Short: "store server address and access token",
	Long: `Store the sourcing service address and a platform-issued access token.

Tokens are issued by the Dataland identity provider, not by this service.
The token is stored in ~/.sourcingctl/config.json and used automatically
for all subsequent commands until it expires or you login again.

If server is not provided, defaults to http://localhost:8080.`,
	Example: `  # Login to default server (localhost:8080)
  $ sourcingctl login

  # Login to custom server
  $ sourcingctl login https://api.dataland.com

  # Provide the token as a flag instead of a prompt
  $ sourcingctl login https://api.dataland.com -t eyJhbGciOi...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginToken, "token", "t", "", "Platform-issued access token")

	// Silence usage to avoid showing help on every error
	loginCmd.SilenceUsage = true
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Get server from positional argument or use default
	loginServer := "http://localhost:8080"
	if len(args) > 0 {
		loginServer = args[0]
	}

	// Prompt for the token if not provided (hidden input)
	if loginToken == "" {
		prompt := &survey.Password{
			Message: "Access token:",
		}
		if err := survey.AskOne(prompt, &loginToken, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read token: %v", err)
			return fmt.Errorf("input failed")
		}
	}

	// Verify the token against the service before saving
	apiClient, err := client.NewAPIClient(loginServer, loginToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	ui.PrintInfo("Connecting to %s...", loginServer)

	if _, _, err := apiClient.SearchRequests(ctx, map[string]string{"chunkSize": "1"}); err != nil {
		// Non-admin tokens get a 403 here, which still proves the token is
		// accepted; only a 401 means it was rejected
		if strings.Contains(err.Error(), "HTTP 401") {
			ui.PrintErrorBox("Login Failed", "the token was rejected by the server")
			return fmt.Errorf("authentication failed")
		}
	}

	cfg := &config.Config{
		Server:      loginServer,
		AccessToken: loginToken,
	}

	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	configPath, _ := config.GetConfigPath()
	successContent := fmt.Sprintf(`Server:        %s
Config saved:  %s`,
		loginServer,
		configPath,
	)

	ui.PrintSuccessBox("✓ Login Successful", successContent)

	fmt.Println()
	ui.PrintInfo("You can now use the following commands:")
	ui.PrintBold("  sourcingctl list requests        # List data requests")
	ui.PrintBold("  sourcingctl get request <id>     # Show request details")

	return nil
}

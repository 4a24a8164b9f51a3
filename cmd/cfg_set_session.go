package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/config"
)

var cfgSetSessionCmd = &cobra.Command{
	Use:   "set-session",
	Short: "Store the browser session cookie in the OS keyring",
	Long: `Reads the value of the cloud.session.token browser cookie from
stdin and stores it in the OS keyring. The internal access-summary
endpoints refuse bearer tokens and need this cookie instead.
BITBUCKET_CLOUD_SESSION still wins when set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Enter the cloud.session.token cookie value: ")
		session, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("the session cookie could not be read: %w", err)
		}
		session = strings.TrimSpace(session)
		if session == "" {
			return fmt.Errorf("the session cookie cannot be empty")
		}

		if err := config.StoreCloudSession(session); err != nil {
			return fmt.Errorf("failed to save the session cookie in OS keyring: %w", err)
		}
		fmt.Println("The session cookie is stored in the OS keyring.")
		return nil
	},
}

func init() {
	cfgCmd.AddCommand(cfgSetSessionCmd)
}

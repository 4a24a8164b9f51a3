package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/config"
)

var cfgSetSecretCmd = &cobra.Command{
	Use:   "set-secret",
	Short: "Store the OAuth client secret in the OS keyring",
	Long: `Reads the OAuth consumer's client secret from stdin and stores it
in the OS keyring, so it does not have to live in a file or the
environment. BITBUCKET_CLIENT_SECRET still wins when set (for CI).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Enter the OAuth client secret: ")
		secret, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("the secret could not be read: %w", err)
		}
		secret = strings.TrimSpace(secret)
		if secret == "" {
			return fmt.Errorf("the secret cannot be empty")
		}

		if err := config.StoreClientSecret(secret); err != nil {
			return fmt.Errorf("failed to save the secret in OS keyring: %w", err)
		}
		fmt.Println("The client secret is stored in the OS keyring.")
		return nil
	},
}

func init() {
	cfgCmd.AddCommand(cfgSetSecretCmd)
}

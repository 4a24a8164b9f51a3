package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/api"
)

// tokensCmd prints the raw token payload. Diagnostic only: it proves the
// OAuth consumer credentials work and shows the scopes Bitbucket granted.
var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Fetch an access token and print its raw payload",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		token, err := api.FetchAccessToken(nil, api.DefaultURLs(), cfg.ClientID, cfg.ClientSecret, logger)
		if err != nil {
			return err
		}
		fmt.Println(token.Raw())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

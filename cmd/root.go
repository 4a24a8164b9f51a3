package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/api"
	"github.com/Genzer/bitbucklet/internal/config"
)

var (
	cfg    *config.Config
	logger hclog.Logger

	cfgFile   string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "bitbucklet",
	Short: "A small CLI to manage Bitbucket Cloud",
	Long: `A command-line tool to administer a Bitbucket Cloud team:
listing members, managing groups, inviting users, and granting or
revoking repository permissions for users and groups.`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := hclog.Warn
		if debugFlag {
			level = hclog.Debug
		}
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "bitbucklet",
			Level:  level,
			Output: os.Stderr,
		})

		if cmd.Name() == "help" {
			return nil
		}
		// The cfg commands manage the configuration itself and must work
		// before any of it exists.
		if cmd.Parent() != nil && cmd.Parent().Name() == "cfg" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile, debugFlag)
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error kind to a distinct process exit code, so shell
// pipelines can tell an auth failure from a missing team or a refused
// mutation.
func exitCode(err error) int {
	switch api.KindOf(err) {
	case api.KindConfig:
		return 2
	case api.KindAuth:
		return 3
	case api.KindLookup:
		return 4
	case api.KindOperation:
		return 5
	case api.KindUnsupported:
		return 6
	}
	return 1
}

// newClient fetches a fresh access token and builds the API client. The
// token lives only as long as this process; nothing is persisted.
func newClient() (*api.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	urls := api.DefaultURLs()
	token, err := api.FetchAccessToken(nil, urls, cfg.ClientID, cfg.ClientSecret, logger)
	if err != nil {
		return nil, err
	}
	return api.NewClient(urls, token, cfg.CloudSession, logger), nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "credentials file (default ./.env, then ~/"+config.DotenvFileName+")")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print log in DEBUG level")
}

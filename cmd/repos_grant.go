package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/api"
)

var (
	reposGrantUser   string
	reposGrantGroup  string
	reposGrantAccess string
)

var reposGrantCmd = &cobra.Command{
	Use:   "grant [-u user | -g group] -a <access> <repo>",
	Short: "Grant access to user or group",
	Long: `Grants an access level (read, write or admin) on a repository to
either a user (by Bitbucket account id) or a group (by slug). Exactly one
of --user or --group must be given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := args[0]

		if err := exactlyOneSubject(reposGrantUser, reposGrantGroup); err != nil {
			return err
		}
		perm, err := api.ParsePermission(reposGrantAccess)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if reposGrantGroup != "" {
			err = client.GrantGroupAccess(cfg.Team, repo, reposGrantGroup, perm)
		} else {
			err = client.GrantUserAccess(cfg.Team, repo, reposGrantUser, perm)
		}
		if err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	reposCmd.AddCommand(reposGrantCmd)
	reposGrantCmd.Flags().StringVarP(&reposGrantUser, "user", "u", "", "account id of the user, mutually exclusive with --group")
	reposGrantCmd.Flags().StringVarP(&reposGrantGroup, "group", "g", "", "group slug, mutually exclusive with --user")
	reposGrantCmd.Flags().StringVarP(&reposGrantAccess, "access", "a", "", "access level: read, write or admin")
	reposGrantCmd.MarkFlagRequired("access")
}

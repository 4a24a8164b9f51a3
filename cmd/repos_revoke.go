package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reposRevokeUser  string
	reposRevokeGroup string
)

var reposRevokeCmd = &cobra.Command{
	Use:   "revoke [-u user | -g group] <repo>",
	Short: "Revoke access to user or group",
	Long: `Removes a user's or a group's explicit access on a repository.
Exactly one of --user or --group must be given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := args[0]

		if err := exactlyOneSubject(reposRevokeUser, reposRevokeGroup); err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if reposRevokeGroup != "" {
			err = client.RevokeGroupAccess(cfg.Team, repo, reposRevokeGroup)
		} else {
			err = client.RevokeUserAccess(cfg.Team, repo, reposRevokeUser)
		}
		if err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

func init() {
	reposCmd.AddCommand(reposRevokeCmd)
	reposRevokeCmd.Flags().StringVarP(&reposRevokeUser, "user", "u", "", "account id of the user, mutually exclusive with --group")
	reposRevokeCmd.Flags().StringVarP(&reposRevokeGroup, "group", "g", "", "group slug, mutually exclusive with --user")
}

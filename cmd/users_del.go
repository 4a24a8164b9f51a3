package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/api"
)

var usersDelCmd = &cobra.Command{
	Use:   "del <username>",
	Short: "Delete a user (not implemented)",
	Long: `Removing a user from the team requires removing them from every
group and revoking every repository privilege granted to them. This
command fails immediately instead of attempting a partial removal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return api.DeleteUser(cfg.Team, args[0])
	},
}

func init() {
	usersCmd.AddCommand(usersDelCmd)
}

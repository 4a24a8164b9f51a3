package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/api"
)

// reposCmd represents the base command for repositories and their
// permissions.
var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Managing repositories and their permissions",
}

// exactlyOneSubject enforces the grant/revoke contract: a permission
// change targets either a user or a group, never both, never neither.
// Checked before any network call is made.
func exactlyOneSubject(user, group string) error {
	if user == "" && group == "" {
		return api.ConfigError("one of --user or --group is required")
	}
	if user != "" && group != "" {
		return api.ConfigError("--user and --group are mutually exclusive")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(reposCmd)
}

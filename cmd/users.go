package cmd

import "github.com/spf13/cobra"

// usersCmd represents the base command for user management.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Managing users",
}

func init() {
	rootCmd.AddCommand(usersCmd)
}

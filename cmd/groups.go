package cmd

import "github.com/spf13/cobra"

// groupsCmd represents the base command for group management.
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Managing groups",
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

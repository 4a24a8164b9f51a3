package cmd

import "github.com/spf13/cobra"

// accessesCmd represents the base command for access summaries.
var accessesCmd = &cobra.Command{
	Use:   "accesses",
	Short: "Managing accesses",
}

func init() {
	rootCmd.AddCommand(accessesCmd)
}

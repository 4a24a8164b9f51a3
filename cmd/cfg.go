package cmd

import "github.com/spf13/cobra"

// cfgCmd represents the base command for managing the tool's own
// configuration and credentials.
var cfgCmd = &cobra.Command{
	Use:   "cfg",
	Short: "Managing bitbucklet configuration",
}

func init() {
	rootCmd.AddCommand(cfgCmd)
}

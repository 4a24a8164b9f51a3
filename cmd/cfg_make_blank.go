package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/config"
)

var cfgMakeBlankOverwrite bool

var cfgMakeBlankCmd = &cobra.Command{
	Use:   "make-blank [path]",
	Short: "Write a template credentials file",
	Long: `Writes a blank credentials file listing the environment variables
bitbucklet needs. Defaults to ~/` + config.DotenvFileName + ` when no path is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}

		written, err := config.WriteBlank(path, cfgMakeBlankOverwrite)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", written)
		return nil
	},
}

func init() {
	cfgCmd.AddCommand(cfgMakeBlankCmd)
	cfgMakeBlankCmd.Flags().BoolVarP(&cfgMakeBlankOverwrite, "overwrite", "o", false, "overwrite existing file")
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Genzer/bitbucklet/internal/utils"
)

var usersListPendingCmd = &cobra.Command{
	Use:   "list-pending",
	Short: "List pending invitations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		invitations, err := client.ListInvitations(cfg.Team)
		if err != nil {
			return err
		}

		if len(invitations) == 0 {
			fmt.Println("No pending invitations.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tINVITED BY\tSENT")
		fmt.Fprintln(w, "-----\t----------\t----")
		for _, inv := range invitations {
			fmt.Fprintf(w, "%s\t%s\t%s\n", inv.Email, inv.InvitedBy.DisplayName, utils.FormatRelativeTime(inv.SentOn))
		}
		return w.Flush()
	},
}

func init() {
	usersCmd.AddCommand(usersListPendingCmd)
}

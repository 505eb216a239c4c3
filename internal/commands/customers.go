package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCustomersCommand(opts *rootOptions) *cobra.Command {
	var showAccounts bool

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List the customers a session starts with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loadBank(opts.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, b.Directory())
			if showAccounts {
				for _, c := range b.Customers() {
					fmt.Fprintf(out, "\n%s\n", b.Statement(c))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAccounts, "accounts", false, "also print each customer's statement")

	return cmd
}

package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nerdbank/teller/internal/ledger"
)

func newAuditCommand() *cobra.Command {
	var customerID int

	cmd := &cobra.Command{
		Use:   "audit <file>",
		Short: "Summarize an audit log by outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := ledger.ReadFile(args[0])
			if err != nil {
				return err
			}

			if customerID > 0 {
				filtered := txs[:0]
				for _, tx := range txs {
					if tx.CustomerID == customerID {
						filtered = append(filtered, tx)
					}
				}
				txs = filtered
			}

			counts := ledger.Summary(txs)
			outcomes := make([]string, 0, len(counts))
			for outcome := range counts {
				outcomes = append(outcomes, outcome)
			}
			sort.Strings(outcomes)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d transactions\n", len(txs))
			for _, outcome := range outcomes {
				fmt.Fprintf(out, "  %-24s %d\n", outcome, counts[outcome])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&customerID, "customer", 0, "only count transactions of this customer id")

	return cmd
}

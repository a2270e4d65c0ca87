package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/internal/service"
	"github.com/grachmannico95/gig-earnings/pkg/money"
)

func newConnectCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "connect <file.csv>",
		Short: "Total a Connect earnings export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewConnectService(root.logger())

			breakdown, err := svc.Calculate(cmd.Context(), localFile(args[0]))
			if err != nil {
				return asUserError(domain.SourceConnect, err)
			}

			return printConnect(cmd.OutOrStdout(), breakdown)
		},
	}
}

func printConnect(out io.Writer, b domain.EarningsBreakdown) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total Earnings:\t%s\n", money.FormatUSD(b.Total))
	fmt.Fprintf(w, "Payment Received:\t%s\n", money.FormatUSD(b.Received))
	fmt.Fprintf(w, "Payment Pending:\t%s\n", money.FormatUSD(b.Pending))
	fmt.Fprintf(w, "Amount Bonused:\t%s\n", money.FormatUSD(b.Bonused))
	return w.Flush()
}

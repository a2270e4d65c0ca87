package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/internal/earnings"
	"github.com/grachmannico95/gig-earnings/internal/service"
	"github.com/grachmannico95/gig-earnings/internal/storage"
	"github.com/grachmannico95/gig-earnings/pkg/money"
)

type prolificOptions struct {
	rate      string
	today     string
	dateOrder string
	timezone  string
}

func newProlificCommand(root *rootOptions) *cobra.Command {
	opts := &prolificOptions{}

	cmd := &cobra.Command{
		Use:   "prolific <file.csv>",
		Short: "Total today's eligible studies from a Prolific export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProlific(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.rate, "rate", "", "USD per GBP (default 1.25)")
	cmd.Flags().StringVar(&opts.today, "today", "", "calendar date to filter on, YYYY-MM-DD (default: current UTC date)")
	cmd.Flags().StringVar(&opts.dateOrder, "date-order", "day-first", "slash-date fallback order: day-first or month-first")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "UTC", "location for Started At values without a zone")

	return cmd
}

func runProlific(cmd *cobra.Command, root *rootOptions, opts *prolificOptions, path string) error {
	order, err := earnings.ParseDateOrder(opts.dateOrder)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", opts.timezone, err)
	}

	now := time.Now
	if opts.today != "" {
		day, err := earnings.ParseCalendarDate(opts.today)
		if err != nil {
			return fmt.Errorf("parsing --today: %w", err)
		}
		now = func() time.Time { return day }
	}

	svc := service.NewStudyService(storage.NewMemoryStore(1), service.StudyConfig{
		DefaultConversionRate: earnings.DefaultConversionRate,
		Dates:                 earnings.DateMatcher{Order: order, Location: loc},
		Now:                   now,
	}, root.logger())

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	upload, err := svc.Upload(ctx, localFile(path))
	if err != nil {
		return asUserError(domain.SourceProlific, err)
	}
	fmt.Fprintln(out, service.LoadedMessage(upload.TotalStudies))

	calc, err := svc.Calculate(ctx, upload.ID, opts.rate)
	if err != nil {
		return asUserError(domain.SourceProlific, err)
	}

	fmt.Fprintln(out)
	return printStudies(out, calc)
}

func printStudies(out io.Writer, calc *domain.StudyCalculation) error {
	r := calc.Result

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Date:\t%s\n", calc.Today)
	fmt.Fprintf(w, "Valid Studies:\t%d of %d\n", r.ValidStudies, r.TotalStudies)
	fmt.Fprintf(w, "USD Rewards:\t%s\n", money.Format(r.USDRewards, money.USD))
	fmt.Fprintf(w, "GBP Rewards:\t%s\n", money.Format(r.GBPRewards, money.GBP))
	fmt.Fprintf(w, "USD Bonuses:\t%s\n", money.Format(r.USDBonuses, money.USD))
	fmt.Fprintf(w, "GBP Bonuses:\t%s\n", money.Format(r.GBPBonuses, money.GBP))
	fmt.Fprintf(w, "Conversion Rate:\t%g USD/GBP\n", calc.ConversionRate)
	fmt.Fprintf(w, "Total Earnings:\t%s\n", money.Format(r.TotalEarnings, money.USD))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, service.CalculatedMessage(r.ValidStudies))
	if len(calc.Studies) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STUDY\tREWARD\tBONUS\tSTATUS\tCOMPLETION CODE\tSTARTED AT")
	for _, row := range calc.Studies {
		fmt.Fprintln(w, strings.Join([]string{
			earnings.DisplayValue(row.Study),
			earnings.DisplayValue(row.Reward),
			earnings.DisplayValue(row.Bonus),
			earnings.DisplayValue(row.Status),
			earnings.DisplayValue(row.CompletionCode),
			earnings.DisplayValue(row.StartedAt),
		}, "\t"))
	}
	return w.Flush()
}

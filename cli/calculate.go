package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"loan-amortizer/domain"
	"loan-amortizer/report"
)

func newCalculateCmd(a *app) *cobra.Command {
	var (
		terms     domain.LoanTerms
		full      bool
		asJSON    bool
		chartPath string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute the payment and amortization schedule of one loan",
		Example: `  loan-amortizer calculate --principal 300000 --rate 4.5 --years 30
  loan-amortizer calculate -p 12000 -r 12 -y 1 --full
  loan-amortizer calculate -p 250000 -r 6 -y 25 --chart balance.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.loanService.CalculateLoan(terms)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else if err := report.Write(out, result, full); err != nil {
				return err
			}

			if chartPath != "" {
				if err := writeChart(chartPath, result); err != nil {
					return fmt.Errorf("writing chart: %w", err)
				}
				a.logger.Info("chart written", "path", chartPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&terms.Principal, "principal", "p", 0, "loan principal")
	f.Float64VarP(&terms.AnnualRatePercent, "rate", "r", 0, "annual nominal interest rate in percent")
	f.IntVarP(&terms.TermYears, "years", "y", 0, "term in years")
	f.BoolVar(&full, "full", false, "print every period instead of the first and last months")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")
	f.StringVar(&chartPath, "chart", "", "write an HTML balance chart to this file")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

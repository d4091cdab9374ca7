package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"loan-amortizer/domain"
	"loan-amortizer/report"
)

func newCompareCmd(a *app) *cobra.Command {
	var input domain.TermComparisonInput

	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Compare monthly payment and total interest across terms",
		Example: `  loan-amortizer compare --principal 300000 --rate 4.5 --terms 15,20,30`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.comparisonService.CompareTerms(input)
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return report.HeaderCellStyle
					}
					return report.CellStyle
				}).
				Headers("Years", "Monthly payment", "Total interest", "Total paid")
			for _, opt := range result.Options {
				t.Row(
					strconv.Itoa(opt.TermYears),
					report.Currency(opt.MonthlyPayment),
					report.Currency(opt.TotalInterest),
					report.Currency(opt.TotalPayment),
				)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s %d years\n%s %d years\n",
				t.String(),
				report.LabelStyle.Render("Lowest total interest:"), result.LowestInterestTerm,
				report.LabelStyle.Render("Lowest monthly payment:"), result.LowestPaymentTerm,
			)
			return err
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&input.Principal, "principal", "p", 0, "loan principal")
	f.Float64VarP(&input.AnnualRatePercent, "rate", "r", 0, "annual nominal interest rate in percent")
	f.IntSliceVarP(&input.TermYears, "terms", "t", []int{10, 15, 20, 30}, "terms in years to compare")
	f.Float64Var(&input.MaxMonthlyPayment, "max-payment", 0, "drop terms whose monthly payment exceeds this amount")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"loan-amortizer/chart"
	"loan-amortizer/domain"
	"loan-amortizer/logging"
	"loan-amortizer/report"
)

const defaultChartFile = "loan-balance.html"

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for loan terms and print the schedule, repeatedly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(cmd)
		},
	}
}

func (a *app) runInteractive(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	collector := NewInputCollector(cmd.InOrStdin(), out)

	fmt.Fprintln(out, report.TitleStyle.Render("--- Loan Calculator ---"))
	for {
		again, err := a.interactiveRound(collector, out)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(out, "Thanks for using the calculator. Goodbye!")
			return nil
		}
	}
}

// interactiveRound runs one prompt/compute/report cycle and reports whether
// the user wants another one.
func (a *app) interactiveRound(collector *InputCollector, out io.Writer) (bool, error) {
	terms, err := collector.Terms()
	if err != nil {
		return false, err
	}

	result, err := a.loanService.CalculateLoan(terms)
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDegenerateLoan):
		fmt.Fprintf(out, "Error: %v\n", err)
		return collector.Confirm("\nDo you want to try again? (y/n): ")
	case err != nil:
		return false, err
	}

	if err := report.Write(out, result, false); err != nil {
		return false, err
	}

	wantChart, err := collector.Confirm("\nDo you want to save the balance chart? (y/n): ")
	if err != nil {
		return false, err
	}
	if wantChart {
		path, err := collector.Line(fmt.Sprintf("Chart file [%s]: ", defaultChartFile))
		if err != nil {
			return false, err
		}
		if path == "" {
			path = defaultChartFile
		}
		if err := writeChart(path, result); err != nil {
			a.logger.Warn("failed to write chart", "path", path, logging.FieldError, err)
			fmt.Fprintf(out, "Error: could not write chart: %v\n", err)
		} else {
			fmt.Fprintf(out, "Chart written to %s\n", path)
		}
	}

	return collector.Confirm("\nDo you want to run another calculation? (y/n): ")
}

func writeChart(path string, result domain.LoanResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.RenderBalance(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

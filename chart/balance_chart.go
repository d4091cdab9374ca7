// Package chart renders the remaining balance of a loan as an HTML line chart.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"loan-amortizer/domain"
)

const SeriesName = "Remaining balance"

var ErrEmptySchedule = errors.New("chart: empty schedule")

// RenderBalance writes a standalone HTML page plotting remaining balance per period.
func RenderBalance(w io.Writer, result domain.LoanResult) error {
	points := result.Schedule.BalancePoints()
	if len(points) == 0 {
		return ErrEmptySchedule
	}

	periods := make([]int, len(points))
	balances := make([]opts.LineData, len(points))
	for i, p := range points {
		periods[i] = p.Period
		balances[i] = opts.LineData{Value: p.Balance}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Loan balance",
			Width:     "1000px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Loan balance over time",
			Subtitle: fmt.Sprintf("$%.2f at %.2f%% over %d years, monthly payment $%.2f",
				result.Terms.Principal, result.Terms.AnnualRatePercent, result.Terms.TermYears, result.MonthlyPayment),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Period"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Remaining balance ($)"}),
	)
	line.SetXAxis(periods).AddSeries(SeriesName, balances)

	return line.Render(w)
}

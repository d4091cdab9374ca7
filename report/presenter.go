// Package report formats calculation results for the terminal: the loan
// summary and a head/tail preview of the amortization schedule.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"loan-amortizer/domain"
)

// DefaultPreviewRows is how many rows are shown at each end of a long schedule.
const DefaultPreviewRows = 5

var scheduleHeaders = []string{"Period", "Payment", "Principal", "Interest", "Balance"}

// Currency formats an amount as $1,234.56.
func Currency(amount float64) string {
	return "$" + humanize.FormatFloat("#,###.##", amount)
}

// Summary renders the monthly payment and the totals over the life of the loan.
func Summary(result domain.LoanResult) string {
	line := func(label string, amount float64) string {
		return LabelStyle.Render(label+":") + " " + ValueStyle.Render(Currency(amount))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("LOAN SUMMARY"),
		line("Monthly payment", result.MonthlyPayment),
		line("Total paid over the life of the loan", result.TotalPayment),
		line("Total interest paid", result.TotalInterest),
	)
}

// Preview renders the first and last n rows of the schedule separated by an
// ellipsis row. Schedules with at most 2n rows are rendered whole.
func Preview(schedule domain.Schedule, n int) string {
	if n <= 0 || len(schedule) <= 2*n {
		return Table(schedule)
	}

	rows := make([][]string, 0, 2*n+1)
	for _, r := range schedule[:n] {
		rows = append(rows, cells(r))
	}
	rows = append(rows, []string{"...", "...", "...", "...", "..."})
	for _, r := range schedule[len(schedule)-n:] {
		rows = append(rows, cells(r))
	}
	return render(rows)
}

// Table renders every row of the schedule.
func Table(schedule domain.Schedule) string {
	rows := make([][]string, 0, len(schedule))
	for _, r := range schedule {
		rows = append(rows, cells(r))
	}
	return render(rows)
}

// Write prints the summary followed by the schedule preview, or the whole
// schedule when full is set.
func Write(w io.Writer, result domain.LoanResult, full bool) error {
	title := fmt.Sprintf("Amortization schedule (first and last %d months)", DefaultPreviewRows)
	body := Preview(result.Schedule, DefaultPreviewRows)
	if full || len(result.Schedule) <= 2*DefaultPreviewRows {
		title = "Amortization schedule"
		body = Table(result.Schedule)
	}

	_, err := fmt.Fprintf(w, "\n%s\n\n%s\n%s\n", Summary(result), TitleStyle.Render(title), body)
	return err
}

func cells(r domain.ScheduleRow) []string {
	return []string{
		strconv.Itoa(r.Period),
		Currency(r.Payment),
		Currency(r.PrincipalPaid),
		Currency(r.InterestPaid),
		Currency(r.RemainingBalance),
	}
}

func render(rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderCellStyle
			}
			return CellStyle
		}).
		Headers(scheduleHeaders...).
		Rows(rows...)
	return t.String()
}

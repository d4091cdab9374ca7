package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"loan-amortizer/domain"
)

// InputCollector prompts for loan terms and re-prompts until each value is valid.
type InputCollector struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewInputCollector(in io.Reader, out io.Writer) *InputCollector {
	return &InputCollector{in: bufio.NewScanner(in), out: out}
}

// Terms asks for principal, annual rate and term. It returns io.EOF when the
// input ends before all three values are read.
func (c *InputCollector) Terms() (domain.LoanTerms, error) {
	principal, err := c.PositiveNumber("Loan principal: ")
	if err != nil {
		return domain.LoanTerms{}, err
	}
	rate, err := c.PositiveNumber("Annual interest rate (%): ")
	if err != nil {
		return domain.LoanTerms{}, err
	}

	var years int
	for {
		v, err := c.PositiveNumber("Term in years: ")
		if err != nil {
			return domain.LoanTerms{}, err
		}
		// Fractions of a year are dropped.
		if years = int(v); years >= 1 {
			break
		}
		fmt.Fprintln(c.out, "Error: the term must be at least one year.")
	}

	return domain.LoanTerms{Principal: principal, AnnualRatePercent: rate, TermYears: years}, nil
}

// PositiveNumber prompts until the answer parses as a finite number above zero.
func (c *InputCollector) PositiveNumber(prompt string) (float64, error) {
	for {
		answer, err := c.Line(prompt)
		if err != nil {
			return 0, err
		}

		v, err := strconv.ParseFloat(answer, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(c.out, "Error: please enter a valid number.")
			continue
		}
		if v <= 0 {
			fmt.Fprintln(c.out, "Error: the value must be a positive number.")
			continue
		}
		return v, nil
	}
}

// Confirm reads a yes/no answer; "s", "si", "y" and "yes" count as yes.
func (c *InputCollector) Confirm(prompt string) (bool, error) {
	answer, err := c.Line(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	}
	return false, nil
}

// Line prints the prompt and returns the next trimmed input line.
func (c *InputCollector) Line(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

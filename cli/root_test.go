package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"loan-amortizer/domain"
	"loan-amortizer/repository"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	if args == nil {
		// nil makes cobra fall back to os.Args.
		args = []string{}
	}

	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := executeRoot(root, a)
	return out.String(), err
}

func TestCalculateCmd_Report(t *testing.T) {
	out, err := run(t, "", "calculate", "--principal", "300000", "--rate", "4.5", "--years", "30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"$1,520.06", "LOAN SUMMARY", "first and last 5 months", "..."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCalculateCmd_JSON(t *testing.T) {
	out, err := run(t, "", "calculate", "-p", "12000", "-r", "12", "-y", "1", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result domain.LoanResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if result.MonthlyPayment != 1066.19 || len(result.Schedule) != 12 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestCalculateCmd_Chart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balance.html")

	if _, err := run(t, "", "calculate", "-p", "12000", "-r", "12", "-y", "1", "--chart", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if !strings.Contains(string(data), "Remaining balance") {
		t.Errorf("unexpected chart content")
	}
}

func TestCalculateCmd_InvalidInput(t *testing.T) {
	_, err := run(t, "", "calculate", "-p", "0", "-r", "5", "-y", "1")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompareCmd(t *testing.T) {
	out, err := run(t, "", "compare", "-p", "300000", "-r", "4.5", "--terms", "15,30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"$1,520.06", "$2,294.98", "Lowest total interest: 15 years", "Lowest monthly payment: 30 years"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInteractive_OneRound(t *testing.T) {
	// principal, rate, years, no chart, no further calculation
	out, err := run(t, "12000\n12\n1\nn\nn\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Loan Calculator", "$1,066.19", "Goodbye"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInteractive_TwoRoundsWithChart(t *testing.T) {
	input := strings.Join([]string{
		"100000", "5", "1", "s", "", "s",
		"12000", "12", "1", "n", "n",
	}, "\n") + "\n"

	out, err := run(t, input, "interactive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "$8,560.75") || !strings.Contains(out, "$1,066.19") {
		t.Errorf("expected both calculations:\n%s", out)
	}
	if !strings.Contains(out, "Chart written to "+defaultChartFile) {
		t.Errorf("expected chart confirmation:\n%s", out)
	}
	if _, err := os.Stat(defaultChartFile); err != nil {
		t.Errorf("chart file missing: %v", err)
	}
}

func TestInteractive_LimitErrorOffersRetry(t *testing.T) {
	out, err := run(t, "5000000000\n5\n1\nn\n", "interactive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "exceeds the maximum") {
		t.Errorf("expected limit error:\n%s", out)
	}
}

func TestInteractive_EOF(t *testing.T) {
	if _, err := run(t, "1000\n"); err != nil {
		t.Fatalf("EOF must end the session cleanly, got %v", err)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, err := run(t, "", "calculate", "-p", "1", "-r", "1", "-y", "1", "--cache-backend", "memcached")
	if err == nil || !strings.Contains(err.Error(), "invalid cache backend") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestExecuteRoot_ClosesRedisCacheOnFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Chdir(t.TempDir())

	root, a := newRootCmd()
	root.SetArgs([]string{"calculate", "-p", "0", "-r", "5", "-y", "1",
		"--cache-backend", "redis", "--redis-addr", mr.Addr()})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := executeRoot(root, a); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	cache, ok := a.cache.(*repository.RedisCache)
	if !ok {
		t.Fatalf("expected redis cache, got %T", a.cache)
	}
	if err := cache.Ping(context.Background()); err == nil {
		t.Error("expected the redis client to be closed after a failed command")
	}
	if err := a.teardown(); err != nil {
		t.Errorf("second teardown must be a no-op, got %v", err)
	}
}

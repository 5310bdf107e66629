package printer

import (
	"testing"

	"github.com/gradelang/gradelang/parser"
	"github.com/gradelang/gradelang/values"
)

func TestPrintRoundTripsIntegerAndGrade(t *testing.T) {
	tests := []string{
		"a: 1",
		"a: 1.0",
		"a: 0.5",
		"a: midterm",
		"a: top(2 homework)",
		"a: {85 90:2 78}",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			prog, err := parser.ParseProgram(src, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			out := PrintProgram(prog)

			reparsed, err := parser.ParseProgram(out, "")
			if err != nil {
				t.Fatalf("re-parsing printed output failed: %v (output was %q)", err, out)
			}
			if Print(reparsed["a"]) != Print(prog["a"]) {
				t.Fatalf("round trip mismatch: original %q, reprinted %q", Print(prog["a"]), Print(reparsed["a"]))
			}
		})
	}
}

func TestFormatLiteralGradeAlwaysHasDecimalPoint(t *testing.T) {
	prog, err := parser.ParseProgram("a: 1.0", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Print(prog["a"])
	if out != "1.0" {
		t.Fatalf("expected whole-number Grade to print with a decimal point, got %q", out)
	}
}

func TestFormatLiteralIntegerHasNoDecimalPoint(t *testing.T) {
	prog, err := parser.ParseProgram("a: 1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Print(prog["a"])
	if out != "1" {
		t.Fatalf("expected Integer to print as a bare digit run, got %q", out)
	}
}

func TestListLiteralOmitsDefaultWeight(t *testing.T) {
	prog, err := parser.ParseProgram("a: {85 90:2}", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Print(prog["a"])
	if out != "{85 90:2}" {
		t.Fatalf("expected first item's default weight to be omitted, got %q", out)
	}
}

func TestPrintProgramSortsByName(t *testing.T) {
	prog, err := parser.ParseProgram("zeta: 1\nalpha: 2", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := PrintProgram(prog)
	alphaIdx := indexOf(out, "alpha")
	zetaIdx := indexOf(out, "zeta")
	if alphaIdx == -1 || zetaIdx == -1 || alphaIdx > zetaIdx {
		t.Fatalf("expected categories sorted alphabetically, got %q", out)
	}
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.8667, "86.67%"},
		{1.0, "100.00%"},
		{0.0, "0.00%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercentUndefined(t *testing.T) {
	u := values.Undefined()
	if got := FormatPercent(u.AsGrade()); got != "undef" {
		t.Fatalf("expected \"undef\", got %q", got)
	}
}

func TestFormatValueList(t *testing.T) {
	lv := values.NewList([]values.Item{
		{Value: 0.9, Weight: 1.0},
		{Value: 0.8, Weight: 2.0},
	})
	got := FormatValue(lv)
	want := "[90.00%, 80.00%:2.00]"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatValueInteger(t *testing.T) {
	got := FormatValue(values.NewInteger(1))
	if got != "100.00%" {
		t.Fatalf("expected Integer(1) to format as 100.00%%, got %q", got)
	}
}

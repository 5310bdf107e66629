package program

import (
	"math"
	"testing"

	"github.com/gradelang/gradelang/eval"
	"github.com/gradelang/gradelang/ops"
	"github.com/gradelang/gradelang/values"
)

func castToGrade(v values.Value) (float64, bool) {
	g, ok := values.Cast(v, values.Grade)
	if !ok {
		return 0, false
	}
	return g.AsGrade(), true
}

func TestParseAndNames(t *testing.T) {
	p, err := Parse("a: 1\nb: 2", "grades.gl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Names()) != 2 {
		t.Fatalf("expected 2 category names, got %d", len(p.Names()))
	}
	if p.File() != "grades.gl" {
		t.Fatalf("expected file name to round-trip, got %q", p.File())
	}
}

func TestParseErrorPropagates(t *testing.T) {
	if _, err := Parse("a 1", ""); err == nil {
		t.Fatalf("expected a parse error to propagate from Parse")
	}
}

func TestGetCategoryValueEvaluatesExpression(t *testing.T) {
	p, err := Parse("homework: {80 90:2}", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := eval.NewContext()
	ctx.AddDataProvider(p)

	v, err := ctx.GetCategoryValue("homework")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (80.0*1 + 90.0*2) / 3
	got, _ := castToGrade(v)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGetCategoryValueUndefinedForMissingName(t *testing.T) {
	p, err := Parse("a: 1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, found, err := p.GetCategoryValue("missing", eval.NewContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected found=false for an undefined category name")
	}
}

func TestGetCategoryValuePropagatesEvalError(t *testing.T) {
	// "top" is unregistered (no operation provider added), so evaluating it
	// must surface an error through the Program -> Context chain.
	p, err := Parse("x: top(1 {1 2})", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := eval.NewContext()
	ctx.AddDataProvider(p)

	if _, err := ctx.GetCategoryValue("x"); err == nil {
		t.Fatalf("expected an error for an unregistered operation")
	}
}

func TestCrossCategoryReference(t *testing.T) {
	p, err := Parse("base: 80\nbonus: base", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := eval.NewContext()
	ctx.AddDataProvider(p)

	v, err := ctx.GetCategoryValue("bonus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsInteger() != 80 {
		t.Fatalf("expected bonus to resolve to base's Integer(80), got %v", v)
	}
}

func TestEndToEndWithReferenceDialect(t *testing.T) {
	p, err := Parse(`
homework: top(2 {70 90 80 60})
final: homework
`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := eval.NewContext()
	ctx.AddOperationProvider(ops.NewReferenceDialect())
	ctx.AddDataProvider(p)

	v, err := ctx.GetCategoryValue("final")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := castToGrade(v)
	want := (90.0 + 80.0) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

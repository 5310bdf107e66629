package eval

import (
	"github.com/gradelang/gradelang/ast"
	"github.com/gradelang/gradelang/gerrors"
	"github.com/gradelang/gradelang/values"
)

// Eval evaluates expr against ctx, dispatching on its concrete type. Sub-
// expressions of a ListLiteral or an OpCall are evaluated strictly left to
// right, so operation handlers see arguments in source order.
func Eval(ctx *Context, expr ast.Expr) (values.Value, error) {
	switch e := expr.(type) {
	case *ast.Constant:
		return e.Value, nil
	case *ast.CategoryRef:
		return evalCategoryRef(ctx, e)
	case *ast.ListLiteral:
		return evalListLiteral(ctx, e)
	case *ast.OpCall:
		return evalOpCall(ctx, e)
	default:
		return values.Value{}, gerrors.NewResolutionError("unknown expression kind")
	}
}

// evalCategoryRef resolves the referenced category and, per §3's shared-
// resource policy, returns a fresh deep copy when the resolved value is a
// List (so a caller can safely mutate it in place) and the shared value
// unchanged for Grade/Integer.
func evalCategoryRef(ctx *Context, ref *ast.CategoryRef) (values.Value, error) {
	v, err := ctx.GetCategoryValue(ref.Name)
	if err != nil {
		return values.Value{}, err
	}
	if v.Kind() == values.List {
		return v.Clone(), nil
	}
	return v, nil
}

// evalListLiteral builds a fresh List, coercing any non-Grade item value to
// Grade (Integer widens, List reduces via the weighted-mean rule). A
// coerced Grade that happens to be NaN still produces a list element with a
// NaN value — it stays "undefined" rather than erroring.
func evalListLiteral(ctx *Context, lit *ast.ListLiteral) (values.Value, error) {
	items := make([]values.Item, 0, len(lit.Items))
	for _, item := range lit.Items {
		vv, err := Eval(ctx, item.Value)
		if err != nil {
			return values.Value{}, err
		}
		grade, ok := values.Cast(vv, values.Grade)
		if !ok {
			return values.Value{}, gerrors.NewTypeError("list element cannot be cast to Grade")
		}

		weight := 1.0
		if item.Weight != nil {
			wv, err := Eval(ctx, item.Weight)
			if err != nil {
				return values.Value{}, err
			}
			wg, ok := values.Cast(wv, values.Grade)
			if !ok {
				return values.Value{}, gerrors.NewTypeError("list weight cannot be cast to Grade")
			}
			weight = wg.AsGrade()
		}

		items = append(items, values.Item{Value: grade.AsGrade(), Weight: weight})
	}
	return values.NewList(items), nil
}

// evalOpCall evaluates every argument (left to right) then dispatches to
// the first operation provider in the Context for which HasOperation(name)
// is true.
func evalOpCall(ctx *Context, call *ast.OpCall) (values.Value, error) {
	args := make([]values.Value, len(call.Args))
	for i, argExpr := range call.Args {
		v, err := Eval(ctx, argExpr)
		if err != nil {
			return values.Value{}, err
		}
		args[i] = v
	}

	for _, p := range ctx.opProv {
		if p.HasOperation(call.Name) {
			return p.Execute(call.Name, args)
		}
	}
	return values.Value{}, gerrors.NewResolutionError("operation not found: " + call.Name)
}

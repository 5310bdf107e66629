// Package ops implements GradeLang's basic operation provider: an ordered
// registry of (name, signature) -> handler pairs, first-match dispatch, and
// argument coercion through the values cast lattice. It also ships the
// reference operation dialect described informatively by the core spec
// (drop, top, join, resolve, clamp, maxOf, minOf, map, require, len), so the
// engine is runnable end to end.
package ops

import (
	"fmt"

	"github.com/gradelang/gradelang/gerrors"
	"github.com/gradelang/gradelang/values"
)

// Handler is a type-erased operation body: by the time it is invoked, every
// argument has already been coerced to the Kind its signature declared.
type Handler func(args []values.Value) (values.Value, error)

type signature struct {
	name  string
	types []values.Kind
}

// matches reports whether a call (name, actual) can dispatch to sig: same
// name, same arity, and every actual type castable to the expected type.
func (sig signature) matches(name string, actual []values.Kind) bool {
	if sig.name != name || len(sig.types) != len(actual) {
		return false
	}
	for i, want := range sig.types {
		if !values.CanCast(actual[i], want) {
			return false
		}
	}
	return true
}

type registration struct {
	sig     signature
	handler Handler
}

// BasicProvider is an eval.OperationProvider backed by an ordered list of
// registrations. Earlier registrations win on ambiguity, so more specific
// overloads (by arity or by a narrower expected type) must be registered
// first — this is what lets the three `require` overloads coexist.
type BasicProvider struct {
	regs []registration
}

// NewBasicProvider returns an empty BasicProvider; use Register to populate
// it, or NewReferenceDialect for the pre-registered §4.5 dialect.
func NewBasicProvider() *BasicProvider {
	return &BasicProvider{}
}

// Register adds an operation overload. name+argTypes form the signature;
// handler is invoked with arguments already coerced to argTypes, in order.
func (p *BasicProvider) Register(name string, argTypes []values.Kind, handler Handler) {
	p.regs = append(p.regs, registration{sig: signature{name: name, types: argTypes}, handler: handler})
}

// HasOperation reports whether any registration could possibly answer to
// name, regardless of argument types — used by the evaluator only to pick a
// provider; the actual match (including arity/type) happens in Execute.
func (p *BasicProvider) HasOperation(name string) bool {
	for _, r := range p.regs {
		if r.sig.name == name {
			return true
		}
	}
	return false
}

// Execute finds the first registration matching (name, argument kinds),
// coerces the arguments, and invokes its handler. If no registration
// matches — including when the name exists but no overload's arity/types
// fit — it raises "operation not found", exactly as the core spec requires
// (arity mismatches are not distinguished from an unknown name).
func (p *BasicProvider) Execute(name string, args []values.Value) (values.Value, error) {
	actual := make([]values.Kind, len(args))
	for i, a := range args {
		actual[i] = a.Kind()
	}

	for _, r := range p.regs {
		if !r.sig.matches(name, actual) {
			continue
		}
		coerced := make([]values.Value, len(args))
		for i, a := range args {
			cv, ok := values.Cast(a, r.sig.types[i])
			if !ok {
				return values.Value{}, gerrors.NewTypeError(
					fmt.Sprintf("argument %d to %q cannot be cast to %s", i, name, r.sig.types[i]))
			}
			coerced[i] = cv
		}
		return r.handler(coerced)
	}
	return values.Value{}, gerrors.NewResolutionError("operation not found: " + name)
}

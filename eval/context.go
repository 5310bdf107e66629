// Package eval implements GradeLang's evaluation engine: the Context that
// holds the memoization cache and the ordered provider lists, and the Eval
// dispatch that walks an ast.Expr tree against a Context.
package eval

import (
	"github.com/gradelang/gradelang/values"
)

// DataProvider resolves a category name to a Value against a Context.
// found=false (with err=nil) means "not mine, try the next provider" — it is
// not an error. A non-nil err means this provider claimed the name but
// evaluating its expression failed; the Context aborts and propagates it.
type DataProvider interface {
	GetCategoryValue(name string, ctx *Context) (v values.Value, found bool, err error)
}

// OperationProvider answers whether it can execute a named operation and,
// if so, executes it.
type OperationProvider interface {
	HasOperation(name string) bool
	Execute(name string, args []values.Value) (values.Value, error)
}

// Context is the per-evaluation state threaded through Eval: the
// memoization cache, and the ordered data and operation providers.
//
// A Context is not reentrant and not safe for concurrent
// GetCategoryValue/Eval calls; parallelism is achieved by evaluating
// independent Contexts, never by sharing one across goroutines.
type Context struct {
	cache      map[string]values.Value
	dataProv   []DataProvider
	opProv     []OperationProvider
	cycleGuard bool
	visiting   map[string]struct{}
}

// ContextOption configures a Context at construction.
type ContextOption func(*Context)

// WithCycleDetection enables an opt-in visit-set that returns a *CycleError
// on a circular category reference instead of recursing to
// stack exhaustion. The source program this engine is modeled on promises
// cycle detection in a comment but never implements it; this is an
// acknowledged improvement, off by default to preserve that original
// (accidental) behavior.
func WithCycleDetection(enabled bool) ContextOption {
	return func(c *Context) { c.cycleGuard = enabled }
}

// NewContext builds a Context whose cache is seeded with the three
// evaluator-level constants: pass = Grade(1.0), fail = Grade(0.0),
// undef = Grade(NaN). These are never overridden by a data provider because
// a cache hit short-circuits GetCategoryValue before any provider is
// consulted.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		cache: map[string]values.Value{
			"pass":  values.NewGrade(1.0),
			"fail":  values.NewGrade(0.0),
			"undef": values.Undefined(),
		},
		visiting: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddDataProvider appends a data provider to the end of the search order.
func (c *Context) AddDataProvider(p DataProvider) {
	c.dataProv = append(c.dataProv, p)
}

// AddOperationProvider appends an operation provider to the end of the
// search order.
func (c *Context) AddOperationProvider(p OperationProvider) {
	c.opProv = append(c.opProv, p)
}

// GetCategoryValue resolves name: a cache hit returns immediately; otherwise
// each data provider is tried in order and the first hit is memoized and
// returned. If no provider resolves the name, the shared undefined grade is
// returned without being cached (so a provider registered later, or a
// retry after Context mutation, can still succeed).
func (c *Context) GetCategoryValue(name string) (values.Value, error) {
	if v, ok := c.cache[name]; ok {
		return v, nil
	}

	if c.cycleGuard {
		if _, ok := c.visiting[name]; ok {
			return values.Value{}, &CycleError{Name: name}
		}
		c.visiting[name] = struct{}{}
		defer delete(c.visiting, name)
	}

	for _, p := range c.dataProv {
		v, found, err := p.GetCategoryValue(name, c)
		if err != nil {
			return values.Value{}, err
		}
		if found {
			c.cache[name] = v
			return v, nil
		}
	}
	return values.Undefined(), nil
}

// CycleError reports a circular category reference detected under
// WithCycleDetection(true).
type CycleError struct {
	Name string
}

func (e *CycleError) Error() string {
	return "circular category reference involving " + e.Name
}

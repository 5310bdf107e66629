package ops

import (
	"math"
	"sort"

	"github.com/gradelang/gradelang/values"
)

// NewReferenceDialect returns a BasicProvider pre-registered with the core
// spec's §4.5 reference operation dialect: drop, top, join, resolve, clamp,
// maxOf, minOf, map, the three `require` overloads, and len. It is grounded
// directly on original_source/src/operations.cpp and
// original_source/include/operations.h; list-returning operations here
// return a freshly built list rather than mutating their input in place
// (safe under Go's garbage collector, per the core spec's note that a GC'd
// implementation may collapse the "transient" and "cached" value regimes).
func NewReferenceDialect() *BasicProvider {
	p := NewBasicProvider()

	p.Register("drop", []values.Kind{values.Integer, values.List}, func(args []values.Value) (values.Value, error) {
		return drop(args[0].AsInteger(), args[1]), nil
	})

	p.Register("top", []values.Kind{values.Integer, values.List}, func(args []values.Value) (values.Value, error) {
		return top(args[0].AsInteger(), args[1]), nil
	})

	p.Register("join", []values.Kind{values.List, values.List}, func(args []values.Value) (values.Value, error) {
		return join(args[0], args[1]), nil
	})

	p.Register("resolve", []values.Kind{values.Grade, values.List}, func(args []values.Value) (values.Value, error) {
		return resolve(args[0].AsGrade(), args[1]), nil
	})

	p.Register("clamp", []values.Kind{values.Grade, values.Grade, values.List}, func(args []values.Value) (values.Value, error) {
		return clampList(args[0].AsGrade(), args[1].AsGrade(), args[2]), nil
	})

	p.Register("maxOf", []values.Kind{values.Grade, values.List}, func(args []values.Value) (values.Value, error) {
		return maxOf(args[0].AsGrade(), args[1]), nil
	})

	p.Register("minOf", []values.Kind{values.Grade, values.List}, func(args []values.Value) (values.Value, error) {
		return minOf(args[0].AsGrade(), args[1]), nil
	})

	p.Register("map", []values.Kind{values.Grade, values.Grade, values.Grade, values.Grade, values.List},
		func(args []values.Value) (values.Value, error) {
			return remap(args[0].AsGrade(), args[1].AsGrade(), args[2].AsGrade(), args[3].AsGrade(), args[4]), nil
		})

	// require's three overloads are registered widest-arity first so the
	// more specific (smaller-default) forms are tried before the
	// all-defaults fallback, matching the source's registration order.
	p.Register("require", []values.Kind{values.Grade, values.Grade, values.Grade, values.Grade},
		func(args []values.Value) (values.Value, error) {
			return require(args[0].AsGrade(), args[1].AsGrade(), args[2].AsGrade(), args[3].AsGrade()), nil
		})
	p.Register("require", []values.Kind{values.Grade, values.Grade, values.Grade},
		func(args []values.Value) (values.Value, error) {
			return require(args[0].AsGrade(), args[1].AsGrade(), 0.0, args[2].AsGrade()), nil
		})
	p.Register("require", []values.Kind{values.Grade, values.Grade},
		func(args []values.Value) (values.Value, error) {
			return require(args[0].AsGrade(), args[1].AsGrade(), 0.0, 1.0), nil
		})

	p.Register("len", []values.Kind{values.List}, func(args []values.Value) (values.Value, error) {
		return values.NewInteger(uint64(args[0].Len())), nil
	})

	return p
}

// drop removes the n smallest non-NaN values from lv. Ties are broken by
// higher index: when two elements carry the same value, the later
// (higher-index) one is the one dropped first. n == 0 or an empty list is a
// no-op.
func drop(n uint64, lv values.Value) values.Value {
	items := lv.Items()
	if n == 0 || len(items) == 0 {
		return lv
	}

	type candidate struct {
		idx int
		val float64
	}
	candidates := make([]candidate, 0, len(items))
	for i, it := range items {
		if !math.IsNaN(it.Value) {
			candidates = append(candidates, candidate{idx: i, val: it.Value})
		}
	}
	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].val != candidates[b].val {
			return candidates[a].val < candidates[b].val
		}
		return candidates[a].idx > candidates[b].idx
	})

	dropCount := int(n)
	if dropCount > len(candidates) {
		dropCount = len(candidates)
	}
	dropped := make(map[int]struct{}, dropCount)
	for _, c := range candidates[:dropCount] {
		dropped[c.idx] = struct{}{}
	}

	out := make([]values.Item, 0, len(items)-len(dropped))
	for i, it := range items {
		if _, skip := dropped[i]; skip {
			continue
		}
		out = append(out, it)
	}
	return values.NewList(out)
}

// top keeps the n highest values, equivalent to dropping max(0, size-n)
// lowest.
func top(n uint64, lv values.Value) values.Value {
	size := uint64(lv.Len())
	var dropCount uint64
	if size > n {
		dropCount = size - n
	}
	return drop(dropCount, lv)
}

// join appends b's elements to a.
func join(a, b values.Value) values.Value {
	out := make([]values.Item, 0, a.Len()+b.Len())
	out = append(out, a.Items()...)
	out = append(out, b.Items()...)
	return values.NewList(out)
}

// resolve replaces every NaN value in lv with d, leaving weights untouched.
func resolve(d float64, lv values.Value) values.Value {
	items := lv.Items()
	out := make([]values.Item, len(items))
	for i, it := range items {
		if math.IsNaN(it.Value) {
			it.Value = d
		}
		out[i] = it
	}
	return values.NewList(out)
}

// clampList clips every defined value in lv into [lo, hi].
func clampList(lo, hi float64, lv values.Value) values.Value {
	items := lv.Items()
	out := make([]values.Item, len(items))
	for i, it := range items {
		if !math.IsNaN(it.Value) {
			if it.Value < lo {
				it.Value = lo
			} else if it.Value > hi {
				it.Value = hi
			}
		}
		out[i] = it
	}
	return values.NewList(out)
}

// maxOf raises every defined value below t up to t.
func maxOf(t float64, lv values.Value) values.Value {
	items := lv.Items()
	out := make([]values.Item, len(items))
	for i, it := range items {
		if !math.IsNaN(it.Value) && it.Value < t {
			it.Value = t
		}
		out[i] = it
	}
	return values.NewList(out)
}

// minOf lowers every defined value above t down to t.
func minOf(t float64, lv values.Value) values.Value {
	items := lv.Items()
	out := make([]values.Item, len(items))
	for i, it := range items {
		if !math.IsNaN(it.Value) && it.Value > t {
			it.Value = t
		}
		out[i] = it
	}
	return values.NewList(out)
}

// remap linearly rescales every defined value from source range [s0, s1] to
// destination range [d0, d1], extrapolating outside the source range. When
// s1 == s0 the source range is degenerate, so every defined value collapses
// to the midpoint of the destination range instead of dividing by zero.
func remap(s0, s1, d0, d1 float64, lv values.Value) values.Value {
	items := lv.Items()
	out := make([]values.Item, len(items))
	for i, it := range items {
		if !math.IsNaN(it.Value) {
			if s1 == s0 {
				it.Value = (d0 + d1) / 2
			} else {
				it.Value = d0 + (it.Value-s0)*(d1-d0)/(s1-s0)
			}
		}
		out[i] = it
	}
	return values.NewList(out)
}

// require returns below if v < t, else above. IEEE-754 comparison means a
// NaN v makes "v < t" false, so an undefined value always takes the above
// branch — this is documented core-spec behavior (§8 invariant 7), not a
// special case in this code.
func require(v, t, below, above float64) values.Value {
	if v < t {
		return values.NewGrade(below)
	}
	return values.NewGrade(above)
}

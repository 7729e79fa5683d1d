package calc

import (
	"math"
	"sort"
)

// Constants is a table of named values used to resolve names during
// evaluation. A Constants is never modified after it is created, so it is
// safe to share between goroutines. A nil *Constants behaves as the default
// table.
type Constants struct {
	vals map[string]float64
}

// ConstOption is an option used when creating a constant table.
type ConstOption interface {
	constOption()
}

type (
	defopt struct {
		name string
		val  float64
	}
	defsopt      map[string]float64
	nodefaultopt struct{}
)

func (defopt) constOption()       {}
func (defsopt) constOption()      {}
func (nodefaultopt) constOption() {}

// Define sets the value of a constant in the table, replacing any existing
// value.
func Define(name string, val float64) ConstOption {
	return defopt{name, val}
}

// DefineAll sets the values of any number of constants in the table.
func DefineAll(vals map[string]float64) ConstOption {
	return defsopt(vals)
}

// NoDefaults starts the table empty instead of from the table being cloned.
// Definitions in the same option list still apply.
func NoDefaults() ConstOption {
	return nodefaultopt{}
}

var defaultConsts = &Constants{vals: map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
	"phi": math.Phi,
	"inf": math.Inf(1),
}}

// DefaultConstants returns the default table, which defines pi, e, tau, phi,
// and inf.
func DefaultConstants() *Constants {
	return defaultConsts
}

// NewConstants creates a constant table from the defaults and applies options
// to it in order.
func NewConstants(opts ...ConstOption) *Constants {
	return defaultConsts.Clone(opts...)
}

// Clone creates a new table holding the constants of c with options applied.
// c itself is unchanged.
func (c *Constants) Clone(opts ...ConstOption) *Constants {
	src := c.table()
	for _, opt := range opts {
		if _, ok := opt.(nodefaultopt); ok {
			src = nil
			break
		}
	}
	n := Constants{vals: make(map[string]float64, len(src))}
	for k, v := range src {
		n.vals[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case defopt:
			n.vals[opt.name] = opt.val
		case defsopt:
			for k, v := range opt {
				n.vals[k] = v
			}
		case nodefaultopt:
			// Already done. Do nothing.
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// Lookup returns the value of a constant and whether it is defined.
func (c *Constants) Lookup(name string) (float64, bool) {
	v, ok := c.table()[name]
	return v, ok
}

// Names returns the sorted names of all constants in the table.
func (c *Constants) Names() []string {
	vals := c.table()
	r := make([]string, 0, len(vals))
	for k := range vals {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Len returns the number of constants in the table.
func (c *Constants) Len() int {
	return len(c.table())
}

func (c *Constants) table() map[string]float64 {
	if c == nil {
		return defaultConsts.vals
	}
	return c.vals
}

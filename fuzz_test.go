package calc

import (
	"math"
	"testing"
	"unicode/utf8"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("2pi(1+2)")
	f.Add("-2^-x^y")
	f.Add("1.2.3")
	f.Add("((1)")
	f.Add("1 × 2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := Parse(s)
		if err != nil {
			ie, ok := err.(InputError)
			if !ok {
				t.Fatalf("%q: error %#v is not an InputError", s, err)
			}
			if p := ie.Pos(); p < 1 || p > utf8.RuneCountInString(s)+1 {
				t.Fatalf("%q: error position %d out of range: %v", s, p, err)
			}
			return
		}
		str := a.String()
		b, err := Parse(str)
		if err != nil {
			t.Fatalf("%q formats as %q which doesn't parse: %v", s, str, err)
		}
		if d, e := a.n.diff(b.n); d != nil || e != nil {
			t.Fatalf("%q formats as %q which parses differently: %v has %v, %v has %v", s, str, a.n, d, b.n, e)
		}
	})
}

func FuzzEvaluate(f *testing.F) {
	f.Add("x")
	f.Add("2pi")
	f.Add("(-8)^(1/3)")
	f.Add("1/0 - inf")
	f.Add("pipi")
	c := NewConstants(Define("x", 0.5))
	f.Fuzz(func(t *testing.T, s string) {
		r, err := Evaluate(s, c)
		if err != nil {
			if _, ok := err.(InputError); !ok {
				t.Fatalf("%q: error %#v is not an InputError", s, err)
			}
			return
		}
		q, err := Evaluate(s, c)
		if err != nil {
			t.Fatalf("%q: second evaluation failed: %v", s, err)
		}
		if math.Float64bits(r) != math.Float64bits(q) {
			t.Fatalf("%q: evaluations differ: %g then %g", s, r, q)
		}
	})
}

package calc_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/calc"
)

func Example() {
	for _, src := range []string{"1+2*3/7", "2pi", "2^3^2", "3(4+5)", "1/0"} {
		v, err := calc.Evaluate(src, nil)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s = %.6g\n", src, v)
	}

	// Output:
	// 1+2*3/7 = 1.85714
	// 2pi = 6.28319
	// 2^3^2 = 512
	// 3(4+5) = 27
	// 1/0 = +Inf
}

func ExampleParse() {
	a, err := calc.Parse("2pi r")
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	fmt.Println(a.Names())
	for _, r := range []float64{1, 2, 3} {
		v, _ := a.Eval(calc.NewConstants(calc.Define("r", r)))
		fmt.Printf("r = %g   circumference = %.4f\n", r, v)
	}

	// Output:
	// (((2) (pi)) (r))
	// [pi r]
	// r = 1   circumference = 6.2832
	// r = 2   circumference = 12.5664
	// r = 3   circumference = 18.8496
}

func ExampleNewConstants() {
	c := calc.NewConstants(calc.Define("g", 9.80665), calc.Define("t", 3))
	v, err := calc.Evaluate("g t^2/2", c)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", v)

	_, err = calc.Evaluate("g t^2/2", calc.NewConstants(calc.NoDefaults()))
	fmt.Println(err)

	// Output:
	// 44.1299
	// 1: unknown constant "g"
}

func ExampleInputError() {
	for _, src := range []string{"2 * (3 + 4", "2 * 3 + ", "2 # 3", "1)", "2x"} {
		_, err := calc.Evaluate(src, nil)
		var ie calc.InputError
		if errors.As(err, &ie) {
			fmt.Printf("%q: column %d: %T\n", src, ie.Pos(), err)
		}
	}

	// Output:
	// "2 * (3 + 4": column 5: *calc.BracketError
	// "2 * 3 + ": column 9: *calc.EndOfInputError
	// "2 # 3": column 3: *calc.LexError
	// "1)": column 2: *calc.TrailingTokenError
	// "2x": column 2: *calc.NameError
}

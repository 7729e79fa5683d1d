// Package calc implements a floating-point calculator for arithmetic
// expressions.
//
// The syntax is the usual infix notation with + - * / and ^, where "a^b" is
// exponentiation. "-2^2^n" is the same as "-(2^(2^n))". Terms written next to
// each other are multiplied, so "2pi" is "2 * pi" and "(1+2)(3+4)" is
// "(1+2) * (3+4)". Names are letters only: "pi2" is "pi * 2", but "pipi" is a
// single name.
//
// Names refer to constants. A Constants table resolves them at evaluation
// time; the default table knows pi, e, tau, phi, and inf. Division by zero and
// powers outside the real domain give infinities and NaN, as a calculator
// would, rather than errors.
//
// Parsed expressions and constant tables never change after they are created,
// so they can be shared freely between goroutines.
package calc

package calc

import "strconv"

// UnexpectedTokenError is an error indicating a token that cannot appear
// where the parser found it, e.g. the * in "1+*2". It implements InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Expected describes what the parser was looking for.
	Expected string
	// Found is the text of the token that was found instead.
	Found string
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "expected "+err.Expected+" but found "+strconv.Quote(err.Found))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// EndOfInputError is an error indicating that the input ended where the
// parser needed more, e.g. after the + in "1+". It implements InputError.
type EndOfInputError struct {
	// Col is the position just past the end of the input.
	Col int
	// Expected describes what the parser was looking for.
	Expected string
}

func (err *EndOfInputError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "unexpected end of input, expected "+err.Expected)
}

func (err *EndOfInputError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an open bracket with no close bracket.
// It implements InputError.
type BracketError struct {
	// Col is the position of the open bracket.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "open bracket ( with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating input left over after a complete
// expression, e.g. the ) in "1)". It implements InputError.
type TrailingTokenError struct {
	// Col is the position of the first unused token.
	Col int
	// Text is the text of that token.
	Text string
}

func (err *TrailingTokenError) Error() string {
	if err.Text == ")" {
		return errpos(err.Col, "close bracket ) with no open bracket")
	}
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused it.
	Pos() int
}

var (
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*EndOfInputError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*NameError)(nil)
)

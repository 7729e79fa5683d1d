package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single lexical unit of an expression.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Text is the source text of the token.
	Text string
	// Num is the value of a TokenNum token.
	Num float64
	// Pos is the 1-based rune column of the token's first rune.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// tokenEOF marks the end of the input. Tokenize never returns it.
	tokenEOF
	// TokenNum is a decimal number.
	TokenNum
	// TokenIdent is a constant name.
	TokenIdent
	// TokenOp is one of the operators in Operators.
	TokenOp
	// TokenOpen is (.
	TokenOpen
	// TokenClose is ).
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case TokenNum:
		return "Num"
	case TokenIdent:
		return "Ident"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

type lexer struct {
	src  string
	off  int // byte offset of the next rune
	rune int // runes consumed so far
}

// Tokenize splits src into tokens. The result is the complete token sequence
// of src, or an error naming the first rune that cannot begin a token.
func Tokenize(src string) ([]Token, error) {
	l := lexer{src: src}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == tokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// peek returns the next rune without consuming it, or utf8.RuneError with
// size 0 at the end of the input.
func (l *lexer) peek() (rune, int) {
	if l.off >= len(l.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *lexer) advance(sz int) {
	l.off += sz
	l.rune++
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token positioned one past the last rune.
func (l *lexer) next() (Token, error) {
	for {
		r, sz := l.peek()
		if sz == 0 {
			return Token{Kind: tokenEOF, Pos: l.rune + 1}, nil
		}
		if !unicode.IsSpace(r) {
			break
		}
		l.advance(sz)
	}
	start, pos := l.off, l.rune+1
	r, sz := l.peek()
	switch {
	case '0' <= r && r <= '9', r == '.':
		return l.scanNum(start, pos)
	case unicode.IsLetter(r):
		l.scanIdent()
		return Token{Kind: TokenIdent, Text: l.src[start:l.off], Pos: pos}, nil
	case r == '(':
		l.advance(sz)
		return Token{Kind: TokenOpen, Text: "(", Pos: pos}, nil
	case r == ')':
		l.advance(sz)
		return Token{Kind: TokenClose, Text: ")", Pos: pos}, nil
	case strings.ContainsRune(Operators, r):
		l.advance(sz)
		return Token{Kind: TokenOp, Text: l.src[start:l.off], Pos: pos}, nil
	default:
		return Token{}, &LexError{Char: r, Col: pos}
	}
}

// scanNum scans digits, optionally followed by a dot and more digits. A
// number may start with the dot, but it must contain at least one digit.
func (l *lexer) scanNum(start, pos int) (Token, error) {
	dig := l.scanDigits()
	if r, sz := l.peek(); r == '.' {
		l.advance(sz)
		if l.scanDigits() {
			dig = true
		}
	}
	if !dig {
		// Only a dot. Report the dot itself.
		return Token{}, &LexError{Char: '.', Col: pos}
	}
	text := l.src[start:l.off]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ParseFloat accepts every digits[.digits] form and rounds large
		// values to ±Inf with ErrRange, which we keep as the value.
		if !errors.Is(err, strconv.ErrRange) {
			panic("calc: invalid number " + strconv.Quote(text) + ": " + err.Error())
		}
	}
	return Token{Kind: TokenNum, Text: text, Num: v, Pos: pos}, nil
}

func (l *lexer) scanDigits() bool {
	ok := false
	for {
		r, sz := l.peek()
		if r < '0' || r > '9' {
			return ok
		}
		l.advance(sz)
		ok = true
	}
}

func (l *lexer) scanIdent() {
	for {
		r, sz := l.peek()
		if sz == 0 || !unicode.IsLetter(r) {
			return
		}
		l.advance(sz)
	}
}

// LexError indicates a rune that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Char is the offending rune.
	Char rune
	// Col is the 1-based rune column of Char.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}

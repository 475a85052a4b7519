package expression

// TokenKind identifies a token in an expression
type TokenKind uint8

const (
	TokenAdd TokenKind = iota
	TokenSub
	TokenMul
	TokenDiv
	TokenMod
	TokenPow
	TokenUnaryMinus
	TokenDice
	TokenNumber
	TokenFunction

	// Parenthesis and end tokens only steer parsing; they are never stored.
	TokenOpenParen
	TokenCloseParen
	TokenEnd
)

// String returns the token's symbol
func (k TokenKind) String() string {
	switch k {
	case TokenAdd:
		return "+"
	case TokenSub:
		return "-"
	case TokenMul:
		return "*"
	case TokenDiv:
		return "/"
	case TokenMod:
		return "%"
	case TokenPow:
		return "^"
	case TokenUnaryMinus:
		return "neg"
	case TokenDice:
		return "d"
	case TokenNumber:
		return "number"
	case TokenFunction:
		return "function"
	case TokenOpenParen:
		return "("
	case TokenCloseParen:
		return ")"
	case TokenEnd:
		return "end"
	default:
		return "?"
	}
}

// Token is one element of a parsed expression. Value is set for numbers and
// Func for functions.
type Token struct {
	Kind  TokenKind
	Value float64
	Func  Function
}

// isValue reports whether a token of this kind ends a value, which makes a
// following value an implicit multiplication
func (k TokenKind) isValue() bool {
	return k == TokenNumber || k == TokenCloseParen
}

package expression

import (
	"math"
	"strconv"
)

const (
	// MaxTokens is the most tokens a parsed expression may hold
	MaxTokens = 1000

	// MaxStack is the most numbers held at once during evaluation
	MaxStack = 1000

	// MaxDepth is the deepest the parser may recurse
	MaxDepth = 10000

	// maxTextToken is the longest name read as one constant or function
	maxTextToken = 31
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/rollengine/internal/expression Roller

// Roller rolls the dice an expression asks for
type Roller interface {
	// RollTheBones sums count dice of the given number of sides
	RollTheBones(count, sides float64) float64

	// Random returns a number between 1 and max inclusive
	Random(max uint32) uint32
}

// Config for an expression parser
type Config struct {
	Roller Roller
}

// Parser turns infix expressions into postfix form and evaluates them. Its
// buffers are fixed size and reused by every expression, so a Parser must
// not be shared between goroutines.
type Parser struct {
	roller Roller

	// parsed expression
	tokens [MaxTokens]Token
	length int

	// parsing state
	input   string
	pos     int
	current Token
	depth   int
	text    [maxTextToken]byte

	// evaluation state
	stack [MaxStack]float64
}

// New creates a new parser
func New(cfg *Config) (*Parser, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	return &Parser{
		roller: cfg.Roller,
	}, nil
}

// Parse reads an infix expression, replacing any previously parsed one. On
// failure it returns a *ParseError and the parser holds no expression.
func (p *Parser) Parse(input string) error {
	p.input = input
	p.pos = 0
	p.depth = 0
	p.length = 0

	// An END previous token marks the start of the expression.
	p.current = Token{Kind: TokenEnd}

	err := p.readToken()
	if err == nil {
		err = p.parseSum()
	}
	if err == nil && p.current.Kind != TokenEnd {
		if p.current.Kind == TokenCloseParen {
			err = p.fail(msgUnmatchedClose)
		} else {
			err = p.fail(msgInvalidToken)
		}
	}

	if err != nil {
		p.length = 0
		return err
	}
	return nil
}

// postfix returns the parsed expression in postfix order. The slice aliases
// the parser's buffer and is only valid until the next Parse.
func (p *Parser) postfix() []Token {
	return p.tokens[:p.length]
}

// Evaluate computes the parsed expression. Dice are rolled afresh on every
// call, so one parse can be evaluated repeatedly.
func (p *Parser) Evaluate() float64 {
	sp := 0
	for i := 0; i < p.length; i++ {
		tok := &p.tokens[i]
		switch tok.Kind {
		case TokenNumber:
			p.stack[sp] = tok.Value
			sp++
		case TokenAdd:
			p.stack[sp-2] += p.stack[sp-1]
			sp--
		case TokenSub:
			p.stack[sp-2] -= p.stack[sp-1]
			sp--
		case TokenMul:
			p.stack[sp-2] *= p.stack[sp-1]
			sp--
		case TokenDiv:
			p.stack[sp-2] /= p.stack[sp-1]
			sp--
		case TokenMod:
			p.stack[sp-2] = modulo(p.stack[sp-2], p.stack[sp-1])
			sp--
		case TokenPow:
			p.stack[sp-2] = math.Pow(p.stack[sp-2], p.stack[sp-1])
			sp--
		case TokenUnaryMinus:
			p.stack[sp-1] = -p.stack[sp-1]
		case TokenDice:
			p.stack[sp-2] = p.roller.RollTheBones(p.stack[sp-2], p.stack[sp-1])
			sp--
		case TokenFunction:
			p.stack[sp-1] = tok.Func.Apply(p.stack[sp-1], p.roller)
		}
	}

	// Never return negative zero.
	if sp == 0 || p.stack[0] == 0 {
		return 0
	}
	return p.stack[0]
}

// modulo truncates both operands to integers first. Operands that have no
// integer value give NaN.
func modulo(a, b float64) float64 {
	a, b = math.Trunc(a), math.Trunc(b)
	if b == 0 || !fitsInt(a) || !fitsInt(b) {
		return math.NaN()
	}
	return float64(int64(a) % int64(b))
}

func fitsInt(v float64) bool {
	return !math.IsNaN(v) && v > math.MinInt64 && v < math.MaxInt64
}

// parseSum handles addition and subtraction
func (p *Parser) parseSum() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if err := p.parseProduct(); err != nil {
		return err
	}
	for p.current.Kind == TokenAdd || p.current.Kind == TokenSub {
		op := p.current
		if err := p.readToken(); err != nil {
			return err
		}
		if err := p.parseProduct(); err != nil {
			return err
		}
		if err := p.addToken(op); err != nil {
			return err
		}
	}
	return nil
}

// parseProduct handles multiplication, division and modulo
func (p *Parser) parseProduct() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if err := p.parseNegation(); err != nil {
		return err
	}
	for p.current.Kind == TokenMul || p.current.Kind == TokenDiv || p.current.Kind == TokenMod {
		op := p.current
		if err := p.readToken(); err != nil {
			return err
		}
		if err := p.parseNegation(); err != nil {
			return err
		}
		if err := p.addToken(op); err != nil {
			return err
		}
	}
	return nil
}

// parseNegation handles unary minus, which applies to a whole power:
// -2^2 is -(2^2). Minuses stack.
func (p *Parser) parseNegation() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if p.current.Kind != TokenUnaryMinus {
		return p.parsePower()
	}

	op := p.current
	if err := p.readToken(); err != nil {
		return err
	}
	if err := p.parseNegation(); err != nil {
		return err
	}
	return p.addToken(op)
}

// parsePower handles the exponent operator, left associative
func (p *Parser) parsePower() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if err := p.parseRoll(); err != nil {
		return err
	}
	for p.current.Kind == TokenPow {
		op := p.current
		if err := p.readToken(); err != nil {
			return err
		}
		if err := p.parseExponent(); err != nil {
			return err
		}
		if err := p.addToken(op); err != nil {
			return err
		}
	}
	return nil
}

// parseExponent reads the right side of ^, which may itself be negated:
// 2^-2
func (p *Parser) parseExponent() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if p.current.Kind != TokenUnaryMinus {
		return p.parseRoll()
	}

	op := p.current
	if err := p.readToken(); err != nil {
		return err
	}
	if err := p.parseExponent(); err != nil {
		return err
	}
	return p.addToken(op)
}

// parseRoll handles the dice operator
func (p *Parser) parseRoll() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	if err := p.parseValue(); err != nil {
		return err
	}
	for p.current.Kind == TokenDice {
		op := p.current
		if err := p.readToken(); err != nil {
			return err
		}
		if err := p.parseValue(); err != nil {
			return err
		}
		if err := p.addToken(op); err != nil {
			return err
		}
	}
	return nil
}

// parseValue handles numbers, parenthesised expressions and function calls
func (p *Parser) parseValue() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	switch p.current.Kind {
	case TokenNumber:
		if err := p.addToken(p.current); err != nil {
			return err
		}
		return p.readToken()

	case TokenOpenParen:
		if err := p.readToken(); err != nil {
			return err
		}
		if p.current.Kind == TokenCloseParen {
			return p.fail(msgEmptyParens)
		}
		if err := p.parseSum(); err != nil {
			return err
		}
		if p.current.Kind != TokenCloseParen {
			return p.fail(msgMissingClose)
		}
		return p.readToken()

	case TokenFunction:
		fn := p.current
		if err := p.readToken(); err != nil {
			return err
		}
		if p.current.Kind == TokenCloseParen {
			return p.fail(msgMissingParameter)
		}
		if err := p.parseSum(); err != nil {
			return err
		}
		if p.current.Kind != TokenCloseParen {
			return p.fail(msgMissingClose)
		}
		if err := p.addToken(fn); err != nil {
			return err
		}
		return p.readToken()

	case TokenEnd:
		// An operator above wanted a value, but the expression ran out.
		return p.fail(msgUnexpectedEnd)
	}

	return p.fail(msgExpectedNumber)
}

func (p *Parser) addToken(tok Token) error {
	if p.length >= MaxTokens {
		return p.fail(msgTooManyTokens)
	}
	p.tokens[p.length] = tok
	p.length++
	return nil
}

// readToken reads the next token into p.current, using the previous token
// to settle context-dependent symbols
func (p *Parser) readToken() error {
	if err := p.enter(); err != nil {
		return err
	}
	defer p.leave()

	prev := p.current.Kind

	// Constants and functions. Only taken once a name has matched, so
	// letter operators such as d still work.
	if isAlnum(p.peek(0)) {
		n := 0
		for n < maxTextToken && (isAlnum(p.peek(0)) || p.peek(0) == '(') {
			c := toLower(p.peek(0))
			p.text[n] = c
			p.pos++
			n++
			if c == '(' {
				break
			}
		}

		if p.text[n-1] == '(' {
			if fn, ok := lookupFunction(string(p.text[:n-1])); ok {
				if prev.isValue() {
					p.current = Token{Kind: TokenMul}
					p.pos -= n
					return nil
				}
				p.current = Token{Kind: TokenFunction, Func: fn}
				return nil
			}
			n--
			p.pos--
		}

		// Drop letters off the end until a constant matches.
		for n > 0 {
			if v, ok := lookupConstant(string(p.text[:n])); ok {
				if prev.isValue() {
					p.current = Token{Kind: TokenMul}
					p.pos -= n
					return nil
				}
				p.current = Token{Kind: TokenNumber, Value: v}
				return nil
			}
			n--
			p.pos--
		}
	}

	c := p.peek(0)

	if isDigit(c) || (c == '.' && isDigit(p.peek(1))) {
		if prev.isValue() {
			p.current = Token{Kind: TokenMul}
			return nil
		}
		v, width := scanNumber(p.input[p.pos:])
		p.current = Token{Kind: TokenNumber, Value: v}
		p.pos += width
		return nil
	}

	// Percentile dice: d% is d100.
	if prev == TokenDice && c == '%' {
		p.current = Token{Kind: TokenNumber, Value: 100}
		p.pos++
		return nil
	}

	if !prev.isValue() {
		switch c {
		case '+':
			// Unary plus does nothing; skip to the next token.
			p.pos++
			return p.readToken()
		case '-':
			p.current = Token{Kind: TokenUnaryMinus}
			p.pos++
			return nil
		}
	}

	switch c {
	case '+':
		p.current = Token{Kind: TokenAdd}
	case '-':
		p.current = Token{Kind: TokenSub}
	case '*':
		p.current = Token{Kind: TokenMul}
	case '/':
		p.current = Token{Kind: TokenDiv}
	case '^':
		p.current = Token{Kind: TokenPow}
	case '%':
		p.current = Token{Kind: TokenMod}
	case 'd':
		// A bare d rolls one die.
		if !prev.isValue() {
			p.current = Token{Kind: TokenNumber, Value: 1}
			return nil
		}
		p.current = Token{Kind: TokenDice}
	case '(':
		if prev.isValue() {
			p.current = Token{Kind: TokenMul}
			return nil
		}
		p.current = Token{Kind: TokenOpenParen}
	case ')':
		p.current = Token{Kind: TokenCloseParen}
	default:
		if p.pos >= len(p.input) {
			p.current = Token{Kind: TokenEnd}
			p.pos++
			return nil
		}
		p.pos++
		return p.fail(msgUnrecognised)
	}

	p.pos++
	return nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > MaxDepth {
		return p.fail(msgTooDeep)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) fail(msg string) error {
	return &ParseError{
		Message:    msg,
		Expression: p.input,
		Position:   p.pos,
	}
}

// peek returns the byte offset bytes ahead, or 0 past the end
func (p *Parser) peek(offset int) byte {
	i := p.pos + offset
	if i < 0 || i >= len(p.input) {
		return 0
	}
	return p.input[i]
}

// scanNumber reads the longest number at the start of s: a decimal with
// optional fraction and exponent, or a 0x hex integer. It returns the value
// and the number of bytes read.
func scanNumber(s string) (float64, int) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && isHex(s[2]) {
		v := 0.0
		i := 2
		for i < len(s) && isHex(s[i]) {
			v = v*16 + float64(hexValue(s[i]))
			i++
		}
		return v, i
	}

	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	// Out of range literals come back as infinity or zero, like strtod.
	v, _ := strconv.ParseFloat(s[:i], 64)
	return v, i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

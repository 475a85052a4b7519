package expression

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/KirkDiggler/rollengine/internal/expression/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParserTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *mocks.MockRoller
	parser     *Parser
}

func (s *ParserTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = mocks.NewMockRoller(s.mockCtrl)

	var err error
	s.parser, err = New(&Config{Roller: s.mockRoller})
	s.Require().NoError(err)
}

func (s *ParserTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

func (s *ParserTestSuite) eval(input string) float64 {
	s.Require().NoError(s.parser.Parse(input), input)
	return s.parser.Evaluate()
}

func (s *ParserTestSuite) parseError(input string) *ParseError {
	err := s.parser.Parse(input)
	s.Require().Error(err, input)

	var perr *ParseError
	s.Require().True(errors.As(err, &perr), input)
	s.Empty(s.parser.postfix(), "failed parse keeps no tokens")
	return perr
}

func (s *ParserTestSuite) TestArithmetic() {
	cases := []struct {
		input string
		want  float64
	}{
		{"1+2", 3},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-4-3", 3},
		{"12/4/3", 1},
		{"7%3", 1},
		{"-7%3", -1},
		{"7.9%3", 1},
		{"2^3", 8},
		{"2^3^2", 64},
		{"-2^2", -4},
		{"--2", 2},
		{"2^-2", 0.25},
		{"+5", 5},
		{"3*-2", -6},
		{".5+.5", 1},
		{"1e3", 1000},
		{"2.5E-1", 0.25},
		{"0x1F", 31},
		{"0xff+1", 256},
	}

	for _, tc := range cases {
		s.Equal(tc.want, s.eval(tc.input), tc.input)
	}
}

func (s *ParserTestSuite) TestImplicitMultiplication() {
	s.Equal(12.0, s.eval("3(4)"))
	s.Equal(20.0, s.eval("(2)(10)"))
	s.InDelta(3*math.Pi, s.eval("3pi"), 1e-12)
	s.Equal(20.0, s.eval("2x"))
	s.Equal(6.0, s.eval("2abs(-3)"))
	s.Equal(20.0, s.eval("(4)5"))
}

func (s *ParserTestSuite) TestConstants() {
	cases := map[string]float64{
		"i":    1,
		"iv":   4,
		"vi":   6,
		"viii": 8,
		"X":    10,
		"PI":   math.Pi,
	}
	for input, want := range cases {
		s.Equal(want, s.eval(input), input)
	}

	// Longest matching prefix wins, the rest is read again.
	s.Equal(3.0*10, s.eval("iiix"))
}

func (s *ParserTestSuite) TestFunctions() {
	cases := []struct {
		input string
		want  float64
	}{
		{"abs(-3)", 3},
		{"ceil(1.2)", 2},
		{"floor(1.8)", 1},
		{"round(2.5)", 3},
		{"trunc(-2.7)", -2},
		{"sqr(4)", 16},
		{"sqrt(16)", 4},
		{"fac(5)", 120},
		{"fac(4.6)", 120},
		{"deg(pi)", 180},
		{"todeg(pi)", 180},
		{"log10(1000)", 3},
		{"logten(100)", 2},
		{"ABS(-1)", 1},
		{"abs(abs(-2)-5)", 3},
	}
	for _, tc := range cases {
		s.InDelta(tc.want, s.eval(tc.input), 1e-9, tc.input)
	}
}

func (s *ParserTestSuite) TestRanUsesRoller() {
	s.mockRoller.EXPECT().Random(uint32(20)).Return(uint32(17))

	s.Equal(17.0, s.eval("ran(20)"))
}

func (s *ParserTestSuite) TestDice() {
	s.mockRoller.EXPECT().RollTheBones(2.0, 6.0).Return(7.0)

	s.Equal(10.0, s.eval("2d6+3"))
}

func (s *ParserTestSuite) TestDiceBindsTighterThanArithmetic() {
	gomock.InOrder(
		s.mockRoller.EXPECT().RollTheBones(1.0, 4.0).Return(3.0),
		s.mockRoller.EXPECT().RollTheBones(2.0, 8.0).Return(9.0),
	)

	s.Equal(-3.0*2+9, s.eval("-d4*2+2d8"))
}

func (s *ParserTestSuite) TestPercentileDice() {
	s.mockRoller.EXPECT().RollTheBones(1.0, 100.0).Return(42.0)
	s.Equal(42.0, s.eval("d%"))

	s.mockRoller.EXPECT().RollTheBones(3.0, 100.0).Return(150.0)
	s.Equal(150.0, s.eval("3d%"))
}

func (s *ParserTestSuite) TestChainedDice() {
	gomock.InOrder(
		s.mockRoller.EXPECT().RollTheBones(2.0, 4.0).Return(5.0),
		s.mockRoller.EXPECT().RollTheBones(5.0, 6.0).Return(21.0),
	)

	s.Equal(21.0, s.eval("2d4d6"))
}

func (s *ParserTestSuite) TestEvaluateRollsAgain() {
	gomock.InOrder(
		s.mockRoller.EXPECT().RollTheBones(1.0, 6.0).Return(2.0),
		s.mockRoller.EXPECT().RollTheBones(1.0, 6.0).Return(5.0),
	)

	s.Require().NoError(s.parser.Parse("d6"))
	s.Equal(2.0, s.parser.Evaluate())
	s.Equal(5.0, s.parser.Evaluate())
}

func (s *ParserTestSuite) TestPostfixOrder() {
	s.Require().NoError(s.parser.Parse("1+2*3"))

	var kinds []TokenKind
	for _, tok := range s.parser.postfix() {
		kinds = append(kinds, tok.Kind)
	}
	s.Equal([]TokenKind{TokenNumber, TokenNumber, TokenNumber, TokenMul, TokenAdd}, kinds)
}

func (s *ParserTestSuite) TestNegativeZeroNormalised() {
	v := s.eval("-0")
	s.Equal(0.0, v)
	s.False(math.Signbit(v))
}

func (s *ParserTestSuite) TestModuloWithoutIntegerValue() {
	s.True(math.IsNaN(s.eval("5%0")))
	s.True(math.IsNaN(s.eval("5%0.5")))
	s.True(math.IsNaN(s.eval("1e300%7")))
}

func (s *ParserTestSuite) TestMissingCloseMarksEnd() {
	perr := s.parseError("(1+2")

	s.Equal(msgMissingClose, perr.Message)
	s.Equal(4, perr.Offset())
	s.Equal("----^", perr.Marker())
	s.Equal([]string{"Error parsing expression.", msgMissingClose, "(1+2", "----^"}, perr.Lines())
}

func (s *ParserTestSuite) TestErrors() {
	cases := []struct {
		input  string
		msg    string
		offset int
	}{
		{"", msgUnexpectedEnd, 0},
		{"1+", msgUnexpectedEnd, 2},
		{"1+2)", msgUnmatchedClose, 3},
		{"()", msgEmptyParens, 1},
		{"abs()", msgMissingParameter, 4},
		{"abs(1", msgMissingClose, 5},
		{"*2", msgExpectedNumber, 0},
		{"2 3", msgUnrecognised, 1},
		{"1+$", msgUnrecognised, 2},
		{"2d6D", msgUnrecognised, 3},
	}

	for _, tc := range cases {
		perr := s.parseError(tc.input)
		s.Equal(tc.msg, perr.Message, tc.input)
		s.Equal(tc.offset, perr.Offset(), tc.input)
		s.Equal(tc.input, perr.Expression, tc.input)
	}
}

func (s *ParserTestSuite) TestDeepNestingIsRejected() {
	input := strings.Repeat("(", 5000) + "1" + strings.Repeat(")", 5000)

	perr := s.parseError(input)
	s.Equal(msgTooDeep, perr.Message)
}

func (s *ParserTestSuite) TestModerateNestingParses() {
	input := strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100)

	s.Equal(1.0, s.eval(input))
}

func (s *ParserTestSuite) TestTooManyTokens() {
	input := strings.Repeat("1+", MaxTokens) + "1"

	perr := s.parseError(input)
	s.Equal(msgTooManyTokens, perr.Message)
}

func (s *ParserTestSuite) TestParseAfterFailureStartsClean() {
	s.parseError("(1+2")

	s.Equal(3.0, s.eval("1+2"))
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrNilRoller)
}

func TestEvaluateWithoutParseIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, err := New(&Config{Roller: mocks.NewMockRoller(ctrl)})
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.Evaluate())
}

func TestFactorialOverflows(t *testing.T) {
	assert.True(t, math.IsInf(Factorial(200), 1))
	assert.Equal(t, 1.0, Factorial(0))
	assert.Equal(t, 1.0, Factorial(-3))
}

func TestLookups(t *testing.T) {
	v, ok := lookupConstant("pi")
	assert.True(t, ok)
	assert.Equal(t, math.Pi, v)

	fn, ok := lookupFunction("logten")
	assert.True(t, ok)
	assert.Equal(t, FuncLog10, fn)

	_, ok = lookupFunction("nope")
	assert.False(t, ok)
}

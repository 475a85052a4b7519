package roll

import (
	"errors"
	"math"
	"strings"

	"github.com/KirkDiggler/rollengine/internal/expression"
	"github.com/KirkDiggler/rollengine/internal/models"
)

// service implements the Service interface. It holds per-roll state, so one
// service must only ever be driven by a single goroutine.
type service struct {
	dice   Dice
	parser *expression.Parser

	// kept between rolls
	fuzzFactor float64

	// set for each roll
	roll     *models.Roll
	results  *models.RollResults
	warnings int
}

// New creates a new roll service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Dice == nil {
		return nil, ErrNilDice
	}

	s := &service{
		dice: cfg.Dice,
	}

	parser, err := expression.New(&expression.Config{Roller: s})
	if err != nil {
		return nil, err
	}
	s.parser = parser

	s.fuzzFactor = cfg.FuzzFactor
	if s.fuzzFactor <= 0 {
		s.fuzzFactor = s.RollTheBones(1, 100)
	}

	return s, nil
}

// Run processes a single roll
func (s *service) Run(roll *models.Roll) *models.RollResults {
	results := &models.RollResults{}

	if err := roll.Validate(); err != nil {
		results.AddError("Error: " + err.Error())
		return results
	}

	s.roll = roll
	s.results = results
	s.warnings = 0
	defer func() {
		s.roll = nil
		s.results = nil
	}()

	var err error
	switch roll.Type {
	case models.RollTypeCalc:
		err = s.rollExpression()
	case models.RollTypeRoll:
		err = s.dispatch()
	case models.RollTypeScores:
		err = s.scores()
	default:
		err = s.fail("Error: Unknown roll type.")
	}

	// Aborted rolls have already explained themselves.
	if err != nil && !errors.Is(err, errRollAborted) {
		s.fail("Error: " + err.Error())
	}

	return results
}

// RollTheBones rolls dice for expressions and presets, reporting
// corrections as warnings on the current roll
func (s *service) RollTheBones(count, sides float64) float64 {
	return s.dice.RollTheBones(count, sides, s)
}

// Random returns a number between 1 and max inclusive
func (s *service) Random(max uint32) uint32 {
	return s.dice.Random(max)
}

// Warn adds a warning to the current roll. Past the limit one notice is
// added instead, then warnings are dropped.
func (s *service) Warn(msg string) {
	if s.results == nil {
		return
	}

	switch {
	case s.warnings < maxWarnings:
		s.warnings++
		s.results.AddError(msg)
	case s.warnings == maxWarnings:
		s.warnings++
		s.results.AddError(msgWarningsExceeded)
	}
}

// fail replaces everything added so far with the given error lines and
// returns the abort signal
func (s *service) fail(lines ...string) error {
	s.results.Clear()
	for _, line := range lines {
		s.results.AddError(line)
	}
	return errRollAborted
}

// readExpression evaluates a numeric parameter. Percentile shorthands the
// parser cannot read are handled first.
func (s *service) readExpression(input string) (float64, error) {
	if v, ok := s.percentile(input); ok {
		return v, nil
	}

	if err := s.parser.Parse(input); err != nil {
		return 0, s.parseFailure(err)
	}
	return s.parser.Evaluate(), nil
}

// parseFailure aborts the roll with the lines describing a parse error
func (s *service) parseFailure(err error) error {
	var perr *expression.ParseError
	if errors.As(err, &perr) {
		return s.fail(perr.Lines()...)
	}
	return s.fail("Error: " + err.Error())
}

// isPercentile reports whether input is a percentile shorthand
func isPercentile(input string) bool {
	return input == "%" || strings.EqualFold(input, "%HL") || strings.EqualFold(input, "d%HL")
}

// percentile handles "%" as 1d100, and "%HL" or "d%HL" as a pair of ten
// sided dice read as tens and ones, where two zeros make 100
func (s *service) percentile(input string) (float64, bool) {
	if !isPercentile(input) {
		return 0, false
	}

	if input == "%" {
		return s.RollTheBones(1, 100), true
	}

	tens := s.RollTheBones(1, 10) - 1
	ones := s.RollTheBones(1, 10) - 1
	if tens == 0 && ones == 0 {
		return 100, true
	}
	return tens*10 + ones, true
}

// readRounded evaluates a parameter and rounds it to a whole number
func (s *service) readRounded(input string) (float64, error) {
	v, err := s.readExpression(input)
	if err != nil {
		return 0, err
	}
	return math.Round(v), nil
}

// word returns the lowercased expression word at i, or ""
func (s *service) word(i int) string {
	if i >= len(s.roll.Expression) {
		return ""
	}
	return strings.ToLower(s.roll.Expression[i])
}

// params returns how many words the roll has
func (s *service) params() int {
	return len(s.roll.Expression)
}

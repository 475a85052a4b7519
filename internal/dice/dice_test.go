package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type collector struct {
	warnings []string
}

func (c *collector) Warn(msg string) {
	c.warnings = append(c.warnings, msg)
}

type DiceTestSuite struct {
	suite.Suite
	roller *Roller
	warner *collector
}

func (s *DiceTestSuite) SetupTest() {
	s.roller = New(&Config{Seed: 42})
	s.warner = &collector{}
}

func TestDiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) TestRollStaysInRange() {
	cases := []struct {
		count float64
		sides float64
	}{
		{0, 1}, {1, 1}, {1, 6}, {2, 6}, {3, 10}, {40, 20}, {100, 100}, {10000, 2}, {1, 10000},
	}

	for _, tc := range cases {
		total := s.roller.RollTheBones(tc.count, tc.sides, s.warner)
		s.GreaterOrEqual(total, tc.count, "%vd%v", tc.count, tc.sides)
		s.LessOrEqual(total, tc.count*tc.sides, "%vd%v", tc.count, tc.sides)
	}
	s.Empty(s.warner.warnings)
}

func (s *DiceTestSuite) TestDeterministicForSeed() {
	other := New(&Config{Seed: 42})

	for i := 0; i < 50; i++ {
		s.Equal(s.roller.RollTheBones(3, 6, nil), other.RollTheBones(3, 6, nil))
	}
}

func (s *DiceTestSuite) TestNegativeCountRollsMaximum() {
	// Negative counts clamp to the maximum dice count, not to zero, even
	// though the warning text says 0 dice.
	total := s.roller.RollTheBones(-5, 6, s.warner)

	s.GreaterOrEqual(total, float64(MaxDice))
	s.LessOrEqual(total, float64(MaxDice*6))
	s.Require().Len(s.warner.warnings, 1)
	s.Equal("Warning: Dice roll of -5d6 specified a negative number of dice; 0d6 will be rolled instead.", s.warner.warnings[0])
}

func (s *DiceTestSuite) TestTooManyDiceCapped() {
	total := s.roller.RollTheBones(20000, 1, s.warner)

	s.Equal(float64(MaxDice), total)
	s.Require().Len(s.warner.warnings, 1)
	s.Contains(s.warner.warnings[0], "capped at the maximum of 10000d1")
}

func (s *DiceTestSuite) TestSidesClamped() {
	total := s.roller.RollTheBones(3, 0, s.warner)
	s.Equal(3.0, total)

	s.roller.RollTheBones(1, 20000, s.warner)

	s.Require().Len(s.warner.warnings, 2)
	s.Equal("Warning: Dice roll of 3d0 specified zero or negative sides to a die; 3d1 will be rolled instead.", s.warner.warnings[0])
	s.Equal("Warning: Dice roll of 1d20000 exceeded the maximum sides to a die, and was capped at the maximum of 1d10000.", s.warner.warnings[1])
}

func (s *DiceTestSuite) TestNonIntegralRoundedInOneWarning() {
	total := s.roller.RollTheBones(3.4, 6.6, s.warner)

	s.GreaterOrEqual(total, 3.0)
	s.LessOrEqual(total, 21.0)
	s.Require().Len(s.warner.warnings, 1)
	s.Equal("Warning: Dice roll of 3.4d6.6 contained non-integral values, and was rounded to 3d7.", s.warner.warnings[0])
}

func (s *DiceTestSuite) TestRoundingTiesAwayFromZero() {
	total := s.roller.RollTheBones(0.5, 1, s.warner)

	s.Equal(1.0, total)
	s.Require().Len(s.warner.warnings, 1)
	s.Contains(s.warner.warnings[0], "rounded to 1d1")
}

func (s *DiceTestSuite) TestNilWarnerIsAllowed() {
	s.NotPanics(func() {
		s.roller.RollTheBones(-1, -1, nil)
	})
}

func TestRandomCoversEveryFace(t *testing.T) {
	roller := New(&Config{Seed: 7})
	seen := make(map[uint32]int)

	for i := 0; i < 6000; i++ {
		v := roller.Random(6)
		require.GreaterOrEqual(t, v, uint32(1))
		require.LessOrEqual(t, v, uint32(6))
		seen[v]++
	}

	assert.Len(t, seen, 6)
	for face, n := range seen {
		assert.Greater(t, n, 800, "face %d", face)
	}
}

func TestRandomExtremes(t *testing.T) {
	low := New(&Config{Source: &fixedSource{value: 0}})
	assert.Equal(t, uint32(1), low.Random(6))

	high := New(&Config{Source: &fixedSource{value: int64(randRange-1) << 32}})
	assert.Equal(t, uint32(6), high.Random(6))
	assert.Equal(t, uint32(10000), high.Random(10000))
}

func TestFormat(t *testing.T) {
	cases := map[float64]string{
		12:        "12",
		0.5:       "0.5",
		100000:    "100000",
		1e20:      "1e+20",
		1234567.5: "1234567.5",
		-3:        "-3",
	}
	for in, want := range cases {
		assert.Equal(t, want, Format(in))
	}
}

type fixedSource struct {
	value int64
}

func (f *fixedSource) Int63() int64 { return f.value }
func (f *fixedSource) Seed(int64)   {}

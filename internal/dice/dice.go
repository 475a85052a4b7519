package dice

import (
	"math"
	"math/rand"
	"strconv"
	"time"
)

const (
	// MaxDice is the most dice a single roll may throw
	MaxDice = 10000

	// MaxSides is the most sides a single die may have
	MaxSides = 10000

	// randRange is one past the largest value Int31 returns
	randRange = 1 << 31
)

// Warner receives warnings about corrections made to a roll
type Warner interface {
	Warn(msg string)
}

// Roller provides dice rolling functionality
type Roller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64

	// Optional source, overriding Seed. Lets tests script die faces.
	Source rand.Source
}

// New creates a new dice roller
func New(cfg *Config) *Roller {
	var source rand.Source
	switch {
	case cfg != nil && cfg.Source != nil:
		source = cfg.Source
	case cfg != nil && cfg.Seed != 0:
		source = rand.NewSource(cfg.Seed)
	default:
		source = rand.NewSource(time.Now().UnixNano())
	}

	return &Roller{
		random: rand.New(source),
	}
}

// Random returns a number between 1 and max inclusive. Where max does not
// divide the generator's range evenly, the leftover bias is spread across
// the whole range instead of piling up on the low faces.
func (r *Roller) Random(max uint32) uint32 {
	return uint32(1.0 + float64(r.random.Int31())*(float64(max)/randRange))
}

// RollTheBones sums count dice of the given number of sides. Out of range or
// non-integral inputs are corrected first and each correction is reported to
// w, which may be nil.
func (r *Roller) RollTheBones(count, sides float64, w Warner) float64 {
	warn := func(msg string) {
		if w != nil {
			w.Warn(msg)
		}
	}

	// A negative count rolls the maximum, whatever the warning says.
	if count < 0 {
		warn("Warning: Dice roll of " + Format(count) + "d" + Format(sides) +
			" specified a negative number of dice; 0d" + Format(sides) + " will be rolled instead.")
		count = MaxDice
	}
	if count > MaxDice {
		warn("Warning: Dice roll of " + Format(count) + "d" + Format(sides) +
			" exceeded the maximum number of dice, and was capped at the maximum of 10000d" + Format(sides) + ".")
		count = MaxDice
	}

	if sides < 1 {
		warn("Warning: Dice roll of " + Format(count) + "d" + Format(sides) +
			" specified zero or negative sides to a die; " + Format(count) + "d1 will be rolled instead.")
		sides = 1
	}
	if sides > MaxSides {
		warn("Warning: Dice roll of " + Format(count) + "d" + Format(sides) +
			" exceeded the maximum sides to a die, and was capped at the maximum of " + Format(count) + "d10000.")
		sides = MaxSides
	}

	// NaN fails every comparison above; treat it as no dice.
	if math.IsNaN(count) || math.IsNaN(sides) {
		warn("Warning: Dice roll of " + Format(count) + "d" + Format(sides) +
			" was not a number, and was treated as 0d1.")
		return 0
	}

	if math.Round(count) != count || math.Round(sides) != sides {
		oldCount, oldSides := count, sides
		count = math.Round(count)
		sides = math.Round(sides)
		warn("Warning: Dice roll of " + Format(oldCount) + "d" + Format(oldSides) +
			" contained non-integral values, and was rounded to " + Format(count) + "d" + Format(sides) + ".")
	}

	total := 0.0
	n := int(count)
	faces := uint32(sides)
	for i := 0; i < n; i++ {
		total += float64(r.Random(faces))
	}
	return total
}

// Format renders a number the way results show it: up to 10 significant
// digits, trailing zeros dropped
func Format(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', 10, 64)
}

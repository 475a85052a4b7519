package roll

const (
	// maxWarnings is how many warnings one roll may show
	maxWarnings = 3

	// maxPool is the most dice a pool roll, or repeats a repeated roll, may have
	maxPool = 40

	// maxShadowrunDie is where a Shadowrun die stops exploding
	maxShadowrunDie = 120

	// maxCrapsRolls is the most rolls a game of craps may take
	maxCrapsRolls = 10
)

// Config holds configuration for the roll service
type Config struct {
	// Dice rolls every die
	Dice Dice

	// FuzzFactor is how many joints may be passed before a bust. Zero rolls
	// a fresh 1d100.
	FuzzFactor float64
}

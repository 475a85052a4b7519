package roll

import (
	"github.com/KirkDiggler/rollengine/internal/dice"
	"github.com/KirkDiggler/rollengine/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rollengine/internal/services/roll Service,Dice

// Service runs roll requests
type Service interface {
	// Run processes a roll and returns its results. Failures are reported
	// as error lines in the results, never as a Go error.
	Run(roll *models.Roll) *models.RollResults
}

// Dice rolls the dice behind every roll
type Dice interface {
	// Random returns a number between 1 and max inclusive
	Random(max uint32) uint32

	// RollTheBones sums count dice of the given number of sides, reporting
	// corrections to w
	RollTheBones(count, sides float64, w dice.Warner) float64
}

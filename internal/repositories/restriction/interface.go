package restriction

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rollengine/internal/repositories/restriction Repository

import (
	"context"

	"github.com/KirkDiggler/rollengine/internal/models"
)

// Repository persists the roll restriction set on each channel
type Repository interface {
	// SaveRestriction sets a channel's restriction, replacing any previous one
	SaveRestriction(ctx context.Context, input *SaveRestrictionInput) (*models.Restriction, error)

	// GetRestriction retrieves a channel's restriction
	GetRestriction(ctx context.Context, input *GetRestrictionInput) (*models.Restriction, error)

	// DeleteRestriction lifts a channel's restriction
	DeleteRestriction(ctx context.Context, input *DeleteRestrictionInput) error

	// ListRestrictions retrieves every restricted channel in a guild
	ListRestrictions(ctx context.Context, input *ListRestrictionsInput) (*ListRestrictionsOutput, error)

	// SetUserOverride exempts a user from the channel's restriction, bans
	// them from rolling there, or clears either
	SetUserOverride(ctx context.Context, input *SetUserOverrideInput) error

	// GetUserOverride retrieves a user's override in a channel, OverrideNone
	// when there is none
	GetUserOverride(ctx context.Context, input *GetUserOverrideInput) (models.UserOverride, error)
}

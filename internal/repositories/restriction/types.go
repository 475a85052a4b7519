package restriction

import (
	"github.com/KirkDiggler/rollengine/internal/common/clock"
	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis restriction repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps UpdatedAt
	Clock clock.Clock
}

// SaveRestrictionInput contains parameters for restricting a channel
type SaveRestrictionInput struct {
	GuildID   string
	ChannelID string
	Level     models.RestrictionLevel
	SetBy     string
}

// GetRestrictionInput contains parameters for retrieving a restriction
type GetRestrictionInput struct {
	ChannelID string
}

// DeleteRestrictionInput contains parameters for lifting a restriction
type DeleteRestrictionInput struct {
	ChannelID string
}

// ListRestrictionsInput contains parameters for listing a guild's restrictions
type ListRestrictionsInput struct {
	GuildID string
}

// ListRestrictionsOutput contains a guild's restrictions
type ListRestrictionsOutput struct {
	Restrictions []*models.Restriction
}

// SetUserOverrideInput contains parameters for exempting or banning a user
// in a channel. OverrideNone removes the user's entry.
type SetUserOverrideInput struct {
	ChannelID string
	UserID    string
	Override  models.UserOverride
}

// GetUserOverrideInput contains parameters for reading a user's override
type GetUserOverrideInput struct {
	ChannelID string
	UserID    string
}

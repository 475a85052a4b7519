package models

import "time"

// RestrictionLevel limits who may roll in a channel
type RestrictionLevel string

const (
	// RestrictionNone lets everyone roll
	RestrictionNone RestrictionLevel = ""

	// RestrictionRoled limits rolling to members holding at least one role
	RestrictionRoled RestrictionLevel = "v"

	// RestrictionModerators limits rolling to members who can manage messages
	RestrictionModerators RestrictionLevel = "o"

	// RestrictionDisabled turns rolling off
	RestrictionDisabled RestrictionLevel = "b"
)

// IsValid reports whether the level is one of the known levels
func (l RestrictionLevel) IsValid() bool {
	switch l {
	case RestrictionNone, RestrictionRoled, RestrictionModerators, RestrictionDisabled:
		return true
	}
	return false
}

// Description says who may roll at this level
func (l RestrictionLevel) Description() string {
	switch l {
	case RestrictionRoled:
		return "members with a role"
	case RestrictionModerators:
		return "moderators"
	case RestrictionDisabled:
		return "nobody"
	default:
		return "everyone"
	}
}

// Restriction is the roll restriction set on a channel
type Restriction struct {
	ChannelID string
	GuildID   string
	Level     RestrictionLevel
	SetBy     string
	UpdatedAt time.Time
}

// UserOverride exempts a user from, or bans them from, rolling in a channel
// regardless of the channel's level
type UserOverride string

const (
	// OverrideNone leaves the user to the channel's level
	OverrideNone UserOverride = ""

	// OverrideAllow always lets the user roll
	OverrideAllow UserOverride = "allow"

	// OverrideDeny never lets the user roll
	OverrideDeny UserOverride = "deny"
)

// IsValid reports whether the override is one of the known overrides
func (o UserOverride) IsValid() bool {
	switch o {
	case OverrideNone, OverrideAllow, OverrideDeny:
		return true
	}
	return false
}

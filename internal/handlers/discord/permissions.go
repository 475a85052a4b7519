package discord

import (
	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Denial messages shown to the requester
const (
	msgNeedsRole       = "You have no role and can't manage messages, and ROLL and SCORES are limited to members with a role in this channel."
	msgNeedsModerator  = "You can't manage messages, and ROLL and SCORES are limited to moderators in this channel."
	msgRollingDisabled = "ROLL and SCORES are disabled in this channel."
	msgBannedFromRoll  = "You're banned from using ROLL and SCORES in this channel."
	msgFuzzFactor      = "Permission Denied - ROLL FUZZFACTOR requires the Administrator permission."
	msgNeedsManage     = "You must be able to manage channels to change roll restrictions here."
)

// hasPermission reports whether the member holds perm in the interaction's
// channel. Administrators hold every permission.
func hasPermission(member *discordgo.Member, perm int64) bool {
	if member == nil {
		return false
	}
	if member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return member.Permissions&perm != 0
}

// checkRestriction returns why the member may not roll, or "" when they
// may. A user override beats the channel's level either way.
func checkRestriction(level models.RestrictionLevel, override models.UserOverride, member *discordgo.Member) string {
	switch override {
	case models.OverrideAllow:
		return ""
	case models.OverrideDeny:
		return msgBannedFromRoll
	}

	moderator := hasPermission(member, discordgo.PermissionManageMessages)

	switch level {
	case models.RestrictionRoled:
		if moderator || (member != nil && len(member.Roles) > 0) {
			return ""
		}
		return msgNeedsRole
	case models.RestrictionModerators:
		if moderator {
			return ""
		}
		return msgNeedsModerator
	case models.RestrictionDisabled:
		return msgRollingDisabled
	}
	return ""
}

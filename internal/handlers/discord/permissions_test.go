package discord

import (
	"testing"

	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCheckRestriction(t *testing.T) {
	plain := &discordgo.Member{}
	roled := &discordgo.Member{Roles: []string{"role-1"}}
	moderator := &discordgo.Member{Permissions: discordgo.PermissionManageMessages}
	admin := &discordgo.Member{Permissions: discordgo.PermissionAdministrator}

	tests := []struct {
		name     string
		level    models.RestrictionLevel
		override models.UserOverride
		member   *discordgo.Member
		want     string
	}{
		{"unrestricted", models.RestrictionNone, models.OverrideNone, plain, ""},
		{"unrestricted outside a guild", models.RestrictionNone, models.OverrideNone, nil, ""},
		{"roled without role", models.RestrictionRoled, models.OverrideNone, plain, msgNeedsRole},
		{"roled with role", models.RestrictionRoled, models.OverrideNone, roled, ""},
		{"roled as moderator", models.RestrictionRoled, models.OverrideNone, moderator, ""},
		{"moderators with role only", models.RestrictionModerators, models.OverrideNone, roled, msgNeedsModerator},
		{"moderators as moderator", models.RestrictionModerators, models.OverrideNone, moderator, ""},
		{"moderators as admin", models.RestrictionModerators, models.OverrideNone, admin, ""},
		{"disabled as admin", models.RestrictionDisabled, models.OverrideNone, admin, msgRollingDisabled},
		{"allowed user in disabled channel", models.RestrictionDisabled, models.OverrideAllow, plain, ""},
		{"allowed user without role", models.RestrictionRoled, models.OverrideAllow, plain, ""},
		{"denied user in open channel", models.RestrictionNone, models.OverrideDeny, plain, msgBannedFromRoll},
		{"denied admin", models.RestrictionNone, models.OverrideDeny, admin, msgBannedFromRoll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkRestriction(tt.level, tt.override, tt.member))
		})
	}
}

func TestHasPermission(t *testing.T) {
	assert.False(t, hasPermission(nil, discordgo.PermissionManageChannels))
	assert.False(t, hasPermission(&discordgo.Member{}, discordgo.PermissionManageChannels))
	assert.True(t, hasPermission(&discordgo.Member{Permissions: discordgo.PermissionManageChannels}, discordgo.PermissionManageChannels))
	assert.True(t, hasPermission(&discordgo.Member{Permissions: discordgo.PermissionAdministrator}, discordgo.PermissionManageChannels))
}

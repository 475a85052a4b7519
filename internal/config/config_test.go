package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, int64(0), cfg.RollSeed)
	assert.Equal(t, 50, cfg.QueueSize)
	assert.ErrorIs(t, cfg.ValidateBot(), ErrMissingToken)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ROLL_SEED", "42")
	t.Setenv("ROLL_QUEUE_SIZE", "10")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, int64(42), cfg.RollSeed)
	assert.Equal(t, 10, cfg.QueueSize)
	assert.NoError(t, cfg.ValidateBot())
}

func TestLoadFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("GUILD_ID=guild-1\nAPPLICATION_ID=app-1\n"), 0o600))

	// godotenv sets the variables for the process; clear them afterwards.
	t.Setenv("GUILD_ID", "")
	t.Setenv("APPLICATION_ID", "")
	os.Unsetenv("GUILD_ID")
	os.Unsetenv("APPLICATION_ID")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "guild-1", cfg.GuildID)
	assert.Equal(t, "app-1", cfg.ApplicationID)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "parse env")
}

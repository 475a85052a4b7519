package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when the bot has no Discord token
var ErrMissingToken = errors.New("DISCORD_TOKEN environment variable is required")

// Config is everything the bot and CLI read from the environment
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Engine
	RollSeed  int64 `env:"ROLL_SEED" envDefault:"0"`
	QueueSize int   `env:"ROLL_QUEUE_SIZE" envDefault:"50"`
}

// Load reads the given .env files, if they exist, then decodes the
// environment. Variables already set win over the files. With no files
// named, ".env" in the working directory is tried.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ValidateBot checks the settings only the Discord bot needs
func (c *Config) ValidateBot() error {
	if c.DiscordToken == "" {
		return ErrMissingToken
	}
	return nil
}

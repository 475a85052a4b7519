package restriction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/rollengine/internal/common/clock"
	"github.com/KirkDiggler/rollengine/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	restrictionKeyPrefix  = "restriction:"
	guildChannelKeyPrefix = "guild_restrictions:"
	userOverrideKeyPrefix = "restriction_users:"
)

var (
	// ErrRestrictionNotFound is returned when a channel has no restriction
	ErrRestrictionNotFound = errors.New("restriction not found")

	// ErrInvalidLevel is returned when saving an unknown level
	ErrInvalidLevel = errors.New("invalid restriction level")

	// ErrInvalidOverride is returned when saving an unknown user override
	ErrInvalidOverride = errors.New("invalid user override")
)

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed restriction repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
	}, nil
}

// SaveRestriction persists a channel's restriction. Saving RestrictionNone
// is the same as deleting it.
func (r *redisRepository) SaveRestriction(ctx context.Context, input *SaveRestrictionInput) (*models.Restriction, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	if !input.Level.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, input.Level)
	}

	restriction := &models.Restriction{
		ChannelID: input.ChannelID,
		GuildID:   input.GuildID,
		Level:     input.Level,
		SetBy:     input.SetBy,
		UpdatedAt: r.clock.Now(),
	}

	if input.Level == models.RestrictionNone {
		if err := r.DeleteRestriction(ctx, &DeleteRestrictionInput{ChannelID: input.ChannelID}); err != nil {
			return nil, err
		}
		return restriction, nil
	}

	restrictionJSON, err := json.Marshal(restriction)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal restriction: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, restrictionKeyPrefix+input.ChannelID, restrictionJSON, 0)
	if input.GuildID != "" {
		pipe.SAdd(ctx, guildChannelKeyPrefix+input.GuildID, input.ChannelID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save restriction: %w", err)
	}

	return restriction, nil
}

// GetRestriction retrieves a channel's restriction from Redis
func (r *redisRepository) GetRestriction(ctx context.Context, input *GetRestrictionInput) (*models.Restriction, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	restrictionJSON, err := r.client.Get(ctx, restrictionKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRestrictionNotFound
		}
		return nil, fmt.Errorf("failed to get restriction: %w", err)
	}

	var restriction models.Restriction
	if err := json.Unmarshal([]byte(restrictionJSON), &restriction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal restriction: %w", err)
	}

	return &restriction, nil
}

// DeleteRestriction removes a channel's restriction from Redis. Deleting a
// channel with no restriction is not an error.
func (r *redisRepository) DeleteRestriction(ctx context.Context, input *DeleteRestrictionInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	restriction, err := r.GetRestriction(ctx, &GetRestrictionInput{ChannelID: input.ChannelID})
	if errors.Is(err, ErrRestrictionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, restrictionKeyPrefix+input.ChannelID)
	if restriction.GuildID != "" {
		pipe.SRem(ctx, guildChannelKeyPrefix+restriction.GuildID, input.ChannelID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete restriction: %w", err)
	}

	return nil
}

// ListRestrictions retrieves every restricted channel in a guild, ordered by
// channel ID
func (r *redisRepository) ListRestrictions(ctx context.Context, input *ListRestrictionsInput) (*ListRestrictionsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	channelIDs, err := r.client.SMembers(ctx, guildChannelKeyPrefix+input.GuildID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get restricted channels: %w", err)
	}

	if len(channelIDs) == 0 {
		return &ListRestrictionsOutput{
			Restrictions: []*models.Restriction{},
		}, nil
	}
	sort.Strings(channelIDs)

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(channelIDs))
	for i, channelID := range channelIDs {
		commands[i] = pipe.Get(ctx, restrictionKeyPrefix+channelID)
	}

	// redis.Nil from a single command surfaces here too; it is handled below.
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get restrictions: %w", err)
	}

	restrictions := make([]*models.Restriction, 0, len(channelIDs))
	for i, cmd := range commands {
		restrictionJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Lifted between reading the set and fetching the restriction
				continue
			}
			return nil, fmt.Errorf("failed to get restriction %s: %w", channelIDs[i], err)
		}

		var restriction models.Restriction
		if err := json.Unmarshal([]byte(restrictionJSON), &restriction); err != nil {
			return nil, fmt.Errorf("failed to unmarshal restriction %s: %w", channelIDs[i], err)
		}
		restrictions = append(restrictions, &restriction)
	}

	return &ListRestrictionsOutput{
		Restrictions: restrictions,
	}, nil
}

// SetUserOverride stores a user's override in the channel's override hash.
// Overrides live apart from the level, so clearing the level keeps them.
func (r *redisRepository) SetUserOverride(ctx context.Context, input *SetUserOverrideInput) error {
	if input == nil || input.ChannelID == "" || input.UserID == "" {
		return errors.New("input, channel ID and user ID cannot be empty")
	}

	if !input.Override.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOverride, input.Override)
	}

	key := userOverrideKeyPrefix + input.ChannelID
	if input.Override == models.OverrideNone {
		if err := r.client.HDel(ctx, key, input.UserID).Err(); err != nil {
			return fmt.Errorf("failed to clear user override: %w", err)
		}
		return nil
	}

	if err := r.client.HSet(ctx, key, input.UserID, string(input.Override)).Err(); err != nil {
		return fmt.Errorf("failed to save user override: %w", err)
	}

	return nil
}

// GetUserOverride retrieves a user's override in a channel
func (r *redisRepository) GetUserOverride(ctx context.Context, input *GetUserOverrideInput) (models.UserOverride, error) {
	if input == nil || input.ChannelID == "" || input.UserID == "" {
		return models.OverrideNone, errors.New("input, channel ID and user ID cannot be empty")
	}

	value, err := r.client.HGet(ctx, userOverrideKeyPrefix+input.ChannelID, input.UserID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.OverrideNone, nil
		}
		return models.OverrideNone, fmt.Errorf("failed to get user override: %w", err)
	}

	return models.UserOverride(value), nil
}

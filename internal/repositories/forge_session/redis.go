package forgesession

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/forge-api/internal/redis"
)

const (
	// Key pattern: forge_session:{player_id}
	sessionKeyPrefix = "forge_session:"

	// DefaultTTL is used when CreateInput.TTL is zero
	DefaultTTL = 2 * time.Hour

	// Error messages
	errRecordNil      = "record cannot be nil"
	errSessionNil     = "session cannot be nil"
	errPlayerIDEmpty  = "player ID cannot be empty"
	errSessionExpired = "forge session has expired"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for forge sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new forge session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	record := *input.Record
	record.CreatedAt = now
	record.ExpiresAt = now.Add(ttl)

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal forge session")
	}

	// SETNX keeps the one-session-per-player rule atomic
	key := buildKey(record.PlayerID)
	created, err := r.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store forge session in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists("player already has an active forge session").
			WithMeta("player_id", record.PlayerID)
	}

	return &CreateOutput{
		Record: &record,
	}, nil
}

// Get retrieves the forge session of a player
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := buildKey(input.PlayerID)

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFound("forge session not found").
				WithMeta("player_id", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get forge session from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal forge session")
	}

	// Redis expiry and the record's own deadline can drift apart
	if r.clock.Now().After(record.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound(errSessionExpired).
			WithMeta("player_id", input.PlayerID)
	}

	return &GetOutput{
		Record: &record,
	}, nil
}

// Update replaces an existing forge session, keeping its remaining TTL
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	record := input.Record
	now := r.clock.Now()
	if !now.Before(record.ExpiresAt) {
		return nil, errors.NotFound(errSessionExpired).
			WithMeta("player_id", record.PlayerID)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal forge session")
	}

	key := buildKey(record.PlayerID)
	updated, err := r.client.SetXX(ctx, key, data, record.ExpiresAt.Sub(now)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update forge session in Redis")
	}
	if !updated {
		return nil, errors.NotFound("forge session not found").
			WithMeta("player_id", record.PlayerID)
	}

	return &UpdateOutput{
		Record: record,
	}, nil
}

// Delete removes the forge session of a player
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete forge session from Redis")
	}

	return &DeleteOutput{
		Deleted: removed > 0,
	}, nil
}

func validateRecord(record *Record) error {
	if record == nil {
		return errors.InvalidArgument(errRecordNil)
	}
	if record.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if record.Session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	return nil
}

// buildKey creates the Redis key for a player's forge session
func buildKey(playerID string) string {
	return sessionKeyPrefix + playerID
}

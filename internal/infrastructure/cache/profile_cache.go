package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type profileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache stores profile projections as JSON for ttl.
func NewProfileCache(client *redis.Client, ttl time.Duration) repository.ProfileCache {
	return &profileCache{client: client, ttl: ttl}
}

func profileKey(role entity.Role, id uuid.UUID) string {
	return fmt.Sprintf("profile:%s:%s", role, id.String())
}

func (c *profileCache) Get(ctx context.Context, role entity.Role, id uuid.UUID, out interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, profileKey(role, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *profileCache) Set(ctx context.Context, role entity.Role, id uuid.UUID, profile interface{}) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKey(role, id), raw, c.ttl).Err()
}

func (c *profileCache) Delete(ctx context.Context, role entity.Role, id uuid.UUID) error {
	return c.client.Del(ctx, profileKey(role, id)).Err()
}

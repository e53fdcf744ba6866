package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"billboard-booking/internal/domain/campaign"
	"billboard-booking/internal/infra"
	"billboard-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionRepository keeps campaign sessions as JSON snapshots with a
// sliding TTL. Concurrent writers of the same session are last-writer-wins.
type RedisSessionRepository struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedisSessionRepository(client redis.Cmdable, cfg config.RedisConfig) *RedisSessionRepository {
	return &RedisSessionRepository{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.SessionTTL,
	}
}

func (r *RedisSessionRepository) key(id uuid.UUID) string {
	return r.prefix + id.String()
}

func (r *RedisSessionRepository) Get(ctx context.Context, id uuid.UUID) (campaign.Session, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return campaign.Session{}, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return campaign.Session{}, infra.WrapRepoErr("failed to load session", err, infra.KindUnavailable)
	}

	var snap campaign.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return campaign.Session{}, infra.WrapRepoErr("failed to decode session", err, infra.KindDBFailure)
	}
	return campaign.FromSnapshot(snap), nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, s campaign.Session) error {
	raw, err := json.Marshal(s.Snapshot())
	if err != nil {
		return infra.WrapRepoErr("failed to encode session", err, infra.KindDBFailure)
	}
	if err := r.client.Set(ctx, r.key(s.ID()), raw, r.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save session", err, infra.KindUnavailable)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return infra.WrapRepoErr("failed to delete session", err, infra.KindUnavailable)
	}
	if n == 0 {
		return infra.WrapRepoErr("session not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RedisSessionRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return infra.WrapRepoErr("session store health check failed", err, infra.KindUnavailable)
	}
	return nil
}

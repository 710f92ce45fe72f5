package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-portal/portal-svc/internal/session"

	"github.com/redis/go-redis/v9"
)

type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) SessionKey(id string) string {
	return "session:" + id
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *session.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.Client.Set(ctx, s.SessionKey(sess.ID), payload, s.TTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	payload, err := s.Client.Get(ctx, s.SessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess session.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, s.SessionKey(id)).Err()
}

var _ session.Store = (*RedisSessionStore)(nil)

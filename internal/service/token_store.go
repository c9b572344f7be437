package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shivam77kk/healthcare-online/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// TokenStore is the Redis-backed allow-list of issued token IDs. A token is
// valid only while its key exists; logout and refresh-rotation delete keys,
// which revokes the token before its JWT expiry.
type TokenStore interface {
	Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error
	IsValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

type redisTokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewTokenStore(client *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{
		client: client,
		log:    log,
	}
}

func tokenKey(userID uuid.UUID, tokenID string, tokenType jwt.TokenType) string {
	return fmt.Sprintf("%s_token:%s:%s", tokenType, userID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	if err := s.client.Set(ctx, tokenKey(userID, tokenID, tokenType), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store %s token in Redis: %+v", tokenType, err)
		return err
	}
	return nil
}

func (s *redisTokenStore) IsValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	exists, err := s.client.Exists(ctx, tokenKey(userID, tokenID, tokenType)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	if err := s.client.Del(ctx, tokenKey(userID, tokenID, tokenType)).Err(); err != nil {
		s.log.Warnf("Failed to revoke %s token: %+v", tokenType, err)
		return err
	}
	return nil
}

// RevokeAllForUser deletes every token for a user, access and refresh alike.
// Logout goes through here so a retained refresh token cannot re-open the
// session.
func (s *redisTokenStore) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	for _, tokenType := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		pattern := fmt.Sprintf("%s_token:%s:*", tokenType, userID.String())
		keys, err := s.client.Keys(ctx, pattern).Result()
		if err != nil {
			s.log.Warnf("Failed to list %s token keys: %+v", tokenType, err)
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete %s tokens: %+v", tokenType, err)
				return err
			}
		}
	}
	return nil
}

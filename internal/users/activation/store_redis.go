// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package activation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/sec"
)

// TokenStore keeps perishable activation tokens.
type TokenStore interface {
	// Issue creates a token that resolves to userID until it expires.
	Issue(context context.Context, userID string) (string, error)

	// Resolve returns the user a token was issued for, or NOT_FOUND.
	Resolve(context context.Context, token string) (string, error)

	// Consume invalidates the token.
	Consume(context context.Context, token string) error
}

// RedisTokenStore implements [TokenStore] with one expiring key per token.
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenStore creates a Redis-backed [TokenStore].
func NewRedisTokenStore(client *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, ttl: ttl}
}

func tokenKey(token string) string {
	return fmt.Sprintf("activation:token:%s", token)
}

/*
Issue stores a fresh token for the user with the store's TTL.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - string: the opaque token to put in the activation link
  - error: storage failures
*/
func (store *RedisTokenStore) Issue(context context.Context, userID string) (string, error) {
	token, err := sec.GenerateSecureToken(TokenLength)
	if err != nil {
		return "", err
	}

	if err := store.client.Set(context, tokenKey(token), userID, store.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis_activation_token_set_failed: %w", err)
	}
	return token, nil
}

/*
Resolve retrieves the userID for a given token.

Returns:
  - string: the user id
  - error: NOT_FOUND if the token is absent or expired
*/
func (store *RedisTokenStore) Resolve(context context.Context, token string) (string, error) {
	userID, err := store.client.Get(context, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFoundMessage(CouldNotLocateNotice)
		}
		return "", fmt.Errorf("redis_activation_token_get_failed: %w", err)
	}
	return userID, nil
}

func (store *RedisTokenStore) Consume(context context.Context, token string) error {
	if err := store.client.Del(context, tokenKey(token)).Err(); err != nil {
		return fmt.Errorf("redis_activation_token_delete_failed: %w", err)
	}
	return nil
}

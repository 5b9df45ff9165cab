package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const languageKeyPrefix = "language:accept:"

// LanguageCache stores language ids detected for Accept-Language values.
// A nil client turns every call into a no-op miss.
type LanguageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLanguageCache(client *redis.Client, ttl time.Duration) *LanguageCache {
	return &LanguageCache{client: client, ttl: ttl}
}

// NewRedisClient builds a client for addr; an empty addr disables caching and
// returns nil.
func NewRedisClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

func languageKey(acceptLanguage string) string {
	return languageKeyPrefix + strings.ToLower(strings.TrimSpace(acceptLanguage))
}

func (c *LanguageCache) Get(ctx context.Context, acceptLanguage string) (int, bool, error) {
	if c == nil || c.client == nil {
		return 0, false, nil
	}
	val, err := c.client.Get(ctx, languageKey(acceptLanguage)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.Atoi(val)
	if err != nil {
		// a corrupt entry is a miss; the next detection overwrites it
		return 0, false, nil
	}
	return id, true, nil
}

func (c *LanguageCache) Set(ctx context.Context, acceptLanguage string, languageID int) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, languageKey(acceptLanguage), strconv.Itoa(languageID), c.ttl).Err()
}

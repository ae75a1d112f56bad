package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

const defaultCacheExpiry = 1 * time.Hour

var errCacheUnavailable = errors.New("cache client not configured")

// CacheBuilder wraps one key on one cache client with JSON encoding.
// Repositories treat every cache failure as a miss. A nil client disables
// caching: reads miss and writes are dropped.
type CacheBuilder struct {
	client CacheClient
	key    string
	expiry time.Duration
}

func NewCacheBuilder(client CacheClient, key string) *CacheBuilder {
	return &CacheBuilder{
		client: client,
		key:    key,
		expiry: defaultCacheExpiry,
	}
}

func (b *CacheBuilder) WithExpiry(expiry time.Duration) *CacheBuilder {
	b.expiry = expiry
	return b
}

func (b *CacheBuilder) Get(ctx context.Context, dest any) error {
	if b.client == nil {
		return errCacheUnavailable
	}
	raw, err := b.client.Do(ctx, b.client.B().Get().Key(b.key).Build()).AsBytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (b *CacheBuilder) Set(ctx context.Context, value any) error {
	if b.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return b.client.Do(ctx,
		b.client.B().Set().Key(b.key).Value(string(raw)).Ex(b.expiry).Build(),
	).Error()
}

func (b *CacheBuilder) Delete() error {
	if b.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return b.client.Do(ctx, b.client.B().Del().Key(b.key).Build()).Error()
}

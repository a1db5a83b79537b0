// cache хранит снимок последнего успешно прочитанного списка активных объявлений.
// Снимок используется, когда хранилище объявлений недоступно.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

//go:generate mockgen -source=cache.go -destination=../../mocks/cache_mock.go -package=mocks

// Snapshot — сохранённый список объявлений и момент его записи.
type Snapshot struct {
	Listings []models.Listing
	StoredAt time.Time
}

// ListingCache — минимальный контракт кэша снимка объявлений.
type ListingCache interface {
	// Snapshot возвращает снимок и признак его наличия в кэше.
	Snapshot(ctx context.Context) (*Snapshot, bool, error)
	// Store сохраняет снимок с TTL кэша.
	Store(ctx context.Context, listings []models.Listing, at time.Time) error
	// Close закрывает клиент.
	Close() error
}

type redisCache struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если key пустой — используется "feed:listings:active".
func NewRedisCache(ctx context.Context, redisURL, key string, ttl time.Duration) (ListingCache, error) {
	if key == "" {
		key = "feed:listings:active"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: ping: %w", err)
	}

	return &redisCache{rdb: rdb, key: key, ttl: ttl}, nil
}

// Храним как Redis Hash с полями: payload (JSON), at (unix nano).
func (c *redisCache) Snapshot(ctx context.Context) (*Snapshot, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	listings, err := decodeListings([]byte(m["payload"]))
	if err != nil {
		return nil, false, fmt.Errorf("cache: decode payload: %w", err)
	}

	at, err := strconv.ParseInt(m["at"], 10, 64)
	if err != nil {
		return nil, false, fmt.Errorf("cache: decode stored_at: %w", err)
	}

	return &Snapshot{Listings: listings, StoredAt: time.Unix(0, at).UTC()}, true, nil
}

func (c *redisCache) Store(ctx context.Context, listings []models.Listing, at time.Time) error {
	payload, err := encodeListings(listings)
	if err != nil {
		return fmt.Errorf("cache: encode payload: %w", err)
	}

	kv := map[string]string{
		"payload": string(payload),
		"at":      strconv.FormatInt(at.UTC().UnixNano(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key, kv)
	pipe.Expire(ctx, c.key, c.ttl)

	_, err = pipe.Exec(ctx)
	return err
}

func (c *redisCache) Close() error { return c.rdb.Close() }

// Nop — кэш-заглушка, когда Redis не настроен: всегда промах.
type Nop struct{}

func (Nop) Snapshot(context.Context) (*Snapshot, bool, error)        { return nil, false, nil }
func (Nop) Store(context.Context, []models.Listing, time.Time) error { return nil }
func (Nop) Close() error                                             { return nil }

var (
	_ ListingCache = (*redisCache)(nil)
	_ ListingCache = Nop{}
)

package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

func TestCodec_PreservesAbsentValues(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []models.Listing{
		{
			ID:                "a",
			Title:             "Desk lamp",
			Category:          models.CategoryFurniture,
			Price:             12.5,
			ViewCount:         4,
			Type:              models.ListingFixed,
			Boosted:           true,
			BoostExpiresAt:    now.Add(time.Hour),
			CreatedAt:         now,
			Location:          &models.GeoPoint{Lat: 37.4, Lng: -122.1},
			Status:            models.StatusActive,
			SellerInstitution: "Stanford",
			ShowNearby:        true,
		},
		{
			ID:       "b",
			Category: models.CategoryTech,
			Type:     models.ListingAuction,
			TimeLeft: "2h",
			Status:   models.StatusOutbid,
		},
	}

	data, err := encodeListings(in)
	require.NoError(t, err)
	require.NotContains(t, string(data), "ends_at", "zero timestamps are omitted")

	out, err := decodeListings(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
	require.Nil(t, out[1].Location)
	require.True(t, out[1].CreatedAt.IsZero())
}

func TestCodec_BrokenPayload(t *testing.T) {
	t.Parallel()

	_, err := decodeListings([]byte("{not json"))
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	t.Parallel()

	var c ListingCache = Nop{}
	require.NoError(t, c.Store(context.Background(), []models.Listing{{ID: "x"}}, time.Now()))

	snap, ok, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, snap)
	require.NoError(t, c.Close())
}

// Интеграционный тест с реальным Redis:
//
//	GO_TEST_INTEGRATION=1 go test ./internal/cache -v -count=1
func TestIntegration_RedisSnapshot(t *testing.T) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")

	cache, err := NewRedisCache(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), "", time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	_, ok, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	at := time.Now().UTC().Truncate(time.Microsecond)
	listings := []models.Listing{{ID: "a", Category: models.CategoryTech, Status: models.StatusActive, Type: models.ListingAuction}}
	require.NoError(t, cache.Store(ctx, listings, at))

	snap, ok, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, listings, snap.Listings)
	require.True(t, snap.StoredAt.Equal(at))

	rc := cache.(*redisCache)
	ttl, err := rc.rdb.TTL(ctx, rc.key).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)
}

func TestNewRedisCache_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), "not-a-url://", "", time.Minute)
	require.Error(t, err)
}

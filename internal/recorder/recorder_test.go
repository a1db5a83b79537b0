package recorder

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/petershoe2005/GatherU-sub000/internal/interest"
	"github.com/petershoe2005/GatherU-sub000/internal/metrics"
	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/mocks"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{QueueSize: 4, Workers: 2, RatePerSecond: 1000, Burst: 10, WriteTimeout: time.Second}
}

// memStore — потокобезопасные ViewStorage и InterestStorage в памяти.
type memStore struct {
	mu        sync.Mutex
	views     map[[2]string]models.ItemView
	interests map[string]models.InterestMap
	writes    int
	done      chan struct{}
}

func newMemStore(expectWrites int) *memStore {
	return &memStore{
		views:     map[[2]string]models.ItemView{},
		interests: map[string]models.InterestMap{},
		done:      make(chan struct{}, expectWrites),
	}
}

func (s *memStore) UpsertView(_ context.Context, v models.ItemView) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.views[[2]string{v.UserID, v.ItemID}] = v
	return nil
}

func (s *memStore) Interests(_ context.Context, userID string) (models.InterestMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := models.InterestMap{}
	for c, v := range s.interests[userID] {
		out[c] = v
	}
	return out, nil
}

func (s *memStore) IncrementInterest(_ context.Context, userID string, c models.Category, delta float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.interests[userID] == nil {
		s.interests[userID] = models.InterestMap{}
	}
	s.interests[userID][c] += delta
	s.writes++
	select {
	case s.done <- struct{}{}:
	default:
	}
	return nil
}

func newRecorder(store *memStore, m *metrics.Metrics, cfg Config) *Recorder {
	r := New(store, interest.New(store), m, cfg)
	r.now = func() time.Time { return testNow }
	return r
}

func TestRecord_SkipsAnonymousAndPlaceholders(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	views := mocks.NewMockViewStorage(ctrl)
	interests := mocks.NewMockInterestStorage(ctrl)
	// Ни одного обращения к хранилищам.

	r := New(views, interest.New(interests), nil, testConfig())

	tests := []struct {
		name    string
		viewer  string
		listing models.Listing
	}{
		{name: "anonymous", viewer: "", listing: models.Listing{ID: "i1", Category: models.CategoryTech}},
		{name: "blank viewer", viewer: "  ", listing: models.Listing{ID: "i1", Category: models.CategoryTech}},
		{name: "placeholder", viewer: "u1", listing: models.Listing{ID: "demo-3", Category: models.CategoryTech}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.NoError(t, r.Record(context.Background(), tt.viewer, tt.listing))
			require.False(t, r.Enqueue(context.Background(), tt.viewer, tt.listing))
		})
	}
}

func TestRecord_RepeatViewsKeepOneRowAndGrowInterest(t *testing.T) {
	t.Parallel()

	store := newMemStore(0)
	r := newRecorder(store, nil, testConfig())
	ctx := context.Background()
	l := models.Listing{ID: "i1", Category: models.CategoryTextbooks}

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Record(ctx, "u1", l))
	}

	require.Len(t, store.views, 1)
	require.Equal(t, testNow, store.views[[2]string{"u1", "i1"}].ViewedAt)
	require.Equal(t, models.CategoryTextbooks, store.views[[2]string{"u1", "i1"}].Category)
	require.Equal(t, 3.0, store.interests["u1"][models.CategoryTextbooks])
}

func TestRecord_ViewFailureStillCountsInterest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	views := mocks.NewMockViewStorage(ctrl)
	interests := mocks.NewMockInterestStorage(ctrl)

	boom := errors.New("db down")
	views.EXPECT().UpsertView(gomock.Any(), gomock.Any()).Return(boom)
	interests.EXPECT().IncrementInterest(gomock.Any(), "u1", models.CategoryHousing, interest.DefaultDelta).Return(nil)

	r := New(views, interest.New(interests), nil, testConfig())

	err := r.Record(context.Background(), "u1", models.Listing{ID: "i1", Category: models.CategoryHousing})
	require.ErrorIs(t, err, boom)
}

func TestRecord_BothFailuresJoined(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	views := mocks.NewMockViewStorage(ctrl)
	interests := mocks.NewMockInterestStorage(ctrl)

	viewErr := errors.New("view failed")
	interestErr := errors.New("interest failed")
	views.EXPECT().UpsertView(gomock.Any(), gomock.Any()).Return(viewErr)
	interests.EXPECT().IncrementInterest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interestErr)

	r := New(views, interest.New(interests), nil, testConfig())

	err := r.Record(context.Background(), "u1", models.Listing{ID: "i1", Category: models.CategoryTech})
	require.ErrorIs(t, err, viewErr)
	require.ErrorIs(t, err, interestErr)
}

func TestEnqueue_DropsWhenFull(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	cfg := testConfig()
	cfg.QueueSize = 2
	r := newRecorder(newMemStore(0), m, cfg)
	ctx := context.Background()
	l := models.Listing{ID: "i1", Category: models.CategoryTech}

	require.True(t, r.Enqueue(ctx, "u1", l))
	require.True(t, r.Enqueue(ctx, "u1", l))
	require.False(t, r.Enqueue(ctx, "u1", l), "queue is full and no workers are running")

	expected := `
# HELP feed_recorder_dropped_total Item views dropped because the recorder queue was full or closed.
# TYPE feed_recorder_dropped_total counter
feed_recorder_dropped_total 1
# HELP feed_recorder_enqueued_total Item views accepted into the recorder queue.
# TYPE feed_recorder_enqueued_total counter
feed_recorder_enqueued_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"feed_recorder_dropped_total", "feed_recorder_enqueued_total"))
}

func TestEnqueue_AfterCloseIsRejected(t *testing.T) {
	t.Parallel()

	r := newRecorder(newMemStore(0), nil, testConfig())
	r.Close()
	r.Close()

	require.False(t, r.Enqueue(context.Background(), "u1", models.Listing{ID: "i1"}))
}

func TestRun_DrainsQueueOnClose(t *testing.T) {
	t.Parallel()

	store := newMemStore(8)
	cfg := testConfig()
	cfg.QueueSize = 8
	r := newRecorder(store, nil, cfg)
	ctx := context.Background()

	for _, id := range []string{"i1", "i2", "i3"} {
		require.True(t, r.Enqueue(ctx, "u1", models.Listing{ID: id, Category: models.CategoryApparel}))
	}
	r.Close()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("recorder did not stop after Close")
	}

	require.Len(t, store.views, 3)
	require.Equal(t, 3.0, store.interests["u1"][models.CategoryApparel])
}

func TestRun_ProcessesWhileRunning(t *testing.T) {
	t.Parallel()

	store := newMemStore(2)
	r := newRecorder(store, nil, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.True(t, r.Enqueue(ctx, "u1", models.Listing{ID: "i1", Category: models.CategoryTech}))
	require.True(t, r.Enqueue(ctx, "u2", models.Listing{ID: "i1", Category: models.CategoryTech}))

	for i := 0; i < 2; i++ {
		select {
		case <-store.done:
		case <-time.After(5 * time.Second):
			t.Fatal("view was not recorded")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("recorder did not stop after cancel")
	}

	got, err := store.Interests(context.Background(), "u2")
	require.NoError(t, err)
	require.Equal(t, 1.0, got[models.CategoryTech])
}

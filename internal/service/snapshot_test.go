package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/mocks"
)

func TestSnapshotWriter_Interval(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mc := mocks.NewMockListingCache(ctrl)
	w := newSnapshotWriter(mc, time.Minute, time.Second)

	listings := []models.Listing{{ID: "lamp"}}

	gomock.InOrder(
		mc.EXPECT().Store(gomock.Any(), listings, testNow).Return(errors.New("redis down")),
		mc.EXPECT().Store(gomock.Any(), listings, testNow).Return(nil),
		mc.EXPECT().Store(gomock.Any(), listings, testNow.Add(time.Minute)).Return(nil),
	)

	// Неудачная запись не сдвигает интервал: следующая пробует сразу.
	require.True(t, w.refresh(context.Background(), listings, testNow))
	w.wait()
	require.True(t, w.refresh(context.Background(), listings, testNow))
	w.wait()

	require.False(t, w.refresh(context.Background(), listings, testNow.Add(30*time.Second)))
	require.True(t, w.refresh(context.Background(), listings, testNow.Add(time.Minute)))
	w.wait()
}

func TestSnapshotWriter_CopiesListings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mc := mocks.NewMockListingCache(ctrl)
	w := newSnapshotWriter(mc, 0, time.Second)

	release := make(chan struct{})
	var got []models.Listing
	mc.EXPECT().Store(gomock.Any(), gomock.Any(), testNow).DoAndReturn(
		func(_ context.Context, l []models.Listing, _ time.Time) error {
			<-release
			got = l
			return nil
		})

	listings := []models.Listing{{ID: "lamp"}, {ID: "book"}}
	require.True(t, w.refresh(context.Background(), listings, testNow))
	listings[0].ID = "changed"
	close(release)
	w.wait()

	require.Equal(t, "lamp", got[0].ID)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/ranking"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// Feed — бизнес-операция построения ленты для зрителя.
//
// Валидация:
//   - координаты в пределах [-90,90] / [-180,180];
//   - радиус конечный и неотрицательный;
//   - категория из закрытого набора.
//
// Поведение:
//   - объявления, интересы и профиль читаются параллельно;
//   - сбой чтения объявлений -> снимок из кэша, иначе пустой набор; Degraded=true;
//   - успешное чтение обновляет снимок в фоне, не задерживая ответ;
//   - сбой чтения интересов или профиля -> пустые интересы / параметры запроса;
//   - фильтр доступности с откатом на полный набор (Unfiltered=true);
//   - секция "all" присутствует всегда.
//
// Ошибка возвращается только для некорректного запроса.
func (s *Service) Feed(ctx context.Context, req models.FeedRequest) (*models.Feed, error) {
	const op = "service/feed/Feed"

	lg := log.From(ctx).With("op", op, "viewer_id", req.Viewer.ID)

	if err := validateFeedRequest(req); err != nil {
		lg.Warn("invalid_argument", "err", err.Error())
		return nil, fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, err.Error())
	}

	started := time.Now()
	now := s.now()

	var (
		listings    []models.Listing
		listingsErr error
		interests   models.InterestMap
		profile     *models.Profile
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		listings, listingsErr = s.storage.ActiveListings(gctx, s.cfg.CandidateLimit)
		return nil
	})

	g.Go(func() error {
		var err error
		interests, err = s.interest.Fetch(gctx, req.Viewer.ID)
		if err != nil {
			lg.Warn("interests_unavailable", "err", err.Error())
			interests = models.InterestMap{}
		}
		return nil
	})

	if req.Viewer.Authenticated() {
		g.Go(func() error {
			p, err := s.storage.ProfileByID(gctx, req.Viewer.ID)
			switch {
			case err == nil:
				profile = p
			case errors.Is(err, storage.ErrNotFound):
			default:
				lg.Warn("profile_unavailable", "err", err.Error())
			}
			return nil
		})
	}

	_ = g.Wait()

	degraded := false
	if listingsErr != nil {
		degraded = true
		listings = s.fallbackListings(ctx, listingsErr)
	} else {
		s.snapshot.refresh(ctx, listings, now)
	}

	if req.Category != nil {
		listings = byCategory(listings, *req.Category)
	}

	viewer := s.resolveViewer(req.Viewer, profile)
	eligible, unfiltered := ranking.Eligible(listings, viewer)
	sections := s.builder.Build(eligible, interests, now)

	counts := make(map[string]int, len(sections))
	for _, sec := range sections {
		counts[string(sec.ID)] = len(sec.Items)
	}
	s.metrics.ObserveFeed(degraded, unfiltered, time.Since(started), counts)

	lg.Debug("feed_built",
		slog.Int("candidates", len(listings)),
		slog.Int("eligible", len(eligible)),
		slog.Int("sections", len(sections)),
		slog.Bool("degraded", degraded),
		slog.Bool("unfiltered", unfiltered),
	)

	return &models.Feed{
		Sections:    sections,
		GeneratedAt: now,
		Degraded:    degraded,
		Unfiltered:  unfiltered,
	}, nil
}

// fallbackListings берёт последний снимок из кэша; без снимка — пустой набор.
func (s *Service) fallbackListings(ctx context.Context, cause error) []models.Listing {
	const op = "service/feed/fallbackListings"

	lg := log.From(ctx).With("op", op)
	lg.Error("listings_unavailable", "err", cause.Error())

	snap, ok, err := s.cache.Snapshot(ctx)
	switch {
	case err != nil:
		lg.Warn("snapshot_unavailable", "err", err.Error())
		return nil
	case !ok:
		lg.Warn("snapshot_miss")
		return nil
	}

	lg.Info("snapshot_served",
		slog.Int("listings", len(snap.Listings)),
		slog.Time("stored_at", snap.StoredAt),
	)

	return snap.Listings
}

// resolveViewer дополняет зрителя данными профиля.
//
// Правила:
//   - точка и радиус из запроса важнее профиля;
//   - радиус без значения -> из профиля, затем из конфига;
//   - заведение и статус студента берутся из профиля, если он есть.
func (s *Service) resolveViewer(v models.Viewer, p *models.Profile) models.Viewer {
	if p != nil {
		v.Institution = p.Institution
		v.Verified = p.Verified

		if v.Location == nil && p.Location != nil {
			loc := *p.Location
			v.Location = &loc
			if v.LocationName == "" {
				v.LocationName = p.LocationName
			}
		}

		if v.RadiusMiles <= 0 {
			v.RadiusMiles = p.RadiusMiles
		}
	}

	if v.RadiusMiles <= 0 {
		v.RadiusMiles = s.cfg.DefaultRadiusMiles
	}

	return v
}

func validateFeedRequest(req models.FeedRequest) error {
	v := req.Viewer

	if loc := v.Location; loc != nil {
		if math.IsNaN(loc.Lat) || loc.Lat < -90 || loc.Lat > 90 {
			return fmt.Errorf("lat out of range: %v", loc.Lat)
		}
		if math.IsNaN(loc.Lng) || loc.Lng < -180 || loc.Lng > 180 {
			return fmt.Errorf("lng out of range: %v", loc.Lng)
		}
	}

	if math.IsNaN(v.RadiusMiles) || math.IsInf(v.RadiusMiles, 0) || v.RadiusMiles < 0 {
		return fmt.Errorf("radius must be a non-negative number: %v", v.RadiusMiles)
	}

	if req.Category != nil {
		if _, ok := models.LookupCategory(string(*req.Category)); !ok {
			return fmt.Errorf("unknown category %q", *req.Category)
		}
	}

	return nil
}

func byCategory(listings []models.Listing, c models.Category) []models.Listing {
	c = models.ParseCategory(string(c))

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Category == c {
			out = append(out, l)
		}
	}

	return out
}

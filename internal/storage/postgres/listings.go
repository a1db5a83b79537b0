package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
)

const listingColumns = `
	i.id, i.seller_id, i.title, i.category, i.price::float8, i.starting_price::float8,
	i.view_count, i.active_bidders, i.listing_type, i.is_boosted, i.boost_expires_at,
	i.created_at, i.ends_at, COALESCE(i.time_left, ''), i.lat, i.lng, i.status,
	COALESCE(p.institution, ''), i.show_nearby`

const activeListingsWhere = `
	i.status NOT IN ('sold', 'ended')
	AND COALESCE(i.time_left, '') <> 'Ended'`

// ActiveListings возвращает объявления в статусах, отличных от sold/ended.
// Сортировка: created_at DESC, id DESC.
//
// limit > 0 ограничивает выборку самыми новыми объявлениями, но объявления
// с действующим продвижением возвращаются всегда, независимо от возраста.
func (s *Storage) ActiveListings(ctx context.Context, limit int) ([]models.Listing, error) {
	const op = "storage.postgres.ActiveListings"

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Query(ctx, `
			(SELECT `+listingColumns+`
			 FROM items i
			 LEFT JOIN profiles p ON p.id = i.seller_id
			 WHERE `+activeListingsWhere+`
			 ORDER BY i.created_at DESC, i.id DESC
			 LIMIT $1)
			UNION
			(SELECT `+listingColumns+`
			 FROM items i
			 LEFT JOIN profiles p ON p.id = i.seller_id
			 WHERE `+activeListingsWhere+`
			   AND i.is_boosted
			   AND (i.boost_expires_at IS NULL OR i.boost_expires_at > now()))
			ORDER BY created_at DESC, id DESC
		`, limit)
	} else {
		rows, err = s.db.Query(ctx, `
			SELECT `+listingColumns+`
			FROM items i
			LEFT JOIN profiles p ON p.id = i.seller_id
			WHERE `+activeListingsWhere+`
			ORDER BY i.created_at DESC, i.id DESC
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []models.Listing
	for rows.Next() {
		l, scanErr := scanListing(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		out = append(out, l)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return out, nil
}

// ListingByID возвращает объявление по идентификатору.
// Некорректный формат id трактуется как «нет такой записи».
func (s *Storage) ListingByID(ctx context.Context, id string) (*models.Listing, error) {
	const op = "storage.postgres.ListingByID"

	correctID, ok := parseID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	row := s.db.QueryRow(ctx, `
		SELECT `+listingColumns+`
		FROM items i
		LEFT JOIN profiles p ON p.id = i.seller_id
		WHERE i.id = $1
	`, correctID)

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &l, nil
}

// ExpireBoosts снимает флаг продвижения у объявлений с истёкшим boost_expires_at.
// Объявления без записанного срока не трогаются.
func (s *Storage) ExpireBoosts(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.ExpireBoosts"

	tag, err := s.db.Exec(ctx, `
		UPDATE items
		SET is_boosted = FALSE
		WHERE is_boosted
		  AND boost_expires_at IS NOT NULL
		  AND boost_expires_at <= $1
	`, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

func scanListing(row pgx.Row) (models.Listing, error) {
	var (
		l                             models.Listing
		id, sellerID                  uuid.UUID
		category, listingType, status string
		boostExpiresAt, endsAt        *time.Time
		lat, lng                      *float64
	)

	err := row.Scan(
		&id,
		&sellerID,
		&l.Title,
		&category,
		&l.Price,
		&l.StartingPrice,
		&l.ViewCount,
		&l.ActiveBidders,
		&listingType,
		&l.Boosted,
		&boostExpiresAt,
		&l.CreatedAt,
		&endsAt,
		&l.TimeLeft,
		&lat,
		&lng,
		&status,
		&l.SellerInstitution,
		&l.ShowNearby,
	)
	if err != nil {
		return models.Listing{}, err
	}

	l.ID = id.String()
	l.SellerID = sellerID.String()
	l.Category = models.ParseCategory(category)
	l.Type = models.ParseListingType(listingType)
	l.Status = models.ParseStatus(status)

	// Нормализация в UTC.
	l.CreatedAt = l.CreatedAt.UTC()
	if boostExpiresAt != nil {
		l.BoostExpiresAt = boostExpiresAt.UTC()
	}
	if endsAt != nil {
		l.EndsAt = endsAt.UTC()
	}

	if lat != nil && lng != nil {
		l.Location = &models.GeoPoint{Lat: *lat, Lng: *lng}
	}

	return l, nil
}

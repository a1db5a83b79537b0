package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
)

// ProfileByID возвращает профиль пользователя.
// Если запись не найдена или id некорректен — storage.ErrNotFound.
func (s *Storage) ProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	const op = "storage.postgres.ProfileByID"

	correctID, ok := parseID(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var (
		p        models.Profile
		lat, lng *float64
	)
	err := s.db.QueryRow(ctx, `
		SELECT institution, is_verified, location_name, lat, lng, gps_radius
		FROM profiles
		WHERE id = $1
	`, correctID).Scan(
		&p.Institution,
		&p.Verified,
		&p.LocationName,
		&lat,
		&lng,
		&p.RadiusMiles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.ID = correctID.String()
	if lat != nil && lng != nil {
		p.Location = &models.GeoPoint{Lat: *lat, Lng: *lng}
	}

	return &p, nil
}

package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// Interests возвращает накопленный интерес пользователя по категориям.
// Некорректный id трактуется как пользователь без истории.
// Строки с категорией вне закрытого набора пропускаются и логируются.
func (s *Storage) Interests(ctx context.Context, userID string) (models.InterestMap, error) {
	const op = "storage.postgres.Interests"

	out := make(models.InterestMap)

	correctID, ok := parseID(userID)
	if !ok {
		return out, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT category, score
		FROM user_interests
		WHERE user_id = $1
	`, correctID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			category string
			score    float64
		)
		if scanErr := rows.Scan(&category, &score); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		c, known := models.LookupCategory(category)
		if !known {
			log.From(ctx).Warn("unknown_interest_category",
				slog.String("op", op),
				slog.String("user_id", correctID.String()),
				slog.String("category", category),
			)
			continue
		}

		out[c] += score
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return out, nil
}

// IncrementInterest атомарно прибавляет delta к баллу (user_id, category).
//
// Ошибки:
//   - storage.ErrInvalidArgument — некорректный id или отрицательный итоговый балл;
//   - storage.ErrNotFound — профиля пользователя нет.
func (s *Storage) IncrementInterest(ctx context.Context, userID string, category models.Category, delta float64) error {
	const op = "storage.postgres.IncrementInterest"

	correctID, ok := parseID(userID)
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO user_interests (user_id, category, score, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, category) DO UPDATE
		SET score = user_interests.score + EXCLUDED.score,
		    updated_at = EXCLUDED.updated_at
	`, correctID, string(category), delta)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return nil
}

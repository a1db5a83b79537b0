package postgres

import (
	"context"
	"fmt"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
)

// UpsertView записывает просмотр: одна строка на пару (user_id, item_id),
// повторный просмотр обновляет viewed_at и category.
// Пустая или неизвестная категория записывается как other.
func (s *Storage) UpsertView(ctx context.Context, view models.ItemView) error {
	const op = "storage.postgres.UpsertView"

	userID, ok := parseID(view.UserID)
	if !ok {
		return fmt.Errorf("%s: user id: %w", op, storage.ErrInvalidArgument)
	}

	itemID, ok := parseID(view.ItemID)
	if !ok {
		return fmt.Errorf("%s: item id: %w", op, storage.ErrInvalidArgument)
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO item_views (user_id, item_id, category, viewed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, item_id) DO UPDATE
		SET viewed_at = EXCLUDED.viewed_at,
		    category  = EXCLUDED.category
	`, userID, itemID, string(models.ParseCategory(string(view.Category))), view.ViewedAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapWriteErr(err))
	}

	return nil
}

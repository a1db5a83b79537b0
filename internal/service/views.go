package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// RecordItemView — учёт просмотра объявления зрителем.
//
// Поведение:
//   - аноним или демо-объявление -> nil без обращения к хранилищу;
//   - объявление ищется в хранилище ради категории (ErrNotFound, если его нет);
//   - запись уходит в фоновую очередь; переполнение очереди не является ошибкой.
func (s *Service) RecordItemView(ctx context.Context, viewerID, listingID string) error {
	const op = "service/views/RecordItemView"

	lg := log.From(ctx).With("op", op, "viewer_id", viewerID, "item_id", listingID)

	if !(models.Viewer{ID: viewerID}).Authenticated() || models.IsPlaceholderID(listingID) {
		return nil
	}

	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		lg.Warn("invalid_argument", "reason", "empty item_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	l, err := s.storage.ListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("listing_not_found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("listing_lookup_failed", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !s.views.Enqueue(ctx, viewerID, *l) {
		lg.Debug("view_not_enqueued")
	}

	return nil
}

// Interests возвращает накопленный интерес зрителя; у анонима — пустая карта.
func (s *Service) Interests(ctx context.Context, viewerID string) (models.InterestMap, error) {
	const op = "service/views/Interests"

	interests, err := s.interest.Fetch(ctx, viewerID)
	if err != nil {
		log.From(ctx).Error("interests_read_failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return interests, nil
}

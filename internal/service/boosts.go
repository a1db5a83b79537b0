package service

import (
	"context"
	"fmt"

	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// ExpireBoosts снимает продвижение, срок которого истёк к текущему моменту.
// Возвращает число затронутых объявлений.
func (s *Service) ExpireBoosts(ctx context.Context) (int64, error) {
	const op = "service/boosts/ExpireBoosts"

	n, err := s.storage.ExpireBoosts(ctx, s.now())
	if err != nil {
		log.From(ctx).Error("boosts_expire_failed", "op", op, "err", err)
		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.metrics.BoostsExpired(n)

	return n, nil
}

// interest — модель интересов зрителя: накопленный балл по категориям.
package interest

import (
	"context"
	"fmt"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
)

// DefaultDelta — прирост балла за одно взаимодействие.
const DefaultDelta = 1.0

// Model читает и пополняет интересы зрителя.
type Model struct {
	storage storage.InterestStorage
}

// New создаёт Model поверх хранилища интересов.
func New(st storage.InterestStorage) *Model {
	return &Model{storage: st}
}

// Fetch возвращает интересы зрителя. У анонима интересов нет: пустая карта без обращения к хранилищу.
func (m *Model) Fetch(ctx context.Context, viewerID string) (models.InterestMap, error) {
	const op = "interest.Fetch"

	if !(models.Viewer{ID: viewerID}).Authenticated() {
		return models.InterestMap{}, nil
	}

	interests, err := m.storage.Interests(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if interests == nil {
		interests = models.InterestMap{}
	}

	return interests, nil
}

// Record увеличивает балл категории на delta (delta <= 0 заменяется на DefaultDelta).
// Для анонима — no-op.
func (m *Model) Record(ctx context.Context, viewerID string, category models.Category, delta float64) error {
	const op = "interest.Record"

	if !(models.Viewer{ID: viewerID}).Authenticated() {
		return nil
	}

	if delta <= 0 {
		delta = DefaultDelta
	}

	if err := m.storage.IncrementInterest(ctx, viewerID, category, delta); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

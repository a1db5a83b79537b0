package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

// FeedService — операции сервисного слоя, доступные через HTTP.
type FeedService interface {
	Feed(ctx context.Context, req models.FeedRequest) (*models.Feed, error)
	RecordItemView(ctx context.Context, viewerID, listingID string) error
	Interests(ctx context.Context, viewerID string) (models.InterestMap, error)
}

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	Service  FeedService
	validate *validator.Validate
}

func New(svc FeedService) *Handlers {
	return &Handlers{
		Service:  svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
)

// viewDoc — документ журнала просмотров.
type viewDoc struct {
	UserID        string    `bson:"user_id"`
	ItemID        string    `bson:"item_id"`
	Category      string    `bson:"category"`
	ViewedAt      time.Time `bson:"viewed_at"`
	FirstViewedAt time.Time `bson:"first_viewed_at"`
	Views         int64     `bson:"views"`
}

// UpsertView записывает просмотр: одна запись на пару (user_id, item_id).
// Повторный просмотр обновляет viewed_at/category и увеличивает счётчик views.
func (m *Mongo) UpsertView(ctx context.Context, view models.ItemView) error {
	userID := strings.TrimSpace(view.UserID)
	itemID := strings.TrimSpace(view.ItemID)
	if userID == "" || itemID == "" {
		return fmt.Errorf("mongo upsert view: %w", storage.ErrInvalidArgument)
	}

	viewedAt := view.ViewedAt.UTC()
	if view.ViewedAt.IsZero() {
		viewedAt = time.Now().UTC()
	}

	filter := bson.M{"user_id": userID, "item_id": itemID}
	update := bson.M{
		"$set": bson.M{
			"category":  string(view.Category),
			"viewed_at": viewedAt,
		},
		"$setOnInsert": bson.M{"first_viewed_at": viewedAt},
		"$inc":         bson.M{"views": 1},
	}

	_, err := m.views.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		// Гонка двух upsert на одну пару: второй получает duplicate key, повторяем как обновление.
		if mongodriver.IsDuplicateKeyError(err) {
			_, err = m.views.UpdateOne(ctx, filter, update)
		}
		if err != nil {
			return fmt.Errorf("mongo upsert view: %w", err)
		}
	}

	return nil
}

// Проверка на соответствие интерфейсу ViewStorage.
var _ storage.ViewStorage = (*Mongo)(nil)

// storage определяет контракты доступа к данным для feed-service.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

//go:generate mockgen -source=storage.go -destination=../../mocks/storage_mock.go -package=mocks

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — значение отвергнуто хранилищем (формат id, ограничения схемы).
	ErrInvalidArgument = errors.New("invalid argument")
)

// ListingStorage описывает чтение объявлений и обслуживание продвижения.
type ListingStorage interface {
	// ActiveListings возвращает до limit объявлений, не проданных и не завершённых,
	// от новых к старым. limit <= 0 — без ограничения.
	ActiveListings(ctx context.Context, limit int) ([]models.Listing, error)
	// ListingByID возвращает объявление по идентификатору.
	// Если запись не найдена или id некорректен — ErrNotFound.
	ListingByID(ctx context.Context, id string) (*models.Listing, error)
	// ExpireBoosts снимает продвижение, срок которого истёк к моменту now.
	// Возвращает число затронутых объявлений.
	ExpireBoosts(ctx context.Context, now time.Time) (int64, error)
}

// InterestStorage описывает накопленный интерес пользователя к категориям.
type InterestStorage interface {
	// Interests возвращает интерес пользователя по категориям; нет записей — пустая карта.
	Interests(ctx context.Context, userID string) (models.InterestMap, error)
	// IncrementInterest атомарно увеличивает балл категории на delta,
	// создавая запись при первом обращении.
	IncrementInterest(ctx context.Context, userID string, category models.Category, delta float64) error
}

// ViewStorage описывает журнал просмотров: одна запись на пару (пользователь, объявление).
type ViewStorage interface {
	// UpsertView создаёт запись о просмотре или обновляет её время.
	UpsertView(ctx context.Context, view models.ItemView) error
}

// ProfileStorage описывает чтение профилей пользователей.
type ProfileStorage interface {
	// ProfileByID возвращает профиль; если его нет — ErrNotFound.
	ProfileByID(ctx context.Context, id string) (*models.Profile, error)
}

// Storage задаёт полный контракт хранилища feed-service.
type Storage interface {
	ListingStorage
	InterestStorage
	ViewStorage
	ProfileStorage
	Close()
}

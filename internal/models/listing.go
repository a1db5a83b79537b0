// models содержит доменные сущности feed-service.
// Эти типы используются слоями ранжирования, бизнес-логики, хранилища и транспорта.
package models

import (
	"strings"
	"time"
)

// TimeLeftEnded — значение текстового остатка времени у завершённых аукционов.
const TimeLeftEnded = "Ended"

// PlaceholderPrefix — префикс ID демо-объявлений, которых нет в хранилище.
const PlaceholderPrefix = "demo-"

// GeoPoint — координаты в градусах.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Listing — снимок объявления (аукцион, фиксированная цена или жильё).
//
// Особенности:
//   - отсутствующие временные метки — нулевые time.Time;
//   - Location == nil — координат нет, объявление не проходит фильтр по радиусу;
//   - все временные метки — в UTC.
type Listing struct {
	// ID — идентификатор объявления.
	ID string
	// SellerID — идентификатор продавца.
	SellerID string
	// Title — заголовок.
	Title string
	// Category — категория.
	Category Category
	// Price — текущая цена / текущая ставка.
	Price float64
	// StartingPrice — стартовая цена.
	StartingPrice float64
	// ViewCount — число просмотров.
	ViewCount int
	// ActiveBidders — число активных участников торгов.
	ActiveBidders int
	// Type — формат продажи.
	Type ListingType
	// Boosted — флаг оплаченного продвижения.
	Boosted bool
	// BoostExpiresAt — окончание продвижения (нулевое — срок не записан).
	BoostExpiresAt time.Time
	// CreatedAt — время создания.
	CreatedAt time.Time
	// EndsAt — окончание аукциона.
	EndsAt time.Time
	// TimeLeft — текстовый остаток времени вида "2d 4h 10m" или "Ended".
	TimeLeft string
	// Location — координаты объявления.
	Location *GeoPoint
	// Status — стадия жизненного цикла.
	Status Status
	// SellerInstitution — учебное заведение продавца.
	SellerInstitution string
	// ShowNearby — продавец разрешил показ пользователям поблизости вне своего заведения.
	ShowNearby bool
}

// IsActive — объявление участвует в ленте: не продано, не завершено и не "Ended".
func (l Listing) IsActive() bool {
	return !l.Status.Terminal() && strings.TrimSpace(l.TimeLeft) != TimeLeftEnded
}

// IsAuction — есть ли у объявления осмысленное окончание торгов.
// Фиксированная цена и жильё аукционами не считаются.
func (l Listing) IsAuction() bool {
	if l.Category == CategoryHousing {
		return false
	}

	switch l.Type {
	case ListingFixed:
		return false
	case ListingAuction, ListingBoth:
		return true
	default:
		return true
	}
}

// BoostActive — продвижение включено и не истекло к моменту now.
func (l Listing) BoostActive(now time.Time) bool {
	if !l.Boosted {
		return false
	}

	return l.BoostExpiresAt.IsZero() || l.BoostExpiresAt.After(now)
}

// IsPlaceholder — демо-объявление, которого нет в хранилище.
func (l Listing) IsPlaceholder() bool {
	return IsPlaceholderID(l.ID)
}

// IsPlaceholderID проверяет зарезервированный префикс идентификатора.
func IsPlaceholderID(id string) bool {
	return strings.HasPrefix(id, PlaceholderPrefix)
}

package models

import (
	"strings"
	"time"
)

// Viewer — контекст зрителя ленты на время одного запроса.
type Viewer struct {
	// ID — идентификатор пользователя; пустой у анонимов.
	ID string
	// Location — выбранная точка; nil, если неизвестна.
	Location *GeoPoint
	// LocationName — человекочитаемое название точки.
	LocationName string
	// RadiusMiles — радиус поиска.
	RadiusMiles float64
	// Institution — учебное заведение зрителя.
	Institution string
	// Verified — подтверждённый студент.
	Verified bool
}

// Authenticated — зритель вошёл в систему.
func (v Viewer) Authenticated() bool {
	return strings.TrimSpace(v.ID) != ""
}

// IsStudent — подтверждённый студент с известным заведением.
func (v Viewer) IsStudent() bool {
	return v.Verified && strings.TrimSpace(v.Institution) != ""
}

// Profile — сохранённый профиль пользователя (то, что влияет на ленту).
type Profile struct {
	ID           string
	Institution  string
	Verified     bool
	LocationName string
	Location     *GeoPoint
	RadiusMiles  float64
}

// InterestMap — накопленный интерес зрителя по категориям.
type InterestMap map[Category]float64

// ItemView — факт просмотра объявления пользователем (одна запись на пару).
type ItemView struct {
	UserID   string
	ItemID   string
	Category Category
	ViewedAt time.Time
}

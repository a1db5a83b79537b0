package models

import "time"

// SectionID — стабильный идентификатор секции ленты.
type SectionID string

const (
	SectionBoosted    SectionID = "boosted"
	SectionEndingSoon SectionID = "ending_soon"
	SectionForYou     SectionID = "for_you"
	SectionPopular    SectionID = "popular"
	SectionNew        SectionID = "new"
	SectionAll        SectionID = "all"
)

// Section — именованная упорядоченная группа объявлений.
// Секции не пересекаются по смыслу, но могут содержать одни и те же объявления.
type Section struct {
	ID    SectionID
	Title string
	Icon  string
	Items []Listing
}

// FeedRequest — входные параметры построения ленты.
//
// Особенности:
//   - Viewer.RadiusMiles <= 0 -> радиус из профиля, иначе из конфига;
//   - Category == nil -> все категории.
type FeedRequest struct {
	Viewer   Viewer
	Category *Category
}

// Feed — результат построения ленты.
type Feed struct {
	Sections    []Section
	GeneratedAt time.Time
	// Degraded — список объявлений взят из кэша или пуст из-за сбоя хранилища.
	Degraded bool
	// Unfiltered — фильтр доступности дал пустой набор, показан полный список.
	Unfiltered bool
}

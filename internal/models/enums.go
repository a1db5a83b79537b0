package models

import "strings"

// Category — закрытый набор категорий объявлений.
type Category string

const (
	CategoryTech      Category = "tech"
	CategoryTextbooks Category = "textbooks"
	CategoryFurniture Category = "furniture"
	CategoryApparel   Category = "apparel"
	CategoryHousing   Category = "housing"
	CategoryOther     Category = "other"
)

// Categories возвращает все категории в порядке отображения.
func Categories() []Category {
	return []Category{
		CategoryTech,
		CategoryTextbooks,
		CategoryFurniture,
		CategoryApparel,
		CategoryHousing,
		CategoryOther,
	}
}

// ParseCategory приводит строку из хранилища/запроса к Category.
// Неизвестные и пустые значения становятся CategoryOther.
func ParseCategory(s string) Category {
	c, ok := LookupCategory(s)
	if !ok {
		return CategoryOther
	}

	return c
}

// LookupCategory — строгий вариант ParseCategory: ok=false для неизвестных значений.
func LookupCategory(s string) (Category, bool) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryTech, CategoryTextbooks, CategoryFurniture, CategoryApparel, CategoryHousing, CategoryOther:
		return c, true
	default:
		return "", false
	}
}

// Status — стадия жизненного цикла объявления.
type Status string

const (
	StatusActive  Status = "active"
	StatusWinning Status = "winning"
	StatusOutbid  Status = "outbid"
	StatusSold    Status = "sold"
	StatusEnded   Status = "ended"
)

// ParseStatus приводит строку к Status; неизвестные значения считаются active.
func ParseStatus(s string) Status {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusWinning, StatusOutbid, StatusSold, StatusEnded:
		return st
	default:
		return StatusActive
	}
}

// Terminal сообщает, что объявление закрыто (продано или завершено).
func (s Status) Terminal() bool {
	switch s {
	case StatusSold, StatusEnded:
		return true
	case StatusActive, StatusWinning, StatusOutbid:
		return false
	default:
		return false
	}
}

// ListingType — формат продажи.
type ListingType string

const (
	ListingAuction ListingType = "auction"
	ListingFixed   ListingType = "fixed"
	ListingBoth    ListingType = "both"
)

// ParseListingType приводит строку к ListingType; пустое/неизвестное — аукцион.
func ParseListingType(s string) ListingType {
	switch lt := ListingType(strings.ToLower(strings.TrimSpace(s))); lt {
	case ListingAuction, ListingFixed, ListingBoth:
		return lt
	default:
		return ListingAuction
	}
}

package handlers

import (
	"time"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

// FeedResponse — тело ответа GET /api/feed.
type FeedResponse struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Degraded    bool              `json:"degraded"`
	Unfiltered  bool              `json:"unfiltered"`
	Sections    []SectionResponse `json:"sections"`
}

// SectionResponse — секция ленты.
type SectionResponse struct {
	ID    string            `json:"id"`
	Title string            `json:"title"`
	Icon  string            `json:"icon"`
	Items []ListingResponse `json:"items"`
}

// ListingResponse — объявление в ленте.
type ListingResponse struct {
	ID                string     `json:"id"`
	SellerID          string     `json:"seller_id,omitempty"`
	Title             string     `json:"title"`
	Category          string     `json:"category"`
	Price             float64    `json:"price"`
	StartingPrice     float64    `json:"starting_price"`
	ViewCount         int        `json:"view_count"`
	ActiveBidders     int        `json:"active_bidders"`
	ListingType       string     `json:"listing_type"`
	IsBoosted         bool       `json:"is_boosted"`
	BoostExpiresAt    *time.Time `json:"boost_expires_at,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	EndsAt            *time.Time `json:"ends_at,omitempty"`
	TimeLeft          string     `json:"time_left,omitempty"`
	Lat               *float64   `json:"lat,omitempty"`
	Lng               *float64   `json:"lng,omitempty"`
	Status            string     `json:"status"`
	SellerInstitution string     `json:"seller_institution,omitempty"`
	ShowNearby        bool       `json:"show_nearby"`
}

// InterestsResponse — тело ответа GET /api/me/interests.
type InterestsResponse struct {
	Interests map[string]float64 `json:"interests"`
}

func feedFromModel(f *models.Feed) FeedResponse {
	out := FeedResponse{
		GeneratedAt: f.GeneratedAt,
		Degraded:    f.Degraded,
		Unfiltered:  f.Unfiltered,
		Sections:    make([]SectionResponse, 0, len(f.Sections)),
	}

	for _, s := range f.Sections {
		items := make([]ListingResponse, 0, len(s.Items))
		for _, l := range s.Items {
			items = append(items, listingFromModel(l))
		}

		out.Sections = append(out.Sections, SectionResponse{
			ID:    string(s.ID),
			Title: s.Title,
			Icon:  s.Icon,
			Items: items,
		})
	}

	return out
}

func listingFromModel(l models.Listing) ListingResponse {
	out := ListingResponse{
		ID:                l.ID,
		SellerID:          l.SellerID,
		Title:             l.Title,
		Category:          string(l.Category),
		Price:             l.Price,
		StartingPrice:     l.StartingPrice,
		ViewCount:         l.ViewCount,
		ActiveBidders:     l.ActiveBidders,
		ListingType:       string(l.Type),
		IsBoosted:         l.Boosted,
		BoostExpiresAt:    optTime(l.BoostExpiresAt),
		CreatedAt:         optTime(l.CreatedAt),
		EndsAt:            optTime(l.EndsAt),
		TimeLeft:          l.TimeLeft,
		Status:            string(l.Status),
		SellerInstitution: l.SellerInstitution,
		ShowNearby:        l.ShowNearby,
	}

	if l.Location != nil {
		lat, lng := l.Location.Lat, l.Location.Lng
		out.Lat, out.Lng = &lat, &lng
	}

	return out
}

func interestsFromModel(m models.InterestMap) InterestsResponse {
	out := InterestsResponse{Interests: make(map[string]float64, len(m))}
	for c, v := range m {
		out.Interests[string(c)] = v
	}
	return out
}

func optTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

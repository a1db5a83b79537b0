package cache

import (
	"encoding/json"
	"time"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

// listingRecord — представление объявления в кэше.
type listingRecord struct {
	ID                string     `json:"id"`
	SellerID          string     `json:"seller_id,omitempty"`
	Title             string     `json:"title"`
	Category          string     `json:"category"`
	Price             float64    `json:"price"`
	StartingPrice     float64    `json:"starting_price"`
	ViewCount         int        `json:"view_count"`
	ActiveBidders     int        `json:"active_bidders"`
	Type              string     `json:"listing_type"`
	Boosted           bool       `json:"is_boosted"`
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

func encodeListings(listings []models.Listing) ([]byte, error) {
	records := make([]listingRecord, 0, len(listings))
	for _, l := range listings {
		r := listingRecord{
			ID:                l.ID,
			SellerID:          l.SellerID,
			Title:             l.Title,
			Category:          string(l.Category),
			Price:             l.Price,
			StartingPrice:     l.StartingPrice,
			ViewCount:         l.ViewCount,
			ActiveBidders:     l.ActiveBidders,
			Type:              string(l.Type),
			Boosted:           l.Boosted,
			BoostExpiresAt:    timePtr(l.BoostExpiresAt),
			CreatedAt:         timePtr(l.CreatedAt),
			EndsAt:            timePtr(l.EndsAt),
			TimeLeft:          l.TimeLeft,
			Status:            string(l.Status),
			SellerInstitution: l.SellerInstitution,
			ShowNearby:        l.ShowNearby,
		}
		if l.Location != nil {
			lat, lng := l.Location.Lat, l.Location.Lng
			r.Lat, r.Lng = &lat, &lng
		}

		records = append(records, r)
	}

	return json.Marshal(records)
}

func decodeListings(data []byte) ([]models.Listing, error) {
	var records []listingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	out := make([]models.Listing, 0, len(records))
	for _, r := range records {
		l := models.Listing{
			ID:                r.ID,
			SellerID:          r.SellerID,
			Title:             r.Title,
			Category:          models.ParseCategory(r.Category),
			Price:             r.Price,
			StartingPrice:     r.StartingPrice,
			ViewCount:         r.ViewCount,
			ActiveBidders:     r.ActiveBidders,
			Type:              models.ParseListingType(r.Type),
			Boosted:           r.Boosted,
			BoostExpiresAt:    timeVal(r.BoostExpiresAt),
			CreatedAt:         timeVal(r.CreatedAt),
			EndsAt:            timeVal(r.EndsAt),
			TimeLeft:          r.TimeLeft,
			Status:            models.ParseStatus(r.Status),
			SellerInstitution: r.SellerInstitution,
			ShowNearby:        r.ShowNearby,
		}
		if r.Lat != nil && r.Lng != nil {
			l.Location = &models.GeoPoint{Lat: *r.Lat, Lng: *r.Lng}
		}

		out = append(out, l)
	}

	return out, nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	u := t.UTC()
	return &u
}

func timeVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}

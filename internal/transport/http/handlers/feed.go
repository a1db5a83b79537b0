package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/petershoe2005/GatherU-sub000/internal/errors"
	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/service"
	"github.com/petershoe2005/GatherU-sub000/internal/transport/http/middleware"
)

// feedQuery — параметры GET /api/feed.
// lat и lng передаются только парой.
type feedQuery struct {
	Lat      *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lng      *float64 `validate:"omitempty,gte=-180,lte=180"`
	Radius   *float64 `validate:"omitempty,gt=0,lte=500"`
	Location string   `validate:"max=120"`
	Category string   `validate:"omitempty,oneof=tech textbooks furniture apparel housing other"`
}

// GetFeed — GET /api/feed?lat=&lng=&radius=&location=&category=.
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	q, err := parseFeedQuery(r.URL.Query())
	if err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("%w: %s", service.ErrInvalidArgument, err.Error()))
		return
	}

	if err := h.validate.Struct(q); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("%w: %s", service.ErrInvalidArgument, err.Error()))
		return
	}

	req := models.FeedRequest{
		Viewer: models.Viewer{
			ID:           middleware.ViewerIDFrom(r.Context()),
			LocationName: strings.TrimSpace(q.Location),
		},
	}

	if q.Lat != nil && q.Lng != nil {
		req.Viewer.Location = &models.GeoPoint{Lat: *q.Lat, Lng: *q.Lng}
	}

	if q.Radius != nil {
		req.Viewer.RadiusMiles = *q.Radius
	}

	if q.Category != "" {
		c := models.Category(q.Category)
		req.Category = &c
	}

	feed, err := h.Service.Feed(r.Context(), req)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, feedFromModel(feed))
}

// RecordView — POST /api/listings/{id}/views.
// Запись асинхронная: 202 сразу после постановки в очередь, анонимам тоже 202.
func (h *Handlers) RecordView(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	viewerID := middleware.ViewerIDFrom(r.Context())
	if err := h.Service.RecordItemView(r.Context(), viewerID, id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// GetInterests — GET /api/me/interests.
func (h *Handlers) GetInterests(w http.ResponseWriter, r *http.Request) {
	interests, err := h.Service.Interests(r.Context(), middleware.ViewerIDFrom(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, interestsFromModel(interests))
}

func parseFeedQuery(v url.Values) (feedQuery, error) {
	q := feedQuery{
		Location: v.Get("location"),
		Category: strings.ToLower(strings.TrimSpace(v.Get("category"))),
	}

	var err error
	if q.Lat, err = optFloat(v, "lat"); err != nil {
		return q, err
	}
	if q.Lng, err = optFloat(v, "lng"); err != nil {
		return q, err
	}
	if q.Radius, err = optFloat(v, "radius"); err != nil {
		return q, err
	}

	if (q.Lat == nil) != (q.Lng == nil) {
		return q, fmt.Errorf("lat and lng must be passed together")
	}

	return q, nil
}

func optFloat(v url.Values, key string) (*float64, error) {
	s := strings.TrimSpace(v.Get(key))
	if s == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s is not a number", key)
	}

	return &f, nil
}

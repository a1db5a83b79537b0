package ranking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

func ids(listings []models.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestEligible(t *testing.T) {
	t.Parallel()

	campus := models.GeoPoint{Lat: 37.4275, Lng: -122.1697}
	near := &models.GeoPoint{Lat: 37.44, Lng: -122.16}
	far := &models.GeoPoint{Lat: 37.7749, Lng: -122.4194}

	listings := []models.Listing{
		{ID: "same-far", SellerInstitution: "Stanford", Location: far},
		{ID: "same-hidden", SellerInstitution: " stanford ", Location: near},
		{ID: "other-near-open", SellerInstitution: "Berkeley", Location: near, ShowNearby: true},
		{ID: "other-near-closed", SellerInstitution: "Berkeley", Location: near},
		{ID: "other-far-open", SellerInstitution: "Berkeley", Location: far, ShowNearby: true},
		{ID: "no-location-open", SellerInstitution: "Berkeley", ShowNearby: true},
	}

	tests := []struct {
		name     string
		viewer   models.Viewer
		want     []string
		fellBack bool
	}{
		{
			name:   "verified student sees own institution and nearby opt-ins",
			viewer: models.Viewer{ID: "u1", Verified: true, Institution: "Stanford", Location: &campus, RadiusMiles: 5},
			want:   []string{"same-far", "same-hidden", "other-near-open"},
		},
		{
			name:   "unverified viewer only sees nearby opt-ins",
			viewer: models.Viewer{ID: "u2", Institution: "Stanford", Location: &campus, RadiusMiles: 5},
			want:   []string{"other-near-open"},
		},
		{
			name:   "wide radius pulls far opt-ins",
			viewer: models.Viewer{Location: &campus, RadiusMiles: 50},
			want:   []string{"other-near-open", "other-far-open"},
		},
		{
			name:     "no location and not a student falls back to everything",
			viewer:   models.Viewer{},
			want:     ids(listings),
			fellBack: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, fellBack := Eligible(listings, tt.viewer)
			require.Equal(t, tt.fellBack, fellBack)
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func TestEligible_EmptyInput(t *testing.T) {
	t.Parallel()

	got, fellBack := Eligible(nil, models.Viewer{})
	require.True(t, fellBack)
	require.Empty(t, got)
}

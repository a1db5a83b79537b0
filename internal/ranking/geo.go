package ranking

import (
	"math"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

// EarthRadiusMiles — средний радиус Земли в милях.
const EarthRadiusMiles = 3958.8

// Haversine возвращает расстояние по большому кругу между точками в милях.
func Haversine(a, b models.GeoPoint) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRadius — у объявления есть координаты и оно не дальше radius миль от origin.
func WithinRadius(l models.Listing, origin models.GeoPoint, radius float64) bool {
	if l.Location == nil {
		return false
	}

	return Haversine(origin, *l.Location) <= radius
}

// FilterByRadius оставляет объявления в радиусе radius миль от origin.
// Объявления без координат отбрасываются всегда.
func FilterByRadius(listings []models.Listing, origin models.GeoPoint, radius float64) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if WithinRadius(l, origin, radius) {
			out = append(out, l)
		}
	}

	return out
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

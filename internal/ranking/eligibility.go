package ranking

import (
	"strings"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

// Eligible отбирает объявления, доступные зрителю.
//
// Правила:
//   - подтверждённый студент видит все объявления своего заведения независимо
//     от расстояния;
//   - любой зритель видит объявления с ShowNearby в радиусе viewer.RadiusMiles;
//   - без координат зрителя путь по радиусу ничего не даёт.
//
// Если итог пуст, возвращается исходный набор и fellBack=true:
// лучше показать нефильтрованную ленту, чем пустую.
func Eligible(listings []models.Listing, viewer models.Viewer) (out []models.Listing, fellBack bool) {
	student := viewer.IsStudent()
	institution := normalizeInstitution(viewer.Institution)

	out = make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if student && normalizeInstitution(l.SellerInstitution) == institution {
			out = append(out, l)
			continue
		}

		if l.ShowNearby && viewer.Location != nil && WithinRadius(l, *viewer.Location, viewer.RadiusMiles) {
			out = append(out, l)
		}
	}

	if len(out) == 0 {
		return listings, true
	}

	return out, false
}

func normalizeInstitution(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

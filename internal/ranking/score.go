package ranking

import (
	"math"
	"time"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

// Breakdown — вклад каждого фактора в итоговый балл.
type Breakdown struct {
	Boost           float64
	Engagement      float64
	Urgency         float64
	Personalization float64
	Freshness       float64
}

// Total — сумма факторов.
func (b Breakdown) Total() float64 {
	return b.Boost + b.Engagement + b.Urgency + b.Personalization + b.Freshness
}

// Scorer считает балл объявления для конкретного зрителя в момент now.
type Scorer struct {
	cfg Config
}

// NewScorer создаёт Scorer с параметрами cfg.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score — итоговый балл объявления. Чем выше, тем раньше в ленте.
func (s *Scorer) Score(l models.Listing, interests models.InterestMap, now time.Time) float64 {
	return s.Breakdown(l, interests, now).Total()
}

// Breakdown раскладывает балл объявления по факторам.
func (s *Scorer) Breakdown(l models.Listing, interests models.InterestMap, now time.Time) Breakdown {
	b := Breakdown{
		Engagement:      s.Engagement(l),
		Urgency:         s.Urgency(l, now),
		Personalization: s.Personalization(l, interests),
		Freshness:       s.Freshness(l, now),
	}

	if l.BoostActive(now) {
		b.Boost = s.cfg.BoostPoints
	}

	return b
}

// Engagement — логарифмический вклад просмотров и участников торгов.
// Отрицательные счётчики считаются нулём.
func (s *Scorer) Engagement(l models.Listing) float64 {
	views := math.Max(0, float64(l.ViewCount))
	bidders := math.Max(0, float64(l.ActiveBidders))

	e := math.Log1p(views)*s.cfg.ViewWeight + math.Log1p(bidders)*s.cfg.BidderWeight

	return math.Min(s.cfg.EngagementCap, e)
}

// Urgency — бонус аукционам, которые скоро закончатся.
// Для неаукционов и уже истёкших торгов всегда 0.
func (s *Scorer) Urgency(l models.Listing, now time.Time) float64 {
	if !l.IsAuction() {
		return 0
	}

	remaining := Remaining(l, now)
	if remaining <= 0 {
		return 0
	}

	for _, tier := range s.cfg.UrgencyTiers {
		if remaining <= tier.Within {
			return tier.Points
		}
	}

	return 0
}

// Personalization — вклад накопленного интереса зрителя к категории.
func (s *Scorer) Personalization(l models.Listing, interests models.InterestMap) float64 {
	if len(interests) == 0 {
		return 0
	}

	score := interests[l.Category]
	if score <= 0 {
		return 0
	}

	return math.Min(s.cfg.PersonalizationCap, score*s.cfg.PersonalizationWeight)
}

// Freshness — линейно убывающий бонус новизны.
// Без CreatedAt — 0; объявления "из будущего" получают максимум.
func (s *Scorer) Freshness(l models.Listing, now time.Time) float64 {
	if l.CreatedAt.IsZero() {
		return 0
	}

	ageHours := now.Sub(l.CreatedAt).Hours()
	f := s.cfg.FreshnessMax - ageHours*s.cfg.FreshnessDecayPerHour

	return math.Max(0, math.Min(s.cfg.FreshnessMax, f))
}

// ranking — ядро ранжирования ленты: фильтр по расстоянию, доступность,
// скоринг объявлений и сборка секций.
//
// Пакет не выполняет I/O и не читает часы: момент оценки now всегда передаётся
// явно, поэтому результат детерминирован для фиксированных входов.
package ranking

import (
	"errors"
	"fmt"
	"time"
)

// UrgencyTier — ступень срочности: остаток <= Within даёт Points.
type UrgencyTier struct {
	Within time.Duration
	Points float64
}

// SectionCaps — максимальные размеры секций. Секция "all" не ограничена.
type SectionCaps struct {
	Boosted    int
	EndingSoon int
	ForYou     int
	Popular    int
	New        int
}

// Config — все числовые параметры ранжирования.
type Config struct {
	// BoostPoints — бонус за активное продвижение.
	BoostPoints float64

	// EngagementCap — потолок вклада вовлечённости.
	EngagementCap float64
	// ViewWeight — множитель ln(1+views).
	ViewWeight float64
	// BidderWeight — множитель ln(1+bidders).
	BidderWeight float64

	// UrgencyTiers — ступени срочности по возрастанию Within.
	UrgencyTiers []UrgencyTier

	// PersonalizationCap — потолок вклада интереса.
	PersonalizationCap float64
	// PersonalizationWeight — множитель накопленного интереса к категории.
	PersonalizationWeight float64

	// FreshnessMax — вклад только что созданного объявления.
	FreshnessMax float64
	// FreshnessDecayPerHour — линейное убывание свежести в час.
	FreshnessDecayPerHour float64

	// EndingSoonWindow — окно секции "Ending Soon".
	EndingSoonWindow time.Duration
	// NewArrivalsWindow — окно секции "New Arrivals".
	NewArrivalsWindow time.Duration
	// TopInterests — сколько категорий с наибольшим интересом попадает в "For You".
	TopInterests int

	Caps SectionCaps
}

// DefaultConfig возвращает параметры по умолчанию.
func DefaultConfig() Config {
	return Config{
		BoostPoints:   1000,
		EngagementCap: 300,
		ViewWeight:    20,
		BidderWeight:  40,
		UrgencyTiers: []UrgencyTier{
			{Within: time.Hour, Points: 200},
			{Within: 6 * time.Hour, Points: 160},
			{Within: 24 * time.Hour, Points: 100},
		},
		PersonalizationCap:    150,
		PersonalizationWeight: 15,
		FreshnessMax:          100,
		FreshnessDecayPerHour: 0.5,
		EndingSoonWindow:      24 * time.Hour,
		NewArrivalsWindow:     48 * time.Hour,
		TopInterests:          3,
		Caps: SectionCaps{
			Boosted:    4,
			EndingSoon: 6,
			ForYou:     8,
			Popular:    8,
			New:        8,
		},
	}
}

// Validate проверяет согласованность параметров.
func (c Config) Validate() error {
	if c.BoostPoints < 0 || c.EngagementCap < 0 || c.PersonalizationCap < 0 || c.FreshnessMax < 0 {
		return errors.New("ranking: caps and boost must be >= 0")
	}

	if c.FreshnessDecayPerHour <= 0 {
		return errors.New("ranking: freshness decay must be > 0")
	}

	for i, tier := range c.UrgencyTiers {
		if tier.Within <= 0 {
			return fmt.Errorf("ranking: urgency tier %d: within must be > 0", i)
		}

		if i > 0 && tier.Within <= c.UrgencyTiers[i-1].Within {
			return fmt.Errorf("ranking: urgency tiers must be sorted by within")
		}
	}

	if c.EndingSoonWindow <= 0 || c.NewArrivalsWindow <= 0 {
		return errors.New("ranking: section windows must be > 0")
	}

	if c.TopInterests <= 0 {
		return errors.New("ranking: top interests must be > 0")
	}

	caps := c.Caps
	if caps.Boosted <= 0 || caps.EndingSoon <= 0 || caps.ForYou <= 0 || caps.Popular <= 0 || caps.New <= 0 {
		return errors.New("ranking: section caps must be > 0")
	}

	return nil
}

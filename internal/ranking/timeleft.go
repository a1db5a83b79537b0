package ranking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

var timeLeftToken = regexp.MustCompile(`(?i)(\d+)\s*([dhm])`)

// maxTokenValue ограничивает одно число в тексте; больше — текст считается битым.
const maxTokenValue = 100_000

// ParseTimeLeft разбирает текстовый остаток вида "2d 4h 10m".
// Пустая строка, "Ended", текст без токенов или с неразборчивыми числами дают 0.
func ParseTimeLeft(s string) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" || s == models.TimeLeftEnded {
		return 0
	}

	var total time.Duration
	for _, m := range timeLeftToken.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxTokenValue {
			return 0
		}

		var unit time.Duration
		switch strings.ToLower(m[2]) {
		case "d":
			unit = 24 * time.Hour
		case "h":
			unit = time.Hour
		case "m":
			unit = time.Minute
		}

		d := time.Duration(n) * unit
		if total > math.MaxInt64-d {
			return math.MaxInt64
		}
		total += d
	}

	return total
}

// Remaining — сколько осталось до конца торгов на момент now.
// Структурированный EndsAt всегда важнее текстового TimeLeft.
// Результат может быть отрицательным для просроченных аукционов.
func Remaining(l models.Listing, now time.Time) time.Duration {
	if !l.EndsAt.IsZero() {
		return l.EndsAt.Sub(now)
	}

	return ParseTimeLeft(l.TimeLeft)
}

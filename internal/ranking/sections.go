package ranking

import (
	"sort"
	"time"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

type sectionMeta struct {
	title string
	icon  string
}

var sectionMetas = map[models.SectionID]sectionMeta{
	models.SectionBoosted:    {title: "Sponsored", icon: "rocket_launch"},
	models.SectionEndingSoon: {title: "Ending Soon", icon: "timer"},
	models.SectionForYou:     {title: "For You", icon: "auto_awesome"},
	models.SectionPopular:    {title: "Popular Near You", icon: "local_fire_department"},
	models.SectionNew:        {title: "New Arrivals", icon: "new_releases"},
	models.SectionAll:        {title: "All Listings", icon: "grid_view"},
}

// scored — объявление с заранее посчитанными ключами сортировки.
type scored struct {
	listing    models.Listing
	score      float64
	engagement float64
	remaining  time.Duration
}

// Builder собирает секции ленты.
type Builder struct {
	cfg    Config
	scorer *Scorer
}

// NewBuilder создаёт Builder с параметрами cfg.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg, scorer: NewScorer(cfg)}
}

// Scorer возвращает скорер, которым пользуется Builder.
func (b *Builder) Scorer() *Scorer {
	return b.scorer
}

// Build раскладывает объявления по секциям в фиксированном порядке:
// boosted, ending_soon, for_you, popular, new, all.
//
// Особенности:
//   - завершённые и проданные объявления отбрасываются;
//   - пустые секции пропускаются, кроме "all";
//   - одно объявление может попасть в несколько секций;
//   - сортировки стабильны: при равных ключах сохраняется входной порядок.
func (b *Builder) Build(listings []models.Listing, interests models.InterestMap, now time.Time) []models.Section {
	items := make([]scored, 0, len(listings))
	for _, l := range listings {
		if !l.IsActive() {
			continue
		}

		items = append(items, scored{
			listing:    l,
			score:      b.scorer.Score(l, interests, now),
			engagement: b.scorer.Engagement(l),
			remaining:  Remaining(l, now),
		})
	}

	sections := make([]models.Section, 0, 6)
	add := func(id models.SectionID, list []scored, limit int) {
		if len(list) == 0 {
			return
		}
		sections = append(sections, newSection(id, take(list, limit)))
	}

	add(models.SectionBoosted, b.boosted(items, now), b.cfg.Caps.Boosted)
	add(models.SectionEndingSoon, b.endingSoon(items), b.cfg.Caps.EndingSoon)
	add(models.SectionForYou, b.forYou(items, interests), b.cfg.Caps.ForYou)
	add(models.SectionPopular, b.popular(items), b.cfg.Caps.Popular)
	add(models.SectionNew, b.newArrivals(items, now), b.cfg.Caps.New)

	all := filter(items, func(scored) bool { return true })
	sortByScore(all)
	sections = append(sections, newSection(models.SectionAll, take(all, 0)))

	return sections
}

// TopCategories возвращает до TopInterests категорий с положительным интересом
// по убыванию; равные баллы упорядочены по имени категории.
func (b *Builder) TopCategories(interests models.InterestMap) []models.Category {
	cats := make([]models.Category, 0, len(interests))
	for c, v := range interests {
		if v > 0 {
			cats = append(cats, c)
		}
	}

	sort.Slice(cats, func(i, j int) bool {
		if interests[cats[i]] != interests[cats[j]] {
			return interests[cats[i]] > interests[cats[j]]
		}
		return cats[i] < cats[j]
	})

	if len(cats) > b.cfg.TopInterests {
		cats = cats[:b.cfg.TopInterests]
	}

	return cats
}

func (b *Builder) boosted(items []scored, now time.Time) []scored {
	out := filter(items, func(s scored) bool { return s.listing.BoostActive(now) })
	sortByScore(out)
	return out
}

func (b *Builder) endingSoon(items []scored) []scored {
	out := filter(items, func(s scored) bool {
		return s.listing.IsAuction() && s.remaining > 0 && s.remaining <= b.cfg.EndingSoonWindow
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].remaining < out[j].remaining })
	return out
}

func (b *Builder) forYou(items []scored, interests models.InterestMap) []scored {
	top := b.TopCategories(interests)
	if len(top) == 0 {
		return nil
	}

	want := make(map[models.Category]struct{}, len(top))
	for _, c := range top {
		want[c] = struct{}{}
	}

	out := filter(items, func(s scored) bool {
		_, ok := want[s.listing.Category]
		return ok
	})
	sortByScore(out)
	return out
}

func (b *Builder) popular(items []scored) []scored {
	out := filter(items, func(scored) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return out[i].engagement > out[j].engagement })
	return out
}

func (b *Builder) newArrivals(items []scored, now time.Time) []scored {
	out := filter(items, func(s scored) bool {
		created := s.listing.CreatedAt
		return !created.IsZero() && now.Sub(created) <= b.cfg.NewArrivalsWindow
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].listing.CreatedAt.After(out[j].listing.CreatedAt)
	})
	return out
}

func filter(items []scored, keep func(scored) bool) []scored {
	out := make([]scored, 0, len(items))
	for _, s := range items {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func sortByScore(items []scored) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].score > items[j].score })
}

// take возвращает первые limit объявлений; limit <= 0 — без ограничения.
func take(items []scored, limit int) []models.Listing {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	out := make([]models.Listing, 0, len(items))
	for _, s := range items {
		out = append(out, s.listing)
	}
	return out
}

func newSection(id models.SectionID, items []models.Listing) models.Section {
	meta := sectionMetas[id]
	return models.Section{ID: id, Title: meta.title, Icon: meta.icon, Items: items}
}

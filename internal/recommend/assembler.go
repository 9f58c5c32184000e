package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/neexbeast/wayfarer-admin/internal/pricing"
	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

// Match score tuning. The values are empirical and may be adjusted.
const (
	ScoreBonus = 5
	ScoreCap   = 98
)

var activities = map[theme.Theme][]string{
	theme.Party:      {"Nightlife", "Live music", "Bar hopping", "Festivals"},
	theme.Adventure:  {"Hiking", "Water sports", "Cycling", "Outdoor excursions"},
	theme.Culture:    {"Museums", "Historic sites", "Galleries", "Local cuisine"},
	theme.Luxury:     {"Fine dining", "Spa treatments", "Designer shopping", "Boutique hotels"},
	theme.Relaxation: {"Beaches", "Nature walks", "Wellness retreats", "Scenic viewpoints"},
}

// MatchScore is the city's score for t plus ScoreBonus, capped at ScoreCap.
// For Mixed the city's best theme score is used.
func MatchScore(city theme.City, t theme.Theme) int {
	var score int
	if t == theme.Mixed {
		_, score = city.Scores.Best()
	} else {
		score, _ = city.Scores.For(t)
	}
	return min(score+ScoreBonus, ScoreCap)
}

// Activities lists the activity categories for t. Mixed uses the city's strongest theme.
func Activities(city theme.City, t theme.Theme) []string {
	if t == theme.Mixed {
		t, _ = city.Scores.Best()
	}
	return append([]string(nil), activities[t]...)
}

// Reason renders the one-line recommendation reason.
func Reason(city theme.City, t theme.Theme) string {
	if len(city.Highlights) == 0 {
		return fmt.Sprintf("%s pick: %s", t.Label(), city.Name)
	}
	return fmt.Sprintf("%s pick: %s", t.Label(), city.Highlights[0])
}

// FormatDuration renders hours as "2h 30m", or "3h" on the hour.
func FormatDuration(hours float64) string {
	total := int(math.Round(hours * 60))
	h, m := total/60, total%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Assemble converts resolved pairs into destinations sorted by ascending price midpoint,
// ties broken by descending match score. Quotes are only compared within one currency.
// The input is not modified.
func Assemble(pairs []pricing.Resolved, t theme.Theme, origin string) []Destination {
	out := make([]Destination, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Destination{
			City: p.City,
			FlightRoute: FlightRoute{
				Origin:        origin,
				Destination:   p.City.Code,
				Duration:      FormatDuration(p.City.AverageFlightTime),
				DurationHours: p.City.AverageFlightTime,
			},
			MatchScore: MatchScore(p.City, t),
			Activities: Activities(p.City, t),
			Reason:     Reason(p.City, t),
			Price:      p.Quote.Display(),
			Quote:      p.Quote,
		})
	}

	// Amounts in different currencies are not comparable: rank within each
	// currency, currencies in first-seen order.
	rank := make(map[string]int)
	for _, d := range out {
		if _, ok := rank[d.Quote.Currency]; !ok {
			rank[d.Quote.Currency] = len(rank)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := rank[out[i].Quote.Currency], rank[out[j].Quote.Currency]
		if ci != cj {
			return ci < cj
		}
		mi, mj := out[i].Quote.Midpoint(), out[j].Quote.Midpoint()
		if mi != mj {
			return mi < mj
		}
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

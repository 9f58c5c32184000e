package theme

import (
	"sort"
	"strings"
)

const (
	// DefaultMinScore is the threshold used by single-theme queries.
	DefaultMinScore = 60
	// DefaultMultiMinScore is the threshold used by multi-theme queries.
	DefaultMultiMinScore = 50
	// statsThreshold is the score a city needs to count towards a theme in Statistics.
	statsThreshold = 60
)

// Catalog answers queries over a fixed table of cities.
// It never mutates the table, so it is safe for concurrent use without locking.
type Catalog struct {
	cities []City
	byCode map[string]int
}

// NewCatalog builds a Catalog over cities. The slice is copied.
func NewCatalog(cities []City) *Catalog {
	c := &Catalog{
		cities: make([]City, len(cities)),
		byCode: make(map[string]int, len(cities)),
	}
	copy(c.cities, cities)
	for i, city := range c.cities {
		c.byCode[strings.ToUpper(city.Code)] = i
	}
	return c
}

// Default returns a Catalog over the built-in city table.
func Default() *Catalog {
	return NewCatalog(cityTable)
}

// Cities returns every record in table order.
func (c *Catalog) Cities() []City {
	out := make([]City, len(c.cities))
	copy(out, c.cities)
	return out
}

// CitiesForTheme returns cities scoring at least minScore for t, best first.
// Equal scores keep table order. Returns nil when t is not a catalog theme.
func (c *Catalog) CitiesForTheme(t Theme, minScore int) []City {
	if !t.Valid() {
		return nil
	}
	var out []City
	for _, city := range c.cities {
		if s, _ := city.Scores.For(t); s >= minScore {
			out = append(out, city)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, _ := out[i].Scores.For(t)
		sj, _ := out[j].Scores.For(t)
		return si > sj
	})
	return out
}

// TopCitiesForTheme is CitiesForTheme with DefaultMinScore truncated to limit.
func (c *Catalog) TopCitiesForTheme(t Theme, limit int) []City {
	out := c.CitiesForTheme(t, DefaultMinScore)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CityByCode looks a city up by IATA code, case-insensitively.
func (c *Catalog) CityByCode(code string) (City, bool) {
	i, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return City{}, false
	}
	return c.cities[i], true
}

// CitiesByMultipleThemes returns cities meeting minScore in every theme of themes,
// ordered by their mean score across those themes.
func (c *Catalog) CitiesByMultipleThemes(themes []Theme, minScore int) []City {
	if len(themes) == 0 {
		return nil
	}
	for _, t := range themes {
		if !t.Valid() {
			return nil
		}
	}

	type scored struct {
		city City
		mean float64
	}
	var matches []scored
	for _, city := range c.cities {
		total, ok := 0, true
		for _, t := range themes {
			s, _ := city.Scores.For(t)
			if s < minScore {
				ok = false
				break
			}
			total += s
		}
		if ok {
			matches = append(matches, scored{city: city, mean: float64(total) / float64(len(themes))})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].mean > matches[j].mean })

	out := make([]City, len(matches))
	for i, m := range matches {
		out[i] = m.city
	}
	return out
}

// CitiesForMixed returns cities whose strongest theme scores at least minScore,
// ordered by that score.
func (c *Catalog) CitiesForMixed(minScore int) []City {
	var out []City
	for _, city := range c.cities {
		if _, best := city.Scores.Best(); best >= minScore {
			out = append(out, city)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		_, bi := out[i].Scores.Best()
		_, bj := out[j].Scores.Best()
		return bi > bj
	})
	return out
}

// Candidates dispatches to CitiesForMixed or CitiesForTheme.
func (c *Catalog) Candidates(t Theme, minScore int) []City {
	if t == Mixed {
		return c.CitiesForMixed(minScore)
	}
	return c.CitiesForTheme(t, minScore)
}

// Statistics counts cities per price tier and per theme (score >= 60).
func (c *Catalog) Statistics() Stats {
	st := Stats{
		TotalCities: len(c.cities),
		ByPriceTier: map[PriceTier]int{Budget: 0, MidRange: 0, Premium: 0},
		ByTheme:     make(map[Theme]int, len(All)),
	}
	for _, t := range All {
		st.ByTheme[t] = 0
	}
	for _, city := range c.cities {
		st.ByPriceTier[city.PriceTier]++
		for _, t := range All {
			if s, _ := city.Scores.For(t); s >= statsThreshold {
				st.ByTheme[t]++
			}
		}
	}
	return st
}

// Themes lists the catalog themes with their labels.
func Themes() []Info {
	out := make([]Info, 0, len(All))
	for _, t := range All {
		out = append(out, Info{ID: t, Label: t.Label()})
	}
	return out
}

package theme_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

func sampleCities() []theme.City {
	return []theme.City{
		{Code: "AAA", Name: "Alpha", CountryCode: "AA", PriceTier: theme.Budget,
			Scores: theme.Scores{Party: 70, Adventure: 90, Culture: 50, Luxury: 40, Relaxation: 60}},
		{Code: "BBB", Name: "Bravo", CountryCode: "BB", PriceTier: theme.MidRange,
			Scores: theme.Scores{Party: 80, Adventure: 90, Culture: 65, Luxury: 55, Relaxation: 50}},
		{Code: "CCC", Name: "Charlie", CountryCode: "AA", PriceTier: theme.Premium,
			Scores: theme.Scores{Party: 20, Adventure: 59, Culture: 95, Luxury: 99, Relaxation: 70}},
	}
}

func TestDefaultCatalog_Invariants(t *testing.T) {
	cities := theme.Default().Cities()
	require.NotEmpty(t, cities)

	seen := make(map[string]bool, len(cities))
	for _, c := range cities {
		assert.False(t, seen[c.Code], "duplicate IATA code %s", c.Code)
		seen[c.Code] = true

		for _, th := range theme.All {
			s, ok := c.Scores.For(th)
			require.True(t, ok)
			assert.GreaterOrEqual(t, s, 0, "%s %s", c.Code, th)
			assert.LessOrEqual(t, s, 100, "%s %s", c.Code, th)
		}
		assert.NotEmpty(t, c.Highlights, c.Code)
		assert.Contains(t, []theme.PriceTier{theme.Budget, theme.MidRange, theme.Premium}, c.PriceTier, c.Code)
		assert.Positive(t, c.AverageFlightTime, c.Code)
	}
}

func TestCitiesForTheme_FilterAndOrder(t *testing.T) {
	cat := theme.Default()
	for _, th := range theme.All {
		for _, min := range []int{0, 50, 60, 85} {
			got := cat.CitiesForTheme(th, min)
			prev := 101
			for _, c := range got {
				s, _ := c.Scores.For(th)
				assert.GreaterOrEqual(t, s, min, "%s below threshold for %s", c.Code, th)
				assert.LessOrEqual(t, s, prev, "%s out of order for %s", c.Code, th)
				prev = s
			}
		}
	}
}

func TestCitiesForTheme_StableOnTies(t *testing.T) {
	cat := theme.NewCatalog(sampleCities())

	got := cat.CitiesForTheme(theme.Adventure, 60)
	require.Len(t, got, 2)
	assert.Equal(t, "AAA", got[0].Code)
	assert.Equal(t, "BBB", got[1].Code)
}

func TestCitiesForTheme_UnknownTheme(t *testing.T) {
	cat := theme.Default()
	assert.Empty(t, cat.CitiesForTheme("nightlife", 0))
	assert.Empty(t, cat.CitiesForTheme(theme.Mixed, 0))
}

func TestTopCitiesForTheme(t *testing.T) {
	cat := theme.Default()
	all := cat.CitiesForTheme(theme.Culture, theme.DefaultMinScore)
	top := cat.TopCitiesForTheme(theme.Culture, 3)
	require.Len(t, top, 3)
	assert.Equal(t, all[:3], top)

	assert.Len(t, cat.TopCitiesForTheme(theme.Culture, 1000), len(all))
}

func TestCityByCode(t *testing.T) {
	cat := theme.Default()

	c, ok := cat.CityByCode("kef")
	require.True(t, ok)
	assert.Equal(t, "Reykjavik", c.Name)
	assert.Equal(t, 3.0, c.AverageFlightTime)

	_, ok = cat.CityByCode("XXX")
	assert.False(t, ok)
}

func TestCitiesByMultipleThemes(t *testing.T) {
	cat := theme.NewCatalog(sampleCities())

	got := cat.CitiesByMultipleThemes([]theme.Theme{theme.Party, theme.Adventure}, 50)
	require.Len(t, got, 2)
	// BBB mean 85 beats AAA mean 80.
	assert.Equal(t, "BBB", got[0].Code)
	assert.Equal(t, "AAA", got[1].Code)

	// Every theme must clear the threshold.
	got = cat.CitiesByMultipleThemes([]theme.Theme{theme.Culture, theme.Luxury}, 60)
	require.Len(t, got, 1)
	assert.Equal(t, "CCC", got[0].Code)

	assert.Empty(t, cat.CitiesByMultipleThemes(nil, 50))
	assert.Empty(t, cat.CitiesByMultipleThemes([]theme.Theme{theme.Party, "bogus"}, 0))
}

func TestCitiesForMixed(t *testing.T) {
	cat := theme.NewCatalog(sampleCities())

	got := cat.CitiesForMixed(95)
	require.Len(t, got, 1)
	assert.Equal(t, "CCC", got[0].Code)

	got = cat.Candidates(theme.Mixed, 0)
	require.Len(t, got, 3)
	assert.Equal(t, "CCC", got[0].Code)
}

func TestStatistics(t *testing.T) {
	st := theme.NewCatalog(sampleCities()).Statistics()

	assert.Equal(t, 3, st.TotalCities)
	assert.Equal(t, 1, st.ByPriceTier[theme.Budget])
	assert.Equal(t, 1, st.ByPriceTier[theme.MidRange])
	assert.Equal(t, 1, st.ByPriceTier[theme.Premium])
	assert.Equal(t, 2, st.ByTheme[theme.Party])
	assert.Equal(t, 2, st.ByTheme[theme.Adventure])
	assert.Equal(t, 2, st.ByTheme[theme.Culture])
	assert.Equal(t, 1, st.ByTheme[theme.Luxury])
	assert.Equal(t, 2, st.ByTheme[theme.Relaxation])
}

func TestParseTheme(t *testing.T) {
	got, err := theme.ParseTheme("  Adventure ")
	require.NoError(t, err)
	assert.Equal(t, theme.Adventure, got)

	got, err = theme.ParseTheme("mixed")
	require.NoError(t, err)
	assert.Equal(t, theme.Mixed, got)

	_, err = theme.ParseTheme("nightlife")
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrUnsupportedTheme))
}

func TestScoresBest(t *testing.T) {
	th, s := theme.Scores{Party: 10, Adventure: 80, Culture: 80, Luxury: 5, Relaxation: 1}.Best()
	assert.Equal(t, theme.Adventure, th)
	assert.Equal(t, 80, s)
}

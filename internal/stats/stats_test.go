// internal/stats/stats_test.go
package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/internal/model"
)

func lang(s string) *string { return &s }

func repo(language *string, stars, forks int) model.RepositorySummary {
	return model.RepositorySummary{Language: language, StarsCount: stars, ForksCount: forks}
}

func TestTallyLanguages(t *testing.T) {
	t.Run("counts repositories per language and skips missing languages", func(t *testing.T) {
		repos := []model.RepositorySummary{
			repo(lang("TypeScript"), 0, 0),
			repo(lang("TypeScript"), 0, 0),
			repo(lang("JavaScript"), 0, 0),
			repo(nil, 0, 0),
		}

		tally := TallyLanguages(repos)

		assert.Equal(t, model.LanguageTally{"TypeScript": 2, "JavaScript": 1}, tally)
		assert.Equal(t, 3, tally.Total(), "tally total must equal repositories with a language")
	})

	t.Run("labels are case-sensitive", func(t *testing.T) {
		tally := TallyLanguages([]model.RepositorySummary{repo(lang("Go"), 0, 0), repo(lang("go"), 0, 0)})
		assert.Len(t, tally, 2)
	})

	t.Run("is idempotent over the same input", func(t *testing.T) {
		repos := []model.RepositorySummary{repo(lang("Go"), 0, 0), repo(lang("Rust"), 0, 0), repo(lang("Go"), 0, 0)}
		assert.Equal(t, TallyLanguages(repos), TallyLanguages(repos))
	})

	t.Run("empty input yields empty tally", func(t *testing.T) {
		tally := TallyLanguages(nil)
		assert.NotNil(t, tally)
		assert.Empty(t, tally)
	})
}

func TestMostPopularLanguage(t *testing.T) {
	t.Run("picks highest count", func(t *testing.T) {
		got, ok := MostPopularLanguage(model.LanguageTally{"TypeScript": 2, "JavaScript": 1})
		require.True(t, ok)
		assert.Equal(t, "TypeScript", got)
	})

	t.Run("breaks ties by label", func(t *testing.T) {
		got, ok := MostPopularLanguage(model.LanguageTally{"Python": 2, "Go": 2, "Rust": 1})
		require.True(t, ok)
		assert.Equal(t, "Go", got)
	})

	t.Run("empty tally has no popular language", func(t *testing.T) {
		got, ok := MostPopularLanguage(model.LanguageTally{})
		assert.False(t, ok)
		assert.Empty(t, got)
	})
}

func TestTopLanguages(t *testing.T) {
	t.Run("scenario with two languages", func(t *testing.T) {
		shares := TopLanguages(model.LanguageTally{"TypeScript": 2, "JavaScript": 1}, TopN)

		require.Len(t, shares, 2)
		assert.Equal(t, "TypeScript", shares[0].Language)
		assert.InDelta(t, 66.67, shares[0].Percentage, 0.005)
		assert.Equal(t, "JavaScript", shares[1].Language)
		assert.InDelta(t, 33.33, shares[1].Percentage, 0.005)
		assert.Equal(t, LanguageColor("TypeScript").Class, shares[0].Color)
	})

	t.Run("never exceeds the display limit and keeps full-tally denominators", func(t *testing.T) {
		tally := model.LanguageTally{}
		for i := 0; i < 8; i++ {
			tally[fmt.Sprintf("Lang%d", i)] = i + 1
		}

		shares := TopLanguages(tally, TopN)

		require.Len(t, shares, TopN)
		assert.Equal(t, "Lang7", shares[0].Language)
		assert.InDelta(t, 100*8.0/36.0, shares[0].Percentage, 1e-9)

		var shown float64
		for _, s := range shares {
			shown += s.Percentage
		}
		assert.Less(t, shown, 100.0)
	})

	t.Run("ties are ordered by label", func(t *testing.T) {
		shares := TopLanguages(model.LanguageTally{"Zig": 1, "C": 1, "Go": 3}, TopN)
		require.Len(t, shares, 3)
		assert.Equal(t, []string{"Go", "C", "Zig"}, []string{shares[0].Language, shares[1].Language, shares[2].Language})
	})

	t.Run("empty tally yields empty list", func(t *testing.T) {
		assert.Empty(t, TopLanguages(model.LanguageTally{}, TopN))
	})
}

func TestShares_SumToHundred(t *testing.T) {
	tallies := []model.LanguageTally{
		{"Go": 1},
		{"Go": 1, "Rust": 1, "C": 1},
		{"A": 7, "B": 3, "C": 11, "D": 1, "E": 2, "F": 5, "G": 13},
	}
	for _, tally := range tallies {
		var sum float64
		for _, s := range Shares(tally) {
			assert.GreaterOrEqual(t, s.Percentage, 0.0)
			assert.LessOrEqual(t, s.Percentage, 100.0)
			sum += s.Percentage
		}
		assert.InDelta(t, 100.0, sum, 1e-6)
	}
}

func TestLanguageColor(t *testing.T) {
	assert.Equal(t, "from-yellow-400 to-yellow-600", LanguageColor("JavaScript").Class)
	assert.Equal(t, "from-blue-300 to-blue-500", LanguageColor("CSS").Class)
	assert.Equal(t, DefaultColor, LanguageColor("Haskell"))
	assert.Equal(t, DefaultColor, LanguageColor("javascript"), "lookup is case-sensitive")
	assert.Equal(t, DefaultColor, LanguageColor(""))
}

func TestContributionScore(t *testing.T) {
	repos := []model.RepositorySummary{
		repo(lang("Go"), 3, 1),
		repo(nil, 0, 0),
		repo(lang("Rust"), 10, 2),
	}
	assert.Equal(t, 16, ContributionScore(repos))
	assert.Equal(t, 0, ContributionScore(nil))
}

// internal/stats/languages.go
package stats

import (
	"sort"

	"devfolio/internal/model"
)

// TopN is the number of languages shown in the language chart.
const TopN = 5

// TallyLanguages counts repositories per primary language.
// Repositories without a language are left out of the tally entirely.
func TallyLanguages(repos []model.RepositorySummary) model.LanguageTally {
	tally := make(model.LanguageTally)
	for _, r := range repos {
		if r.Language == nil {
			continue
		}
		tally[*r.Language]++
	}
	return tally
}

// MostPopularLanguage returns the language with the highest count.
// Ties go to the label that sorts first. The boolean is false for an empty tally.
func MostPopularLanguage(tally model.LanguageTally) (string, bool) {
	ranked := rank(tally)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].Language, true
}

// TopLanguages returns at most n shares ordered by count, highest first.
// Percentages are relative to the whole tally, not to the returned subset.
func TopLanguages(tally model.LanguageTally, n int) []model.LanguageShare {
	shares := Shares(tally)
	if n < 0 {
		n = 0
	}
	if len(shares) > n {
		shares = shares[:n]
	}
	return shares
}

// Shares returns a share for every language in the tally, in rank order.
func Shares(tally model.LanguageTally) []model.LanguageShare {
	ranked := rank(tally)
	total := tally.Total()

	shares := make([]model.LanguageShare, 0, len(ranked))
	for _, r := range ranked {
		band := LanguageColor(r.Language)
		shares = append(shares, model.LanguageShare{
			Language:   r.Language,
			Count:      r.Count,
			Percentage: float64(r.Count) / float64(total) * 100.0,
			Color:      band.Class,
			Hex:        band.Hex,
		})
	}
	return shares
}

type rankedLanguage struct {
	Language string
	Count    int
}

// rank orders languages by count descending, then by label ascending.
func rank(tally model.LanguageTally) []rankedLanguage {
	ranked := make([]rankedLanguage, 0, len(tally))
	for lang, c := range tally {
		ranked = append(ranked, rankedLanguage{Language: lang, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Language < ranked[j].Language
	})
	return ranked
}

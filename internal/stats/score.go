// internal/stats/score.go
package stats

import "devfolio/internal/model"

// ContributionScore sums stars and forks over the given repositories.
// It is shown as "Activity" and only covers the fetched page of repositories.
func ContributionScore(repos []model.RepositorySummary) int {
	var total int
	for _, r := range repos {
		total += r.StarsCount + r.ForksCount
	}
	return total
}

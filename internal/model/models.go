// internal/model/models.go
package model

import "time"

// Profile is the fetched GitHub account shown on the profile page.
// Optional fields are empty strings when the account leaves them unset.
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio,omitempty"`
	AvatarURL   string    `json:"avatar_url"`
	Location    string    `json:"location,omitempty"`
	Website     string    `json:"website,omitempty"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName falls back to the login when the account has no name set.
func (p *Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// RepositorySummary is one repository from the most-recently-updated page.
type RepositorySummary struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	StarsCount    int       `json:"stars_count"`
	ForksCount    int       `json:"forks_count"`
	WatchersCount int       `json:"watchers_count"`
	Language      *string   `json:"language,omitempty"`
	URL           string    `json:"url"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LanguageTally maps a language label, exactly as reported by GitHub, to a repository count.
type LanguageTally map[string]int

// Total sums the counts of every language in the tally.
func (t LanguageTally) Total() int {
	var total int
	for _, c := range t {
		total += c
	}
	return total
}

// LanguageShare is one row of the language bar chart.
type LanguageShare struct {
	Language   string  `json:"language"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Hex        string  `json:"hex"`
}

// ContributionCalendar is the past year of daily contribution counts, one column per week.
type ContributionCalendar struct {
	TotalContributions int                `json:"total_contributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

type ContributionWeek struct {
	Days []ContributionDay `json:"days"`
}

// ContributionDay carries the color GitHub assigns to the day's count.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// internal/github/calendar.go
package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/shurcooL/githubv4"

	custom_errors "devfolio/internal/errors"
	"devfolio/internal/model"
)

// ErrTokenRequired is returned for GraphQL calls on a client built without a token.
// GitHub does not serve its GraphQL API to anonymous callers.
var ErrTokenRequired = errors.New("GitHub GraphQL API requires a token")

const calendarResource = "contribution calendar"

type calendarQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions githubv4.Int
				Weeks              []struct {
					ContributionDays []struct {
						Date              githubv4.String
						ContributionCount githubv4.Int
						Color             githubv4.String
					}
				}
			}
		}
	} `graphql:"user(login: $login)"`
}

// GetContributionCalendar fetches the user's contribution calendar for the past year.
func (c *Client) GetContributionCalendar(ctx context.Context, username string) (*model.ContributionCalendar, error) {
	if !c.authenticated {
		return nil, &custom_errors.FetchError{Resource: calendarResource, Err: ErrTokenRequired}
	}
	c.logger.Debug("Fetching contribution calendar", "username", username)

	var q calendarQuery
	vars := map[string]interface{}{
		"login": githubv4.String(username),
	}
	if err := c.gql.Query(ctx, &q, vars); err != nil {
		return nil, classify(calendarResource, err)
	}

	cal := q.User.ContributionsCollection.ContributionCalendar
	out := &model.ContributionCalendar{
		TotalContributions: int(cal.TotalContributions),
		Weeks:              make([]model.ContributionWeek, 0, len(cal.Weeks)),
	}
	if out.TotalContributions < 0 {
		return nil, &custom_errors.DecodeError{Resource: calendarResource, Field: "totalContributions", Err: errNegative}
	}
	for i, w := range cal.Weeks {
		week := model.ContributionWeek{Days: make([]model.ContributionDay, 0, len(w.ContributionDays))}
		for j, d := range w.ContributionDays {
			if d.ContributionCount < 0 {
				return nil, &custom_errors.DecodeError{
					Resource: calendarResource,
					Field:    fmt.Sprintf("weeks[%d].contributionDays[%d].contributionCount", i, j),
					Err:      errNegative,
				}
			}
			week.Days = append(week.Days, model.ContributionDay{
				Date:  string(d.Date),
				Count: int(d.ContributionCount),
				Color: string(d.Color),
			})
		}
		out.Weeks = append(out.Weeks, week)
	}
	return out, nil
}

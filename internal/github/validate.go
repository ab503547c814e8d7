// internal/github/validate.go
package github

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v62/github"

	custom_errors "devfolio/internal/errors"
)

var (
	errMissing  = errors.New("missing")
	errNegative = errors.New("must not be negative")
)

func validateUser(u *github.User) error {
	if u == nil || u.GetLogin() == "" {
		return &custom_errors.DecodeError{Resource: "profile", Field: "login", Err: errMissing}
	}
	counts := []struct {
		field string
		value int
	}{
		{"followers", u.GetFollowers()},
		{"following", u.GetFollowing()},
		{"public_repos", u.GetPublicRepos()},
	}
	for _, c := range counts {
		if c.value < 0 {
			return &custom_errors.DecodeError{Resource: "profile", Field: c.field, Err: errNegative}
		}
	}
	return nil
}

// validateRepositories rejects a page that decoded to nil: a null or empty body, as opposed to [].
func validateRepositories(repos []*github.Repository) error {
	if repos == nil {
		return &custom_errors.DecodeError{Resource: "repositories", Err: errMissing}
	}
	seen := make(map[int64]struct{}, len(repos))
	for i, r := range repos {
		field := func(name string) string { return fmt.Sprintf("[%d].%s", i, name) }

		if r == nil || r.GetID() == 0 {
			return &custom_errors.DecodeError{Resource: "repositories", Field: field("id"), Err: errMissing}
		}
		if _, dup := seen[r.GetID()]; dup {
			return &custom_errors.DecodeError{Resource: "repositories", Field: field("id"), Err: fmt.Errorf("duplicate id %d", r.GetID())}
		}
		seen[r.GetID()] = struct{}{}

		if r.GetName() == "" {
			return &custom_errors.DecodeError{Resource: "repositories", Field: field("name"), Err: errMissing}
		}
		if r.GetStargazersCount() < 0 {
			return &custom_errors.DecodeError{Resource: "repositories", Field: field("stargazers_count"), Err: errNegative}
		}
		if r.GetForksCount() < 0 {
			return &custom_errors.DecodeError{Resource: "repositories", Field: field("forks_count"), Err: errNegative}
		}
		if r.GetWatchersCount() < 0 {
			return &custom_errors.DecodeError{Resource: "repositories", Field: field("watchers_count"), Err: errNegative}
		}
	}
	return nil
}

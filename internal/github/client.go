// internal/github/client.go
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	custom_errors "devfolio/internal/errors"
	"devfolio/internal/model"
)

// RecentRepositoriesPageSize is the number of most-recently-updated repositories fetched per view.
const RecentRepositoriesPageSize = 6

const defaultGraphQLURL = "https://api.github.com/graphql"

// Client is a wrapper around the go-github REST client and the githubv4 GraphQL client.
type Client struct {
	gh            *github.Client
	gql           *githubv4.Client
	authenticated bool
	logger        *slog.Logger
}

// NewClient creates and configures a new Client instance.
// An empty token leaves requests unauthenticated. An empty baseURL targets api.github.com.
func NewClient(token, baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = timeout
	}

	gh := github.NewClient(httpClient)
	gqlURL := defaultGraphQLURL
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		gh.BaseURL = u
		gqlURL = u.JoinPath("graphql").String()
	}

	return &Client{
		gh:            gh,
		gql:           githubv4.NewEnterpriseClient(gqlURL, httpClient),
		authenticated: token != "",
		logger:        logger,
	}, nil
}

// GetProfile fetches the account for username and translates it to our internal model.
func (c *Client) GetProfile(ctx context.Context, username string) (*model.Profile, error) {
	c.logger.Debug("Fetching profile", "username", username)

	user, _, err := c.gh.Users.Get(ctx, username)
	if err != nil {
		return nil, classify("profile", err)
	}
	if err := validateUser(user); err != nil {
		return nil, err
	}
	return toInternalProfile(user), nil
}

// ListRecentRepositories fetches the first page of the user's repositories,
// most recently updated first. Only one page is read.
func (c *Client) ListRecentRepositories(ctx context.Context, username string) ([]model.RepositorySummary, error) {
	c.logger.Debug("Fetching recent repositories", "username", username, "per_page", RecentRepositoriesPageSize)

	opts := &github.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			PerPage: RecentRepositoriesPageSize,
		},
	}
	repos, _, err := c.gh.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, classify("repositories", err)
	}
	if err := validateRepositories(repos); err != nil {
		return nil, err
	}

	if len(repos) > RecentRepositoriesPageSize {
		repos = repos[:RecentRepositoriesPageSize]
	}
	summaries := make([]model.RepositorySummary, 0, len(repos))
	for _, r := range repos {
		summaries = append(summaries, toInternalRepository(r))
	}
	return summaries, nil
}

// classify sorts a go-github error into a decode or fetch failure.
func classify(resource string, err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &custom_errors.DecodeError{Resource: resource, Err: err}
	}
	return &custom_errors.FetchError{Resource: resource, StatusCode: statusCode(err), Err: err}
}

func statusCode(err error) int {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}
	return 0
}

// toInternalProfile translates a github.User object to our internal model.Profile.
func toInternalProfile(u *github.User) *model.Profile {
	return &model.Profile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		AvatarURL:   u.GetAvatarURL(),
		Location:    u.GetLocation(),
		Website:     u.GetBlog(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		PublicRepos: u.GetPublicRepos(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}

// toInternalRepository translates a github.Repository object to our internal model.RepositorySummary.
func toInternalRepository(r *github.Repository) model.RepositorySummary {
	return model.RepositorySummary{
		ID:            r.GetID(),
		Name:          r.GetName(),
		Description:   nonEmpty(r.Description),
		StarsCount:    r.GetStargazersCount(),
		ForksCount:    r.GetForksCount(),
		WatchersCount: r.GetWatchersCount(),
		Language:      nonEmpty(r.Language),
		URL:           r.GetHTMLURL(),
		UpdatedAt:     r.GetUpdatedAt().Time,
	}
}

// nonEmpty treats an empty string the same as a JSON null.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

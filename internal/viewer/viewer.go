// internal/viewer/viewer.go
package viewer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"devfolio/internal/model"
	"devfolio/internal/stats"
)

// Status is the outcome of one page-view fetch.
type Status string

const (
	StatusReady  Status = "ready"
	StatusFailed Status = "failed"
)

// Source is the read-only GitHub API used by a page view.
type Source interface {
	GetProfile(ctx context.Context, username string) (*model.Profile, error)
	ListRecentRepositories(ctx context.Context, username string) ([]model.RepositorySummary, error)
}

// CalendarSource serves the contribution calendar. A loader without one skips it.
type CalendarSource interface {
	GetContributionCalendar(ctx context.Context, username string) (*model.ContributionCalendar, error)
}

// View is the immutable result of one page-view fetch, with every derived value precomputed.
type View struct {
	Status            Status
	Username          string
	Profile           *model.Profile
	Repositories      []model.RepositorySummary
	Tally             model.LanguageTally
	MostPopular       string
	HasMostPopular    bool
	TopLanguages      []model.LanguageShare
	ContributionScore int
	FetchedAt         time.Time

	// Calendar is nil when no calendar source is configured or its fetch failed.
	Calendar *model.ContributionCalendar

	// Err is the profile failure that made the view fail.
	Err error
	// RepositoriesErr is set when only the repository request failed.
	RepositoriesErr error
}

// Loader runs the fetch pipeline for a single username.
type Loader struct {
	source   Source
	calendar CalendarSource
	logger   *slog.Logger
	username string
	now      func() time.Time
}

// NewLoader creates a new Loader instance.
func NewLoader(source Source, logger *slog.Logger, username string) *Loader {
	return &Loader{
		source:   source,
		logger:   logger,
		username: username,
		now:      time.Now,
	}
}

// WithCalendar adds the contribution calendar to every view. Its failure never fails the view.
func (l *Loader) WithCalendar(src CalendarSource) *Loader {
	l.calendar = src
	return l
}

// Load fetches the profile and the recent repositories concurrently and derives the view.
// ctx is the lifetime of the page view: once it is done, in-flight requests are abandoned
// and the view comes back failed.
func (l *Loader) Load(ctx context.Context) *View {
	logger := l.logger.With("username", l.username)
	logger.Info("Loading GitHub view")

	var (
		profile     *model.Profile
		repos       []model.RepositorySummary
		calendar    *model.ContributionCalendar
		profileErr  error
		reposErr    error
		calendarErr error
		g           errgroup.Group
	)

	// Each request fails on its own; none cancels the others.
	g.Go(func() error {
		profile, profileErr = l.source.GetProfile(ctx, l.username)
		return nil
	})
	g.Go(func() error {
		repos, reposErr = l.source.ListRecentRepositories(ctx, l.username)
		return nil
	})
	if l.calendar != nil {
		g.Go(func() error {
			calendar, calendarErr = l.calendar.GetContributionCalendar(ctx, l.username)
			return nil
		})
	}
	// The goroutines never fail the group; outcomes are read from the *Err variables.
	_ = g.Wait()

	if ctx.Err() != nil {
		logger.Info("View abandoned before fetch completed", "reason", ctx.Err())
		return l.failed(ctx.Err())
	}

	if profileErr != nil {
		logger.Error("Failed to fetch GitHub profile", "error", profileErr)
		return l.failed(profileErr)
	}

	if reposErr != nil {
		logger.Error("Failed to fetch repositories", "error", reposErr)
		repos = nil
	}

	view := Build(l.username, profile, repos)
	view.FetchedAt = l.now()
	view.RepositoriesErr = reposErr
	if calendarErr != nil {
		logger.Warn("Failed to fetch contribution calendar", "error", calendarErr)
	} else {
		view.Calendar = calendar
	}
	logger.Info("GitHub view ready",
		"repositories", len(view.Repositories),
		"languages", len(view.Tally),
		"contribution_score", view.ContributionScore,
	)
	return view
}

// Build derives a ready view from already-fetched data.
func Build(username string, profile *model.Profile, repos []model.RepositorySummary) *View {
	if repos == nil {
		repos = []model.RepositorySummary{}
	}
	tally := stats.TallyLanguages(repos)
	popular, ok := stats.MostPopularLanguage(tally)

	return &View{
		Status:            StatusReady,
		Username:          username,
		Profile:           profile,
		Repositories:      repos,
		Tally:             tally,
		MostPopular:       popular,
		HasMostPopular:    ok,
		TopLanguages:      stats.TopLanguages(tally, stats.TopN),
		ContributionScore: stats.ContributionScore(repos),
	}
}

func (l *Loader) failed(err error) *View {
	return &View{
		Status:       StatusFailed,
		Username:     l.username,
		Repositories: []model.RepositorySummary{},
		Tally:        model.LanguageTally{},
		TopLanguages: []model.LanguageShare{},
		FetchedAt:    l.now(),
		Err:          err,
	}
}

// Canceled reports whether the view failed because its page view went away.
func (v *View) Canceled() bool {
	return errors.Is(v.Err, context.Canceled) || errors.Is(v.Err, context.DeadlineExceeded)
}

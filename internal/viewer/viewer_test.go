// internal/viewer/viewer_test.go
package viewer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	custom_errors "devfolio/internal/errors"
	"devfolio/internal/model"
)

// MockSource is a mock of the Source interface.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) GetProfile(ctx context.Context, username string) (*model.Profile, error) {
	args := m.Called(ctx, username)
	profile, _ := args.Get(0).(*model.Profile)
	return profile, args.Error(1)
}

func (m *MockSource) ListRecentRepositories(ctx context.Context, username string) ([]model.RepositorySummary, error) {
	args := m.Called(ctx, username)
	repos, _ := args.Get(0).([]model.RepositorySummary)
	return repos, args.Error(1)
}

// MockCalendar is a mock of the CalendarSource interface.
type MockCalendar struct {
	mock.Mock
}

func (m *MockCalendar) GetContributionCalendar(ctx context.Context, username string) (*model.ContributionCalendar, error) {
	args := m.Called(ctx, username)
	cal, _ := args.Get(0).(*model.ContributionCalendar)
	return cal, args.Error(1)
}

func lang(s string) *string { return &s }

func newTestLoader(source Source) *Loader {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := NewLoader(source, logger, "octo")
	l.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestLoader_Load(t *testing.T) {
	profile := &model.Profile{Login: "octo", Name: "Octo Cat", Followers: 4}

	t.Run("builds a ready view when both requests succeed", func(t *testing.T) {
		src := new(MockSource)
		src.On("GetProfile", mock.Anything, "octo").Return(profile, nil).Once()
		src.On("ListRecentRepositories", mock.Anything, "octo").Return([]model.RepositorySummary{
			{ID: 1, Name: "a", Language: lang("TypeScript"), StarsCount: 3, ForksCount: 1},
			{ID: 2, Name: "b", Language: lang("TypeScript")},
			{ID: 3, Name: "c", Language: lang("JavaScript"), StarsCount: 10, ForksCount: 2},
			{ID: 4, Name: "d"},
		}, nil).Once()

		view := newTestLoader(src).Load(context.Background())

		require.Equal(t, StatusReady, view.Status)
		assert.Same(t, profile, view.Profile)
		assert.Len(t, view.Repositories, 4)
		assert.Equal(t, model.LanguageTally{"TypeScript": 2, "JavaScript": 1}, view.Tally)
		assert.True(t, view.HasMostPopular)
		assert.Equal(t, "TypeScript", view.MostPopular)
		require.Len(t, view.TopLanguages, 2)
		assert.InDelta(t, 66.67, view.TopLanguages[0].Percentage, 0.005)
		assert.Equal(t, 16, view.ContributionScore)
		assert.Equal(t, 2025, view.FetchedAt.Year())
		assert.NoError(t, view.Err)
		assert.NoError(t, view.RepositoriesErr)
		src.AssertExpectations(t)
	})

	t.Run("keeps the profile when only repositories fail", func(t *testing.T) {
		src := new(MockSource)
		reposErr := &custom_errors.FetchError{Resource: "repositories", StatusCode: 500, Err: errors.New("boom")}
		src.On("GetProfile", mock.Anything, "octo").Return(profile, nil).Once()
		src.On("ListRecentRepositories", mock.Anything, "octo").Return(nil, reposErr).Once()

		view := newTestLoader(src).Load(context.Background())

		require.Equal(t, StatusReady, view.Status)
		assert.Same(t, profile, view.Profile)
		assert.NotNil(t, view.Repositories)
		assert.Empty(t, view.Repositories)
		assert.Empty(t, view.Tally)
		assert.False(t, view.HasMostPopular)
		assert.Empty(t, view.TopLanguages)
		assert.Zero(t, view.ContributionScore)
		assert.Equal(t, reposErr, view.RepositoriesErr)
		src.AssertExpectations(t)
	})

	t.Run("fails when the profile request fails", func(t *testing.T) {
		src := new(MockSource)
		profileErr := &custom_errors.DecodeError{Resource: "profile", Err: errors.New("bad json")}
		src.On("GetProfile", mock.Anything, "octo").Return(nil, profileErr).Once()
		src.On("ListRecentRepositories", mock.Anything, "octo").Return([]model.RepositorySummary{{ID: 1, Name: "a"}}, nil).Once()

		view := newTestLoader(src).Load(context.Background())

		assert.Equal(t, StatusFailed, view.Status)
		assert.Nil(t, view.Profile)
		assert.Empty(t, view.Repositories)
		assert.Equal(t, profileErr, view.Err)
		assert.False(t, view.Canceled())
	})

	t.Run("fails without fetch errors when the view is gone", func(t *testing.T) {
		src := new(MockSource)
		src.On("GetProfile", mock.Anything, "octo").Return(nil, context.Canceled).Once()
		src.On("ListRecentRepositories", mock.Anything, "octo").Return(nil, context.Canceled).Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		view := newTestLoader(src).Load(ctx)

		assert.Equal(t, StatusFailed, view.Status)
		assert.True(t, view.Canceled())
	})
}

func TestBuild_EmptyRepositories(t *testing.T) {
	view := Build("octo", &model.Profile{Login: "octo"}, nil)

	assert.Equal(t, StatusReady, view.Status)
	assert.Empty(t, view.Tally)
	assert.False(t, view.HasMostPopular)
	assert.Empty(t, view.TopLanguages)
	assert.Zero(t, view.ContributionScore)
}

func TestLoader_LoadCalendar(t *testing.T) {
	profile := &model.Profile{Login: "octo"}
	repos := []model.RepositorySummary{{ID: 1, Name: "a", StarsCount: 2, ForksCount: 1}}

	newSource := func() *MockSource {
		src := new(MockSource)
		src.On("GetProfile", mock.Anything, "octo").Return(profile, nil).Once()
		src.On("ListRecentRepositories", mock.Anything, "octo").Return(repos, nil).Once()
		return src
	}

	t.Run("attaches the calendar", func(t *testing.T) {
		cal := &model.ContributionCalendar{TotalContributions: 42}
		calendar := new(MockCalendar)
		calendar.On("GetContributionCalendar", mock.Anything, "octo").Return(cal, nil).Once()

		view := newTestLoader(newSource()).WithCalendar(calendar).Load(context.Background())

		require.Equal(t, StatusReady, view.Status)
		assert.Same(t, cal, view.Calendar)
		assert.Equal(t, 3, view.ContributionScore, "the calendar does not feed the score")
		calendar.AssertExpectations(t)
	})

	t.Run("calendar failure leaves the view ready", func(t *testing.T) {
		calendar := new(MockCalendar)
		calendar.On("GetContributionCalendar", mock.Anything, "octo").
			Return(nil, &custom_errors.FetchError{Resource: "contribution calendar", StatusCode: 401, Err: errors.New("bad credentials")}).Once()

		view := newTestLoader(newSource()).WithCalendar(calendar).Load(context.Background())

		require.Equal(t, StatusReady, view.Status)
		assert.Nil(t, view.Calendar)
		assert.NoError(t, view.Err)
		assert.Len(t, view.Repositories, 1)
	})

	t.Run("no calendar source means no calendar", func(t *testing.T) {
		view := newTestLoader(newSource()).Load(context.Background())

		require.Equal(t, StatusReady, view.Status)
		assert.Nil(t, view.Calendar)
	})
}

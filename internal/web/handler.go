// internal/web/handler.go
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"devfolio/internal/content"
	"devfolio/internal/model"
	"devfolio/internal/particles"
	"devfolio/internal/viewer"
)

// ViewLoader runs one GitHub fetch per page view.
type ViewLoader interface {
	Load(ctx context.Context) *viewer.View
}

// Options tunes how failed fetches are presented.
type Options struct {
	// ShowFetchErrors replaces the endless loading indicator with an error notice
	// and makes /v1/github answer 502 when the fetch fails.
	ShowFetchErrors bool
}

// Handler is the container for web dependencies.
type Handler struct {
	loader ViewLoader
	site   *content.Site
	pages  *pages
	logger *slog.Logger
	opts   Options
}

// NewRouter creates and configures a new chi router with all page and API routes.
func NewRouter(loader ViewLoader, site *content.Site, logger *slog.Logger, opts Options) (http.Handler, error) {
	p, err := parsePages()
	if err != nil {
		return nil, err
	}
	h := &Handler{
		loader: loader,
		site:   site,
		pages:  p,
		logger: logger,
		opts:   opts,
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger) // Chi's default logger
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", h.healthCheck)

	// Pages
	r.Get("/", h.home)
	r.Get("/about", h.about)
	r.Get("/skills", h.skills)
	r.Get("/projects", h.projects)
	r.Get("/github", h.githubPage)

	// API Routes
	r.Route("/v1", func(r chi.Router) {
		r.Get("/github", h.githubJSON)
		r.Get("/particles/{shape}", h.getParticles)
	})

	return r, nil
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type homeData struct {
	Shapes []string
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "home", "Home", "/", homeData{Shapes: particles.Shapes()})
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "about", "About", "/about", nil)
}

type skillsData struct {
	HasCategory bool
	Category    content.SkillCategory
}

// skills shows one skill category at a time.
// GET /skills?category=Backend
func (h *Handler) skills(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.site.SkillCategory(r.URL.Query().Get("category"))
	h.render(w, http.StatusOK, "skills", "Skills", "/skills", skillsData{HasCategory: ok, Category: cat})
}

type projectsData struct {
	Category string
	Projects []content.Project
}

// projects renders the project grid.
// GET /projects?category=Full+Stack
func (h *Handler) projects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = content.AllCategories
	}
	h.render(w, http.StatusOK, "projects", "Projects", "/projects", projectsData{
		Category: category,
		Projects: h.site.FilterProjects(category),
	})
}

// Page states of the GitHub section.
const (
	stateReady   = "ready"
	stateLoading = "loading"
	stateError   = "error"
)

type githubData struct {
	State string
	View  *viewer.View
}

// githubPage fetches the profile and recent repositories for this page view.
// GET /github
func (h *Handler) githubPage(w http.ResponseWriter, r *http.Request) {
	view, ok := h.load(r)
	if !ok {
		return
	}
	h.render(w, http.StatusOK, "github", "GitHub", "/github", githubData{State: h.state(view), View: view})
}

type githubResponse struct {
	Status            string                      `json:"status"`
	Username          string                      `json:"username"`
	Profile           *model.Profile              `json:"profile,omitempty"`
	Repositories      []model.RepositorySummary   `json:"repositories"`
	Languages         model.LanguageTally         `json:"languages"`
	MostPopular       *string                     `json:"most_popular_language"`
	TopLanguages      []model.LanguageShare       `json:"top_languages"`
	ContributionScore int                         `json:"contribution_score"`
	Calendar          *model.ContributionCalendar `json:"contribution_calendar,omitempty"`
	FetchedAt         time.Time                   `json:"fetched_at"`
}

// githubJSON returns the same view as /github for client-side rendering.
// GET /v1/github
func (h *Handler) githubJSON(w http.ResponseWriter, r *http.Request) {
	view, ok := h.load(r)
	if !ok {
		return
	}

	state := h.state(view)
	if state == stateError {
		h.respondWithError(w, http.StatusBadGateway, "GitHub data is unavailable")
		return
	}

	resp := githubResponse{
		Status:            state,
		Username:          view.Username,
		Profile:           view.Profile,
		Repositories:      view.Repositories,
		Languages:         view.Tally,
		TopLanguages:      view.TopLanguages,
		ContributionScore: view.ContributionScore,
		Calendar:          view.Calendar,
		FetchedAt:         view.FetchedAt,
	}
	if view.HasMostPopular {
		resp.MostPopular = &view.MostPopular
	}
	h.respondWithJSON(w, http.StatusOK, resp)
}

// getParticles returns the point buffers for one background animation.
// GET /v1/particles/{shape}
func (h *Handler) getParticles(w http.ResponseWriter, r *http.Request) {
	shape := chi.URLParam(r, "shape")

	g, err := particles.Generate(shape, nil)
	if err != nil {
		h.respondWithError(w, http.StatusNotFound, "Unknown particle shape")
		return
	}
	h.respondWithJSON(w, http.StatusOK, g)
}

// load runs the fetch for this request. It returns false when the client went away
// before the fetch finished, in which case nothing is written.
func (h *Handler) load(r *http.Request) (*viewer.View, bool) {
	view := h.loader.Load(r.Context())
	if view.Canceled() && r.Context().Err() != nil {
		h.logger.Debug("Request ended before GitHub data arrived",
			"request_id", middleware.GetReqID(r.Context()),
			"reason", r.Context().Err(),
		)
		return nil, false
	}
	return view, true
}

func (h *Handler) state(view *viewer.View) string {
	switch {
	case view.Status == viewer.StatusReady:
		return stateReady
	case h.opts.ShowFetchErrors:
		return stateError
	default:
		return stateLoading
	}
}

package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/badgeworks/gitbadge/internal/app"
	"github.com/badgeworks/gitbadge/internal/badge"
)

const (
	defaultBadgeLimit   = 10
	badgeCacheMaxAge    = 5 * time.Minute
	allBadgeCacheMaxAge = time.Hour
)

// BadgeVariant configures one badge route: the defaults it applies and
// the capabilities it exposes.
type BadgeVariant struct {
	DefaultLayout badge.Layout
	DefaultLimit  int
	FixedAll      bool
	NoAvatars     bool
	WithHeader    bool
	CacheMaxAge   time.Duration
}

// NewBadgeHandler creates handlerfunc serving rendered badges.
func NewBadgeHandler(service Service, variant BadgeVariant, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseBadgeRequest(r, variant)
		if err != nil {
			writeError(w, l, err)
			return
		}

		svgDoc, err := service.Badge(r.Context(), req)
		if err != nil {
			writeError(w, l, err)
			return
		}

		w.Header().Set("Content-type", "image/svg+xml; charset=utf-8")
		if variant.CacheMaxAge > 0 {
			w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(variant.CacheMaxAge.Seconds())))
		}
		_, _ = w.Write(svgDoc)
	}
}

func parseBadgeRequest(r *http.Request, variant BadgeVariant) (app.BadgeRequest, error) {
	q := r.URL.Query()

	id, err := app.ParseRepoID(q.Get("repo"))
	if err != nil {
		return app.BadgeRequest{}, err
	}

	limit := variant.DefaultLimit
	if variant.FixedAll {
		limit = 0
	} else if vs := q.Get("limit"); vs != "" {
		limit, err = parseLimit(vs)
		if err != nil {
			return app.BadgeRequest{}, err
		}
	}

	layout := variant.DefaultLayout
	if vs := q.Get("style"); vs != "" {
		layout = badge.Layout(vs)
		if !badge.ValidLayout(layout) {
			return app.BadgeRequest{}, app.InvalidRequestError("style must be one of: horizontal, grid")
		}
	}

	theme := badge.ThemeLight
	if vs := q.Get("theme"); vs != "" {
		theme = badge.Theme(vs)
		if !badge.ValidTheme(theme) {
			return app.BadgeRequest{}, app.InvalidRequestError("theme must be one of: light, dark")
		}
	}

	avatars := true
	if variant.NoAvatars {
		avatars = false
	} else if vs := q.Get("avatars"); vs != "" {
		avatars, err = strconv.ParseBool(vs)
		if err != nil {
			return app.BadgeRequest{}, app.InvalidRequestError("avatars must be a boolean")
		}
	}

	var header *badge.Header
	if variant.WithHeader {
		if title := q.Get("title"); title != "" {
			header = &badge.Header{
				Title:    title,
				Subtitle: q.Get("subtitle"),
			}
		}
	}

	return app.BadgeRequest{
		Repo:    id,
		Limit:   limit,
		Layout:  layout,
		Theme:   theme,
		Avatars: avatars,
		Header:  header,
	}, nil
}

func parseLimit(s string) (int, error) {
	if s == "all" {
		return 0, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > app.MaxBadgeLimit {
		return 0, app.InvalidRequestError("limit must be an integer in range <1..100> or \"all\"")
	}

	return v, nil
}

type statsContributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

type statsResponse struct {
	Repository         string             `json:"repository"`
	Contributors       int                `json:"contributors"`
	TotalContributions int                `json:"totalContributions"`
	Top                []statsContributor `json:"top"`
	GeneratedAt        string             `json:"generatedAt"`
}

func newStatsResponse(stats app.RepoStats) statsResponse {
	top := make([]statsContributor, 0, len(stats.Top))
	for _, c := range stats.Top {
		top = append(top, statsContributor{
			Login:         c.Login,
			Contributions: c.Contributions,
		})
	}

	return statsResponse{
		Repository:         stats.Repository,
		Contributors:       stats.Contributors,
		TotalContributions: stats.TotalContributions,
		Top:                top,
		GeneratedAt:        stats.GeneratedAt.UTC().Format(time.RFC3339),
	}
}

// NewStatsHandler creates handlerfunc returning contributor stats.
func NewStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.ParseRepoID(r.URL.Query().Get("repo"))
		if err != nil {
			writeError(w, l, err)
			return
		}

		stats, err := service.RepoStats(r.Context(), id)
		if err != nil {
			writeError(w, l, err)
			return
		}

		writeJSON(w, http.StatusOK, newStatsResponse(stats))
	}
}

type repoInfoResponse struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language"`
	URL         string `json:"url"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func newRepoInfoResponse(repo app.Repository) repoInfoResponse {
	return repoInfoResponse{
		Name:        repo.Name,
		FullName:    repo.FullName,
		Description: repo.Description,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		Language:    repo.Language,
		URL:         repo.URL,
		CreatedAt:   repo.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   repo.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewRepoInfoHandler creates handlerfunc returning repository metadata.
func NewRepoInfoHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := app.ParseRepoID(r.URL.Query().Get("repo"))
		if err != nil {
			writeError(w, l, err)
			return
		}

		repo, err := service.RepositoryInfo(r.Context(), id)
		if err != nil {
			writeError(w, l, err)
			return
		}

		writeJSON(w, http.StatusOK, newRepoInfoResponse(repo))
	}
}

type healthResponse struct {
	Status          string `json:"status"`
	CacheSize       int    `json:"cacheSize"`
	TokenConfigured bool   `json:"tokenConfigured"`
	Version         string `json:"version"`
}

// NewHealthHandler creates handlerfunc reporting service health.
// It always answers 200.
func NewHealthHandler(service Service, tokenConfigured bool, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:          "ok",
			CacheSize:       service.CacheSize(),
			TokenConfigured: tokenConfigured,
			Version:         version,
		})
	}
}

type clearedResponse struct {
	Cleared int `json:"cleared"`
}

// NewClearCacheHandler creates handlerfunc dropping the whole cache.
func NewClearCacheHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		n := service.ClearCache()
		l.Infof("cache cleared, %d entries dropped", n)

		writeJSON(w, http.StatusOK, clearedResponse{Cleared: n})
	}
}

// NewInvalidateCacheHandler creates handlerfunc dropping all cached
// entries of one repository.
func NewInvalidateCacheHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		id, err := app.ParseRepoID(r.URL.Query().Get("repo"))
		if err != nil {
			writeError(w, l, err)
			return
		}

		n := service.InvalidateRepo(id)
		l.Infof("cache invalidated for %s, %d entries dropped", id, n)

		writeJSON(w, http.StatusOK, clearedResponse{Cleared: n})
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// writeError translates app error kinds into http statuses with a
// structured body. Unclassified failures are logged and reported as a
// generic 500 without internal detail.
func writeError(w http.ResponseWriter, l logrus.FieldLogger, err error) {
	switch {
	case app.IsInvalidRequestError(err):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case app.IsNotFoundError(err), app.IsEmptyResultError(err):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case app.IsAuthError(err):
		writeJSONError(w, http.StatusUnauthorized, err.Error())
	case app.IsRateLimitError(err):
		writeJSONError(w, http.StatusTooManyRequests, err.Error())
	default:
		l.Errorf("request failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(errorResponse{
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(body)
}

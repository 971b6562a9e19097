package http

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/badgeworks/gitbadge/internal/app"
	"github.com/badgeworks/gitbadge/internal/badge"
)

//go:generate mockgen -destination mock/service.go -package mock github.com/badgeworks/gitbadge/internal/api/http Service

// Service provides the app operations exposed over http.
type Service interface {
	Badge(ctx context.Context, req app.BadgeRequest) ([]byte, error)
	RepoStats(ctx context.Context, id app.RepoID) (app.RepoStats, error)
	RepositoryInfo(ctx context.Context, id app.RepoID) (app.Repository, error)
	CacheSize() int
	ClearCache() int
	InvalidateRepo(id app.RepoID) int
}

// NewMux creates router for app's http server.
func NewMux(
	service Service,
	timeout time.Duration,
	tokenConfigured bool,
	version string,
	l logrus.FieldLogger,
) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	corsMiddleware := NewCORSMiddleware()
	recoverMiddleware := NewRecoverMiddleware(l)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return recoverMiddleware(corsMiddleware(timeoutMiddleware(h)))
	}

	m := http.NewServeMux()
	m.HandleFunc("/badge", wrap(NewBadgeHandler(service, BadgeVariant{
		DefaultLayout: badge.LayoutHorizontal,
		DefaultLimit:  defaultBadgeLimit,
		CacheMaxAge:   badgeCacheMaxAge,
	}, l)))
	m.HandleFunc("/badge/all", wrap(NewBadgeHandler(service, BadgeVariant{
		DefaultLayout: badge.LayoutGrid,
		FixedAll:      true,
		CacheMaxAge:   allBadgeCacheMaxAge,
	}, l)))
	m.HandleFunc("/badge/fast", wrap(NewBadgeHandler(service, BadgeVariant{
		DefaultLayout: badge.LayoutHorizontal,
		DefaultLimit:  defaultBadgeLimit,
		NoAvatars:     true,
		CacheMaxAge:   badgeCacheMaxAge,
	}, l)))
	m.HandleFunc("/badge/custom", wrap(NewBadgeHandler(service, BadgeVariant{
		DefaultLayout: badge.LayoutHorizontal,
		DefaultLimit:  defaultBadgeLimit,
		WithHeader:    true,
		CacheMaxAge:   badgeCacheMaxAge,
	}, l)))
	m.HandleFunc("/stats", wrap(NewStatsHandler(service, l)))
	m.HandleFunc("/repo-info", wrap(NewRepoInfoHandler(service, l)))
	m.HandleFunc("/health", wrap(NewHealthHandler(service, tokenConfigured, version)))
	m.HandleFunc("/clear-cache", wrap(NewClearCacheHandler(service, l)))
	m.HandleFunc("/invalidate-cache", wrap(NewInvalidateCacheHandler(service, l)))

	return m
}

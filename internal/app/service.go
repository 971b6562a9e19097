package app

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/badgeworks/gitbadge/internal/badge"
)

// MaxBadgeLimit is the largest bounded contributor count a request may ask for.
const MaxBadgeLimit = 100

// statsTopCount is how many leading records /stats reports.
const statsTopCount = 10

//go:generate mockgen -destination mock/deps.go -package mock github.com/badgeworks/gitbadge/internal/app GithubClient,ContributorStore

// GithubClient returns contributor and repository data from github.
type GithubClient interface {
	ContributorsByRepo(ctx context.Context, id RepoID, count int, withAvatars bool) ([]Contributor, error)
	AllContributorsByRepo(ctx context.Context, id RepoID, withAvatars bool) ([]Contributor, error)
	RepositoryInfo(ctx context.Context, id RepoID) (Repository, error)
}

// ContributorStore caches fetched contributor lists per request key.
type ContributorStore interface {
	Get(key string) ([]Contributor, bool)
	Put(key string, records []Contributor)
	InvalidatePrefix(prefix string) int
	Clear() int
	Len() int
}

// BadgeRequest is a validated badge rendering request.
// Limit 0 requests the unbounded fetch of all contributors.
type BadgeRequest struct {
	Repo    RepoID
	Limit   int
	Layout  badge.Layout
	Theme   badge.Theme
	Avatars bool
	Header  *badge.Header
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
	store        ContributorStore
	timeout      time.Duration

	fetches singleflight.Group
}

// NewService creates new Service instance. timeout bounds every
// upstream fetch triggered by a single request.
func NewService(githubClient GithubClient, store ContributorStore, timeout time.Duration) *Service {
	return &Service{
		githubClient: githubClient,
		store:        store,
		timeout:      timeout,
	}
}

// Badge returns a rendered contributor badge for the requested repository.
// Results come from the store while fresh; otherwise one upstream fetch
// is performed and stored. Rendering itself is pure, so identical
// requests within the freshness window produce identical bytes.
func (s *Service) Badge(ctx context.Context, req BadgeRequest) ([]byte, error) {
	if req.Limit < 0 || req.Limit > MaxBadgeLimit {
		return nil, InvalidRequestError("limit must be in range <1..100> or \"all\"")
	}

	records, err := s.contributors(ctx, req.Repo, req.Limit, req.Avatars)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, EmptyResultError("repository has no contributors")
	}

	items := make([]badge.Item, 0, len(records))
	for _, r := range records {
		item := badge.Item{Label: r.Login}
		if r.Avatar != nil {
			item.Image = r.Avatar.Data
			item.MediaType = r.Avatar.MediaType
		}
		items = append(items, item)
	}

	opts := badge.Options{
		Layout: badge.Escalate(req.Layout, len(records)),
		Theme:  req.Theme,
		Header: req.Header,
	}

	return badge.Render(items, opts), nil
}

// RepoStats aggregates contributor counts for one repository. It shares
// the contributor cache with the unbounded badge path.
func (s *Service) RepoStats(ctx context.Context, id RepoID) (RepoStats, error) {
	records, err := s.contributors(ctx, id, 0, false)
	if err != nil {
		return RepoStats{}, err
	}
	if len(records) == 0 {
		return RepoStats{}, EmptyResultError("repository has no contributors")
	}

	var total int
	for _, r := range records {
		total += r.Contributions
	}

	top := records
	if len(top) > statsTopCount {
		top = top[:statsTopCount]
	}

	return RepoStats{
		Repository:         id.String(),
		Contributors:       len(records),
		TotalContributions: total,
		Top:                top,
		GeneratedAt:        time.Now(),
	}, nil
}

// RepositoryInfo returns repository metadata. Not cached: the store
// only holds contributor lists.
func (s *Service) RepositoryInfo(ctx context.Context, id RepoID) (Repository, error) {
	ctx, cancel := s.fetchContext(ctx)
	defer cancel()

	repo, err := s.githubClient.RepositoryInfo(ctx, id)
	if err != nil {
		return Repository{}, errors.Wrapf(err, "retrieving repository %s", id)
	}

	return repo, nil
}

// CacheSize returns the current number of cached entries.
func (s *Service) CacheSize() int {
	return s.store.Len()
}

// ClearCache drops every cached entry and reports how many there were.
func (s *Service) ClearCache() int {
	return s.store.Clear()
}

// InvalidateRepo drops all cached entries of one repository.
func (s *Service) InvalidateRepo(id RepoID) int {
	return s.store.InvalidatePrefix(id.String() + "|")
}

// contributors serves a contributor list from the store, falling back
// to a single upstream fetch per key. Concurrent misses for the same
// key collapse into one flight and observe the same result.
func (s *Service) contributors(ctx context.Context, id RepoID, limit int, avatars bool) ([]Contributor, error) {
	key := contributorsKey(id, limit, avatars)
	if records, ok := s.store.Get(key); ok {
		return records, nil
	}

	val, err, _ := s.fetches.Do(key, func() (interface{}, error) {
		fetchCtx, cancel := s.fetchContext(ctx)
		defer cancel()

		var records []Contributor
		var err error
		if limit == 0 {
			records, err = s.githubClient.AllContributorsByRepo(fetchCtx, id, avatars)
		} else {
			records, err = s.githubClient.ContributorsByRepo(fetchCtx, id, limit, avatars)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "retrieving contributors of %s", id)
		}

		s.store.Put(key, records)

		return records, nil
	})
	if err != nil {
		return nil, err
	}

	return val.([]Contributor), nil
}

func (s *Service) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.timeout)
}

// contributorsKey builds the store key. The repository id leads so that
// prefix invalidation can target one repository.
func contributorsKey(id RepoID, limit int, avatars bool) string {
	limitToken := "all"
	if limit > 0 {
		limitToken = strconv.Itoa(limit)
	}

	return id.String() + "|" + limitToken + "|" + strconv.FormatBool(avatars)
}

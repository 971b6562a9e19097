package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/badgeworks/gitbadge/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// perPageMax is github's own maximum contributors page size. Bounded
// requests are clamped to it, unbounded requests page through it.
const perPageMax = 100

// Client returns contributor lists and repository details from the
// github rest api. This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	l         logrus.FieldLogger

	pageDelay time.Duration
	maxPages  int

	maxInlinedAvatars int
	avatarConcurrency int
	avatarPixelSize   int

	contributorsResponseMaxSize int
	repoResponseMaxSize         int
	avatarResponseMaxSize       int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional, github serves anonymous calls at a lower rate limit.
func NewClient(doer HTTPDoer, address string, authToken string, l logrus.FieldLogger) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		l:         l,

		pageDelay: 500 * time.Millisecond,
		maxPages:  10,

		maxInlinedAvatars: 100,
		avatarConcurrency: 8,
		avatarPixelSize:   96,

		contributorsResponseMaxSize: 1024 * 1024 * 5,
		repoResponseMaxSize:         1024 * 1024,
		avatarResponseMaxSize:       1024 * 1024,
	}

	return &c
}

// ContributorsByRepo returns up to count contributors in the exact
// order github reports them. count is clamped to github's page size.
func (c *Client) ContributorsByRepo(ctx context.Context, id app.RepoID, count int, withAvatars bool) ([]app.Contributor, error) {
	if id.Owner == "" || id.Name == "" {
		return nil, app.InvalidRequestError("repository owner and name cannot be empty")
	}
	if count < 1 {
		return nil, app.InvalidRequestError("count must be greater than zero")
	}
	if count > perPageMax {
		count = perPageMax
	}

	records, err := c.contributorsPage(ctx, id, count, 0)
	if err != nil {
		return nil, err
	}

	if withAvatars {
		c.inlineAvatars(ctx, records, 0)
	}

	return records, nil
}

// AllContributorsByRepo pages through the full contributor list. It
// stops on the first empty page, or after maxPages to guarantee
// termination even if github keeps serving items. When avatar inlining
// is on, only the first maxInlinedAvatars records get images. All state
// is local to the call, so it can be re-invoked freely.
func (c *Client) AllContributorsByRepo(ctx context.Context, id app.RepoID, withAvatars bool) ([]app.Contributor, error) {
	if id.Owner == "" || id.Name == "" {
		return nil, app.InvalidRequestError("repository owner and name cannot be empty")
	}

	all := make([]app.Contributor, 0, perPageMax)
	for page := 1; page <= c.maxPages; page++ {
		if page > 1 {
			// Spacing the page requests keeps github from throttling
			// anonymous unbounded fetches.
			time.Sleep(c.pageDelay)
		}

		batch, err := c.contributorsPage(ctx, id, perPageMax, page)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		if withAvatars {
			c.inlineAvatars(ctx, batch, len(all))
		}
		all = append(all, batch...)
	}

	return all, nil
}

// RepositoryInfo returns repository metadata.
func (c *Client) RepositoryInfo(ctx context.Context, id app.RepoID) (app.Repository, error) {
	if id.Owner == "" || id.Name == "" {
		return app.Repository{}, app.InvalidRequestError("repository owner and name cannot be empty")
	}

	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s", id.Owner, id.Name))
	if err != nil {
		return app.Repository{}, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.Repository{}, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, c.repoResponseMaxSize)
	if err != nil {
		return app.Repository{}, err
	}

	var resp repoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Repository{}, app.UpstreamError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToRepository(), nil
}

// contributorsPage fetches one contributors page. page 0 omits the
// page parameter (bounded, single-call fetches).
func (c *Client) contributorsPage(ctx context.Context, id app.RepoID, perPage, page int) ([]app.Contributor, error) {
	u, err := url.Parse(c.address + fmt.Sprintf("/repos/%s/%s/contributors", id.Owner, id.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(perPage))
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq, c.contributorsResponseMaxSize)
	if err != nil {
		return nil, err
	}

	// Github answers 204 with an empty body for repositories that have
	// no contributors yet.
	if len(body) == 0 {
		return []app.Contributor{}, nil
	}

	var resp contributorsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.UpstreamError(fmt.Sprintf("unmarshalling response: %v", err))
	}

	return resp.ToContributors(), nil
}

// inlineAvatars fetches avatar images for records concurrently and
// joins before returning, so no partial batch escapes. A failed fetch
// only logs a warning and leaves that record's Avatar nil, the badge
// renderer has a deterministic placeholder for that. alreadyInlined
// counts records of previous batches towards the global cap.
func (c *Client) inlineAvatars(ctx context.Context, records []app.Contributor, alreadyInlined int) {
	remaining := c.maxInlinedAvatars - alreadyInlined
	if remaining <= 0 {
		return
	}

	batch := records
	if len(batch) > remaining {
		batch = batch[:remaining]
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.avatarConcurrency)
	for i := range batch {
		i := i
		g.Go(func() error {
			avatar, err := c.fetchAvatar(ctx, batch[i].AvatarURL)
			if err != nil {
				c.l.Warnf("fetching avatar of %s: %v", batch[i].Login, err)
				return nil
			}
			batch[i].Avatar = avatar

			return nil
		})
	}
	// Workers never return errors, Wait only joins the batch.
	_ = g.Wait()
}

// fetchAvatar downloads one avatar image. The request goes to the
// avatar host, which doesn't get the api headers or the token.
func (c *Client) fetchAvatar(ctx context.Context, rawURL string) (*app.Avatar, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("record has no avatar url")
	}

	httpReq, err := http.NewRequest(http.MethodGet, avatarURLWithSize(rawURL, c.avatarPixelSize), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	resp, err := c.doer.Do(httpReq.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("doing http request: %w", err)
	}
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.avatarResponseMaxSize)))
	if err != nil {
		return nil, fmt.Errorf("reading http response body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty avatar response")
	}

	mediaType := resp.Header.Get("Content-Type")
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	if mediaType == "" {
		mediaType = "image/png"
	}

	return &app.Avatar{
		MediaType: mediaType,
		Data:      data,
	}, nil
}

// makeRequest executes an api request and maps failures to the error
// kinds the rest of the system understands.
func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, app.UpstreamError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if err := statusError(resp); err != nil {
		return nil, err
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, app.UpstreamError(fmt.Sprintf("reading http response body: %v", err))
	}

	return b, nil
}

// statusError translates github status codes into app error kinds.
func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode < 400:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return app.NotFoundError("repository not found")
	case resp.StatusCode == http.StatusUnauthorized:
		return app.AuthError("github rejected the configured api token")
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusTooManyRequests:
		if rateLimitExhausted(resp.Header) {
			return app.RateLimitError("github api quota exhausted, supply an api token to raise the limit")
		}
		return app.RateLimitError("github throttled the request, supply an api token to raise the limit")
	default:
		return app.UpstreamError(fmt.Sprintf("got invalid http status code: %d", resp.StatusCode))
	}
}

func rateLimitExhausted(h http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}

	return false
}

// avatarURLWithSize asks github's avatar host for a downscaled image.
func avatarURLWithSize(raw string, px int) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	q.Set("s", strconv.Itoa(px))
	u.RawQuery = q.Encode()

	return u.String()
}

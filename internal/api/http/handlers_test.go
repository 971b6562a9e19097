package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badgeworks/gitbadge/internal/api/http/mock"
	"github.com/badgeworks/gitbadge/internal/app"
	"github.com/badgeworks/gitbadge/internal/badge"
)

func defaultBadgeVariant() BadgeVariant {
	return BadgeVariant{
		DefaultLayout: badge.LayoutHorizontal,
		DefaultLimit:  defaultBadgeLimit,
		CacheMaxAge:   badgeCacheMaxAge,
	}
}

func decodeErrorBody(t *testing.T, body string) errorResponse {
	t.Helper()

	var e errorResponse
	require.NoError(t, jsoniter.ConfigFastest.UnmarshalFromString(body, &e))

	_, err := time.Parse(time.RFC3339, e.Timestamp)
	require.NoError(t, err, "error timestamp must be rfc3339")

	return e
}

func TestNewBadgeHandler(t *testing.T) {
	t.Parallel()

	goRepo := app.RepoID{Owner: "golang", Name: "go"}

	tests := []struct {
		name             string
		target           string
		setupMock        func(*mock.MockService)
		wantStatus       int
		wantBody         string
		wantErrContains  string
		wantContentType  string
		wantCacheControl string
	}{
		{
			name:   "default params values",
			target: "testurl?repo=golang/go",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Badge(gomock.Any(), app.BadgeRequest{
						Repo:    goRepo,
						Limit:   defaultBadgeLimit,
						Layout:  badge.LayoutHorizontal,
						Theme:   badge.ThemeLight,
						Avatars: true,
					}).
					Return([]byte("<svg>fake</svg>"), nil)
			},
			wantStatus:       http.StatusOK,
			wantBody:         "<svg>fake</svg>",
			wantContentType:  "image/svg+xml; charset=utf-8",
			wantCacheControl: "public, max-age=300",
		},
		{
			name:   "params values from url query",
			target: "testurl?repo=golang/go&limit=25&style=grid&theme=dark&avatars=false",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Badge(gomock.Any(), app.BadgeRequest{
						Repo:    goRepo,
						Limit:   25,
						Layout:  badge.LayoutGrid,
						Theme:   badge.ThemeDark,
						Avatars: false,
					}).
					Return([]byte("<svg>fake</svg>"), nil)
			},
			wantStatus:      http.StatusOK,
			wantBody:        "<svg>fake</svg>",
			wantContentType: "image/svg+xml; charset=utf-8",
		},
		{
			name:   "limit all",
			target: "testurl?repo=golang/go&limit=all",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Badge(gomock.Any(), app.BadgeRequest{
						Repo:    goRepo,
						Limit:   0,
						Layout:  badge.LayoutHorizontal,
						Theme:   badge.ThemeLight,
						Avatars: true,
					}).
					Return([]byte("<svg>fake</svg>"), nil)
			},
			wantStatus:      http.StatusOK,
			wantBody:        "<svg>fake</svg>",
			wantContentType: "image/svg+xml; charset=utf-8",
		},
		{
			name:            "missing repo",
			target:          "testurl",
			wantStatus:      http.StatusBadRequest,
			wantErrContains: "owner/name",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "repo without owner",
			target:          "testurl?repo=go",
			wantStatus:      http.StatusBadRequest,
			wantErrContains: "owner/name",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "limit zero",
			target:          "testurl?repo=golang/go&limit=0",
			wantStatus:      http.StatusBadRequest,
			wantErrContains: "limit",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "limit above range",
			target:          "testurl?repo=golang/go&limit=101",
			wantStatus:      http.StatusBadRequest,
			wantErrContains: "limit",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "limit not a number",
			target:          "testurl?repo=golang/go&limit=ten",
			wantStatus:      http.StatusBadRequest,
			wantErrContains: "limit",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "invalid style",
			target:          "testurl?repo=golang/go&style=diagonal",
			wantStatus:      http.StatusBadRequest,
			wantErrContains: "style",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "invalid theme",
			target:          "testurl?repo=golang/go&theme=solarized",
			wantStatus:      http.StatusBadRequest,
			wantErrContains: "theme",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "invalid avatars",
			target:          "testurl?repo=golang/go&avatars=maybe",
			wantStatus:      http.StatusBadRequest,
			wantErrContains: "avatars",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:   "repository without contributors",
			target: "testurl?repo=golang/go",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Badge(gomock.Any(), gomock.Any()).
					Return(nil, app.EmptyResultError("repository has no contributors"))
			},
			wantStatus:      http.StatusNotFound,
			wantErrContains: "no contributors",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:   "rate limited upstream",
			target: "testurl?repo=golang/go",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Badge(gomock.Any(), gomock.Any()).
					Return(nil, app.RateLimitError("github api quota exhausted, supply an api token to raise the limit"))
			},
			wantStatus:      http.StatusTooManyRequests,
			wantErrContains: "api token",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:   "rejected token",
			target: "testurl?repo=golang/go",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Badge(gomock.Any(), gomock.Any()).
					Return(nil, app.AuthError("github rejected the configured api token"))
			},
			wantStatus:      http.StatusUnauthorized,
			wantErrContains: "token",
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:   "unclassified service error stays internal",
			target: "testurl?repo=golang/go",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Badge(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset by 10.0.0.5"))
			},
			wantStatus:      http.StatusInternalServerError,
			wantErrContains: "internal error",
			wantContentType: "application/json; charset=utf-8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			l := logrus.New()
			handler := NewBadgeHandler(s, defaultBadgeVariant(), l)

			req, _ := http.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))
			if tt.wantCacheControl != "" {
				assert.Equal(t, tt.wantCacheControl, w.Header().Get("Cache-Control"))
			}

			body := strings.Trim(w.Body.String(), "\n")
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, body)
			}
			if tt.wantErrContains != "" {
				e := decodeErrorBody(t, body)
				assert.Contains(t, e.Error, tt.wantErrContains)

				// Internal failure detail must never leak.
				assert.NotContains(t, e.Error, "10.0.0.5")
			}
		})
	}
}

func TestNewBadgeHandlerVariants(t *testing.T) {
	t.Parallel()

	goRepo := app.RepoID{Owner: "golang", Name: "go"}
	fakeSVG := []byte("<svg>fake</svg>")

	t.Run("all variant ignores limit param", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := mock.NewMockService(ctrl)
		s.EXPECT().
			Badge(gomock.Any(), app.BadgeRequest{
				Repo:    goRepo,
				Limit:   0,
				Layout:  badge.LayoutGrid,
				Theme:   badge.ThemeLight,
				Avatars: true,
			}).
			Return(fakeSVG, nil)

		handler := NewBadgeHandler(s, BadgeVariant{
			DefaultLayout: badge.LayoutGrid,
			FixedAll:      true,
			CacheMaxAge:   allBadgeCacheMaxAge,
		}, logrus.New())

		req, _ := http.NewRequest(http.MethodGet, "testurl?repo=golang/go&limit=5", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
	})

	t.Run("fast variant never inlines avatars", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := mock.NewMockService(ctrl)
		s.EXPECT().
			Badge(gomock.Any(), app.BadgeRequest{
				Repo:    goRepo,
				Limit:   defaultBadgeLimit,
				Layout:  badge.LayoutHorizontal,
				Theme:   badge.ThemeLight,
				Avatars: false,
			}).
			Return(fakeSVG, nil)

		handler := NewBadgeHandler(s, BadgeVariant{
			DefaultLayout: badge.LayoutHorizontal,
			DefaultLimit:  defaultBadgeLimit,
			NoAvatars:     true,
			CacheMaxAge:   badgeCacheMaxAge,
		}, logrus.New())

		req, _ := http.NewRequest(http.MethodGet, "testurl?repo=golang/go&avatars=true", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("custom variant reads header params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := mock.NewMockService(ctrl)
		s.EXPECT().
			Badge(gomock.Any(), app.BadgeRequest{
				Repo:    goRepo,
				Limit:   defaultBadgeLimit,
				Layout:  badge.LayoutHorizontal,
				Theme:   badge.ThemeLight,
				Avatars: true,
				Header:  &badge.Header{Title: "Team", Subtitle: "Core"},
			}).
			Return(fakeSVG, nil)

		handler := NewBadgeHandler(s, BadgeVariant{
			DefaultLayout: badge.LayoutHorizontal,
			DefaultLimit:  defaultBadgeLimit,
			WithHeader:    true,
			CacheMaxAge:   badgeCacheMaxAge,
		}, logrus.New())

		req, _ := http.NewRequest(http.MethodGet, "testurl?repo=golang/go&title=Team&subtitle=Core", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("custom variant without title has no header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := mock.NewMockService(ctrl)
		s.EXPECT().
			Badge(gomock.Any(), app.BadgeRequest{
				Repo:    goRepo,
				Limit:   defaultBadgeLimit,
				Layout:  badge.LayoutHorizontal,
				Theme:   badge.ThemeLight,
				Avatars: true,
			}).
			Return(fakeSVG, nil)

		handler := NewBadgeHandler(s, BadgeVariant{
			DefaultLayout: badge.LayoutHorizontal,
			DefaultLimit:  defaultBadgeLimit,
			WithHeader:    true,
			CacheMaxAge:   badgeCacheMaxAge,
		}, logrus.New())

		req, _ := http.NewRequest(http.MethodGet, "testurl?repo=golang/go&subtitle=Core", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNewStatsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		target          string
		setupMock       func(*mock.MockService)
		wantStatus      int
		wantBody        string
		wantContentType string
	}{
		{
			name:   "valid response",
			target: "testurl?repo=golang/go",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepoStats(gomock.Any(), app.RepoID{Owner: "golang", Name: "go"}).
					Return(app.RepoStats{
						Repository:         "golang/go",
						Contributors:       2,
						TotalContributions: 207,
						Top: []app.Contributor{
							{Login: "alice", Contributions: 120},
							{Login: "bob", Contributions: 87},
						},
						GeneratedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
					}, nil)
			},
			wantStatus:      http.StatusOK,
			wantBody:        `{"repository":"golang/go","contributors":2,"totalContributions":207,"top":[{"login":"alice","contributions":120},{"login":"bob","contributions":87}],"generatedAt":"2024-05-01T12:00:00Z"}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:            "missing repo",
			target:          "testurl",
			wantStatus:      http.StatusBadRequest,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name:   "repository not found",
			target: "testurl?repo=golang/nope",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					RepoStats(gomock.Any(), app.RepoID{Owner: "golang", Name: "nope"}).
					Return(app.RepoStats{}, app.NotFoundError("repository not found"))
			},
			wantStatus:      http.StatusNotFound,
			wantContentType: "application/json; charset=utf-8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			handler := NewStatsHandler(s, logrus.New())

			req, _ := http.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestNewRepoInfoHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := mock.NewMockService(ctrl)
		s.EXPECT().
			RepositoryInfo(gomock.Any(), app.RepoID{Owner: "golang", Name: "go"}).
			Return(app.Repository{
				ID:          23096959,
				Name:        "go",
				FullName:    "golang/go",
				Description: "The Go programming language",
				Stars:       120000,
				Forks:       17000,
				Language:    "Go",
				URL:         "https://github.com/golang/go",
				CreatedAt:   time.Date(2014, 8, 19, 4, 33, 40, 0, time.UTC),
				UpdatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			}, nil)

		handler := NewRepoInfoHandler(s, logrus.New())

		req, _ := http.NewRequest(http.MethodGet, "testurl?repo=golang/go", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		wantBody := `{"name":"go","fullName":"golang/go","description":"The Go programming language","stars":120000,"forks":17000,"language":"Go","url":"https://github.com/golang/go","createdAt":"2014-08-19T04:33:40Z","updatedAt":"2024-05-01T12:00:00Z"}`
		assert.Equal(t, wantBody, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("missing repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewRepoInfoHandler(mock.NewMockService(ctrl), logrus.New())

		req, _ := http.NewRequest(http.MethodGet, "testurl", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNewHealthHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().CacheSize().Return(3)

	handler := NewHealthHandler(s, true, "1.1.0")

	req, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-type"))
	assert.Equal(t,
		`{"status":"ok","cacheSize":3,"tokenConfigured":true,"version":"1.1.0"}`,
		strings.Trim(w.Body.String(), "\n"),
	)
}

func TestNewClearCacheHandler(t *testing.T) {
	t.Parallel()

	t.Run("rejects non post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewClearCacheHandler(mock.NewMockService(ctrl), logrus.New())

		req, _ := http.NewRequest(http.MethodGet, "testurl", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("clears cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := mock.NewMockService(ctrl)
		s.EXPECT().ClearCache().Return(7)

		handler := NewClearCacheHandler(s, logrus.New())

		req, _ := http.NewRequest(http.MethodPost, "testurl", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"cleared":7}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestNewInvalidateCacheHandler(t *testing.T) {
	t.Parallel()

	t.Run("rejects non post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewInvalidateCacheHandler(mock.NewMockService(ctrl), logrus.New())

		req, _ := http.NewRequest(http.MethodGet, "testurl?repo=golang/go", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("missing repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := NewInvalidateCacheHandler(mock.NewMockService(ctrl), logrus.New())

		req, _ := http.NewRequest(http.MethodPost, "testurl", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalidates one repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := mock.NewMockService(ctrl)
		s.EXPECT().
			InvalidateRepo(app.RepoID{Owner: "golang", Name: "go"}).
			Return(2)

		handler := NewInvalidateCacheHandler(s, logrus.New())

		req, _ := http.NewRequest(http.MethodPost, "testurl?repo=golang/go", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"cleared":2}`, strings.Trim(w.Body.String(), "\n"))
	})
}

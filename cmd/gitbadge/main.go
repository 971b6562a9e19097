package main

import (
	netHttp "net/http"
	"time"

	"github.com/badgeworks/gitbadge/internal/adapter/github"
	"github.com/badgeworks/gitbadge/internal/api/http"
	"github.com/badgeworks/gitbadge/internal/api/http/limiter"
	"github.com/badgeworks/gitbadge/internal/app"
	"github.com/badgeworks/gitbadge/internal/cache"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// version is reported by the health endpoint.
// Override at build time with -ldflags "-X main.version=...".
var version = "1.1.0"

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		conf.GithubAPIToken,
		l.WithField("component", "githubClient"),
	)

	store, err := cache.NewStore(conf.CacheSize, conf.CacheTTL)
	if err != nil {
		l.Fatalf("couldn't create contributor cache: %v", err)
	}

	service := app.NewService(
		githubClient,
		store,
		conf.ServiceResponseTimeout,
	)

	mux := http.NewMux(
		service,
		60*time.Second,
		conf.GithubAPIToken != "",
		version,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}

package github

import (
	"time"

	"github.com/badgeworks/gitbadge/internal/app"
)

type contributorsResponse []contributorsResponseItem

type contributorsResponseItem struct {
	ID            int    `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
}

func (r contributorsResponse) ToContributors() []app.Contributor {
	cs := make([]app.Contributor, 0, len(r))
	for _, i := range r {
		cs = append(cs, app.Contributor{
			ID:            i.ID,
			Login:         i.Login,
			ProfileURL:    i.HTMLURL,
			AvatarURL:     i.AvatarURL,
			Contributions: i.Contributions,
		})
	}

	return cs
}

type repoResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Language    string    `json:"language"`
	HTMLURL     string    `json:"html_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r repoResponse) ToRepository() app.Repository {
	return app.Repository{
		ID:          r.ID,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		Stars:       r.Stars,
		Forks:       r.Forks,
		Language:    r.Language,
		URL:         r.HTMLURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

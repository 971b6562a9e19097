package app

import (
	"strings"
	"time"
)

// RepoID identifies a github repository as owner/name.
type RepoID struct {
	Owner string
	Name  string
}

// ParseRepoID parses an "owner/name" identifier.
// The value must contain exactly one separator splitting it into two non-empty segments.
func ParseRepoID(s string) (RepoID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoID{}, InvalidRequestError("repo must have the form owner/name")
	}

	return RepoID{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the owner/name form.
func (id RepoID) String() string {
	return id.Owner + "/" + id.Name
}

// Avatar is an inlined avatar image.
type Avatar struct {
	MediaType string
	Data      []byte
}

// Contributor entity. Records keep the exact order returned by github.
type Contributor struct {
	ID            int
	Login         string
	ProfileURL    string
	AvatarURL     string
	Contributions int

	// Avatar is set only when avatar inlining was requested and the
	// image fetch succeeded. Nil means the renderer draws a placeholder.
	Avatar *Avatar
}

// Repository entity, as served by /repo-info.
type Repository struct {
	ID          int
	Name        string
	FullName    string
	Description string
	Stars       int
	Forks       int
	Language    string
	URL         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RepoStats aggregates contributor numbers for one repository.
type RepoStats struct {
	Repository         string
	Contributors       int
	TotalContributions int
	Top                []Contributor
	GeneratedAt        time.Time
}

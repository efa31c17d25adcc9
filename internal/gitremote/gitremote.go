// Package gitremote derives site identity from a local repository's origin remote.
package gitremote

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"

	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecompose/internal/logfields"
)

// RemoteName is the remote consulted for identity.
const RemoteName = "origin"

// Remote is the forge location of a repository.
type Remote struct {
	Host         string
	Organization string
	Project      string
}

// FromRepository opens the repository containing dir (searching parent directories for
// .git) and parses its origin URL.
func FromRepository(dir string) (Remote, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Remote{}, ferrors.WrapError(err, ferrors.CategoryGit, "open git repository").
			UserAction().
			WithContext("path", dir).
			Build()
	}
	remote, err := repo.Remote(RemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return Remote{}, ferrors.GitError(fmt.Sprintf("repository has no %s remote", RemoteName)).WithContext("path", dir).Build()
		}
		return Remote{}, ferrors.WrapError(err, ferrors.CategoryGit, "read remote").Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return Remote{}, ferrors.GitError(fmt.Sprintf("%s remote has no URL", RemoteName)).WithContext("path", dir).Build()
	}

	r, err := ParseRemoteURL(urls[0])
	if err != nil {
		return Remote{}, err
	}
	slog.Debug("Derived identity from git remote",
		logfields.Path(dir),
		logfields.Organization(r.Organization),
		logfields.Project(r.Project))
	return r, nil
}

// ParseRemoteURL splits a clone URL into host, organization and project. It accepts
// https://host/org/project(.git), ssh://git@host/org/project.git and the scp-like
// git@host:org/project.git form. For nested groups the first segment is the organization
// and the last is the project.
func ParseRemoteURL(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)
	var host, path string

	if i := strings.Index(raw, "://"); i >= 0 {
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, invalidRemote(raw)
		}
		host, path = u.Hostname(), u.Path
	} else if at, colon := strings.Index(raw, "@"), strings.Index(raw, ":"); colon > 0 && at < colon {
		host, path = raw[at+1:colon], raw[colon+1:]
	} else {
		return Remote{}, invalidRemote(raw)
	}

	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if host == "" || len(segments) < 2 {
		return Remote{}, invalidRemote(raw)
	}
	return Remote{
		Host:         host,
		Organization: segments[0],
		Project:      strings.TrimSuffix(segments[len(segments)-1], ".git"),
	}, nil
}

func invalidRemote(raw string) error {
	return ferrors.GitError("remote URL does not name an organization and project").
		WithContext("url", raw).
		Build()
}

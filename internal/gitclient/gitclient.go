// Package gitclient reads annotation manifests from a git repository
// without materializing a checkout. Organizations that share annotation
// manifests across services keep them in a central repo; build scripts fetch
// the manifest at a tag or branch and feed it to the manifest loader.
package gitclient

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	"golang.org/x/mod/semver"
)

// Auth holds Basic Auth credentials.
// For Bitbucket Cloud access tokens, use "x-token-auth" as Username
// and the token as Password.
type Auth struct {
	Username string
	Password string // or Token
}

// Client holds a cloned repository in memory.
type Client struct {
	repo *git.Repository
}

// New clones the repository at url into memory, without a worktree. Only the
// object database is needed to read files at arbitrary revisions.
func New(url string, auth *Auth) (*Client, error) {
	cloneOpts := &git.CloneOptions{
		URL:        url,
		NoCheckout: true,
	}
	if auth != nil {
		cloneOpts.Auth = &http.BasicAuth{
			Username: auth.Username,
			Password: auth.Password,
		}
	}
	repo, err := git.Clone(memory.NewStorage(), nil, cloneOpts)
	if err != nil {
		return nil, fmt.Errorf("could not clone %q: %w", url, err)
	}
	return &Client{repo: repo}, nil
}

// Refs returns the short names of all branches and tags of the repository,
// with remote branch names stripped of their remote prefix.
func (c *Client) Refs() ([]string, error) {
	refs, err := c.repo.References()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		switch {
		case name.IsTag() || name.IsBranch():
			seen[name.Short()] = true
		case name.IsRemote():
			// refs/remotes/origin/main -> Short() is "origin/main";
			// strip the remote name.
			short := name.Short()
			if i := strings.Index(short, "/"); i != -1 {
				seen[short[i+1:]] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	var names []string
	for n := range seen {
		names = append(names, n)
	}
	return names, nil
}

// LatestReleaseTag returns the highest semantic version among the
// repository's ref names (in practice the newest release tag, e.g.
// "v2.1.0"). Ref names that are not valid semantic versions are ignored.
func (c *Client) LatestReleaseTag() (string, error) {
	refs, err := c.Refs()
	if err != nil {
		return "", err
	}
	var latest string
	for _, r := range refs {
		if !semver.IsValid(r) {
			continue
		}
		if latest == "" || semver.Compare(r, latest) > 0 {
			latest = r
		}
	}
	if latest == "" {
		return "", fmt.Errorf("repository has no semantic version tags")
	}
	return latest, nil
}

func (c *Client) resolveRevision(revision string) (*plumbing.Hash, error) {
	hash, err := c.repo.ResolveRevision(plumbing.Revision(revision))
	if err == nil {
		return hash, nil
	}
	// Clones typically only have remote branches; retry with origin/ prefix.
	if !strings.HasPrefix(revision, "refs/") {
		if hash, err := c.repo.ResolveRevision(plumbing.Revision("origin/" + revision)); err == nil {
			return hash, nil
		}
	}
	return nil, fmt.Errorf("revision not found: %w", err)
}

// ReadFile returns the content of filePath at revision. The revision can be
// a tag, a branch, or a commit SHA.
func (c *Client) ReadFile(revision, filePath string) ([]byte, error) {
	hash, err := c.resolveRevision(revision)
	if err != nil {
		return nil, err
	}
	commit, err := c.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("commit lookup failed: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("could not get tree of %s: %w", hash, err)
	}
	file, err := tree.File(filePath)
	if err != nil {
		return nil, err // object.ErrFileNotFound if missing
	}
	reader, err := file.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

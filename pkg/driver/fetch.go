package driver

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrAlreadyCached reports that a fetched suite was already present in
// the cache; the returned path is still valid.
var ErrAlreadyCached = errors.New("suite already cached")

// FetchOptions control where and what Fetch clones.
type FetchOptions struct {
	// CacheDir is the root the clone lands under. Required.
	CacheDir string
	// Rev pins the clone to a commit hash. Empty means default branch.
	Rev string
}

// Fetch materializes a remote suite repository into the cache and
// returns the local path of the checkout. A second Fetch of the same
// URL/rev pair returns the existing path with ErrAlreadyCached.
func Fetch(url string, opts FetchOptions) (string, error) {
	if url == "" {
		return "", fmt.Errorf("fetch: empty url")
	}
	if opts.CacheDir == "" {
		return "", fmt.Errorf("fetch: cache directory not set")
	}
	dest := filepath.Join(opts.CacheDir, cacheKey(url, opts.Rev))
	if _, err := os.Stat(dest); err == nil {
		return dest, ErrAlreadyCached
	}
	if err := os.MkdirAll(opts.CacheDir, 0o755); err != nil {
		return "", fmt.Errorf("fetch: create cache %s: %w", opts.CacheDir, err)
	}

	repo, err := git.PlainClone(dest, false, &git.CloneOptions{URL: url})
	if err != nil {
		os.RemoveAll(dest)
		return "", fmt.Errorf("fetch: clone %s: %w", url, err)
	}
	if opts.Rev != "" {
		worktree, err := repo.Worktree()
		if err != nil {
			os.RemoveAll(dest)
			return "", fmt.Errorf("fetch: worktree %s: %w", url, err)
		}
		if err := worktree.Checkout(&git.CheckoutOptions{Hash: plumbing.NewHash(opts.Rev)}); err != nil {
			os.RemoveAll(dest)
			return "", fmt.Errorf("fetch: checkout %s at %s: %w", url, opts.Rev, err)
		}
	}
	return dest, nil
}

// cacheKey derives a stable directory name from the source coordinates:
// a readable slug plus a hash so distinct URLs never collide.
func cacheKey(url, rev string) string {
	sum := sha1.Sum([]byte(url + "@" + rev))
	slug := slugify(url)
	return slug + "-" + hex.EncodeToString(sum[:6])
}

func slugify(url string) string {
	trimmed := url
	if idx := strings.Index(trimmed, "://"); idx >= 0 {
		trimmed = trimmed[idx+3:]
	}
	trimmed = strings.TrimSuffix(trimmed, ".git")
	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 48 {
		slug = slug[len(slug)-48:]
	}
	if slug == "" {
		slug = "suite"
	}
	return slug
}

package driver

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func initGitRepo(t *testing.T, dir string) string {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == filepath.Join(dir, ".git") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if _, err := worktree.Add(rel); err != nil {
			return err
		}
		return nil
	}); err != nil {
		t.Fatalf("stage files: %v", err)
	}
	hash, err := worktree.Commit("init", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "STIMPL CLI",
			Email: "stimpl@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

func TestFetchClonesRemoteSuite(t *testing.T) {
	root := t.TempDir()
	remote := filepath.Join(root, "remote")
	writeSmokeSuite(t, remote)
	initGitRepo(t, remote)

	cache := filepath.Join(root, "cache")
	dest, err := Fetch(remote, FetchOptions{CacheDir: cache})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !strings.HasPrefix(dest, cache) {
		t.Fatalf("checkout %q landed outside cache %q", dest, cache)
	}

	suite, err := LoadSuite(dest)
	if err != nil {
		t.Fatalf("LoadSuite on checkout: %v", err)
	}
	results, err := RunSuite(suite)
	if err != nil {
		t.Fatalf("RunSuite on checkout: %v", err)
	}
	for _, result := range results {
		if !result.Passed {
			t.Fatalf("program %s failed: %s", result.Name, result.Detail)
		}
	}
}

func TestFetchSecondTimeIsCached(t *testing.T) {
	root := t.TempDir()
	remote := filepath.Join(root, "remote")
	writeSmokeSuite(t, remote)
	initGitRepo(t, remote)

	cache := filepath.Join(root, "cache")
	first, err := Fetch(remote, FetchOptions{CacheDir: cache})
	if err != nil {
		t.Fatalf("first Fetch: %v", err)
	}
	second, err := Fetch(remote, FetchOptions{CacheDir: cache})
	if !errors.Is(err, ErrAlreadyCached) {
		t.Fatalf("expected ErrAlreadyCached, got %v", err)
	}
	if first != second {
		t.Fatalf("cache path changed: %q vs %q", first, second)
	}
}

func TestFetchPinnedRev(t *testing.T) {
	root := t.TempDir()
	remote := filepath.Join(root, "remote")
	writeSmokeSuite(t, remote)
	rev := initGitRepo(t, remote)

	cache := filepath.Join(root, "cache")
	dest, err := Fetch(remote, FetchOptions{CacheDir: cache, Rev: rev})
	if err != nil {
		t.Fatalf("Fetch pinned: %v", err)
	}
	if _, err := LoadSuite(dest); err != nil {
		t.Fatalf("LoadSuite on pinned checkout: %v", err)
	}
}

func TestFetchValidation(t *testing.T) {
	if _, err := Fetch("", FetchOptions{CacheDir: t.TempDir()}); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := Fetch("https://example.com/suite.git", FetchOptions{}); err == nil {
		t.Fatalf("expected error for missing cache dir")
	}
}

func TestCacheKeyStableAndDistinct(t *testing.T) {
	a := cacheKey("https://example.com/a.git", "")
	if a != cacheKey("https://example.com/a.git", "") {
		t.Fatalf("cache key not stable")
	}
	if a == cacheKey("https://example.com/b.git", "") {
		t.Fatalf("distinct urls collided")
	}
	if a == cacheKey("https://example.com/a.git", "deadbeef") {
		t.Fatalf("distinct revs collided")
	}
	if !strings.Contains(a, "example-com-a") {
		t.Fatalf("cache key lost readable slug: %q", a)
	}
}

package gitrepo_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repovault/domain"
	"github.com/rios0rios0/repovault/infrastructure/gitrepo"
)

// buildSourceRepo initializes a local repository with one commit on master
// and returns its path, usable as a clone URL.
func buildSourceRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main\n"), 0o600))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add(".")
	require.NoError(t, err)
	_, err = worktree.Commit("initial import", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func zipEntryNames(t *testing.T, path string) []string {
	t.Helper()

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var names []string
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	return names
}

func TestArchiver_Archive(t *testing.T) {
	t.Parallel()

	t.Run("should clone the branch and produce <name>.zip in the workdir", func(t *testing.T) {
		t.Parallel()

		// given
		source := buildSourceRepo(t)
		workdir := t.TempDir()
		archiver := gitrepo.NewArchiver(workdir)
		repo := domain.RepositoryDescriptor{URL: source, Name: "demo", Branch: "master"}

		// when
		zipPath, err := archiver.Archive(context.Background(), repo)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(workdir, "demo.zip"), zipPath)
		names := zipEntryNames(t, zipPath)
		assert.Contains(t, names, "README.md")
		assert.Contains(t, names, "src/main.go")
	})

	t.Run("should not include repository metadata in the archive", func(t *testing.T) {
		t.Parallel()

		// given
		source := buildSourceRepo(t)
		archiver := gitrepo.NewArchiver(t.TempDir())
		repo := domain.RepositoryDescriptor{URL: source, Name: "demo", Branch: "master"}

		// when
		zipPath, err := archiver.Archive(context.Background(), repo)

		// then
		require.NoError(t, err)
		for _, name := range zipEntryNames(t, zipPath) {
			assert.NotContains(t, name, ".git/")
		}
	})

	t.Run("should fail when the branch does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		source := buildSourceRepo(t)
		archiver := gitrepo.NewArchiver(t.TempDir())
		repo := domain.RepositoryDescriptor{URL: source, Name: "demo", Branch: "release"}

		// when
		_, err := archiver.Archive(context.Background(), repo)

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the clone URL is unreachable", func(t *testing.T) {
		t.Parallel()

		// given
		archiver := gitrepo.NewArchiver(t.TempDir())
		repo := domain.RepositoryDescriptor{
			URL:    filepath.Join(t.TempDir(), "nowhere"),
			Name:   "demo",
			Branch: "master",
		}

		// when
		_, err := archiver.Archive(context.Background(), repo)

		// then
		require.Error(t, err)
	})
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repovault/config"
)

func writeReposFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repositories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRepositories(t *testing.T) {
	t.Parallel()

	t.Run("should parse descriptors in file order", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeReposFile(t, `
- url: https://example.com/org/backend.git
  name: backend
  branch: main
- url: https://example.com/org/frontend.git
  name: frontend
  branch: develop
`)

		// when
		repos, err := config.LoadRepositories(path)

		// then
		require.NoError(t, err)
		require.Len(t, repos, 2)
		assert.Equal(t, "backend", repos[0].Name)
		assert.Equal(t, "main", repos[0].Branch)
		assert.Equal(t, "frontend", repos[1].Name)
		assert.Equal(t, "https://example.com/org/frontend.git", repos[1].URL)
	})

	t.Run("should default the branch when omitted", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeReposFile(t, `
- url: https://example.com/org/backend.git
  name: backend
`)

		// when
		repos, err := config.LoadRepositories(path)

		// then
		require.NoError(t, err)
		require.Len(t, repos, 1)
		assert.Equal(t, "master", repos[0].Branch)
	})

	t.Run("should fail when url is missing", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeReposFile(t, `
- name: backend
  branch: main
`)

		// when
		_, err := config.LoadRepositories(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repositories[0].url")
	})

	t.Run("should fail when name is missing", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeReposFile(t, `
- url: https://example.com/org/backend.git
`)

		// when
		_, err := config.LoadRepositories(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repositories[0].name")
	})

	t.Run("should fail on an empty file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeReposFile(t, "")

		// when
		_, err := config.LoadRepositories(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := config.LoadRepositories(path)

		// then
		require.Error(t, err)
	})
}

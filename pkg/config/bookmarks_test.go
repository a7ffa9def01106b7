//go:build !integration

package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handWrittenConfig = `owner: platform-team
repos:
  - name: owner/web
    branches: [main, develop]
  - name: owner/api
    branches:
      - main
    extra: keep
    bookmarks:
      - nickname: existing
        workflow: Deploy
        branch: main
        inputs: {version: "1.0", environment: staging, flag: "true"}
`

// assertInOrder checks that each part occurs in s after the previous one.
func assertInOrder(t *testing.T, s string, parts ...string) {
	t.Helper()
	offset := 0
	for _, part := range parts {
		idx := strings.Index(s[offset:], part)
		require.GreaterOrEqual(t, idx, 0, "%q should appear after offset %d in:\n%s", part, offset, s)
		offset += idx + len(part)
	}
}

func TestSaveBookmark(t *testing.T) {
	t.Run("repository without bookmarks", func(t *testing.T) {
		path := writeConfig(t, "repos:\n  - name: owner/web\n    branches: [main]\n")
		bm := Bookmark{
			Nickname: "release",
			Workflow: "Release",
			Branch:   "main",
			Inputs:   Inputs{{Name: "version", Value: "2.0.0"}, {Name: "draft", Value: "false"}},
		}

		require.NoError(t, SaveBookmark(path, "owner/web", bm), "Saving should succeed")

		content, err := os.ReadFile(path)
		require.NoError(t, err, "Should read saved config")
		assert.Contains(t, string(content), "bookmarks:", "Serialized config should contain a bookmarks block")
		assert.Contains(t, string(content), "nickname: release", "Serialized config should contain the new entry")
		assertInOrder(t, string(content), "version:", "draft:")

		cfg, err := Load(path)
		require.NoError(t, err, "Saved config should load")
		assert.Equal(t, []Bookmark{bm}, cfg.BookmarksFor("owner/web"), "Repository should have exactly the new bookmark")
		assert.Equal(t, []string{"main"}, cfg.BranchesFor("owner/web"), "Branches should be preserved")
	})

	t.Run("hand-written file is kept", func(t *testing.T) {
		path := writeConfig(t, handWrittenConfig)
		added := Bookmark{
			Nickname: "added",
			Workflow: "Deploy",
			Branch:   "develop",
			Inputs:   Inputs{{Name: "x", Value: "false"}, {Name: "n", Value: "1"}},
		}

		require.NoError(t, SaveBookmark(path, "owner/api", added), "Saving should succeed")

		content, err := os.ReadFile(path)
		require.NoError(t, err, "Should read saved config")
		out := string(content)

		assert.Contains(t, out, "extra: keep", "Repository keys unknown to the loader should survive")
		assert.Contains(t, out, "owner: platform-team", "Top-level keys unknown to the loader should survive")
		assertInOrder(t, out, "version:", "environment:", "flag:", "nickname: added", "x:", "n:")

		cfg, err := Load(path)
		require.NoError(t, err, "Saved config should load")
		bookmarks := cfg.BookmarksFor("owner/api")
		require.Len(t, bookmarks, 2, "Existing and new bookmarks should be stored")
		assert.Equal(t, Inputs{{Name: "version", Value: "1.0"}, {Name: "environment", Value: "staging"}, {Name: "flag", Value: "true"}},
			bookmarks[0].Inputs, "Existing inputs should keep their order and values")
		assert.Equal(t, added, bookmarks[1], "New bookmark should keep its input order")
		assert.Equal(t, []string{"main", "develop"}, cfg.BranchesFor("owner/web"), "Other repositories should be untouched")
	})

	t.Run("repository with existing bookmarks", func(t *testing.T) {
		path := writeConfig(t, sampleConfig)
		first := Bookmark{Nickname: "first", Workflow: "Deploy", Branch: "main", Inputs: Inputs{{Name: "environment", Value: "prod"}}}
		second := Bookmark{Nickname: "second", Workflow: "Deploy", Branch: "develop"}

		require.NoError(t, SaveBookmark(path, "owner/api", first), "First save should succeed")
		before, err := os.ReadFile(path)
		require.NoError(t, err, "Should read config after first save")

		require.NoError(t, SaveBookmark(path, "owner/api", second), "Second save should succeed")
		after, err := os.ReadFile(path)
		require.NoError(t, err, "Should read config after second save")

		assert.True(t, strings.HasPrefix(string(after), string(before)), "Prior content should be kept ahead of the appended bookmark")

		cfg, err := Load(path)
		require.NoError(t, err, "Saved config should load")
		bookmarks := cfg.BookmarksFor("owner/api")
		require.Len(t, bookmarks, 3, "All bookmarks should be kept")
		assert.Equal(t, "deploy-staging", bookmarks[0].Nickname, "Original bookmark should come first")
		assert.Equal(t, Inputs{{Name: "environment", Value: "staging"}, {Name: "dry_run", Value: "false"}}, bookmarks[0].Inputs, "Original inputs should be unchanged")
		assert.Equal(t, first, bookmarks[1], "First saved bookmark should follow")
		assert.Equal(t, "second", bookmarks[2].Nickname, "Second saved bookmark should be last")
		assert.Empty(t, bookmarks[2].Inputs, "Bookmark without inputs should have none")
		assert.Empty(t, cfg.BookmarksFor("owner/web"), "Other repositories should be untouched")
	})

	t.Run("duplicate nicknames are not deduplicated", func(t *testing.T) {
		path := writeConfig(t, "repos:\n  - name: owner/web\n    branches: [main]\n")
		bm := Bookmark{Nickname: "same", Workflow: "CI", Branch: "main"}

		require.NoError(t, SaveBookmark(path, "owner/web", bm), "First save should succeed")
		require.NoError(t, SaveBookmark(path, "owner/web", bm), "Second save should succeed")

		cfg, err := Load(path)
		require.NoError(t, err, "Saved config should load")
		assert.Len(t, cfg.BookmarksFor("owner/web"), 2, "Both bookmarks should be stored")
	})

	t.Run("unknown repository", func(t *testing.T) {
		path := writeConfig(t, sampleConfig)
		before, err := os.ReadFile(path)
		require.NoError(t, err, "Should read fixture")

		err = SaveBookmark(path, "owner/missing", Bookmark{Nickname: "x", Workflow: "CI", Branch: "main"})
		require.Error(t, err, "Saving to an unknown repository should fail")

		var notFound *RepositoryNotFoundError
		require.ErrorAs(t, err, &notFound, "Error should be a RepositoryNotFoundError")
		assert.Equal(t, "owner/missing", notFound.Name, "Error should carry the repository name")
		assert.Contains(t, err.Error(), "owner/missing", "Error message should identify the repository")

		after, err := os.ReadFile(path)
		require.NoError(t, err, "Should read config after failed save")
		assert.Equal(t, string(before), string(after), "Config file should not be written")
	})

	t.Run("missing config file", func(t *testing.T) {
		err := SaveBookmark(writeConfig(t, sampleConfig)+".missing", "owner/api", Bookmark{Nickname: "x"})
		require.Error(t, err, "Saving to a missing file should fail")
		assert.ErrorIs(t, err, os.ErrNotExist, "Error should wrap the not-exist error")
	})

	t.Run("file mode is preserved", func(t *testing.T) {
		path := writeConfig(t, sampleConfig)
		require.NoError(t, os.Chmod(path, 0o600), "Should change fixture mode")

		require.NoError(t, SaveBookmark(path, "owner/api", Bookmark{Nickname: "x", Workflow: "CI", Branch: "main"}), "Saving should succeed")

		info, err := os.Stat(path)
		require.NoError(t, err, "Should stat config")
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "File mode should be preserved")
	})
}

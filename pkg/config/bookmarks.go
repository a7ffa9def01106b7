package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gh-dispatch/gh-dispatch/pkg/logger"
	"github.com/goccy/go-yaml"
)

var bookmarksLog = logger.New("config:bookmarks")

// SaveBookmark appends bookmark to the repository called repoName and rewrites
// the configuration file at path.
//
// The file is re-read first so that edits made since it was loaded are kept.
// The document is decoded with ordered maps and only the repository's
// bookmark list grows: keys this package does not know, key order and the
// prior bookmarks are written back as they were. When the repository does not
// exist a *RepositoryNotFoundError is returned and the file is not written.
// There is no locking: a concurrent writer's change made between the read and
// the write is lost.
func SaveBookmark(path, repoName string, bookmark Bookmark) error {
	bookmarksLog.Printf("Saving bookmark: path=%s, repo=%s, nickname=%s", path, repoName, bookmark.Nickname)

	content, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if _, err := Parse(content); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(content, &doc, yaml.UseOrderedMap()); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	repos, _ := lookupKey(doc, "repos").([]any)
	index := -1
	for i, item := range repos {
		repo, ok := item.(yaml.MapSlice)
		if !ok {
			continue
		}
		if name, _ := lookupKey(repo, "name").(string); name == repoName {
			index = i
			break
		}
	}
	if index < 0 {
		bookmarksLog.Printf("Repository not found: %s", repoName)
		return &RepositoryNotFoundError{Name: repoName}
	}

	repo := repos[index].(yaml.MapSlice)
	bookmarks, _ := lookupKey(repo, "bookmarks").([]any)
	bookmarks = append(bookmarks, bookmark.mapSlice())
	repos[index] = setKey(repo, "bookmarks", bookmarks)

	out, err := yaml.MarshalWithOptions(doc, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(filepath.Clean(path), out, mode); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	bookmarksLog.Printf("Saved bookmark %s, repository now has %d bookmarks", bookmark.Nickname, len(bookmarks))
	return nil
}

// mapSlice renders b with the key order of the documented file layout.
func (b Bookmark) mapSlice() yaml.MapSlice {
	ms := yaml.MapSlice{
		{Key: "nickname", Value: b.Nickname},
		{Key: "workflow", Value: b.Workflow},
		{Key: "branch", Value: b.Branch},
	}
	if len(b.Inputs) > 0 {
		ms = append(ms, yaml.MapItem{Key: "inputs", Value: b.Inputs.mapSlice()})
	}
	return ms
}

func lookupKey(m yaml.MapSlice, key string) any {
	for _, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value
		}
	}
	return nil
}

// setKey replaces the value of key, appending it when absent.
func setKey(m yaml.MapSlice, key string, value any) yaml.MapSlice {
	for i, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			m[i].Value = value
			return m
		}
	}
	return append(m, yaml.MapItem{Key: key, Value: value})
}

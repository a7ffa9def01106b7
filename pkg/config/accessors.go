package config

import (
	"slices"

	"github.com/gh-dispatch/gh-dispatch/pkg/sliceutil"
)

// ListRepoNames returns every repository name sorted ascending. Duplicate
// names are kept.
func (c *RepositoryConfig) ListRepoNames() []string {
	names := sliceutil.Map(c.Repos, func(r Repository) string { return r.Name })
	slices.Sort(names)
	return names
}

// FindRepository returns the first repository called name, or nil.
func (c *RepositoryConfig) FindRepository(name string) *Repository {
	for i := range c.Repos {
		if c.Repos[i].Name == name {
			return &c.Repos[i]
		}
	}
	return nil
}

// BranchesFor returns the branches of the named repository, or an empty list
// when it is not configured.
func (c *RepositoryConfig) BranchesFor(name string) []string {
	repo := c.FindRepository(name)
	if repo == nil || repo.Branches == nil {
		return []string{}
	}
	return repo.Branches
}

// BookmarksFor returns the bookmarks of the named repository, or an empty
// list when it is not configured.
func (c *RepositoryConfig) BookmarksFor(name string) []Bookmark {
	repo := c.FindRepository(name)
	if repo == nil || repo.Bookmarks == nil {
		return []Bookmark{}
	}
	return repo.Bookmarks
}

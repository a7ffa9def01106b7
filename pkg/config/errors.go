package config

import "fmt"

// RepositoryNotFoundError is returned when a repository name does not match
// any entry of the configuration.
type RepositoryNotFoundError struct {
	Name string
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("repository %q not found in configuration", e.Name)
}

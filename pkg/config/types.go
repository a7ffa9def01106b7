package config

// RepositoryConfig is the parsed configuration file.
type RepositoryConfig struct {
	Repos []Repository `yaml:"repos"`
}

// Repository is a repository offered for dispatch, in "owner/name" form.
type Repository struct {
	Name      string     `yaml:"name"`
	Branches  []string   `yaml:"branches"`
	Bookmarks []Bookmark `yaml:"bookmarks,omitempty"`
}

// Bookmark is a saved set of workflow parameters. Input values are always
// stored as strings; a boolean false is saved as "false".
type Bookmark struct {
	Nickname string `yaml:"nickname"`
	Workflow string `yaml:"workflow"`
	Branch   string `yaml:"branch"`
	Inputs   Inputs `yaml:"inputs,omitempty"`
}

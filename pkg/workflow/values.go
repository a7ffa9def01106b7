package workflow

// Input is one collected input value.
type Input struct {
	Name  string
	Value string
}

// Inputs is an ordered set of input values, in the order they are passed to
// "gh workflow run". Fresh collections follow the declaration order of the
// workflow; bookmarks replay the order they were saved in.
type Inputs []Input

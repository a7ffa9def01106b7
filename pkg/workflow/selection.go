package workflow

import "fmt"

// SelectionKind tells which list a Selection points into.
type SelectionKind int

const (
	SelectionWorkflow SelectionKind = iota
	SelectionBookmark
)

// Selection is the user's pick between running a workflow and replaying a
// bookmark. Exactly one of WorkflowID and BookmarkIndex is meaningful.
type Selection struct {
	Kind          SelectionKind
	WorkflowID    int64
	BookmarkIndex int
}

// WorkflowSelection selects the workflow with the given ID.
func WorkflowSelection(id int64) Selection {
	return Selection{Kind: SelectionWorkflow, WorkflowID: id}
}

// BookmarkSelection selects the bookmark at index.
func BookmarkSelection(index int) Selection {
	return Selection{Kind: SelectionBookmark, BookmarkIndex: index}
}

func (s Selection) String() string {
	if s.Kind == SelectionBookmark {
		return fmt.Sprintf("bookmark #%d", s.BookmarkIndex)
	}
	return fmt.Sprintf("workflow %d", s.WorkflowID)
}

// FindWorkflow returns the workflow with the given ID.
func FindWorkflow(workflows []Summary, id int64) (Summary, bool) {
	for _, wf := range workflows {
		if wf.ID == id {
			return wf, true
		}
	}
	return Summary{}, false
}

package valueobjects

import "fmt"

type IssueType string

const (
	IssueTypeBug   IssueType = "bug"
	IssueTypeTask  IssueType = "task"
	IssueTypeStory IssueType = "story"
	IssueTypeEpic  IssueType = "epic"
)

var validIssueTypes = map[IssueType]bool{
	IssueTypeBug:   true,
	IssueTypeTask:  true,
	IssueTypeStory: true,
	IssueTypeEpic:  true,
}

func (it IssueType) String() string {
	return string(it)
}

func (it IssueType) IsValid() bool {
	return validIssueTypes[it]
}

func NewIssueType(s string) (IssueType, error) {
	it := IssueType(s)
	if !it.IsValid() {
		return "", fmt.Errorf("invalid issue type: %s", s)
	}
	return it, nil
}

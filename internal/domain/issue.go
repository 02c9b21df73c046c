package domain

import "time"

// MaxTitleLength is the upper bound on issue titles, counted in runes.
const MaxTitleLength = 255

// CloneSuffix is appended to the title of a cloned issue.
const CloneSuffix = " (Copy)"

// Issue is a trackable unit of work.
type Issue struct {
	ID          int64
	Title       string
	Description *string
	Status      IssueStatus
	Priority    IssuePriority
	AuthorID    int64
	AssigneeID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IssueFields is the full set of user-editable issue fields.
type IssueFields struct {
	Title       string
	Description *string
	Status      IssueStatus
	Priority    IssuePriority
	AssigneeID  *int64
}

// Clone returns the fields of a copy of the issue.
func (i *Issue) Clone() IssueFields {
	return IssueFields{
		Title:       i.Title + CloneSuffix,
		Description: i.Description,
		Status:      i.Status,
		Priority:    i.Priority,
		AssigneeID:  i.AssigneeID,
	}
}

// Comment is a note attached to exactly one issue.
type Comment struct {
	ID        int64
	Content   string
	IssueID   int64
	AuthorID  int64
	CreatedAt time.Time
}

// StatusCount is the number of issues in one status.
type StatusCount struct {
	Status IssueStatus
	Count  int
}

// Dashboard is the aggregate shown on the dashboard view.
type Dashboard struct {
	Total    int
	ByStatus []StatusCount
	Recent   []Issue
}

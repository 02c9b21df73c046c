package domain

// IssueStatus is the lifecycle state of an issue.
type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "OPEN"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusClosed     IssueStatus = "CLOSED"
)

// IssueStatuses lists every status in lifecycle order.
var IssueStatuses = []IssueStatus{IssueStatusOpen, IssueStatusInProgress, IssueStatusClosed}

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusOpen, IssueStatusInProgress, IssueStatusClosed:
		return true
	}
	return false
}

// Label returns the human-readable name.
func (s IssueStatus) Label() string {
	switch s {
	case IssueStatusOpen:
		return "Open"
	case IssueStatusInProgress:
		return "In Progress"
	case IssueStatusClosed:
		return "Closed"
	}
	return string(s)
}

// Color returns the badge color used by clients.
func (s IssueStatus) Color() string {
	switch s {
	case IssueStatusOpen:
		return "blue"
	case IssueStatusInProgress:
		return "yellow"
	case IssueStatusClosed:
		return "green"
	}
	return "gray"
}

// Rank orders statuses by lifecycle. Unknown values rank last.
func (s IssueStatus) Rank() int {
	switch s {
	case IssueStatusOpen:
		return 0
	case IssueStatusInProgress:
		return 1
	case IssueStatusClosed:
		return 2
	}
	return len(IssueStatuses)
}

// IssuePriority is the severity of an issue.
type IssuePriority string

const (
	IssuePriorityLow    IssuePriority = "LOW"
	IssuePriorityMedium IssuePriority = "MEDIUM"
	IssuePriorityHigh   IssuePriority = "HIGH"
	IssuePriorityUrgent IssuePriority = "URGENT"
)

// IssuePriorities lists every priority from least to most severe.
var IssuePriorities = []IssuePriority{IssuePriorityLow, IssuePriorityMedium, IssuePriorityHigh, IssuePriorityUrgent}

func (p IssuePriority) String() string { return string(p) }

func (p IssuePriority) IsValid() bool {
	switch p {
	case IssuePriorityLow, IssuePriorityMedium, IssuePriorityHigh, IssuePriorityUrgent:
		return true
	}
	return false
}

// Label returns the human-readable name.
func (p IssuePriority) Label() string {
	switch p {
	case IssuePriorityLow:
		return "Low"
	case IssuePriorityMedium:
		return "Medium"
	case IssuePriorityHigh:
		return "High"
	case IssuePriorityUrgent:
		return "Urgent"
	}
	return string(p)
}

// Color returns the icon color used by clients.
func (p IssuePriority) Color() string {
	switch p {
	case IssuePriorityLow:
		return "gray"
	case IssuePriorityMedium:
		return "blue"
	case IssuePriorityHigh:
		return "orange"
	case IssuePriorityUrgent:
		return "red"
	}
	return "gray"
}

// Rank orders priorities by severity. Unknown values rank last.
func (p IssuePriority) Rank() int {
	switch p {
	case IssuePriorityLow:
		return 0
	case IssuePriorityMedium:
		return 1
	case IssuePriorityHigh:
		return 2
	case IssuePriorityUrgent:
		return 3
	}
	return len(IssuePriorities)
}

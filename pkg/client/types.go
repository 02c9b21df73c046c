package client

import "time"

// User is a person who can author, be assigned to, or comment on issues.
type User struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Name        *string `json:"name,omitempty"`
	Image       *string `json:"image,omitempty"`
	DisplayName string  `json:"displayName"`
}

// Enum is a status or priority value with its display label and colour.
type Enum struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Issue is an issue as rendered by the API.
type Issue struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      Enum      `json:"status"`
	Priority    Enum      `json:"priority"`
	Author      *User     `json:"author"`
	Assignee    *User     `json:"assignee"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Comment is a comment on an issue.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    *User     `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// IssueDetail is an issue with its comments, oldest first.
type IssueDetail struct {
	Issue
	Comments []Comment `json:"comments"`
}

// Query is the issue list filter. Empty fields fall back to server defaults.
type Query struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Assignee string `json:"assignee"`
	SortBy   string `json:"sortBy"`
	Order    string `json:"order"`
}

// IssueList is the result of ListIssues; Query is the canonical filter the server applied.
type IssueList struct {
	Issues []Issue `json:"issues"`
	Query  Query   `json:"query"`
}

// StatusCount is the number of issues in one status.
type StatusCount struct {
	Enum
	Count int `json:"count"`
}

// Dashboard is the overview aggregate.
type Dashboard struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"byStatus"`
	Recent   []Issue       `json:"recent"`
}

// IssueInput is the payload of create and update.
type IssueInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	AssigneeID  *int64  `json:"assigneeId"`
}

// ActionResult is the success answer of every mutation.
type ActionResult struct {
	Success     bool     `json:"success"`
	IssueID     int64    `json:"issueId"`
	Invalidated []string `json:"invalidated"`
}

// Session is the result of SignIn.
type Session struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
	User        *User  `json:"user"`
}

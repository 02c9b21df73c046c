package domain

import (
	"strconv"
	"strings"
)

// IssueListParams are the raw, untrusted list parameters as they arrive in a URL.
type IssueListParams struct {
	Search   string
	Status   string
	Priority string
	Assignee string
	SortBy   string
	Order    string
}

// Filter values that impose no constraint, and the literal that selects unassigned issues.
const (
	FilterAll        = "all"
	FilterUnassigned = "unassigned"
)

// AssigneeFilterKind selects how the assignee column is constrained.
type AssigneeFilterKind int

const (
	AssigneeAny AssigneeFilterKind = iota
	AssigneeUnassigned
	AssigneeUser
)

// AssigneeFilter constrains the assignee reference. UserID is set only for AssigneeUser.
type AssigneeFilter struct {
	Kind   AssigneeFilterKind
	UserID int64
}

// SortField is a sortable issue column.
type SortField string

const (
	SortByTitle     SortField = "title"
	SortByStatus    SortField = "status"
	SortByPriority  SortField = "priority"
	SortByCreatedAt SortField = "createdAt"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByTitle, SortByStatus, SortByPriority, SortByCreatedAt:
		return true
	}
	return false
}

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	switch o {
	case SortAsc, SortDesc:
		return true
	}
	return false
}

// IssueSort is a single-column ordering.
type IssueSort struct {
	Field SortField
	Order SortOrder
}

// DefaultIssueSort is applied when no recognised sort column is requested.
var DefaultIssueSort = IssueSort{Field: SortByCreatedAt, Order: SortDesc}

// IssueQuery is a validated list query: a conjunction of optional constraints and one ordering.
type IssueQuery struct {
	Search   string
	Status   *IssueStatus
	Priority *IssuePriority
	Assignee AssigneeFilter
	Sort     IssueSort
}

// Params renders the query back to its canonical URL parameters.
// Two queries with the same meaning produce identical Params.
func (q IssueQuery) Params() IssueListParams {
	p := IssueListParams{
		Search:   q.Search,
		Status:   FilterAll,
		Priority: FilterAll,
		Assignee: FilterAll,
		SortBy:   string(q.Sort.Field),
		Order:    string(q.Sort.Order),
	}
	if q.Status != nil {
		p.Status = q.Status.String()
	}
	if q.Priority != nil {
		p.Priority = q.Priority.String()
	}
	switch q.Assignee.Kind {
	case AssigneeUnassigned:
		p.Assignee = FilterUnassigned
	case AssigneeUser:
		p.Assignee = strconv.FormatInt(q.Assignee.UserID, 10)
	case AssigneeAny:
	}
	return p
}

// Key is a stable string form of the query, used as a cache key suffix.
func (q IssueQuery) Key() string {
	p := q.Params()
	return strings.Join([]string{
		"search=" + p.Search,
		"status=" + p.Status,
		"priority=" + p.Priority,
		"assignee=" + p.Assignee,
		"sortBy=" + p.SortBy,
		"order=" + p.Order,
	}, "&")
}

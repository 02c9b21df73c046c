package rest

import (
	"time"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

type userRef struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	Name        *string `json:"name,omitempty"`
	Image       *string `json:"image,omitempty"`
	DisplayName string  `json:"displayName"`
}

type enumValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type issueResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      enumValue `json:"status"`
	Priority    enumValue `json:"priority"`
	Author      *userRef  `json:"author"`
	Assignee    *userRef  `json:"assignee"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type commentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Author    *userRef  `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type issueListResponse struct {
	Issues []issueResponse `json:"issues"`
	Query  queryResponse   `json:"query"`
}

// queryResponse echoes the canonical filter so clients can reflect it in their controls.
type queryResponse struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Assignee string `json:"assignee"`
	SortBy   string `json:"sortBy"`
	Order    string `json:"order"`
}

type issueDetailResponse struct {
	issueResponse
	Comments []commentResponse `json:"comments"`
}

type statusCountResponse struct {
	enumValue
	Count int `json:"count"`
}

type dashboardResponse struct {
	Total    int                   `json:"total"`
	ByStatus []statusCountResponse `json:"byStatus"`
	Recent   []issueResponse       `json:"recent"`
}

func toUserRef(u *domain.User) *userRef {
	if u == nil {
		return nil
	}
	return &userRef{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Image:       u.Image,
		DisplayName: u.DisplayName(),
	}
}

func statusValue(s domain.IssueStatus) enumValue {
	return enumValue{Value: s.String(), Label: s.Label(), Color: s.Color()}
}

func priorityValue(p domain.IssuePriority) enumValue {
	return enumValue{Value: p.String(), Label: p.Label(), Color: p.Color()}
}

func toIssueResponse(i domain.Issue, users map[int64]*domain.User) issueResponse {
	resp := issueResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Status:      statusValue(i.Status),
		Priority:    priorityValue(i.Priority),
		Author:      toUserRef(users[i.AuthorID]),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if i.AssigneeID != nil {
		resp.Assignee = toUserRef(users[*i.AssigneeID])
	}
	return resp
}

func toIssueResponses(issues []domain.Issue, users map[int64]*domain.User) []issueResponse {
	out := make([]issueResponse, len(issues))
	for i, issue := range issues {
		out[i] = toIssueResponse(issue, users)
	}
	return out
}

func toQueryResponse(q domain.IssueQuery) queryResponse {
	p := q.Params()
	return queryResponse{
		Search:   p.Search,
		Status:   p.Status,
		Priority: p.Priority,
		Assignee: p.Assignee,
		SortBy:   p.SortBy,
		Order:    p.Order,
	}
}

// referencedUsers lists the user ids an issue set points at.
func referencedUsers(issues []domain.Issue, comments []domain.Comment) []int64 {
	ids := make([]int64, 0, len(issues)*2+len(comments))
	for _, i := range issues {
		ids = append(ids, i.AuthorID)
		if i.AssigneeID != nil {
			ids = append(ids, *i.AssigneeID)
		}
	}
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}
	return ids
}

package issue

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// Message for filter values outside their declared set.
const MsgInvalidValue = "invalid value"

// CompileQuery turns raw list parameters into a validated query.
//
// Empty and "all" impose no constraint. Unknown status, priority or assignee
// values are rejected. An unknown sort column falls back to the default
// ordering, and order defaults to ascending for a recognised column.
func CompileQuery(p domain.IssueListParams) (domain.IssueQuery, error) {
	var (
		q    domain.IssueQuery
		errs []domain.FieldError
	)

	q.Search = strings.TrimSpace(p.Search)

	if v := strings.TrimSpace(p.Status); !isAll(v) {
		s := domain.IssueStatus(v)
		if s.IsValid() {
			q.Status = &s
		} else {
			errs = append(errs, domain.FieldError{Field: "status", Message: MsgInvalidValue})
		}
	}

	if v := strings.TrimSpace(p.Priority); !isAll(v) {
		pr := domain.IssuePriority(v)
		if pr.IsValid() {
			q.Priority = &pr
		} else {
			errs = append(errs, domain.FieldError{Field: "priority", Message: MsgInvalidValue})
		}
	}

	assignee, ok := compileAssignee(strings.TrimSpace(p.Assignee))
	if ok {
		q.Assignee = assignee
	} else {
		errs = append(errs, domain.FieldError{Field: "assignee", Message: MsgInvalidValue})
	}

	q.Sort = compileSort(strings.TrimSpace(p.SortBy), strings.TrimSpace(p.Order))

	if len(errs) > 0 {
		return domain.IssueQuery{}, domain.NewValidationErrors(errs)
	}
	return q, nil
}

func isAll(v string) bool {
	return v == "" || v == domain.FilterAll
}

func compileAssignee(v string) (domain.AssigneeFilter, bool) {
	switch {
	case isAll(v):
		return domain.AssigneeFilter{Kind: domain.AssigneeAny}, true
	case v == domain.FilterUnassigned:
		return domain.AssigneeFilter{Kind: domain.AssigneeUnassigned}, true
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return domain.AssigneeFilter{}, false
	}
	return domain.AssigneeFilter{Kind: domain.AssigneeUser, UserID: id}, true
}

func compileSort(sortBy, order string) domain.IssueSort {
	field := domain.SortField(sortBy)
	if !field.IsValid() {
		return domain.DefaultIssueSort
	}

	o := domain.SortOrder(strings.ToLower(order))
	if !o.IsValid() {
		o = domain.SortAsc
	}
	return domain.IssueSort{Field: field, Order: o}
}

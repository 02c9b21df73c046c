package issue

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/issuetracker/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker/internal/domain"
)

const issueColumns = "id, title, description, status, priority, author_id, assignee_id, created_at, updated_at"

// likeEscaper escapes LIKE metacharacters so the search term matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery translates a validated query into a SELECT over issues.
// Every filter becomes one AND-ed predicate; ties in the sort column break on id
// in the same direction so the order is total.
func buildListQuery(q domain.IssueQuery) squirrel.SelectBuilder {
	sb := postgres.Builder().
		Select(issueColumns).
		From("issues")

	if q.Search != "" {
		sb = sb.Where(squirrel.ILike{"title": "%" + likeEscaper.Replace(q.Search) + "%"})
	}
	if q.Status != nil {
		sb = sb.Where(squirrel.Eq{"status": string(*q.Status)})
	}
	if q.Priority != nil {
		sb = sb.Where(squirrel.Eq{"priority": string(*q.Priority)})
	}

	switch q.Assignee.Kind {
	case domain.AssigneeUnassigned:
		sb = sb.Where(squirrel.Eq{"assignee_id": nil})
	case domain.AssigneeUser:
		sb = sb.Where(squirrel.Eq{"assignee_id": q.Assignee.UserID})
	case domain.AssigneeAny:
	}

	dir := "ASC"
	if q.Sort.Order == domain.SortDesc {
		dir = "DESC"
	}

	return sb.OrderBy(sortExpr(q.Sort.Field)+" "+dir, "id "+dir)
}

func sortExpr(field domain.SortField) string {
	switch field {
	case domain.SortByTitle:
		return `title COLLATE "C"`
	case domain.SortByStatus:
		ranks := make([]rankedValue, 0, len(domain.IssueStatuses))
		for _, s := range domain.IssueStatuses {
			ranks = append(ranks, rankedValue{value: string(s), rank: s.Rank()})
		}
		return rankCase("status", ranks)
	case domain.SortByPriority:
		ranks := make([]rankedValue, 0, len(domain.IssuePriorities))
		for _, p := range domain.IssuePriorities {
			ranks = append(ranks, rankedValue{value: string(p), rank: p.Rank()})
		}
		return rankCase("priority", ranks)
	default:
		return "created_at"
	}
}

type rankedValue struct {
	value string
	rank  int
}

// rankCase renders CASE col WHEN 'A' THEN 0 ... ELSE n END. Values come from
// the closed enum sets, never from user input.
func rankCase(col string, ranks []rankedValue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE %s", col)
	for _, r := range ranks {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", r.value, r.rank)
	}
	fmt.Fprintf(&b, " ELSE %d END", len(ranks))
	return b.String()
}

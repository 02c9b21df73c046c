package domain

import (
	"fmt"
	"strings"
)

// ViewKey names a rendered view whose cached form must be recomputed after a mutation.
type ViewKey string

const (
	ViewKeyIssues    ViewKey = "/issues"
	ViewKeyDashboard ViewKey = "/dashboard"
)

// IssueDetailView is the key of a single issue's detail view.
func IssueDetailView(id int64) ViewKey {
	return ViewKey(fmt.Sprintf("/issues/%d", id))
}

func (k ViewKey) String() string { return string(k) }

// Covers reports whether a cache entry stored under entry belongs to view k.
// Entries are stored as "<view>" or "<view>?<query>".
func (k ViewKey) Covers(entry string) bool {
	if entry == string(k) {
		return true
	}
	return strings.HasPrefix(entry, string(k)+"?")
}

package seeder

import "github.com/heartmarshall/issuetracker/internal/domain"

type sampleUser struct {
	email string
	name  string
	image string
}

var sampleUsers = []sampleUser{
	{"alice@example.com", "Alice Johnson", "https://api.dicebear.com/9.x/thumbs/svg?seed=Alice"},
	{"bob@example.com", "Bob Smith", "https://api.dicebear.com/9.x/thumbs/svg?seed=Bob"},
	{"charlie@example.com", "Charlie Davis", "https://api.dicebear.com/9.x/thumbs/svg?seed=Charlie"},
}

// sampleIssue refers to users by their index in sampleUsers; assignee -1 is unassigned.
type sampleIssue struct {
	title       string
	description string
	status      domain.IssueStatus
	priority    domain.IssuePriority
	author      int
	assignee    int
}

const (
	alice   = 0
	bob     = 1
	charlie = 2
	nobody  = -1
)

var sampleIssues = []sampleIssue{
	{"Fix login button not responding on mobile", "Users report that the login button does not respond to taps on iOS Safari. Works fine on desktop browsers.", domain.IssueStatusOpen, domain.IssuePriorityHigh, alice, bob},
	{"Add dark mode support", "Implement a dark mode theme for better user experience in low-light environments.", domain.IssueStatusInProgress, domain.IssuePriorityMedium, bob, charlie},
	{"Database query optimization needed", "The issues list page is loading slowly with 1000+ issues. Need to add pagination and optimize queries.", domain.IssueStatusOpen, domain.IssuePriorityUrgent, charlie, alice},
	{"Update documentation for API endpoints", "API documentation is outdated. Need to document the new comment endpoints.", domain.IssueStatusClosed, domain.IssuePriorityLow, alice, nobody},
	{"Implement email notifications", "Send email notifications when issues are assigned or commented on.", domain.IssueStatusOpen, domain.IssuePriorityMedium, bob, nobody},
	{"Fix responsive layout on tablet devices", "The navigation menu overlaps with content on iPad Pro.", domain.IssueStatusOpen, domain.IssuePriorityMedium, alice, bob},
	{"Add file upload functionality", "Users should be able to attach files to issues.", domain.IssueStatusOpen, domain.IssuePriorityLow, bob, nobody},
	{"Implement search autocomplete", "Add autocomplete suggestions when searching for issues.", domain.IssueStatusInProgress, domain.IssuePriorityMedium, charlie, alice},
	{"Fix memory leak in dashboard", "Dashboard page memory usage grows over time.", domain.IssueStatusOpen, domain.IssuePriorityUrgent, alice, charlie},
	{"Add export to CSV feature", "Allow users to export issues list to CSV format.", domain.IssueStatusOpen, domain.IssuePriorityLow, bob, nobody},
	{"Improve error messages", "Error messages should be more user-friendly and actionable.", domain.IssueStatusClosed, domain.IssuePriorityMedium, charlie, bob},
	{"Add bulk edit functionality", "Allow users to edit multiple issues at once.", domain.IssueStatusOpen, domain.IssuePriorityMedium, alice, nobody},
	{"Implement user permissions system", "Add role-based access control for different user types.", domain.IssueStatusInProgress, domain.IssuePriorityHigh, bob, alice},
	{"Fix timezone display issues", "Timestamps are showing in UTC instead of user timezone.", domain.IssueStatusOpen, domain.IssuePriorityMedium, charlie, bob},
	{"Add keyboard shortcuts", "Implement keyboard shortcuts for common actions.", domain.IssueStatusOpen, domain.IssuePriorityLow, alice, nobody},
	{"Optimize image loading", "Images take too long to load. Implement lazy loading.", domain.IssueStatusClosed, domain.IssuePriorityMedium, bob, charlie},
	{"Add activity timeline", "Show timeline of all changes made to an issue.", domain.IssueStatusOpen, domain.IssuePriorityLow, charlie, nobody},
	{"Fix drag and drop priority ordering", "Drag and drop to reorder issues by priority is broken.", domain.IssueStatusOpen, domain.IssuePriorityHigh, alice, bob},
	{"Implement real-time updates", "Use WebSockets to show real-time issue updates.", domain.IssueStatusInProgress, domain.IssuePriorityMedium, bob, alice},
	{"Add issue templates", "Create templates for bug reports and feature requests.", domain.IssueStatusOpen, domain.IssuePriorityLow, charlie, nobody},
	{"Fix CORS errors on API", "Getting CORS errors when calling API from external domains.", domain.IssueStatusOpen, domain.IssuePriorityUrgent, alice, charlie},
	{"Add mention system in comments", "Allow users to @mention other users in comments.", domain.IssueStatusOpen, domain.IssuePriorityMedium, bob, nobody},
	{"Improve mobile performance", "App is laggy on older mobile devices.", domain.IssueStatusInProgress, domain.IssuePriorityHigh, charlie, bob},
	{"Add issue dependencies", "Allow marking issues as blocked by other issues.", domain.IssueStatusOpen, domain.IssuePriorityLow, alice, nobody},
	{"Fix broken links in navigation", "Some navigation links return 404 errors.", domain.IssueStatusClosed, domain.IssuePriorityHigh, bob, alice},
}

var commentTexts = []string{
	"I can reproduce this issue on my iPhone 14. Seems like a z-index problem with the overlay.",
	"Fixed in the latest commit. Testing now.",
	"I've implemented the basic dark mode toggle. Need to test all components.",
	"The dashboard looks great in dark mode! Just need to fix the chart colors.",
	"Added indexes on status and createdAt fields. Load time improved from 3s to 300ms!",
	"This is a great feature request. Will start working on it next sprint.",
	"Can we prioritize this? It is affecting production users.",
	"I have a PR ready for review.",
	"Tests are failing for this change. Need to investigate.",
	"Documentation has been updated.",
	"This works well on Chrome but breaks on Firefox.",
	"We should consider the mobile experience too.",
	"Added to the roadmap for Q2.",
	"Similar to issue #5, might be related.",
	"Performance improvement looks good!",
}

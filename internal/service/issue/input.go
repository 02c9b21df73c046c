package issue

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// Validation messages shown verbatim to the user.
const (
	MsgTitleRequired   = "Title is required"
	MsgTitleTooLong    = "Title is too long"
	MsgInvalidStatus   = "Invalid status"
	MsgInvalidPriority = "Invalid priority"
	MsgInvalidAssignee = "Invalid assignee"
	MsgCommentEmpty    = "Comment cannot be empty"
	MsgInvalidIssueID  = "Invalid issue id"
)

// IssueInput is the full editable payload of an issue.
type IssueInput struct {
	Title       string
	Description *string
	Status      string
	Priority    string
	AssigneeID  *int64
}

func (i IssueInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError

	errs = append(errs, titleErrors(i.Title)...)
	if !domain.IssueStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: MsgInvalidStatus})
	}
	if !domain.IssuePriority(i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: MsgInvalidPriority})
	}
	if i.AssigneeID != nil && *i.AssigneeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "assigneeId", Message: MsgInvalidAssignee})
	}

	return errs
}

// fields returns the normalized values to store. Call after validation.
func (i IssueInput) fields() domain.IssueFields {
	return domain.IssueFields{
		Title:       strings.TrimSpace(i.Title),
		Description: trimOrNil(i.Description),
		Status:      domain.IssueStatus(i.Status),
		Priority:    domain.IssuePriority(i.Priority),
		AssigneeID:  i.AssigneeID,
	}
}

// CreateIssueInput holds the parameters for creating an issue.
type CreateIssueInput struct {
	IssueInput
}

// Validate checks all fields and collects all errors.
func (i CreateIssueInput) Validate() error {
	return collect(i.fieldErrors())
}

// UpdateIssueInput replaces every editable field of an existing issue.
type UpdateIssueInput struct {
	ID int64
	IssueInput
}

// Validate checks all fields and collects all errors.
func (i UpdateIssueInput) Validate() error {
	return collect(append(idErrors(i.ID), i.fieldErrors()...))
}

// DeleteIssueInput identifies the issue to delete.
type DeleteIssueInput struct {
	ID int64
}

// Validate checks all fields and collects all errors.
func (i DeleteIssueInput) Validate() error {
	return collect(idErrors(i.ID))
}

// CloneIssueInput identifies the issue to clone.
type CloneIssueInput struct {
	ID int64
}

// Validate checks all fields and collects all errors.
func (i CloneIssueInput) Validate() error {
	return collect(idErrors(i.ID))
}

// AddCommentInput holds the parameters for commenting on an issue.
type AddCommentInput struct {
	IssueID int64
	Content string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	errs := idErrors(i.IssueID)
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: MsgCommentEmpty})
	}
	return collect(errs)
}

// UpdateStatusInput sets only the status of an issue.
type UpdateStatusInput struct {
	ID     int64
	Status string
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	errs := idErrors(i.ID)
	if !domain.IssueStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: MsgInvalidStatus})
	}
	return collect(errs)
}

// UpdatePriorityInput sets only the priority of an issue.
type UpdatePriorityInput struct {
	ID       int64
	Priority string
}

// Validate checks all fields and collects all errors.
func (i UpdatePriorityInput) Validate() error {
	errs := idErrors(i.ID)
	if !domain.IssuePriority(i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: MsgInvalidPriority})
	}
	return collect(errs)
}

// UpdateAssigneeInput sets or clears the assignee of an issue.
type UpdateAssigneeInput struct {
	ID         int64
	AssigneeID *int64 // nil = unassign
}

// Validate checks all fields and collects all errors.
func (i UpdateAssigneeInput) Validate() error {
	errs := idErrors(i.ID)
	if i.AssigneeID != nil && *i.AssigneeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "assigneeId", Message: MsgInvalidAssignee})
	}
	return collect(errs)
}

func titleErrors(title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return []domain.FieldError{{Field: "title", Message: MsgTitleRequired}}
	}
	if utf8.RuneCountInString(t) > domain.MaxTitleLength {
		return []domain.FieldError{{Field: "title", Message: MsgTitleTooLong}}
	}
	return nil
}

func idErrors(id int64) []domain.FieldError {
	if id <= 0 {
		return []domain.FieldError{{Field: "id", Message: MsgInvalidIssueID}}
	}
	return nil
}

func collect(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

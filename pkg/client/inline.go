package client

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrBusy is returned by Change while a previous change is still in flight.
var ErrBusy = errors.New("client: edit in progress")

// InlineEditor is the state behind a single inline control (status, priority
// or assignee) on an issue. It never patches its value locally: the value only
// moves when refresh reloads it from the server and calls Set.
type InlineEditor[T any] struct {
	mu    sync.Mutex
	value T
	busy  bool

	mutate  func(ctx context.Context, v T) error
	refresh func(ctx context.Context, e *InlineEditor[T]) error
	log     *slog.Logger
}

// NewInlineEditor builds an editor starting at initial. mutate performs the
// one server call for a change; refresh, if non-nil, runs after it succeeds.
func NewInlineEditor[T any](
	initial T,
	mutate func(ctx context.Context, v T) error,
	refresh func(ctx context.Context, e *InlineEditor[T]) error,
	logger *slog.Logger,
) *InlineEditor[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &InlineEditor[T]{value: initial, mutate: mutate, refresh: refresh, log: logger}
}

// Value returns the last server-confirmed value.
func (e *InlineEditor[T]) Value() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

// Busy reports whether a change is in flight; controls render disabled while it is.
func (e *InlineEditor[T]) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// Set replaces the value with server data.
func (e *InlineEditor[T]) Set(v T) {
	e.mu.Lock()
	e.value = v
	e.mu.Unlock()
}

// Change submits v. It returns ErrBusy without calling the server when a
// change is already running. Failures are logged and returned; busy is
// cleared either way.
func (e *InlineEditor[T]) Change(ctx context.Context, v T) error {
	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	e.busy = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.busy = false
		e.mu.Unlock()
	}()

	if err := e.mutate(ctx, v); err != nil {
		e.log.WarnContext(ctx, "inline edit failed", slog.String("error", err.Error()))
		return err
	}
	if e.refresh == nil {
		return nil
	}
	if err := e.refresh(ctx, e); err != nil {
		e.log.WarnContext(ctx, "inline edit refresh failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// NewStatusEditor edits the status of issue id, starting from current.
func NewStatusEditor(c *Client, id int64, current string, logger *slog.Logger) *InlineEditor[string] {
	return NewInlineEditor(current,
		func(ctx context.Context, v string) error {
			_, err := c.UpdateStatus(ctx, id, v)
			return err
		},
		func(ctx context.Context, e *InlineEditor[string]) error {
			is, err := c.GetIssue(ctx, id)
			if err != nil {
				return err
			}
			e.Set(is.Status.Value)
			return nil
		},
		logger,
	)
}

// NewPriorityEditor edits the priority of issue id, starting from current.
func NewPriorityEditor(c *Client, id int64, current string, logger *slog.Logger) *InlineEditor[string] {
	return NewInlineEditor(current,
		func(ctx context.Context, v string) error {
			_, err := c.UpdatePriority(ctx, id, v)
			return err
		},
		func(ctx context.Context, e *InlineEditor[string]) error {
			is, err := c.GetIssue(ctx, id)
			if err != nil {
				return err
			}
			e.Set(is.Priority.Value)
			return nil
		},
		logger,
	)
}

// NewAssigneeEditor edits the assignee of issue id; nil means unassigned.
func NewAssigneeEditor(c *Client, id int64, current *int64, logger *slog.Logger) *InlineEditor[*int64] {
	return NewInlineEditor(current,
		func(ctx context.Context, v *int64) error {
			_, err := c.UpdateAssignee(ctx, id, v)
			return err
		},
		func(ctx context.Context, e *InlineEditor[*int64]) error {
			is, err := c.GetIssue(ctx, id)
			if err != nil {
				return err
			}
			if is.Assignee == nil {
				e.Set(nil)
				return nil
			}
			aid := is.Assignee.ID
			e.Set(&aid)
			return nil
		},
		logger,
	)
}

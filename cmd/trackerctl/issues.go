package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	issuerepo "github.com/heartmarshall/issuetracker/internal/adapter/postgres/issue"
	"github.com/heartmarshall/issuetracker/internal/adapter/postgres/user"
	"github.com/heartmarshall/issuetracker/internal/domain"
	"github.com/heartmarshall/issuetracker/internal/service/issue"
	"github.com/heartmarshall/issuetracker/pkg/client"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Query and edit issues",
}

// ---------------------------------------------------------------------------
// list
// ---------------------------------------------------------------------------

var listParams domain.IssueListParams

var issuesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issues with the same filters as the web list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		query, err := issue.CompileQuery(listParams)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) && len(verr.Errors) > 0 {
				return fmt.Errorf("--%s: %s", verr.Errors[0].Field, verr.Errors[0].Message)
			}
			return err
		}

		pool, _, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		issues, err := issuerepo.New(pool).List(ctx, query)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return printJSON(out, issues)
		}

		users, err := user.New(pool).List(ctx)
		if err != nil {
			return err
		}
		names := make(map[int64]string, len(users))
		for i := range users {
			names[users[i].ID] = users[i].DisplayName()
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tASSIGNEE\tTITLE")
		for _, is := range issues {
			assignee := "-"
			if is.AssigneeID != nil {
				assignee = names[*is.AssigneeID]
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", is.ID, is.Status.Label(), is.Priority.Label(), assignee, is.Title)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d issue(s), sorted by %s %s\n", len(issues), query.Sort.Field, query.Sort.Order)
		return nil
	},
}

// ---------------------------------------------------------------------------
// inline edits through a running server
// ---------------------------------------------------------------------------

var (
	flagServer       string
	flagToken        string
	flagEmail        string
	flagSignInSecret string
)

var issuesSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <OPEN|IN_PROGRESS|CLOSED>",
	Short: "Change an issue's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args[0], func(c *client.Client, id int64) error {
			is, err := c.GetIssue(cmd.Context(), id)
			if err != nil {
				return err
			}
			e := client.NewStatusEditor(c, id, is.Status.Value, nil)
			if err := e.Change(cmd.Context(), args[1]); err != nil {
				return err
			}
			return report(cmd, id, "status", e.Value())
		})
	},
}

var issuesSetPriorityCmd = &cobra.Command{
	Use:   "set-priority <id> <LOW|MEDIUM|HIGH|URGENT>",
	Short: "Change an issue's priority",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args[0], func(c *client.Client, id int64) error {
			is, err := c.GetIssue(cmd.Context(), id)
			if err != nil {
				return err
			}
			e := client.NewPriorityEditor(c, id, is.Priority.Value, nil)
			if err := e.Change(cmd.Context(), args[1]); err != nil {
				return err
			}
			return report(cmd, id, "priority", e.Value())
		})
	},
}

var issuesSetAssigneeCmd = &cobra.Command{
	Use:   "set-assignee <id> <user-id|unassigned>",
	Short: "Assign an issue to a user, or clear the assignee",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var target *int64
		if args[1] != domain.FilterUnassigned {
			uid, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[1])
			}
			target = &uid
		}

		return runEdit(cmd, args[0], func(c *client.Client, id int64) error {
			is, err := c.GetIssue(cmd.Context(), id)
			if err != nil {
				return err
			}
			var current *int64
			if is.Assignee != nil {
				current = &is.Assignee.ID
			}
			e := client.NewAssigneeEditor(c, id, current, nil)
			if err := e.Change(cmd.Context(), target); err != nil {
				return err
			}
			value := domain.FilterUnassigned
			if v := e.Value(); v != nil {
				value = strconv.FormatInt(*v, 10)
			}
			return report(cmd, id, "assignee", value)
		})
	},
}

func init() {
	f := issuesListCmd.Flags()
	f.StringVar(&listParams.Search, "search", "", "case-insensitive text in the title")
	f.StringVar(&listParams.Status, "status", "", "OPEN, IN_PROGRESS, CLOSED or all")
	f.StringVar(&listParams.Priority, "priority", "", "LOW, MEDIUM, HIGH, URGENT or all")
	f.StringVar(&listParams.Assignee, "assignee", "", "user id, unassigned or all")
	f.StringVar(&listParams.SortBy, "sort-by", "", "title, status, priority or createdAt")
	f.StringVar(&listParams.Order, "order", "", "asc or desc")

	for _, c := range []*cobra.Command{issuesSetStatusCmd, issuesSetPriorityCmd, issuesSetAssigneeCmd} {
		c.Flags().StringVar(&flagServer, "server", envOr("TRACKER_SERVER", "http://localhost:8080"), "server base URL")
		c.Flags().StringVar(&flagToken, "token", os.Getenv("TRACKER_TOKEN"), "bearer token")
		c.Flags().StringVar(&flagEmail, "email", "", "sign in with this email when no token is given")
		c.Flags().StringVar(&flagSignInSecret, "signin-secret", os.Getenv("TRACKER_SIGNIN_SECRET"), "provider secret used with --email")
	}

	issuesCmd.AddCommand(issuesListCmd, issuesSetStatusCmd, issuesSetPriorityCmd, issuesSetAssigneeCmd)
}

// runEdit parses the issue id, builds an authenticated client and runs fn.
func runEdit(cmd *cobra.Command, rawID string, fn func(c *client.Client, id int64) error) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid issue id %q", rawID)
	}

	c := client.New(flagServer, client.WithToken(flagToken), client.WithSignInSecret(flagSignInSecret))
	if flagToken == "" {
		if flagEmail == "" {
			return errors.New("either --token (or TRACKER_TOKEN) or --email is required")
		}
		if _, err := c.SignIn(cmd.Context(), flagEmail, nil); err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
	}

	return fn(c, id)
}

func report(cmd *cobra.Command, id int64, field, value string) error {
	out := cmd.OutOrStdout()
	if flagJSON {
		return printJSON(out, map[string]any{"issueId": id, field: value})
	}
	_, err := fmt.Fprintf(out, "Issue %d %s: %s\n", id, field, value)
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

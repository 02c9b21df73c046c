package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Commands share package-level flag state, so these tests are not parallel.

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestIssuesList_RejectsBadFilterBeforeConnecting(t *testing.T) {
	_, err := execute(t, "issues", "list", "--status", "DONE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--status")
}

func TestIssuesSetStatus_GoesThroughServer(t *testing.T) {
	status := "OPEN"
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/issues/5", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":5,"title":"t","status":{"value":"`+status+`"},"priority":{"value":"LOW"},"comments":[]}`)
	})
	mux.HandleFunc("POST /api/actions/update-issue-status/5", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"CLOSED"`)
		status = "CLOSED"
		_, _ = io.WriteString(w, `{"success":true,"issueId":5}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out, err := execute(t, "issues", "set-status", "5", "CLOSED", "--server", srv.URL, "--token", "tok")
	require.NoError(t, err)
	assert.Equal(t, "Issue 5 status: CLOSED", strings.TrimSpace(out))
}

func TestIssuesSetAssignee_InvalidArgs(t *testing.T) {
	_, err := execute(t, "issues", "set-assignee", "5", "bob", "--token", "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid user id "bob"`)

	_, err = execute(t, "issues", "set-assignee", "x", "unassigned", "--token", "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid issue id "x"`)
}

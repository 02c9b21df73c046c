package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}

// pathID parses the {id} path segment. Malformed ids become 0, which
// input validation rejects with the usual message.
func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// actionPayload is the union of every mutation body. Absent fields stay nil.
type actionPayload struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *string       `json:"status"`
	Priority    *string       `json:"priority"`
	AssigneeID  assigneeField `json:"assigneeId"`
	Content     *string       `json:"content"`
}

// assigneeField accepts a number, a numeric string, null, "" or "unassigned".
// Unparseable input is kept as an invalid (zero) id so validation reports it.
type assigneeField struct {
	ID *int64
}

func (a *assigneeField) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		a.ID = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.ID = parseAssignee(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		invalid := int64(0)
		a.ID = &invalid
		return nil
	}
	a.ID = &n
	return nil
}

func parseAssignee(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "unassigned") {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		n = 0
	}
	return &n
}

var errUnsupportedMediaType = errors.New("unsupported content type")

// decodePayload reads a JSON or form-encoded mutation body.
func decodePayload(w http.ResponseWriter, r *http.Request) (actionPayload, error) {
	var p actionPayload
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return p, errUnsupportedMediaType
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				return p, nil
			}
			return p, fmt.Errorf("decode json: %w", err)
		}
		return p, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return p, fmt.Errorf("parse form: %w", err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return p, fmt.Errorf("parse multipart form: %w", err)
		}
	default:
		return p, errUnsupportedMediaType
	}

	p.Title = formValue(r, "title")
	p.Description = formValue(r, "description")
	p.Status = formValue(r, "status")
	p.Priority = formValue(r, "priority")
	p.Content = formValue(r, "content")
	if v := formValue(r, "assigneeId"); v != nil {
		p.AssigneeID.ID = parseAssignee(*v)
	}
	return p, nil
}

func formValue(r *http.Request, key string) *string {
	if _, ok := r.PostForm[key]; !ok {
		return nil
	}
	v := r.PostForm.Get(key)
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

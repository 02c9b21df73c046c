package middleware

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
)

func tag(order *[]string, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+">")
			next.ServeHTTP(w, r)
			*order = append(*order, "<"+name)
		})
	}
}

func TestChain(t *testing.T) {
	tests := []struct {
		name string
		mws  func(order *[]string) []Middleware
		want []string
	}{
		{
			name: "first is outermost",
			mws:  func(o *[]string) []Middleware { return []Middleware{tag(o, "recovery"), tag(o, "auth")} },
			want: []string{"recovery>", "auth>", "handler", "<auth", "<recovery"},
		},
		{
			name: "nil entries skipped",
			mws:  func(o *[]string) []Middleware { return []Middleware{nil, tag(o, "logger"), nil} },
			want: []string{"logger>", "handler", "<logger"},
		},
		{
			name: "empty",
			mws:  func(*[]string) []Middleware { return nil },
			want: []string{"handler"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order []string
			h := Chain(tt.mws(&order)...)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				order = append(order, "handler")
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/issues", nil))

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
			if !slices.Equal(order, tt.want) {
				t.Errorf("order = %v, want %v", order, tt.want)
			}
		})
	}
}

package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/regtoken/internal/pkg/message"
	"github.com/ferdiebergado/regtoken/internal/platform/router"
)

func setHeader(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(key, "true")
			next.ServeHTTP(w, r)
		})
	}
}

func TestGoexpressRouter_Group(t *testing.T) {
	t.Parallel()

	const (
		headerGlobal = "X-Global"
		headerGroup  = "X-Group"
	)

	r := router.NewGoexpressRouter()
	r.Use(setHeader(headerGlobal))
	r.Group("/token", func(gr router.Router) {
		gr.Get("/generate", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		gr.Post("/validate", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
	}, setHeader(headerGroup))

	tests := []struct {
		name, method, target string
		code                 int
	}{
		{"Group GET", http.MethodGet, "/token/generate", http.StatusOK},
		{"Group POST", http.MethodPost, "/token/validate", http.StatusAccepted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.code)
			}

			for _, header := range []string{headerGlobal, headerGroup} {
				if got := rec.Header().Get(header); got != "true" {
					t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, got, "true")
				}
			}
		})
	}
}

func TestGoexpressRouter_NotFound(t *testing.T) {
	t.Parallel()

	r := router.NewGoexpressRouter()
	r.Group("/token", func(gr router.Router) {
		gr.Get("/generate", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/generate", http.NoBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusNotFound)
	}
}

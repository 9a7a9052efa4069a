package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vidplan/internal/httputil"
)

func TestWorkspaceScope(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		hasHeader  bool
		wantID     int64
		wantStatus int
	}{
		{
			name:       "absent header defaults",
			hasHeader:  false,
			wantID:     1,
			wantStatus: http.StatusOK,
		},
		{
			name:       "blank header defaults",
			hasHeader:  true,
			header:     "",
			wantID:     1,
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero defaults",
			hasHeader:  true,
			header:     "0",
			wantID:     1,
			wantStatus: http.StatusOK,
		},
		{
			name:       "literal null defaults",
			hasHeader:  true,
			header:     "null",
			wantID:     1,
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit workspace",
			hasHeader:  true,
			header:     "7",
			wantID:     7,
			wantStatus: http.StatusOK,
		},
		{
			name:       "surrounding whitespace tolerated",
			hasHeader:  true,
			header:     " 7 ",
			wantID:     7,
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-integer rejected",
			hasHeader:  true,
			header:     "abc",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "negative rejected",
			hasHeader:  true,
			header:     "-1",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "float rejected",
			hasHeader:  true,
			header:     "1.5",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotID = httputil.GetWorkspaceID(r)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
			if tt.hasHeader {
				req.Header.Set(ScopeHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			WorkspaceScope()(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				if called {
					t.Error("handler ran despite a malformed scope header")
				}
				return
			}
			if !called {
				t.Fatal("handler never ran")
			}
			if gotID != tt.wantID {
				t.Errorf("workspace id = %d, want %d", gotID, tt.wantID)
			}
		})
	}
}

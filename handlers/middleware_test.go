package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"roadquote/collections"
	"roadquote/testhelpers"
)

func TestCurrentPIN_Default(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if got := CurrentPIN(app); got != collections.DefaultPIN {
		t.Errorf("CurrentPIN() = %q, want default %q", got, collections.DefaultPIN)
	}
}

func TestCurrentPIN_Configured(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SetSystemPIN(t, app, "654321")

	if got := CurrentPIN(app); got != "654321" {
		t.Errorf("CurrentPIN() = %q, want 654321", got)
	}
}

func TestRequirePIN(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SetSystemPIN(t, app, "654321")

	called := false
	handler := RequirePIN(app, func(e *core.RequestEvent) error {
		called = true
		return e.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name       string
		pin        string
		wantStatus int
		wantCalled bool
	}{
		{"correct pin", "654321", http.StatusOK, true},
		{"wrong pin", "000000", http.StatusUnauthorized, false},
		{"missing pin", "", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false

			req := httptest.NewRequest(http.MethodGet, "/api/quote/quotations", nil)
			if tt.pin != "" {
				req.Header.Set(PINHeader, tt.pin)
			}
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := handler(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Errorf("next called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roadquote/testhelpers"
)

func TestHandleQuotationDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := testhelpers.CreateTestQuotation(t, app, "20250315-01", "2025-03-15")
	handler := HandleQuotationDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/quote/quotations/"+q.Id, nil)
	req.SetPathValue("id", q.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if _, err := app.FindRecordById("quotations", q.Id); err == nil {
		t.Error("expected quotation to be deleted")
	}
}

func TestHandleQuotationDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/quote/quotations/missing123", nil)
	req.SetPathValue("id", "missing123")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

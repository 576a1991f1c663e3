package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/docforge/docforge-backend/internal/types"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	handler(c)
	return w
}

type fakeOutlineService struct {
	calls   int
	outline []string
}

func (f *fakeOutlineService) Suggest(ctx context.Context, topic string, kind types.DocumentKind) []string {
	f.calls++
	return f.outline
}

func TestSuggestOutline_RejectsBlankTopic(t *testing.T) {
	outline := &fakeOutlineService{outline: []string{"Introduction"}}
	handler := NewAIHandler(outline)

	w := postJSON(t, handler.SuggestOutline, `{"topic":"   ","document_type":"docx"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if outline.calls != 0 {
		t.Fatalf("rejected request must not trigger a suggestion")
	}
}

func TestSuggestOutline_RejectsUnknownKind(t *testing.T) {
	outline := &fakeOutlineService{outline: []string{"Introduction"}}
	handler := NewAIHandler(outline)

	w := postJSON(t, handler.SuggestOutline, `{"topic":"solar power","document_type":"pdf"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if outline.calls != 0 {
		t.Fatalf("rejected request must not trigger a suggestion")
	}
}

func TestSuggestOutline_ReturnsOutline(t *testing.T) {
	outline := &fakeOutlineService{outline: []string{"Introduction", "Conclusion"}}
	handler := NewAIHandler(outline)

	w := postJSON(t, handler.SuggestOutline, `{"topic":"solar power","document_type":"pptx"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if outline.calls != 1 {
		t.Fatalf("expected one suggestion call, got %d", outline.calls)
	}
	if !strings.Contains(w.Body.String(), "Introduction") {
		t.Fatalf("response missing outline entries: %s", w.Body.String())
	}
}

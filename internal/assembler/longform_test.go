package assembler

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/docforge/docforge-backend/internal/types"
)

func unzipParts(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	parts := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open part %s: %v", f.Name, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read part %s: %v", f.Name, err)
		}
		parts[f.Name] = string(raw)
	}
	return parts
}

func strPtr(s string) *string {
	return &s
}

func TestRenderLongForm_PackageShape(t *testing.T) {
	data, err := RenderLongForm("My Report", "energy markets", []*types.Section{
		{Title: "Introduction", OrderIndex: 0, Content: strPtr("opening line")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts := unzipParts(t, data)
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/styles.xml"} {
		if _, ok := parts[name]; !ok {
			t.Fatalf("package missing part %s", name)
		}
	}
}

func TestRenderLongForm_TitleTopicAndHeadings(t *testing.T) {
	data, err := RenderLongForm("My Report", "energy markets", []*types.Section{
		{Title: "Introduction", OrderIndex: 0, Content: strPtr("line one\nline two")},
		{Title: "Conclusion", OrderIndex: 1, Content: strPtr("closing")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := unzipParts(t, data)["word/document.xml"]

	if !strings.Contains(doc, "My Report") || !strings.Contains(doc, "energy markets") {
		t.Fatalf("document missing title or topic")
	}
	if got := strings.Count(doc, `w:val="Heading1"`); got != 2 {
		t.Fatalf("expected 2 section headings, got %d", got)
	}
	if !strings.Contains(doc, "line one") || !strings.Contains(doc, "line two") {
		t.Fatalf("document missing content lines")
	}
	// The topic renders italic; content lines do not.
	if got := strings.Count(doc, "<w:i/>"); got != 1 {
		t.Fatalf("expected exactly one italic run, got %d", got)
	}
}

func TestRenderLongForm_KeepsBulletMarkersVerbatim(t *testing.T) {
	data, err := RenderLongForm("R", "t", []*types.Section{
		{Title: "Points", OrderIndex: 0, Content: strPtr("• first\n• second")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := unzipParts(t, data)["word/document.xml"]
	if !strings.Contains(doc, "• first") {
		t.Fatalf("long-form export must keep bullet markers verbatim")
	}
}

func TestRenderLongForm_NilContentGetsStandIn(t *testing.T) {
	data, err := RenderLongForm("R", "t", []*types.Section{
		{Title: "Pending", OrderIndex: 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := unzipParts(t, data)["word/document.xml"]
	if !strings.Contains(doc, noContentText) {
		t.Fatalf("empty section must render the stand-in line")
	}
}

func TestRenderLongForm_EscapesMarkup(t *testing.T) {
	data, err := RenderLongForm("A <B> & C", "t", []*types.Section{
		{Title: "S", OrderIndex: 0, Content: strPtr("1 < 2 & 3 > 2")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := unzipParts(t, data)["word/document.xml"]
	if strings.Contains(doc, "A <B>") {
		t.Fatalf("title markup not escaped")
	}
	if !strings.Contains(doc, "1 &lt; 2 &amp; 3") {
		t.Fatalf("content markup not escaped: %s", doc)
	}
}

func TestRenderLongForm_Deterministic(t *testing.T) {
	sections := []*types.Section{
		{Title: "One", OrderIndex: 0, Content: strPtr("body")},
	}
	first, err := RenderLongForm("R", "t", sections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := RenderLongForm("R", "t", sections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("same inputs produced different bytes")
	}
}

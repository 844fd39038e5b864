package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/content"
)

func testMeta() Meta {
	return Meta{
		Title:       "Jane Doe",
		Author:      "Jane Doe",
		Description: "Software engineer",
		BaseURL:     "https://example.com",
	}
}

func testLibrary() *content.Library {
	return &content.Library{
		Projects: []content.Project{
			{
				Slug:        "alpha",
				Title:       "Alpha",
				Description: "A Go service",
				Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				Tags:        []string{"go", "api"},
				Body:        "# Alpha\n\nSome *markdown* body.\n\n```go\nfunc main() {}\n```\n",
			},
			{
				Slug:        "beta",
				Title:       "Beta",
				Description: "A web thing",
				Date:        time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
				Tags:        []string{"web"},
				Body:        "Plain body.",
			},
		},
		Certificates: []content.Certificate{
			{ID: 1, Title: "Cloud Practitioner", Issuer: "AWS", Date: "2024"},
			{ID: 2, Title: "Kubernetes Admin", Issuer: "CNCF", Date: "2025"},
			{ID: 3, Title: "Go Developer", Issuer: "Acme", Date: "2023"},
		},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestFullSiteGeneration(t *testing.T) {
	out := t.TempDir()
	gen, err := NewGenerator(testMeta(), out)
	if err != nil {
		t.Fatal(err)
	}

	pages, err := gen.Generate(testLibrary())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3 (index + 2 projects)", pages)
	}

	for _, name := range []string{
		"index.html",
		"projects/alpha.html",
		"projects/beta.html",
		"style.css",
		"script.js",
		"search-index.json",
		"carousel.json",
	} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}
}

func TestIndexPageContents(t *testing.T) {
	out := t.TempDir()
	gen, err := NewGenerator(testMeta(), out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Generate(testLibrary()); err != nil {
		t.Fatal(err)
	}

	index := readFile(t, filepath.Join(out, "index.html"))

	for _, want := range []string{
		"<title>Jane Doe</title>",
		`href="projects/alpha.html"`,
		`href="projects/beta.html"`,
		`data-tag="go"`,
		`data-tag="web"`,
		"Cloud Practitioner",
		"Kubernetes Admin",
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html missing %q", want)
		}
	}

	// The active card sits at the origin with full opacity; its
	// neighbors are pushed back and faded.
	if !strings.Contains(index, "translateX(0px) translateZ(0px) rotateY(0deg)") {
		t.Error("index.html missing the active card placement")
	}
	if !strings.Contains(index, "opacity: 0.70") {
		t.Error("index.html missing the faded neighbor placement")
	}
}

func TestProjectPageRendersMarkdown(t *testing.T) {
	out := t.TempDir()
	gen, err := NewGenerator(testMeta(), out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Generate(testLibrary()); err != nil {
		t.Fatal(err)
	}

	page := readFile(t, filepath.Join(out, "projects", "alpha.html"))
	if !strings.Contains(page, "<em>markdown</em>") {
		t.Error("project page should render markdown emphasis")
	}
	if !strings.Contains(page, "<h1") {
		t.Error("project page should render the markdown heading")
	}
	if !strings.Contains(page, "March 2025") {
		t.Error("project page should show the formatted date")
	}
}

func TestCarouselOmittedWithoutCertificates(t *testing.T) {
	out := t.TempDir()
	gen, err := NewGenerator(testMeta(), out)
	if err != nil {
		t.Fatal(err)
	}

	lib := testLibrary()
	lib.Certificates = nil
	if _, err := gen.Generate(lib); err != nil {
		t.Fatal(err)
	}

	index := readFile(t, filepath.Join(out, "index.html"))
	if strings.Contains(index, `id="cert-carousel"`) {
		t.Error("index.html should omit the carousel section when no certificates exist")
	}
}

func TestCarouselModelMatchesGeometry(t *testing.T) {
	out := t.TempDir()
	gen, err := NewGenerator(testMeta(), out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Generate(testLibrary()); err != nil {
		t.Fatal(err)
	}

	var model struct {
		Certificates   []content.Certificate `json:"certificates"`
		StepOffsetX    int                   `json:"stepOffsetX"`
		SwipeThreshold int                   `json:"swipeThreshold"`
	}
	data := readFile(t, filepath.Join(out, "carousel.json"))
	if err := json.Unmarshal([]byte(data), &model); err != nil {
		t.Fatalf("carousel.json: %v", err)
	}
	if len(model.Certificates) != 3 {
		t.Errorf("certificates = %d, want 3", len(model.Certificates))
	}
	if model.StepOffsetX != 180 {
		t.Errorf("stepOffsetX = %d, want 180", model.StepOffsetX)
	}
	if model.SwipeThreshold != 50 {
		t.Errorf("swipeThreshold = %d, want 50", model.SwipeThreshold)
	}
}

func TestSearchIndex(t *testing.T) {
	out := t.TempDir()
	gen, err := NewGenerator(testMeta(), out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Generate(testLibrary()); err != nil {
		t.Fatal(err)
	}

	var entries []SearchEntry
	data := readFile(t, filepath.Join(out, "search-index.json"))
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		t.Fatalf("search-index.json: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Path != "projects/alpha.html" {
		t.Errorf("entries[0].Path = %q", entries[0].Path)
	}
	if !strings.Contains(entries[0].Content, "Some *markdown* body.") {
		t.Error("entry content should contain the flattened body")
	}
	if strings.Contains(entries[0].Content, "\n") {
		t.Error("entry content should be a single line")
	}
}

func TestBuildSearchIndexTruncatesLongBodies(t *testing.T) {
	long := strings.Repeat("word ", 1000)
	entries := BuildSearchIndex([]content.Project{
		{Slug: "big", Title: "Big", Body: long},
	})
	if len(entries[0].Content) > maxIndexedContent {
		t.Errorf("content length = %d, want <= %d", len(entries[0].Content), maxIndexedContent)
	}
}

func TestWriteManifest(t *testing.T) {
	out := t.TempDir()
	gen, err := NewGenerator(testMeta(), out)
	if err != nil {
		t.Fatal(err)
	}

	built := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err = gen.WriteManifest(Manifest{
		BuildID:      "abc-123",
		BuiltAt:      built,
		Pages:        3,
		Images:       2,
		Projects:     2,
		Certificates: 3,
	})
	if err != nil {
		t.Fatal(err)
	}

	var m Manifest
	data := readFile(t, filepath.Join(out, "build.json"))
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		t.Fatal(err)
	}
	if m.BuildID != "abc-123" || m.Pages != 3 || !m.BuiltAt.Equal(built) {
		t.Errorf("manifest round-trip = %+v", m)
	}
}

package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/carousel"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/content"
	"github.com/luis-eduardo-ferreira-galvao/portfolio/internal/filter"
)

// Meta is the site-wide metadata rendered into every page shell.
type Meta struct {
	Title       string
	Author      string
	Description string
	BaseURL     string
}

// Generator renders the loaded content library into a static site.
type Generator struct {
	Meta      Meta
	OutputDir string

	md        goldmark.Markdown
	indexTmpl *template.Template
	projTmpl  *template.Template
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(meta Meta, outputDir string) (*Generator, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	indexTmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	projTmpl, err := template.New("project").Parse(projectTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing project template: %w", err)
	}

	return &Generator{
		Meta:      meta,
		OutputDir: outputDir,
		md:        md,
		indexTmpl: indexTmpl,
		projTmpl:  projTmpl,
	}, nil
}

// indexData is the data passed to the index page template.
type indexData struct {
	Meta     Meta
	Tags     []string
	Projects []projectCard
	Carousel *carouselView
}

// projectCard is one project tile on the index page. The card's data
// attributes carry the haystack the client-side filter matches against.
type projectCard struct {
	content.Project
	Href     string
	DateText string
}

// carouselView is the certificate carousel section: every card with
// its initial coverflow placement.
type carouselView struct {
	Cards []certCard
}

// certCard pairs a certificate with its placement styles. Transform is
// template.CSS so the html/template CSS sanitizer passes the
// generator-produced transform through untouched.
type certCard struct {
	content.Certificate
	Index     int
	Transform template.CSS
	Opacity   string
	ZIndex    int
	Hidden    bool
	Active    bool
}

// projectPageData is the data passed to a project detail page.
type projectPageData struct {
	Meta     Meta
	Project  content.Project
	Body     template.HTML
	DateText string
}

// Generate renders the full site and returns the number of HTML pages
// written.
func (g *Generator) Generate(lib *content.Library) (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	pages := 0

	if err := g.renderIndex(lib); err != nil {
		return pages, fmt.Errorf("rendering index: %w", err)
	}
	pages++

	for _, p := range lib.Projects {
		if err := g.renderProject(p); err != nil {
			return pages, fmt.Errorf("rendering project %s: %w", p.Slug, err)
		}
		pages++
	}

	if err := g.writeAssets(); err != nil {
		return pages, fmt.Errorf("writing assets: %w", err)
	}

	entries := BuildSearchIndex(lib.Projects)
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return pages, fmt.Errorf("writing search index: %w", err)
	}

	if err := g.writeCarouselModel(lib.Certificates); err != nil {
		return pages, fmt.Errorf("writing carousel model: %w", err)
	}

	return pages, nil
}

// renderIndex writes the landing page: tag chips, project grid, and
// the certificate carousel with precomputed initial placements.
func (g *Generator) renderIndex(lib *content.Library) error {
	data := indexData{
		Meta: g.Meta,
		Tags: filter.Tags(lib.Projects),
	}

	for _, p := range lib.Projects {
		data.Projects = append(data.Projects, projectCard{
			Project:  p,
			Href:     "projects/" + p.Slug + ".html",
			DateText: p.Date.Format("Jan 2006"),
		})
	}

	if view, err := buildCarouselView(lib.Certificates); err == nil {
		data.Carousel = view
	}

	return g.executeTo(g.indexTmpl, filepath.Join(g.OutputDir, "index.html"), data)
}

// buildCarouselView computes the initial coverflow placement for every
// certificate card. An empty certificate list is reported as an error
// so the index template can omit the whole section.
func buildCarouselView(certs []content.Certificate) (*carouselView, error) {
	ring, err := carousel.New(certs)
	if err != nil {
		return nil, err
	}

	view := &carouselView{}
	for i, placement := range ring.Placements() {
		view.Cards = append(view.Cards, certCard{
			Certificate: certs[i],
			Index:       i,
			Transform:   template.CSS(placement.CSSTransform()),
			Opacity:     fmt.Sprintf("%.2f", placement.Opacity),
			ZIndex:      placement.ZIndex,
			Hidden:      !placement.Visible,
			Active:      placement.Diff == 0,
		})
	}
	return view, nil
}

// renderProject writes one project detail page, converting the
// markdown body through goldmark.
func (g *Generator) renderProject(p content.Project) error {
	var body bytes.Buffer
	if err := g.md.Convert([]byte(p.Body), &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	data := projectPageData{
		Meta:     g.Meta,
		Project:  p,
		Body:     template.HTML(body.String()),
		DateText: p.Date.Format("January 2006"),
	}

	outPath := filepath.Join(g.OutputDir, "projects", p.Slug+".html")
	return g.executeTo(g.projTmpl, outPath, data)
}

func (g *Generator) executeTo(tmpl *template.Template, outPath string, data any) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

// writeAssets writes the static stylesheet and page script.
func (g *Generator) writeAssets() error {
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644)
}

// carouselModel is the JSON consumed by the carousel runtime in
// script.js: the card list plus the geometry constants, so the client
// animation matches the server-rendered initial state exactly.
type carouselModel struct {
	Certificates   []content.Certificate `json:"certificates"`
	StepOffsetX    int                   `json:"stepOffsetX"`
	StepDepth      int                   `json:"stepDepth"`
	RotationDeg    int                   `json:"rotationDeg"`
	OpacityFade    float64               `json:"opacityFade"`
	BaseZIndex     int                   `json:"baseZIndex"`
	VisibleWindow  int                   `json:"visibleWindow"`
	SwipeThreshold int                   `json:"swipeThreshold"`
}

func (g *Generator) writeCarouselModel(certs []content.Certificate) error {
	model := carouselModel{
		Certificates:   certs,
		StepOffsetX:    carousel.StepOffsetX,
		StepDepth:      carousel.StepDepth,
		RotationDeg:    carousel.RotationDeg,
		OpacityFade:    carousel.OpacityFade,
		BaseZIndex:     carousel.BaseZIndex,
		VisibleWindow:  carousel.VisibleWindow,
		SwipeThreshold: carousel.SwipeThreshold,
	}
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "carousel.json"), data, 0o644)
}

// Manifest describes one finished build, written to build.json in the
// output directory.
type Manifest struct {
	BuildID      string    `json:"build_id"`
	BuiltAt      time.Time `json:"built_at"`
	Pages        int       `json:"pages"`
	Images       int       `json:"images"`
	Projects     int       `json:"projects"`
	Certificates int       `json:"certificates"`
}

// WriteManifest writes the build manifest into the output directory.
func (g *Generator) WriteManifest(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "build.json"), data, 0o644)
}

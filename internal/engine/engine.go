// Package engine is the minimal host surface the theme plugs into: default
// per-node URL assignment, the render context, and the page-writing loop.
package engine

import (
	"html/template"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/doctheme/internal/config"
	"git.home.luguber.info/inful/doctheme/internal/logfields"
	"git.home.luguber.info/inful/doctheme/internal/model"
)

// RenderFunc produces the body of one page.
type RenderFunc func(ctx *Context, page *model.Node) (template.HTML, error)

// UrlMapping binds a relative output path to a source node and a renderer.
// Mappings are created fresh per generation run and consumed once. Title,
// when set, overrides the default node-derived page title.
type UrlMapping struct {
	URL    string
	Node   *model.Node
	Title  string
	Render RenderFunc
}

// Context is the render context shared by every page of one run. The theme
// memoizes a single instance and reuses it for the run's lifetime.
type Context struct {
	Project *model.Project
	Options *config.Options
	BuildID string

	// Navigation renders the navigation fragment for the page being
	// rendered. pageURL is the output path of that page, which may differ
	// from page.URL when several pages bind the same node (the root index
	// and static markdown pages all bind the project root). Installed by
	// the theme; nil means no navigation.
	Navigation func(page *model.Node, pageURL string) (template.HTML, error)
}

// NewContext creates a run-scoped render context with a fresh build id.
func NewContext(project *model.Project, opts *config.Options) *Context {
	return &Context{Project: project, Options: opts, BuildID: uuid.NewString()}
}

// Engine writes rendered pages under one output root.
type Engine struct {
	outputDir string
}

// New creates an engine writing into outputDir.
func New(outputDir string) *Engine {
	return &Engine{outputDir: outputDir}
}

// OutputDir returns the configured output root.
func (e *Engine) OutputDir() string { return e.outputDir }

// NodeMappings assigns a URL to node and returns mappings for it and its
// page-worthy descendants: children of module-like nodes get their own
// pages, members of leaf declarations render inline in their parent's page.
func (e *Engine) NodeMappings(node *model.Node, render RenderFunc) []UrlMapping {
	node.URL = pageURL(node)
	mappings := []UrlMapping{{URL: node.URL, Node: node, Render: render}}
	if node.Kind.IsModuleLike() {
		for _, child := range node.Children {
			mappings = append(mappings, e.NodeMappings(child, render)...)
		}
	}
	return mappings
}

// Generate renders every mapping and writes the result under the output
// root, creating directories as needed. Rendering is sequential; the first
// error aborts the run.
func (e *Engine) Generate(ctx *Context, mappings []UrlMapping) error {
	slog.Info("Generating pages",
		logfields.Count(len(mappings)),
		logfields.BuildID(ctx.BuildID),
		logfields.Path(e.outputDir))

	for _, mapping := range mappings {
		body, err := mapping.Render(ctx, mapping.Node)
		if err != nil {
			return err
		}
		var navigation template.HTML
		if ctx.Navigation != nil {
			navigation, err = ctx.Navigation(mapping.Node, mapping.URL)
			if err != nil {
				return err
			}
		}

		title := mapping.Title
		if title == "" {
			title = pageTitle(ctx, mapping.Node)
		}
		content, err := renderChrome(title, navigation, body)
		if err != nil {
			return err
		}

		target := filepath.Join(e.outputDir, filepath.FromSlash(mapping.URL))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		// #nosec G306 -- generated pages are public content
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return err
		}
		slog.Debug("Wrote page", logfields.Page(mapping.Node.Name), logfields.URL(mapping.URL), logfields.Path(target))
	}
	return nil
}

// pageURL computes the default output path for a node: a kind directory plus
// the slugged qualified name.
func pageURL(node *model.Node) string {
	return path.Join(node.Kind.PathSegment(), urlSlug(node.QualifiedName())+".html")
}

// urlSlug converts a name to a URL-safe slug (lowercase, spaces to hyphens).
func urlSlug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

func pageTitle(ctx *Context, node *model.Node) string {
	if node == nil || node.IsProject() {
		return ctx.Project.Root.Name
	}
	return node.QualifiedName() + " | " + ctx.Project.Root.Name
}

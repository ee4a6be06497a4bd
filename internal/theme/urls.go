package theme

import (
	"html/template"
	"log/slog"

	"git.home.luguber.info/inful/doctheme/internal/engine"
	"git.home.luguber.info/inful/doctheme/internal/foundation"
	"git.home.luguber.info/inful/doctheme/internal/logfields"
	"git.home.luguber.info/inful/doctheme/internal/model"
	"git.home.luguber.info/inful/doctheme/internal/rewrite"
	"git.home.luguber.info/inful/doctheme/internal/staticpages"
	"git.home.luguber.info/inful/doctheme/internal/util/sets"
)

// GetUrls is the theme's URL-computation override. It decides the complete,
// order-stable page list for one generation run: mode-specific root pages,
// configured static markdown pages, then a depth-first pass over the
// project's declaration children using the engine's own per-node URL
// assignment. Every emitted path is unique within the run.
func (t *Theme) GetUrls(project *model.Project) ([]engine.UrlMapping, error) {
	seen := sets.New[string]()
	var mappings []engine.UrlMapping
	add := func(m engine.UrlMapping) error {
		if seen.Has(m.URL) {
			return foundation.InternalError("duplicate page url emitted").
				WithContext(foundation.Fields{"url": m.URL}).
				Build()
		}
		seen.Add(m.URL)
		mappings = append(mappings, m)
		return nil
	}

	if t.opts.ReadmeNone() {
		// No README: the project root is the declaration listing itself.
		project.Root.URL = "index.html"
		if err := add(engine.UrlMapping{URL: "index.html", Node: project.Root, Render: engine.DeclarationPage}); err != nil {
			return nil, err
		}
	} else {
		project.Root.URL = "modules.html"
		if err := add(engine.UrlMapping{URL: "modules.html", Node: project.Root, Render: engine.DeclarationPage}); err != nil {
			return nil, err
		}
		// The README is a derived value: rewritten and rendered once here,
		// never written back into the project model.
		var readme template.HTML
		if project.Readme != "" {
			var err error
			readme, err = rewrite.ApplyAndRender(project.Readme, t.opts.MarkdownFilesContentReplacement)
			if err != nil {
				return nil, err
			}
		}
		if err := add(engine.UrlMapping{URL: "index.html", Node: project.Root, Render: markdownPanel(readme)}); err != nil {
			return nil, err
		}
	}

	pages, err := staticpages.Load(t.opts)
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		// A static doc colliding with another page is a configuration
		// mistake, not a mapper bug.
		if seen.Has(page.URL) {
			return nil, foundation.ConfigurationError("static markdown doc pageUrl collides with an existing page").
				WithContext(foundation.Fields{"url": page.URL}).
				Build()
		}
		mapping := engine.UrlMapping{
			URL:    page.URL,
			Node:   project.Root,
			Title:  page.Title,
			Render: markdownPanel(page.Body),
		}
		if err := add(mapping); err != nil {
			return nil, err
		}
	}

	for _, child := range project.Root.Children {
		for _, mapping := range t.engine.NodeMappings(child, engine.DeclarationPage) {
			if err := add(mapping); err != nil {
				return nil, err
			}
		}
	}

	slog.Debug("Computed page urls", logfields.Count(len(mappings)))
	return mappings, nil
}

// markdownPanel wraps pre-rendered markdown content in the themed panel.
func markdownPanel(body template.HTML) engine.RenderFunc {
	return func(_ *engine.Context, _ *model.Node) (template.HTML, error) {
		// #nosec G203 -- body is goldmark output
		return `<div class="panel panel-markdown">` + body + `</div>`, nil
	}
}

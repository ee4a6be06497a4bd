// Package theme is the integration surface the host engine calls into. The
// theme composes the engine's default behavior rather than extending it,
// overriding exactly two capabilities: URL computation and the navigation
// fragment.
package theme

import (
	"html/template"

	"git.home.luguber.info/inful/doctheme/internal/config"
	"git.home.luguber.info/inful/doctheme/internal/engine"
	"git.home.luguber.info/inful/doctheme/internal/foundation"
	"git.home.luguber.info/inful/doctheme/internal/model"
	"git.home.luguber.info/inful/doctheme/internal/nav"
)

// Theme holds a reference to the engine defaults it delegates to and a
// single-slot memoized render context, created lazily on first access and
// reused for the generation run's lifetime.
type Theme struct {
	engine *engine.Engine
	opts   *config.Options
	ctx    foundation.Option[*engine.Context]
}

// New creates a theme delegating to e for everything it does not override.
func New(e *engine.Engine, opts *config.Options) *Theme {
	return &Theme{engine: e, opts: opts}
}

// Registration describes the theme to the host: a name plus the options it
// declares.
type Registration struct {
	Name    string
	Options []config.Decl
}

// Registration returns the host registration entry for this theme.
func (t *Theme) Registration() Registration {
	return Registration{Name: "doctheme", Options: config.Declarations()}
}

// Context returns the run's render context, creating it on first access.
// Rendering is sequential, so the slot needs no locking.
func (t *Theme) Context(project *model.Project) *engine.Context {
	if t.ctx.IsNone() {
		ctx := engine.NewContext(project, t.opts)
		builder := nav.NewBuilder(project.Root, t.opts)
		ctx.Navigation = builder.Navigation
		t.ctx = foundation.Some(ctx)
	}
	return t.ctx.Unwrap()
}

// Navigation is the theme's navigation-fragment override, resolving links
// from the page's own output URL.
func (t *Theme) Navigation(project *model.Project, page *model.Node) (template.HTML, error) {
	return t.Context(project).Navigation(page, page.URL)
}

// Generate runs the full pipeline: URL mapping, then the engine's
// sequential render loop.
func (t *Theme) Generate(project *model.Project) error {
	mappings, err := t.GetUrls(project)
	if err != nil {
		return err
	}
	return t.engine.Generate(t.Context(project), mappings)
}

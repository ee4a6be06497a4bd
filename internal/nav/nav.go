// Package nav builds the three navigation fragments: custom user-declared
// sections, the primary module tree, and the secondary per-page tree.
package nav

import (
	"html/template"
	"strings"

	"git.home.luguber.info/inful/doctheme/internal/config"
	"git.home.luguber.info/inful/doctheme/internal/model"
	"git.home.luguber.info/inful/doctheme/internal/segment"
)

// Builder renders navigation fragments for one project. The page being
// rendered is passed per call; the builder itself is stateless between pages.
type Builder struct {
	project *model.Node
	opts    *config.Options
}

// NewBuilder creates a navigation builder for the project root node.
func NewBuilder(project *model.Node, opts *config.Options) *Builder {
	return &Builder{project: project, opts: opts}
}

// Navigation composes the full fragment for page: custom sections first,
// then (unless suppressed) primary, then (unless suppressed) secondary.
// pageURL is the output path the fragment is embedded in; it drives every
// relative href, so pages that share a node (root index, static markdown
// pages) still resolve links from their own directory.
func (b *Builder) Navigation(page *model.Node, pageURL string) (template.HTML, error) {
	custom, err := b.Custom(pageURL)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(string(custom))
	if !b.opts.RemovePrimaryNavigation {
		sb.WriteString(string(b.Primary(page, pageURL)))
	}
	if !b.opts.RemoveSecondaryNavigation {
		sb.WriteString(string(b.Secondary(page, pageURL)))
	}
	// #nosec G203 -- fragment text is escaped at the point of emission
	return template.HTML(sb.String()), nil
}

// rootPrefix returns the relative path from the directory containing
// pageURL back to the output root ("" at the root, "../.." two levels deep,
// joined with a trailing slash per level).
func rootPrefix(pageURL string) string {
	return strings.Repeat("../", strings.Count(pageURL, "/"))
}

// relative resolves toURL (root-relative) against the directory of fromURL.
func relative(fromURL, toURL string) string {
	return rootPrefix(fromURL) + toURL
}

// renderName writes a display name with soft break hints between word
// fragments so long identifiers wrap instead of overflowing.
func renderName(sb *strings.Builder, name string) {
	for _, frag := range segment.Split(name) {
		sb.WriteString(template.HTMLEscapeString(frag.Text))
		if frag.BreakAfter {
			sb.WriteString("<wbr>")
		}
	}
}

func writeOpenLi(sb *strings.Builder, classes string) {
	if classes == "" {
		sb.WriteString("<li>")
		return
	}
	sb.WriteString(`<li class="`)
	sb.WriteString(template.HTMLEscapeString(classes))
	sb.WriteString(`">`)
}

func writeAnchor(sb *strings.Builder, href, name string) {
	sb.WriteString(`<a href="`)
	sb.WriteString(template.HTMLEscapeString(href))
	sb.WriteString(`">`)
	renderName(sb, name)
	sb.WriteString("</a>")
}

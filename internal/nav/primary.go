package nav

import (
	"html/template"
	"strings"

	"git.home.luguber.info/inful/doctheme/internal/model"
	"git.home.luguber.info/inful/doctheme/internal/nodeutil"
)

// Primary renders the module hierarchy tree for the page written at pageURL.
// Top-level module-like children of the project are partitioned into internal
// and external halves; when external entries exist, labeled separators
// introduce each half.
func (b *Builder) Primary(page *model.Node, pageURL string) template.HTML {
	moduleLike := make([]*model.Node, 0, len(b.project.Children))
	hasPlainModule := false
	for _, child := range b.project.Children {
		if child.Kind == model.KindModule {
			hasPlainModule = true
		}
		if child.Kind.IsModuleLike() {
			moduleLike = append(moduleLike, child)
		}
	}
	external, internal := nodeutil.Partition(moduleLike, func(n *model.Node) bool { return n.External })

	rootLabel := "Exports"
	if hasPlainModule {
		rootLabel = "Modules"
	}

	var sb strings.Builder
	sb.WriteString(`<nav class="nav-primary"><ul>`)
	sb.WriteString("<li>")
	writeAnchor(&sb, relative(pageURL, b.project.URL), rootLabel)
	sb.WriteString("</li>")

	if len(external) == 0 {
		for _, entry := range internal {
			b.primaryEntry(&sb, page, pageURL, entry)
		}
	} else {
		sb.WriteString(`<li class="label">Internals</li>`)
		for _, entry := range internal {
			b.primaryEntry(&sb, page, pageURL, entry)
		}
		sb.WriteString(`<li class="label">Externals</li>`)
		for _, entry := range external {
			b.primaryEntry(&sb, page, pageURL, entry)
		}
	}
	sb.WriteString("</ul></nav>")
	// #nosec G203 -- names, classes and hrefs are escaped at emission
	return template.HTML(sb.String())
}

// primaryEntry renders one module entry. An entry on the ancestor path of
// the page being rendered is "current"; a current entry with module-like
// children expands one nested level, recursively.
func (b *Builder) primaryEntry(sb *strings.Builder, page *model.Node, pageURL string, node *model.Node) {
	current := nodeutil.InPath(node, page)

	flags := []nodeutil.ClassFlag{{Name: "current", On: current}}
	for _, class := range node.Classes {
		flags = append(flags, nodeutil.ClassFlag{Name: class, On: true})
	}
	writeOpenLi(sb, nodeutil.ClassNames(flags...))
	writeAnchor(sb, relative(pageURL, node.URL), node.Name)

	if current {
		var nested []*model.Node
		for _, child := range node.Children {
			if child.Kind.IsModuleLike() {
				nested = append(nested, child)
			}
		}
		if len(nested) > 0 {
			sb.WriteString("<ul>")
			for _, child := range nested {
				b.primaryEntry(sb, page, pageURL, child)
			}
			sb.WriteString("</ul>")
		}
	}
	sb.WriteString("</li>")
}

package nav

import (
	"html/template"
	"strings"

	"git.home.luguber.info/inful/doctheme/internal/model"
	"git.home.luguber.info/inful/doctheme/internal/nodeutil"
)

// Secondary renders the flat child list of the current page, written at
// pageURL. On the project root page of a project with plain modules it is
// omitted entirely: the primary tree already lists the same entries.
func (b *Builder) Secondary(page *model.Node, pageURL string) template.HTML {
	if page.IsProject() {
		for _, child := range page.Children {
			if child.Kind == model.KindModule {
				return ""
			}
		}
	}

	var items []*model.Node
	for _, child := range page.Children {
		if !child.Kind.IsModuleLike() {
			items = append(items, child)
		}
	}

	var sb strings.Builder
	sb.WriteString(`<nav class="nav-secondary"><ul>`)
	if page.Kind.IsModuleLike() || page.IsProject() {
		b.secondaryItems(&sb, pageURL, items)
	} else {
		// Leaf pages get one extra level: a "current" entry for the page
		// itself wrapping its children.
		flags := []nodeutil.ClassFlag{{Name: "current", On: true}}
		for _, class := range page.Classes {
			flags = append(flags, nodeutil.ClassFlag{Name: class, On: true})
		}
		writeOpenLi(&sb, nodeutil.ClassNames(flags...))
		writeAnchor(&sb, relative(pageURL, page.URL), page.Name)
		sb.WriteString("<ul>")
		b.secondaryItems(&sb, pageURL, items)
		sb.WriteString("</ul></li>")
	}
	sb.WriteString("</ul></nav>")
	// #nosec G203 -- names, classes and hrefs are escaped at emission
	return template.HTML(sb.String())
}

func (b *Builder) secondaryItems(sb *strings.Builder, pageURL string, items []*model.Node) {
	for _, item := range items {
		flags := make([]nodeutil.ClassFlag, 0, len(item.Classes))
		for _, class := range item.Classes {
			flags = append(flags, nodeutil.ClassFlag{Name: class, On: true})
		}
		writeOpenLi(sb, nodeutil.ClassNames(flags...))
		// Members without a page of their own render inline in their
		// parent's page; a plain name avoids a dangling link.
		if item.URL == "" {
			renderName(sb, item.Name)
		} else {
			writeAnchor(sb, relative(pageURL, item.URL), item.Name)
		}
		sb.WriteString("</li>")
	}
}

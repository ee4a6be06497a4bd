package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/doctheme/internal/config"
	"git.home.luguber.info/inful/doctheme/internal/foundation"
	"git.home.luguber.info/inful/doctheme/internal/model"
)

// demoProject builds a small project tree with URLs already assigned:
//
//	demo (project, modules.html)
//	├── core (module, modules/core.html)
//	│   ├── inner (namespace, modules/core.inner.html)
//	│   └── Parser (class, classes/core.parser.html)
//	└── util (module, modules/util.html)
func demoProject() (project, core, inner, parser, util *model.Node) {
	project = &model.Node{Name: "demo", Kind: model.KindProject, URL: "modules.html"}
	core = &model.Node{Name: "core", Kind: model.KindModule, URL: "modules/core.html"}
	inner = &model.Node{Name: "inner", Kind: model.KindNamespace, URL: "modules/core.inner.html"}
	parser = &model.Node{Name: "Parser", Kind: model.KindClass, URL: "classes/core.parser.html"}
	util = &model.Node{Name: "util", Kind: model.KindModule, URL: "modules/util.html"}
	project.AddChild(core)
	core.AddChild(inner)
	core.AddChild(parser)
	project.AddChild(util)
	return project, core, inner, parser, util
}

type anchor struct {
	Href string
	Text string
}

func findAnchors(t *testing.T, fragment string) []anchor {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	require.NoError(t, err)

	var anchors []anchor
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			a := anchor{}
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					a.Href = attr.Val
				}
			}
			var text strings.Builder
			var collect func(*html.Node)
			collect = func(c *html.Node) {
				if c.Type == html.TextNode {
					text.WriteString(c.Data)
				}
				for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
					collect(cc)
				}
			}
			collect(n)
			a.Text = text.String()
			anchors = append(anchors, a)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return anchors
}

func TestCustom_HrefsAreRootRelativeAtDepth(t *testing.T) {
	project, _, _, _, _ := demoProject()
	opts := config.Default()
	opts.CustomNavigations = []any{
		map[string]any{
			"title": "Links",
			"links": []any{map[string]any{"label": "Home", "href": "/x"}},
		},
	}
	b := NewBuilder(project, opts)

	page := &model.Node{Name: "tips", Kind: model.KindClass, URL: "guides/advanced/tips.html"}
	fragment, err := b.Custom(page.URL)
	require.NoError(t, err)

	anchors := findAnchors(t, string(fragment))
	require.Len(t, anchors, 1)
	require.Equal(t, "../../x", anchors[0].Href)
	require.Equal(t, "Home", anchors[0].Text)
	require.Contains(t, string(fragment), "Links")
}

func TestCustom_EmptyWhenUnconfigured(t *testing.T) {
	project, _, _, _, _ := demoProject()
	b := NewBuilder(project, config.Default())
	fragment, err := b.Custom(project.URL)
	require.NoError(t, err)
	require.Empty(t, string(fragment))
}

func TestCustom_NonSequenceValueIsConfigurationError(t *testing.T) {
	project, _, _, _, _ := demoProject()
	opts := config.Default()
	opts.CustomNavigations = "not a sequence"
	b := NewBuilder(project, opts)
	_, err := b.Custom(project.URL)
	require.Error(t, err)
	require.True(t, foundation.IsErrorCode(err, foundation.ErrorCodeConfiguration))
}

func TestCustom_NonSequenceLinksIsConfigurationError(t *testing.T) {
	project, _, _, _, _ := demoProject()
	opts := config.Default()
	opts.CustomNavigations = []any{
		map[string]any{"title": "Bad", "links": "nope"},
	}
	b := NewBuilder(project, opts)
	_, err := b.Custom(project.URL)
	require.Error(t, err)
	require.True(t, foundation.IsErrorCode(err, foundation.ErrorCodeConfiguration))
}

func TestCustom_HrefWithoutLeadingSlashIsConfigurationError(t *testing.T) {
	project, _, _, _, _ := demoProject()
	opts := config.Default()
	opts.CustomNavigations = []any{
		map[string]any{
			"title": "Bad",
			"links": []any{map[string]any{"label": "Rel", "href": "x"}},
		},
	}
	b := NewBuilder(project, opts)
	_, err := b.Custom(project.URL)
	require.Error(t, err)
	require.True(t, foundation.IsErrorCode(err, foundation.ErrorCodeConfiguration))
}

func TestPrimary_NoExternalsOmitsSeparatorLabels(t *testing.T) {
	project, _, _, parser, _ := demoProject()
	b := NewBuilder(project, config.Default())
	fragment := string(b.Primary(parser, parser.URL))
	require.NotContains(t, fragment, "Internals")
	require.NotContains(t, fragment, "Externals")
}

func TestPrimary_ExternalsGetBothLabelsOnceInOrder(t *testing.T) {
	project, _, _, parser, util := demoProject()
	util.External = true
	b := NewBuilder(project, config.Default())
	fragment := string(b.Primary(parser, parser.URL))
	require.Equal(t, 1, strings.Count(fragment, "Internals"))
	require.Equal(t, 1, strings.Count(fragment, "Externals"))
	require.Less(t, strings.Index(fragment, "Internals"), strings.Index(fragment, "Externals"))
}

func TestPrimary_ProjectLinkLabeledModules(t *testing.T) {
	project, _, _, parser, _ := demoProject()
	b := NewBuilder(project, config.Default())
	anchors := findAnchors(t, string(b.Primary(parser, parser.URL)))
	require.NotEmpty(t, anchors)
	require.Equal(t, "Modules", anchors[0].Text)
	require.Equal(t, "../modules.html", anchors[0].Href)
}

func TestPrimary_ProjectLinkLabeledExportsWithoutPlainModules(t *testing.T) {
	project := &model.Node{Name: "demo", Kind: model.KindProject, URL: "modules.html"}
	ns := &model.Node{Name: "ns", Kind: model.KindNamespace, URL: "modules/ns.html"}
	project.AddChild(ns)
	b := NewBuilder(project, config.Default())
	anchors := findAnchors(t, string(b.Primary(project, project.URL)))
	require.Equal(t, "Exports", anchors[0].Text)
}

func TestPrimary_CurrentAncestorExpandsNestedModules(t *testing.T) {
	project, _, inner, parser, _ := demoProject()
	b := NewBuilder(project, config.Default())
	fragment := string(b.Primary(parser, parser.URL))

	// core is on the parser page's ancestor path: marked current and its
	// module-like child is listed one level deeper.
	require.Contains(t, fragment, `class="current"`)
	anchors := findAnchors(t, fragment)
	var hrefs []string
	for _, a := range anchors {
		hrefs = append(hrefs, a.Href)
	}
	require.Contains(t, hrefs, "../"+inner.URL)
}

func TestPrimary_NonCurrentModuleNotExpanded(t *testing.T) {
	project, _, inner, _, util := demoProject()
	b := NewBuilder(project, config.Default())
	// util's page: core is not on the ancestor path, so inner stays hidden.
	fragment := string(b.Primary(util, util.URL))
	require.NotContains(t, fragment, inner.URL)
}

func TestPrimary_DeclaredClassesJoinCurrentFlag(t *testing.T) {
	project, core, _, parser, _ := demoProject()
	core.Classes = []string{"deprecated"}
	b := NewBuilder(project, config.Default())
	fragment := string(b.Primary(parser, parser.URL))
	require.Contains(t, fragment, `class="current deprecated"`)
}

func TestSecondary_OmittedOnRootWithPlainModules(t *testing.T) {
	project, _, _, _, _ := demoProject()
	b := NewBuilder(project, config.Default())
	require.Empty(t, string(b.Secondary(project, project.URL)))
}

func TestSecondary_RootWithoutModulesListsChildren(t *testing.T) {
	project := &model.Node{Name: "demo", Kind: model.KindProject, URL: "index.html"}
	fn := &model.Node{Name: "run", Kind: model.KindFunction, URL: "functions/run.html"}
	project.AddChild(fn)
	b := NewBuilder(project, config.Default())
	anchors := findAnchors(t, string(b.Secondary(project, project.URL)))
	require.Len(t, anchors, 1)
	require.Equal(t, "functions/run.html", anchors[0].Href)
}

func TestSecondary_ModulePageListsNonModuleChildrenFlat(t *testing.T) {
	project, core, inner, parser, _ := demoProject()
	_ = inner
	b := NewBuilder(project, config.Default())
	fragment := string(b.Secondary(core, core.URL))
	anchors := findAnchors(t, fragment)
	require.Len(t, anchors, 1)
	require.Equal(t, "../"+parser.URL, anchors[0].Href)
	// Module-like children belong to the primary tree, not here.
	require.NotContains(t, fragment, "inner")
}

func TestSecondary_LeafPageWrapsChildrenUnderCurrentEntry(t *testing.T) {
	project, _, _, parser, _ := demoProject()
	parse := &model.Node{Name: "parse", Kind: model.KindFunction}
	parser.AddChild(parse)
	b := NewBuilder(project, config.Default())
	fragment := string(b.Secondary(parser, parser.URL))
	require.Contains(t, fragment, `class="current"`)
	anchors := findAnchors(t, fragment)
	// The page's own entry is the only anchor; the pageless member is
	// listed by name.
	require.Len(t, anchors, 1)
	require.Equal(t, "../"+parser.URL, anchors[0].Href)
	require.Equal(t, "Parser", anchors[0].Text)
	require.Contains(t, fragment, "<li>parse</li>")
}

func TestSecondary_PagelessMemberGetsNoAnchor(t *testing.T) {
	project, _, _, parser, _ := demoProject()
	parser.AddChild(&model.Node{Name: "parse", Kind: model.KindFunction})
	b := NewBuilder(project, config.Default())
	fragment := string(b.Secondary(parser, parser.URL))
	// A member rendered inline in its parent's page must not link to the
	// output root.
	require.NotContains(t, fragment, `href="../"`)
	require.Contains(t, fragment, "<li>parse</li>")
}

func TestNavigation_ComposesInOrderAndHonorsSuppression(t *testing.T) {
	project, core, _, _, _ := demoProject()
	opts := config.Default()
	opts.CustomNavigations = []any{
		map[string]any{
			"title": "Links",
			"links": []any{map[string]any{"label": "Home", "href": "/index.html"}},
		},
	}
	b := NewBuilder(project, opts)

	fragment, err := b.Navigation(core, core.URL)
	require.NoError(t, err)
	s := string(fragment)
	require.Less(t, strings.Index(s, "nav-custom"), strings.Index(s, "nav-primary"))
	require.Less(t, strings.Index(s, "nav-primary"), strings.Index(s, "nav-secondary"))

	opts.RemovePrimaryNavigation = true
	opts.RemoveSecondaryNavigation = true
	fragment, err = b.Navigation(core, core.URL)
	require.NoError(t, err)
	require.Contains(t, string(fragment), "nav-custom")
	require.NotContains(t, string(fragment), "nav-primary")
	require.NotContains(t, string(fragment), "nav-secondary")
}

func TestNavigation_ResolvesLinksFromRenderedPageURL(t *testing.T) {
	project, _, _, _, _ := demoProject()
	opts := config.Default()
	opts.CustomNavigations = []any{
		map[string]any{
			"title": "Links",
			"links": []any{map[string]any{"label": "Home", "href": "/x"}},
		},
	}
	b := NewBuilder(project, opts)

	// The root node renders on several pages; hrefs must follow the URL of
	// the page being written, not the node's own URL.
	fragment, err := b.Navigation(project, "guides/deep.html")
	require.NoError(t, err)
	anchors := findAnchors(t, string(fragment))
	require.Equal(t, "../x", anchors[0].Href)
	require.Equal(t, "../modules.html", anchors[1].Href)
}

func TestNavigation_SegmentsLongNamesWithWbr(t *testing.T) {
	project := &model.Node{Name: "demo", Kind: model.KindProject, URL: "modules.html"}
	mod := &model.Node{Name: "veryLongModule_name", Kind: model.KindModule, URL: "modules/verylongmodule_name.html"}
	project.AddChild(mod)
	b := NewBuilder(project, config.Default())
	fragment := string(b.Primary(project, project.URL))
	require.Contains(t, fragment, "very<wbr>Long<wbr>Module_<wbr>name")
}

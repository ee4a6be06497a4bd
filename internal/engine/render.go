package engine

import (
	"bytes"
	"html/template"
	"strings"

	"git.home.luguber.info/inful/doctheme/internal/model"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<div class="container">
{{.Navigation}}
<main class="content">
{{.Body}}
</main>
</div>
</body>
</html>
`))

func renderChrome(title string, navigation, body template.HTML) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Title      string
		Navigation template.HTML
		Body       template.HTML
	}{Title: title, Navigation: navigation, Body: body})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var declTemplate = template.Must(template.New("declaration").Parse(`<h1>{{.Kind}} {{.Name}}</h1>
{{range .Groups}}<section class="member-group">
<h2>{{.Title}}</h2>
<ul>
{{range .Members}}<li>{{if .Href}}<a href="{{.Href}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</li>
{{end}}</ul>
</section>
{{end}}`))

type memberEntry struct {
	Name string
	Href string
}

type memberGroup struct {
	Title   string
	Members []memberEntry
}

// DeclarationPage is the engine's default renderer: a heading plus the
// node's children grouped by kind, linking to children that own pages.
func DeclarationPage(_ *Context, page *model.Node) (template.HTML, error) {
	prefix := strings.Repeat("../", strings.Count(page.URL, "/"))

	var order []model.Kind
	groups := make(map[model.Kind]*memberGroup)
	for _, child := range page.Children {
		group, ok := groups[child.Kind]
		if !ok {
			group = &memberGroup{Title: groupTitle(child.Kind)}
			groups[child.Kind] = group
			order = append(order, child.Kind)
		}
		entry := memberEntry{Name: child.Name}
		if child.URL != "" {
			entry.Href = prefix + child.URL
		}
		group.Members = append(group.Members, entry)
	}

	ordered := make([]memberGroup, 0, len(order))
	for _, kind := range order {
		ordered = append(ordered, *groups[kind])
	}

	var buf bytes.Buffer
	err := declTemplate.Execute(&buf, struct {
		Kind   string
		Name   string
		Groups []memberGroup
	}{Kind: string(page.Kind), Name: page.QualifiedName(), Groups: ordered})
	if err != nil {
		return "", err
	}
	// #nosec G203 -- produced by html/template with contextual escaping
	return template.HTML(buf.String()), nil
}

// groupTitle returns the section heading for a member kind ("Classes",
// "Functions", ...).
func groupTitle(kind model.Kind) string {
	seg := kind.PathSegment()
	return strings.ToUpper(seg[:1]) + seg[1:]
}

package nav

import (
	"fmt"
	"html/template"
	"strings"

	"git.home.luguber.info/inful/doctheme/internal/foundation"
)

// Section is one validated custom navigation block.
type Section struct {
	Title string
	Links []Link
}

// Link is one validated custom navigation entry. Href keeps its configured
// root-relative form ("/x"); resolution against the current page happens at
// render time.
type Link struct {
	Label string
	Href  string
}

// Custom renders the user-declared navigation sections for the page written
// at pageURL, in configured order. Hrefs are joined onto the relative path
// from the page's directory back to the output root, so they resolve
// correctly at any nesting depth.
func (b *Builder) Custom(pageURL string) (template.HTML, error) {
	sections, err := parseCustomNavigations(b.opts.CustomNavigations)
	if err != nil {
		return "", err
	}
	if len(sections) == 0 {
		return "", nil
	}

	prefix := rootPrefix(pageURL)
	var sb strings.Builder
	sb.WriteString(`<nav class="nav-custom">`)
	for _, section := range sections {
		sb.WriteString("<section><h3>")
		sb.WriteString(template.HTMLEscapeString(section.Title))
		sb.WriteString("</h3><ul>")
		for _, link := range section.Links {
			href := prefix + strings.TrimPrefix(link.Href, "/")
			sb.WriteString("<li>")
			sb.WriteString(`<a href="`)
			sb.WriteString(template.HTMLEscapeString(href))
			sb.WriteString(`">`)
			sb.WriteString(template.HTMLEscapeString(link.Label))
			sb.WriteString("</a></li>")
		}
		sb.WriteString("</ul></section>")
	}
	sb.WriteString("</nav>")
	// #nosec G203 -- titles, labels and hrefs are escaped above
	return template.HTML(sb.String()), nil
}

// parseCustomNavigations shape-checks the duck-typed option payload. The
// value arrives as whatever the YAML decoder produced; every structural
// assumption is verified here, at first use, and violations fail the run
// with a configuration error.
func parseCustomNavigations(value any) ([]Section, error) {
	if value == nil {
		return nil, nil
	}
	raw, ok := value.([]any)
	if !ok {
		return nil, foundation.ConfigurationError("customNavigations must be a sequence").
			WithContext(foundation.Fields{"got": fmt.Sprintf("%T", value)}).
			Build()
	}

	sections := make([]Section, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, foundation.ConfigurationError("customNavigations entry must be a mapping").
				WithContext(foundation.Fields{"index": i, "got": fmt.Sprintf("%T", entry)}).
				Build()
		}
		section := Section{Title: stringField(m, "title")}
		if linksValue, ok := m["links"]; ok && linksValue != nil {
			rawLinks, ok := linksValue.([]any)
			if !ok {
				return nil, foundation.ConfigurationError("customNavigations links must be a sequence").
					WithContext(foundation.Fields{"index": i, "got": fmt.Sprintf("%T", linksValue)}).
					Build()
			}
			for _, rawLink := range rawLinks {
				link, err := parseLink(rawLink)
				if err != nil {
					return nil, err
				}
				section.Links = append(section.Links, link)
			}
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func parseLink(value any) (Link, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return Link{}, foundation.ConfigurationError("customNavigations link must be a mapping").
			WithContext(foundation.Fields{"got": fmt.Sprintf("%T", value)}).
			Build()
	}
	link := Link{
		Label: stringField(m, "label"),
		Href:  stringField(m, "href"),
	}
	if !strings.HasPrefix(link.Href, "/") {
		return Link{}, foundation.ConfigurationError("customNavigations link href must start with /").
			WithContext(foundation.Fields{"href": link.Href}).
			Build()
	}
	return link, nil
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

// Package staticpages resolves the configured static markdown docs into
// renderable pages.
package staticpages

import (
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/doctheme/internal/config"
	"git.home.luguber.info/inful/doctheme/internal/foundation"
	"git.home.luguber.info/inful/doctheme/internal/logfields"
	"git.home.luguber.info/inful/doctheme/internal/rewrite"
)

// Page is one resolved static markdown doc, ready to be registered as a URL
// mapping. URL is relative to the output root.
type Page struct {
	URL   string
	Title string
	Body  template.HTML
}

var titleCaser = cases.Title(language.English)

// Load resolves every configured static markdown doc, in input order.
// Page URLs must start with "/" (configuration error otherwise); file paths
// are resolved against the working directory and must exist (not-found
// error otherwise). File contents run through the content rewriter and the
// markdown renderer.
func Load(opts *config.Options) ([]Page, error) {
	pages := make([]Page, 0, len(opts.StaticMarkdownDocs))
	for _, doc := range opts.StaticMarkdownDocs {
		if !strings.HasPrefix(doc.PageURL, "/") {
			return nil, foundation.ConfigurationError("static markdown doc pageUrl must start with /").
				WithContext(foundation.Fields{"pageUrl": doc.PageURL}).
				Build()
		}
		url := strings.TrimPrefix(doc.PageURL, "/") + ".html"

		path := doc.FilePath
		if !filepath.IsAbs(path) {
			abs, err := filepath.Abs(path)
			if err != nil {
				return nil, foundation.ConfigurationError("static markdown doc filePath cannot be resolved").
					WithCause(err).
					WithContext(foundation.Fields{"filePath": doc.FilePath}).
					Build()
			}
			path = abs
		}
		if _, err := os.Stat(path); err != nil {
			return nil, foundation.NotFoundError("static markdown file").
				WithCause(err).
				WithContext(foundation.Fields{"filePath": path}).
				Build()
		}

		raw, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, foundation.NotFoundError("static markdown file").
				WithCause(err).
				WithContext(foundation.Fields{"filePath": path}).
				Build()
		}

		body, err := rewrite.ApplyAndRender(string(raw), opts.MarkdownFilesContentReplacement)
		if err != nil {
			return nil, err
		}

		title := pageTitle(doc.PageURL)
		slog.Debug("Resolved static markdown doc", logfields.URL(url), logfields.Path(path), logfields.Title(title))
		pages = append(pages, Page{URL: url, Title: title, Body: body})
	}
	return pages, nil
}

// pageTitle derives a display title from the last URL segment.
func pageTitle(pageURL string) string {
	seg := pageURL[strings.LastIndex(pageURL, "/")+1:]
	seg = strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return titleCaser.String(seg)
}

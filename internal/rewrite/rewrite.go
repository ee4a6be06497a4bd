// Package rewrite applies the configured content-replacement rules to raw
// markdown and hands the result to goldmark for rendering.
package rewrite

import (
	"bytes"
	"html/template"
	"log/slog"
	"regexp"

	"github.com/yuin/goldmark"

	"git.home.luguber.info/inful/doctheme/internal/config"
	"git.home.luguber.info/inful/doctheme/internal/foundation"
	"git.home.luguber.info/inful/doctheme/internal/logfields"
)

// maxPasses bounds the replace-until-stable loop per rule. The contract puts
// termination on the caller; the cap turns a rule that re-introduces its own
// match into a diagnosable failure instead of a hung build.
const maxPasses = 10000

// Apply runs each rule in declared order, replacing the first match of the
// rule's pattern repeatedly until no match remains before moving on. A single
// rule therefore eliminates every occurrence of a recurring pattern. An empty
// rule list returns the input unchanged.
func Apply(text string, rules []config.ContentReplacement) (string, error) {
	if len(rules) == 0 {
		return text, nil
	}
	for _, rule := range rules {
		re, err := regexp.Compile(rule.Content)
		if err != nil {
			return "", foundation.ConfigurationError("content replacement pattern does not compile").
				WithCause(err).
				WithContext(foundation.Fields{"pattern": rule.Content}).
				Build()
		}
		for pass := 0; ; pass++ {
			if pass == maxPasses {
				slog.Error("Content replacement rule never stopped matching", logfields.Rule(rule.Content))
				return "", foundation.InternalError("content replacement rule did not terminate").
					WithContext(foundation.Fields{"pattern": rule.Content, "passes": pass}).
					Build()
			}
			m := re.FindStringSubmatchIndex(text)
			if m == nil {
				break
			}
			var buf []byte
			buf = append(buf, text[:m[0]]...)
			buf = re.ExpandString(buf, rule.Replacement, text, m)
			buf = append(buf, text[m[1]:]...)
			text = string(buf)
		}
	}
	return text, nil
}

// Render converts markdown to HTML. The conversion itself is opaque: this is
// the single seam to the goldmark renderer.
func Render(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(markdown), &buf); err != nil {
		return "", foundation.InternalError("markdown rendering failed").WithCause(err).Build()
	}
	// #nosec G203 -- goldmark output is rendered site content
	return template.HTML(buf.String()), nil
}

// ApplyAndRender is the common pipeline: rewrite first, then render.
func ApplyAndRender(markdown string, rules []config.ContentReplacement) (template.HTML, error) {
	rewritten, err := Apply(markdown, rules)
	if err != nil {
		return "", err
	}
	return Render(rewritten)
}

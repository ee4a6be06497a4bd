// Package config holds the theme's process-wide options bag: populated once
// at startup, read throughout a generation run, never mutated afterwards.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/doctheme/internal/foundation"
)

// StaticMarkdownDoc configures one extra page fed from a markdown file.
// Validated at use time, not at load time.
type StaticMarkdownDoc struct {
	PageURL  string `yaml:"pageUrl"`
	FilePath string `yaml:"filePath"`
}

// ContentReplacement is one ordered rewrite rule applied to raw markdown
// before rendering. Content is a regular expression.
type ContentReplacement struct {
	Content     string `yaml:"content"`
	Replacement string `yaml:"replacement"`
}

// Options is the full options bag. CustomNavigations is deliberately left
// untyped: its payload comes from user YAML and is shape-checked at first
// use by the navigation builder, failing with a configuration error rather
// than trusting structure.
type Options struct {
	Out                             string               `yaml:"out"`
	Readme                          string               `yaml:"readme,omitempty"`
	StaticMarkdownDocs              []StaticMarkdownDoc  `yaml:"staticMarkdownDocs,omitempty"`
	CustomNavigations               any                  `yaml:"customNavigations,omitempty"`
	RemovePrimaryNavigation         bool                 `yaml:"removePrimaryNavigation,omitempty"`
	RemoveSecondaryNavigation       bool                 `yaml:"removeSecondaryNavigation,omitempty"`
	MarkdownFilesContentReplacement []ContentReplacement `yaml:"markdownFilesContentReplacement,omitempty"`
}

// ReadmeNone reports whether the readme option requests the no-README
// layout. Any value ending in "none" triggers it, matching the host
// convention of passing a literal "none" in place of a file path.
func (o *Options) ReadmeNone() bool {
	n := len(o.Readme)
	return n >= 4 && o.Readme[n-4:] == "none"
}

// Default returns the options bag with declared defaults applied.
func Default() *Options {
	return &Options{Out: "./docs"}
}

// Load reads an options file. The zero values of every theme option are the
// declared defaults, so a sparse file is fine.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, foundation.NotFoundError("options file").
			WithCause(err).
			WithContext(foundation.Fields{"path": path}).
			Build()
	}
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, foundation.ConfigurationError("options file is not valid YAML").
			WithCause(err).
			WithContext(foundation.Fields{"path": path}).
			Build()
	}
	if opts.Out == "" {
		opts.Out = Default().Out
	}
	return opts, nil
}

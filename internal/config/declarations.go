package config

// ValueKind describes the declared shape of an option value.
type ValueKind string

const (
	KindString  ValueKind = "string"
	KindBoolean ValueKind = "boolean"
	KindList    ValueKind = "list"
	KindAny     ValueKind = "any"
)

// Decl is one declarative option registration: name, value kind, help text
// and default. The theme hands these to the host at registration time; the
// check command prints them.
type Decl struct {
	Name    string
	Kind    ValueKind
	Help    string
	Default any
}

// Declarations lists the options this theme consumes, in registration
// order. The out option is host-owned and not re-declared.
func Declarations() []Decl {
	return []Decl{
		{Name: "readme", Kind: KindString,
			Help: "Path to the project README, or a value ending in \"none\" to skip the README layout.", Default: ""},
		{Name: "staticMarkdownDocs", Kind: KindList,
			Help: "Extra pages rendered from markdown files: entries of {pageUrl, filePath}.", Default: []StaticMarkdownDoc(nil)},
		{Name: "customNavigations", Kind: KindAny,
			Help: "User-declared navigation sections: entries of {title, links: [{label, href}]}.", Default: nil},
		{Name: "removePrimaryNavigation", Kind: KindBoolean,
			Help: "Suppress the module-hierarchy navigation tree.", Default: false},
		{Name: "removeSecondaryNavigation", Kind: KindBoolean,
			Help: "Suppress the per-page child navigation tree.", Default: false},
		{Name: "markdownFilesContentReplacement", Kind: KindList,
			Help: "Ordered regex rewrite rules applied to markdown content: entries of {content, replacement}.", Default: []ContentReplacement(nil)},
	}
}

package model

import "strings"

// Kind tags a declaration node. The distinction that matters to navigation
// and URL mapping is module-like (namespace groupings) vs leaf declarations.
type Kind string

const (
	KindProject   Kind = "project"
	KindModule    Kind = "module"
	KindNamespace Kind = "namespace"
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
	KindFunction  Kind = "function"
	KindVariable  Kind = "variable"
	KindTypeAlias Kind = "typealias"
)

// IsModuleLike reports whether the kind marks a namespace/module grouping
// rather than a leaf declaration.
func (k Kind) IsModuleLike() bool {
	return k == KindModule || k == KindNamespace
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindProject, KindModule, KindNamespace, KindClass, KindInterface,
		KindEnum, KindFunction, KindVariable, KindTypeAlias:
		return true
	}
	return false
}

// PathSegment returns the output directory segment for pages of this kind.
func (k Kind) PathSegment() string {
	switch k {
	case KindModule, KindNamespace:
		return "modules"
	case KindClass:
		return "classes"
	case KindInterface:
		return "interfaces"
	case KindEnum:
		return "enums"
	case KindFunction:
		return "functions"
	case KindVariable:
		return "variables"
	case KindTypeAlias:
		return "types"
	default:
		return "pages"
	}
}

// Node is one entry in the project tree: the project root, a module, or a
// leaf declaration. The structure is owned by the host side of the pipeline;
// the theme traverses it and assigns URL, nothing else.
type Node struct {
	Name     string
	Kind     Kind
	Classes  []string
	External bool

	// URL is the page path relative to the output root, assigned during URL
	// mapping. Empty until then.
	URL string

	// Parent is a navigational back-reference only. Upward walks stop at the
	// project root; the pointer never drives ownership.
	Parent   *Node
	Children []*Node
}

// AddChild appends c and wires its parent back-reference.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// IsProject reports whether n is a project root node.
func (n *Node) IsProject() bool { return n.Kind == KindProject }

// QualifiedName returns the dotted name path from (but excluding) the
// project root down to n. For the root itself it returns the root's name.
func (n *Node) QualifiedName() string {
	if n.IsProject() {
		return n.Name
	}
	var parts []string
	for cur := n; cur != nil && !cur.IsProject(); cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// Project is the root of the model handed to the theme: a root node plus an
// optional raw README body.
type Project struct {
	Root   *Node
	Readme string
}

// NewProject creates a project with a root node of the given name.
func NewProject(name string) *Project {
	return &Project{Root: &Node{Name: name, Kind: KindProject}}
}

package model

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/doctheme/internal/foundation"
)

// manifestNode mirrors one tree entry in the YAML project manifest.
type manifestNode struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	External bool           `yaml:"external,omitempty"`
	Classes  []string       `yaml:"classes,omitempty"`
	Children []manifestNode `yaml:"children,omitempty"`
}

// manifest is the on-disk description of a project tree. The readme field is
// a path to a markdown file, resolved relative to the manifest location.
type manifest struct {
	Name     string         `yaml:"name"`
	Readme   string         `yaml:"readme,omitempty"`
	Children []manifestNode `yaml:"children,omitempty"`
}

// LoadManifest reads a YAML project manifest and builds the model tree,
// wiring parent back-references as it descends.
func LoadManifest(path string) (*Project, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, foundation.NotFoundError("project manifest").
			WithCause(err).
			WithContext(foundation.Fields{"path": path}).
			Build()
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, foundation.ConfigurationError("project manifest is not valid YAML").
			WithCause(err).
			WithContext(foundation.Fields{"path": path}).
			Build()
	}
	if m.Name == "" {
		return nil, foundation.ConfigurationError("project manifest is missing a name").
			WithContext(foundation.Fields{"path": path}).
			Build()
	}

	project := NewProject(m.Name)
	for i := range m.Children {
		child, err := buildNode(&m.Children[i])
		if err != nil {
			return nil, err
		}
		project.Root.AddChild(child)
	}

	if m.Readme != "" {
		readmePath := m.Readme
		if !filepath.IsAbs(readmePath) {
			readmePath = filepath.Join(filepath.Dir(path), readmePath)
		}
		body, err := os.ReadFile(filepath.Clean(readmePath))
		if err != nil {
			return nil, foundation.NotFoundError("readme file").
				WithCause(err).
				WithContext(foundation.Fields{"path": readmePath}).
				Build()
		}
		project.Readme = string(body)
	}

	return project, nil
}

func buildNode(mn *manifestNode) (*Node, error) {
	if mn.Name == "" {
		return nil, foundation.ConfigurationError("manifest node is missing a name").Build()
	}
	kind := Kind(mn.Kind)
	if !kind.Valid() || kind == KindProject {
		return nil, foundation.ConfigurationError("manifest node has an unknown kind").
			WithContext(foundation.Fields{"name": mn.Name, "kind": mn.Kind}).
			Build()
	}

	node := &Node{
		Name:     mn.Name,
		Kind:     kind,
		External: mn.External,
		Classes:  mn.Classes,
	}
	for i := range mn.Children {
		child, err := buildNode(&mn.Children[i])
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

// Package definitions loads selector definition files and builds selectors
// from them.
//
// Definition file is YAML:
//
//	selectors:
//	  - name: link
//	    parts:
//	      - element: a
//	      - class: external
//	      - attribute: href
//	    properties:
//	      color: red
//	  - name: nav-link
//	    combine: [nav, ">", link]
//
// Parts are applied in file order, so file order has to respect fragment
// category order. Combine references earlier definitions by name.
package definitions

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"csel/selector"
)

// Part is a single fragment of a definition.
type Part struct {
	Category selector.Category
	Value    string
}

// UnmarshalYAML accepts single key mapping: "class: name".
func (p *Part) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: part must be a mapping with exactly one key", node.Line)
	}
	key, val := node.Content[0], node.Content[1]
	cat, err := selector.ParseCategory(key.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", key.Line, err)
	}
	if val.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %s value must be a scalar", val.Line, cat)
	}
	p.Category, p.Value = cat, val.Value
	return nil
}

func (p Part) MarshalYAML() (any, error) {
	return map[string]string{p.Category.String(): p.Value}, nil
}

// Combine joins two earlier definitions.
type Combine struct {
	Left       string
	Combinator selector.Combinator
	Right      string
}

// UnmarshalYAML accepts three element sequence: [left, combinator, right].
func (c *Combine) UnmarshalYAML(node *yaml.Node) error {
	var items []string
	if err := node.Decode(&items); err != nil {
		return fmt.Errorf("line %d: combine must be a list: %w", node.Line, err)
	}
	if len(items) != 3 {
		return fmt.Errorf("line %d: combine needs [left, combinator, right], got %d items", node.Line, len(items))
	}
	c.Left, c.Combinator, c.Right = items[0], selector.Combinator(items[1]), items[2]
	return nil
}

func (c Combine) MarshalYAML() (any, error) {
	return []string{c.Left, string(c.Combinator), c.Right}, nil
}

// Definition describes one selector.
type Definition struct {
	Name       string            `yaml:"name,omitempty"`
	Parts      []Part            `yaml:"parts,omitempty"`
	Combine    *Combine          `yaml:"combine,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// Set is the content of a definition file.
type Set struct {
	Selectors []Definition `yaml:"selectors"`
}

// Load decodes definition file. Unknown fields are errors.
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	set := &Set{}
	if err := dec.Decode(set); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("definitions are empty")
		}
		return nil, fmt.Errorf("failed to decode definitions: %w", err)
	}
	for i, d := range set.Selectors {
		if (len(d.Parts) == 0) == (d.Combine == nil) {
			return nil, fmt.Errorf("definition %s: exactly one of parts or combine must be present", label(i, d.Name))
		}
	}
	return set, nil
}

// LoadBytes is Load for in-memory data.
func LoadBytes(data []byte) (*Set, error) {
	return Load(bytes.NewReader(data))
}

// Dump encodes set back to YAML.
func Dump(set *Set) ([]byte, error) {
	data, err := yaml.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal definitions: %w", err)
	}
	return data, nil
}

func label(i int, name string) string {
	if name == "" {
		return fmt.Sprintf("#%d", i+1)
	}
	return fmt.Sprintf("#%d (%s)", i+1, name)
}

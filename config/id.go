// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metawalk/core"
)

// ID is a core.NodeID that (un)marshals as a YAML scalar.
type ID struct {
	core.NodeID
}

// UnmarshalYAML maps !!int scalars to IntID and any other scalar to StrID.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: node id must be a scalar", value.Line)
	}
	if value.ShortTag() == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("line %d: node id: %w", value.Line, err)
		}
		id.NodeID = core.IntID(n)
		return nil
	}
	if value.Value == "" {
		return fmt.Errorf("line %d: empty node id", value.Line)
	}
	id.NodeID = core.StrID(value.Value)

	return nil
}

// MarshalYAML emits integers unquoted and strings as strings, so the kind
// survives a round trip.
func (id ID) MarshalYAML() (interface{}, error) {
	if n, ok := id.Int(); ok {
		return n, nil
	}
	if s, ok := id.Str(); ok && s != "" {
		return s, nil
	}

	return nil, core.ErrInvalidNodeID
}

// Edge is an undirected edge written as a two-element sequence: [a, b].
type Edge struct {
	From, To ID
}

// UnmarshalYAML decodes [a, b].
func (e *Edge) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: edge must be a two-element sequence", value.Line)
	}
	if err := e.From.UnmarshalYAML(value.Content[0]); err != nil {
		return err
	}

	return e.To.UnmarshalYAML(value.Content[1])
}

// MarshalYAML encodes [a, b] in flow style.
func (e Edge) MarshalYAML() (interface{}, error) {
	from, err := e.From.MarshalYAML()
	if err != nil {
		return nil, err
	}
	to, err := e.To.MarshalYAML()
	if err != nil {
		return nil, err
	}
	node := &yaml.Node{}
	if err = node.Encode([]interface{}{from, to}); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle

	return node, nil
}

package gen

import (
	"fmt"

	"github.com/viant/tuid/gen/members"
	"gopkg.in/yaml.v3"
)

// Manifest describes the kind enumerations to generate descriptors for.
type Manifest struct {
	Package string        `yaml:"package,omitempty"`
	Enums   []Declaration `yaml:"enums"`
}

// Declaration is the declared shape of one kind enumeration. Kind is
// "enum" when empty; declaring "struct" (or attaching Fields) describes a
// record type, which validation rejects.
type Declaration struct {
	Name    string   `yaml:"name"`
	Kind    string   `yaml:"kind,omitempty"`
	Fields  []string `yaml:"fields,omitempty"`
	Members []Member `yaml:"members,omitempty"`
}

// Member is one declared member of an enumeration. Fields holds
// associated-data declarations (rejected by validation: the identifier
// layout only supports unit-like members); Attrs holds raw attribute
// key=value pairs in declaration order, validated later.
type Member struct {
	Ident  string
	Fields []string
	Attrs  []members.Attribute
}

// Attr returns the value of the named attribute.
func (m *Member) Attr(key string) (string, bool) {
	for _, attr := range m.Attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// UnmarshalYAML accepts either the inline form
//
//	- Organization(name=org)
//
// parsed with the members grammar, or the mapping form
//
//	- ident: Organization
//	  name: org
//
// where every key other than ident/fields is collected as an attribute.
func (m *Member) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := members.Parse([]byte(node.Value))
		if err != nil {
			return fmt.Errorf("invalid member declaration %q: %w", node.Value, err)
		}
		m.Ident = parsed.Ident
		m.Attrs = parsed.Attributes
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			value := node.Content[i+1]
			switch key {
			case "ident":
				m.Ident = value.Value
			case "fields":
				if err := value.Decode(&m.Fields); err != nil {
					return fmt.Errorf("invalid fields on member %q: %w", m.Ident, err)
				}
			default:
				m.Attrs = append(m.Attrs, members.Attribute{Key: key, Value: value.Value})
			}
		}
		return nil
	}
	return fmt.Errorf("unsupported member declaration node (line %d)", node.Line)
}

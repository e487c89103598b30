package schema

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Rule names accepted in definitions.
const (
	RuleRequired         = "required"
	RuleMin              = "min"
	RuleMax              = "max"
	RuleEmail            = "email"
	RuleURL              = "url"
	RulePasswordStrength = "password-strength"
)

// Definition is the data form of a schema, as written in YAML:
//
//	name: tweet
//	fields:
//	  - name: body
//	    type: object
//	    fields:
//	      - name: text
//	        type: string
//	        rules:
//	          - rule: max
//	            value: 280
//
// Fields and rules are sequences so their order is preserved.
type Definition struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Fields      []FieldDefinition `yaml:"fields"`
}

// FieldDefinition describes one node. Type defaults to string.
type FieldDefinition struct {
	Name   string            `yaml:"name"`
	Type   Type              `yaml:"type,omitempty"`
	Rules  []RuleDefinition  `yaml:"rules,omitempty"`
	Fields []FieldDefinition `yaml:"fields,omitempty"`
}

// RuleDefinition is a named rule with its optional parameter and message.
type RuleDefinition struct {
	Rule    string `yaml:"rule"`
	Value   *int   `yaml:"value,omitempty"`
	Message string `yaml:"message,omitempty"`
}

// Parse decodes a YAML definition and builds its schema tree.
func Parse(data []byte) (Definition, *Node, error) {
	var def Definition

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, nil, errors.Wrap(err, "failed to decode schema definition")
	}
	if def.Name == "" {
		return Definition{}, nil, errors.New("schema definition has no name")
	}

	node, err := Build(def)
	if err != nil {
		return Definition{}, nil, errors.Wrapf(err, "schema %q", def.Name)
	}
	return def, node, nil
}

// MustParse is Parse for definitions compiled into the binary.
func MustParse(data []byte) (Definition, *Node) {
	def, node, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return def, node
}

// Build turns a definition into a root object node.
func Build(def Definition) (*Node, error) {
	return buildObject(def.Fields, nil)
}

func buildObject(defs []FieldDefinition, rules []RuleDefinition) (*Node, error) {
	fields := make([]Field, 0, len(defs))
	for _, fd := range defs {
		child, err := buildField(fd)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", fd.Name)
		}
		fields = append(fields, Field{Name: fd.Name, Node: child})
	}

	node, err := newObject(fields)
	if err != nil {
		return nil, err
	}

	for _, r := range rules {
		if r.Rule != RuleRequired {
			return nil, errors.Errorf("rule %q not supported on object", r.Rule)
		}
		node = node.Required(r.Message)
	}
	return node, nil
}

func buildField(fd FieldDefinition) (*Node, error) {
	typ := fd.Type
	if typ == "" {
		typ = TypeString
	}
	if !typ.Valid() {
		return nil, errors.Errorf("unknown type %q", fd.Type)
	}
	if typ != TypeObject && len(fd.Fields) > 0 {
		return nil, errors.Errorf("%s field cannot have child fields", typ)
	}

	if typ == TypeObject {
		return buildObject(fd.Fields, fd.Rules)
	}

	node := String()
	if typ == TypeNumber {
		node = Number()
	}

	for _, r := range fd.Rules {
		if r.Rule == RuleRequired {
			node = node.Required(r.Message)
			continue
		}

		c, err := constraintFor(r)
		if err != nil {
			return nil, err
		}
		if node, err = node.with(c); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func constraintFor(r RuleDefinition) (Constraint, error) {
	switch r.Rule {
	case RuleMin, RuleMax:
		if r.Value == nil {
			return nil, errors.Errorf("rule %q needs a value", r.Rule)
		}
		if *r.Value < 0 {
			return nil, errors.Errorf("rule %q value must be non-negative, got %d", r.Rule, *r.Value)
		}
		if r.Rule == RuleMin {
			return MinLength(*r.Value, r.Message), nil
		}
		return MaxLength(*r.Value, r.Message), nil

	case RuleEmail:
		return Email(r.Message), nil

	case RuleURL:
		return URL(r.Message), nil

	case RulePasswordStrength:
		minLen := DefaultPasswordMinLength
		if r.Value != nil {
			if *r.Value <= 0 {
				return nil, errors.Errorf("rule %q value must be positive, got %d", r.Rule, *r.Value)
			}
			minLen = *r.Value
		}
		return PasswordStrength(minLen, r.Message), nil
	}

	return nil, errors.Errorf("unknown rule %q", r.Rule)
}

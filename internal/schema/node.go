package schema

import (
	"fmt"
	"slices"
)

// Type is the kind of value a Node describes.
type Type string

const (
	TypeObject Type = "object"
	TypeString Type = "string"
	TypeNumber Type = "number"
)

// Valid reports whether t is one of the supported node types.
func (t Type) Valid() bool {
	switch t {
	case TypeObject, TypeString, TypeNumber:
		return true
	}
	return false
}

// Field pairs a name with the node that validates it.
type Field struct {
	Name string
	Node *Node
}

// Node is one element of a schema tree.
//
// Nodes are built with Object, String and Number and refined with the
// chaining methods below. Every chaining method returns a new Node, so a
// shared node can be extended without affecting other users of it.
//
// Misuse (a length rule on a number, a duplicate field name) is a
// programmer error and panics at construction time. Use Build when the
// schema comes from data and an error is preferable.
type Node struct {
	typ             Type
	fields          []Field
	required        bool
	requiredMessage string
	constraints     []Constraint
}

// Object creates an object node whose children are checked in the given order.
func Object(fields ...Field) *Node {
	n, err := newObject(fields)
	if err != nil {
		panic(err)
	}
	return n
}

func newObject(fields []Field) (*Node, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema: object field with empty name")
		}
		if f.Node == nil {
			return nil, fmt.Errorf("schema: field %q has no node", f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("schema: duplicate field %q", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return &Node{typ: TypeObject, fields: slices.Clone(fields)}, nil
}

// String creates a string node with no constraints.
func String() *Node {
	return &Node{typ: TypeString}
}

// Number creates a number node.
func Number() *Node {
	return &Node{typ: TypeNumber}
}

// Type returns the node type.
func (n *Node) Type() Type { return n.typ }

// Fields returns a copy of the object's children.
func (n *Node) Fields() []Field { return slices.Clone(n.fields) }

// Constraints returns a copy of the node's constraints.
func (n *Node) Constraints() []Constraint { return slices.Clone(n.constraints) }

// IsRequired reports whether absence of the value is a violation.
func (n *Node) IsRequired() bool { return n.required }

// Field looks up a direct child by name.
func (n *Node) Field(name string) (*Node, bool) {
	for _, f := range n.fields {
		if f.Name == name {
			return f.Node, true
		}
	}
	return nil, false
}

func (n *Node) clone() *Node {
	out := *n
	out.fields = slices.Clone(n.fields)
	out.constraints = slices.Clone(n.constraints)
	return &out
}

// Required marks the value as mandatory. An optional message replaces the
// default "<field> is required".
func (n *Node) Required(message ...string) *Node {
	out := n.clone()
	out.required = true
	out.requiredMessage = firstOf(message)
	return out
}

// Min adds a minimum length rule to a string node.
func (n *Node) Min(length int, message ...string) *Node {
	return n.With(MinLength(length, firstOf(message)))
}

// Max adds a maximum length rule to a string node.
func (n *Node) Max(length int, message ...string) *Node {
	return n.With(MaxLength(length, firstOf(message)))
}

// Email adds an email shape rule to a string node.
func (n *Node) Email(message ...string) *Node {
	return n.With(Email(firstOf(message)))
}

// URL adds a URL shape rule to a string node.
func (n *Node) URL(message ...string) *Node {
	return n.With(URL(firstOf(message)))
}

// PasswordStrength adds the password strength rule to a string node.
func (n *Node) PasswordStrength(minLen int, message ...string) *Node {
	return n.With(PasswordStrength(minLen, firstOf(message)))
}

// With appends an arbitrary constraint. Only string nodes carry constraints.
func (n *Node) With(c Constraint) *Node {
	out, err := n.with(c)
	if err != nil {
		panic(err)
	}
	return out
}

func (n *Node) with(c Constraint) (*Node, error) {
	if c == nil {
		return nil, fmt.Errorf("schema: nil constraint")
	}
	if n.typ != TypeString {
		return nil, fmt.Errorf("schema: constraint %q not supported on %s node", c.Name(), n.typ)
	}
	out := n.clone()
	out.constraints = append(out.constraints, c)
	return out, nil
}

func firstOf(message []string) string {
	if len(message) == 0 {
		return ""
	}
	return message[0]
}

package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// rootName is used in messages when the root node itself fails.
const rootName = "value"

// Validate checks input against the schema rooted at n.
//
// Missing keys and nil values are treated as absent. Absent optional
// values never produce errors. A required value that is absent yields one
// MissingRequiredField error and nothing else for that field. A value of
// the wrong type yields one TypeMismatch error and its remaining rules are
// skipped. Everything else is checked and every violation is collected.
//
// The input is never modified and is returned as Result.Value.
func Validate(n *Node, input any) Result {
	w := &walker{}
	w.walk(n, "", rootName, input, input != nil)
	return Result{Value: input, Errors: w.errors}
}

// Validate is a method form of the package-level Validate.
func (n *Node) Validate(input any) Result {
	return Validate(n, input)
}

type walker struct {
	errors []FieldError
}

func (w *walker) add(path string, v Violation) {
	w.errors = append(w.errors, FieldError{Path: path, Message: v.Message, Code: v.Code})
}

func (w *walker) missing(n *Node, path, name string) {
	w.add(path, Violation{
		Code:    MissingRequiredField,
		Message: pick(n.requiredMessage, name+" is required"),
	})
}

func (w *walker) walk(n *Node, path, name string, value any, present bool) {
	switch n.typ {
	case TypeObject:
		w.walkObject(n, path, name, value, present)
	case TypeString:
		w.walkString(n, path, name, value, present)
	case TypeNumber:
		w.walkNumber(n, path, name, value, present)
	}
}

func (w *walker) walkObject(n *Node, path, name string, value any, present bool) {
	if !present {
		if n.required {
			w.missing(n, path, name)
			return
		}
		// Children still see an absent value so their own required rules apply.
		for _, f := range n.fields {
			w.walk(f.Node, join(path, f.Name), f.Name, nil, false)
		}
		return
	}

	lookup, ok := objectLookup(value)
	if !ok {
		w.add(path, Violation{Code: TypeMismatch, Message: name + " must be an object"})
		return
	}

	for _, f := range n.fields {
		v, found := lookup(f.Name)
		w.walk(f.Node, join(path, f.Name), f.Name, v, found && v != nil)
	}
}

func (w *walker) walkString(n *Node, path, name string, value any, present bool) {
	if !present {
		if n.required {
			w.missing(n, path, name)
		}
		return
	}

	s, ok := value.(string)
	if !ok {
		w.add(path, Violation{Code: TypeMismatch, Message: name + " must be a string"})
		return
	}
	if s == "" && n.required {
		w.missing(n, path, name)
		return
	}

	for _, c := range n.constraints {
		if v := c.Check(name, s); v != nil {
			w.add(path, *v)
		}
	}
}

func (w *walker) walkNumber(n *Node, path, name string, value any, present bool) {
	if !present {
		if n.required {
			w.missing(n, path, name)
		}
		return
	}
	if !isNumeric(value) {
		w.add(path, Violation{Code: TypeMismatch, Message: name + " must be a number"})
	}
}

// objectLookup adapts the map shapes request data arrives in.
func objectLookup(value any) (func(string) (any, bool), bool) {
	switch m := value.(type) {
	case map[string]any:
		return func(k string) (any, bool) {
			v, ok := m[k]
			return v, ok
		}, true
	case map[string]string:
		return func(k string) (any, bool) {
			v, ok := m[k]
			return v, ok
		}, true
	}
	return nil, false
}

// isNumeric accepts finite Go numbers, json.Number and numeric strings,
// since path and query parameters always arrive as text. NaN, infinities
// and hex literals are not numbers here.
func isNumeric(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return isFinite(float64(v))
	case float64:
		return isFinite(v)
	case json.Number:
		return isNumericText(string(v))
	case string:
		return isNumericText(v)
	}
	return false
}

func isNumericText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && isFinite(f)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

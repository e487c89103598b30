// Package schemas holds the request schemas used by the API, declared as
// YAML data under definitions/ and compiled into the binary.
package schemas

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/deppfellow/reqschema/internal/schema"
)

// Names of the embedded schemas.
const (
	Test                  = "test"
	Tweet                 = "tweet"
	Signup                = "signup"
	Interaction           = "interaction"
	InteractionID         = "interaction_id"
	Token                 = "token"
	Status                = "status"
	AddMessage            = "add_message"
	SendEmailVerification = "send_email_verification"
	IsUsernameUnique      = "is_username_unique"
	IsEmailUnique         = "is_email_unique"
)

//go:embed definitions/*.yaml
var definitions embed.FS

// Registry maps schema names to built schema trees.
//
// Populate it before sharing; lookups are safe for concurrent use once
// no more definitions are being added.
type Registry struct {
	schemas      map[string]*schema.Node
	descriptions map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas:      make(map[string]*schema.Node),
		descriptions: make(map[string]string),
	}
}

// New returns a registry loaded with the embedded definitions.
func New() (*Registry, error) {
	r := NewRegistry()
	if err := r.LoadFS(definitions, "definitions"); err != nil {
		return nil, err
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry of embedded schemas. A broken
// embedded definition is a build defect, so it panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New()
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register adds a named schema. Names must be unique.
func (r *Registry) Register(name string, node *schema.Node) error {
	if name == "" {
		return errors.New("schema name is empty")
	}
	if node == nil {
		return errors.Errorf("schema %q is nil", name)
	}
	if _, exists := r.schemas[name]; exists {
		return errors.Errorf("schema %q already registered", name)
	}
	r.schemas[name] = node
	return nil
}

// LoadFS parses every *.yaml and *.yml file in dir and registers it under
// the name declared inside the file.
func (r *Registry) LoadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Wrapf(err, "failed to read schema directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch path.Ext(entry.Name()) {
		case ".yaml", ".yml":
		default:
			continue
		}

		file := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", file)
		}

		def, node, err := schema.Parse(data)
		if err != nil {
			return errors.Wrapf(err, "invalid definition %s", file)
		}
		if err := r.Register(def.Name, node); err != nil {
			return errors.Wrapf(err, "invalid definition %s", file)
		}
		r.descriptions[def.Name] = def.Description
	}
	return nil
}

// Get looks up a schema by name.
func (r *Registry) Get(name string) (*schema.Node, bool) {
	node, ok := r.schemas[name]
	return node, ok
}

// MustGet is Get for names known at compile time.
func (r *Registry) MustGet(name string) *schema.Node {
	node, ok := r.Get(name)
	if !ok {
		panic("schemas: unknown schema " + name)
	}
	return node
}

// Description returns the description declared in the definition, if any.
func (r *Registry) Description(name string) string {
	return r.descriptions[name]
}

// Names returns the registered schema names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

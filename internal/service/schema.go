package service

import (
	"github.com/deppfellow/reqschema/internal/errs"
	"github.com/deppfellow/reqschema/internal/schema"
	"github.com/deppfellow/reqschema/internal/server"
)

// SchemaInfo describes one registered schema.
type SchemaInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type SchemaService struct {
	server *server.Server
}

func NewSchemaService(s *server.Server) *SchemaService {
	return &SchemaService{server: s}
}

// List returns every registered schema ordered by name.
func (s *SchemaService) List() []SchemaInfo {
	registry := s.server.Registry
	names := registry.Names()

	infos := make([]SchemaInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, SchemaInfo{Name: name, Description: registry.Description(name)})
	}
	return infos
}

// Validate checks doc against the named schema. An unknown name is a 404.
func (s *SchemaService) Validate(name string, doc any) (schema.Result, error) {
	node, ok := s.server.Registry.Get(name)
	if !ok {
		return schema.Result{}, errs.NewNotFoundError("Schema not found", true, nil)
	}
	return schema.Validate(node, doc), nil
}

package handler

import (
	"github.com/deppfellow/reqschema/internal/server"
	"github.com/deppfellow/reqschema/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health   *HealthHandler
	Schema   *SchemaHandler
	Username *UsernameHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Schema:   NewSchemaHandler(s, services.Schemas),
		Username: NewUsernameHandler(s, services.Usernames),
	}
}

package service

import (
	"github.com/deppfellow/reqschema/internal/server"
)

// Services groups every service so the router wiring passes one value.
type Services struct {
	Schemas   *SchemaService
	Usernames *UsernameService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Schemas:   NewSchemaService(s),
		Usernames: NewUsernameService(),
	}
}

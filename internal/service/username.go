package service

import (
	"github.com/deppfellow/reqschema/internal/username"
)

type UsernameService struct {
	generate func(email string) string
}

func NewUsernameService() *UsernameService {
	return &UsernameService{generate: username.Generate}
}

// Generate derives a default username for email. Uniqueness is not checked.
func (s *UsernameService) Generate(email string) string {
	return s.generate(email)
}

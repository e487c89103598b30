package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/reqschema/internal/server"
	"github.com/deppfellow/reqschema/internal/service"
)

type UsernameResponse struct {
	Username string `json:"username"`
}

type UsernameHandler struct {
	Handler
	usernames *service.UsernameService
}

func NewUsernameHandler(s *server.Server, usernames *service.UsernameService) *UsernameHandler {
	return &UsernameHandler{
		Handler:   NewHandler(s),
		usernames: usernames,
	}
}

// Create expects input that passed the send_email_verification schema.
func (h *UsernameHandler) Create(c echo.Context, input map[string]any) (UsernameResponse, error) {
	return UsernameResponse{
		Username: h.usernames.Generate(stringField(input, "body", "email")),
	}, nil
}

package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitContact relays a public contact-form message to the support inbox.
func (s *Server) submitContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, email and message are required")
	}

	if err := s.emailSvc.SendContactMessage(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to deliver message")
	}

	return c.JSON(http.StatusAccepted, map[string]string{"message": "thanks, we'll be in touch"})
}

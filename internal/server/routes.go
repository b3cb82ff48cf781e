package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost)
	s.E.GET("/logout", s.authHandler.Logout)

	s.E.GET("/chat", s.chatHandler.ChatGet)
	s.E.POST("/chat/rooms/:id/select", s.chatHandler.SelectRoom)
	s.E.POST("/chat/messages", s.chatHandler.SendMessage)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

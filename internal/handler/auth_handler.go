package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/labstack/echo/v4"
)

// AuthHandler exposes the identity resolved by the auth middleware
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// MeResponse is the authenticated user and the workspace their records live in
type MeResponse struct {
	Auth0ID     string `json:"auth0Id"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	WorkspaceID int32  `json:"workspaceId"`
}

// Me godoc
// @Summary Current identity
// @Description The first call for a new subject provisions its workspace.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} ProblemDetails
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	workspaceID := middleware.GetWorkspaceID(c)
	if auth0ID == "" || workspaceID == 0 {
		return NewUnauthorizedError(c, "Authentication required")
	}

	response := MeResponse{Auth0ID: auth0ID, WorkspaceID: workspaceID}
	if claims := middleware.GetCustomClaims(c); claims != nil {
		response.Email = claims.Email
		response.Name = claims.Name
	}
	return c.JSON(http.StatusOK, response)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"business-catalog-api/internal/middleware"
)

// AuthHandler exposes the caller's identity and, in development, issues
// tokens
type AuthHandler struct {
	authService *middleware.AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *middleware.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenRequest asks for a token for subject
type TokenRequest struct {
	Subject string   `json:"subject" binding:"required,max=255"`
	Roles   []string `json:"roles" binding:"omitempty,dive,oneof=publisher reader"`
}

// TokenResponse carries a signed bearer token
type TokenResponse struct {
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
	Subject  string    `json:"subject"`
	Roles    []string  `json:"roles"`
}

// IdentityResponse describes the authenticated caller
type IdentityResponse struct {
	Authenticated bool     `json:"authenticated"`
	Subject       string   `json:"subject,omitempty"`
	Roles         []string `json:"roles,omitempty"`
}

// @Summary Current identity
// @Description Subject and roles of the bearer token, if any
// @Tags auth
// @Produce json
// @Success 200 {object} IdentityResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	subject := middleware.Subject(c)
	c.JSON(http.StatusOK, IdentityResponse{
		Authenticated: subject != "",
		Subject:       subject,
		Roles:         c.GetStringSlice(middleware.RolesKey),
	})
}

// IssueToken signs a token without checking credentials. It is only
// routed in development.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if h.authService == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Authentication disabled",
			Message: "set JWT_SECRET to enable tokens",
		})
		return
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if len(req.Roles) == 0 {
		req.Roles = []string{string(middleware.RolePublisher)}
	}

	token, err := h.authService.GenerateToken(req.Subject, req.Roles)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:    token,
		IssuedAt: time.Now().UTC(),
		Subject:  req.Subject,
		Roles:    req.Roles,
	})
}

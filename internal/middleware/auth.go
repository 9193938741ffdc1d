package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// Role grants access to catalog operations
type Role string

const (
	// RolePublisher may publish and delete snapshots
	RolePublisher Role = "publisher"
	// RoleReader may only read
	RoleReader Role = "reader"
)

// Context keys set by Authentication
const (
	SubjectKey = "subject"
	RolesKey   = "roles"
)

// Claims are the JWT claims accepted by the catalog API
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
	Issuer        string
}

// AuthService issues and validates bearer tokens
type AuthService struct {
	config *AuthConfig
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) *AuthService {
	if config.TokenDuration == 0 {
		config.TokenDuration = 24 * time.Hour
	}
	if config.Issuer == "" {
		config.Issuer = "business-catalog-api"
	}
	return &AuthService{config: config}
}

// GenerateToken signs a token for subject with the given roles
func (a *AuthService) GenerateToken(subject string, roles []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.config.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    a.config.Issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a token and returns its claims
func (a *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.config.JWTSecret), nil
	}, jwt.WithIssuer(a.config.Issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// Authentication requires a valid bearer token. A nil service disables the
// check, which is how the server runs when JWT_SECRET is unset.
func Authentication(authService *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortUnauthorized(c, "Invalid authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
			}).Warn("Token validation failed")
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Set(RolesKey, claims.Roles)
		c.Next()
	}
}

// RequireRole allows the request when the caller holds any of roles. It is
// a no-op when authentication is disabled.
func RequireRole(authService *AuthService, roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil || len(roles) == 0 {
			c.Next()
			return
		}

		held := c.GetStringSlice(RolesKey)
		for _, want := range roles {
			for _, have := range held {
				if have == string(want) {
					c.Next()
					return
				}
			}
		}

		logrus.WithFields(logrus.Fields{
			"subject":        c.GetString(SubjectKey),
			"roles":          held,
			"required_roles": roles,
			"path":           c.Request.URL.Path,
		}).Warn("Authorization failed - insufficient permissions")

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Error:     "Forbidden",
			Message:   "Insufficient permissions",
			RequestID: c.GetString(RequestIDKey),
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}

// Subject returns the authenticated subject, or "" when anonymous
func Subject(c *gin.Context) string {
	return c.GetString(SubjectKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="catalog"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Error:     "Unauthorized",
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

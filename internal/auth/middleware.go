package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/port"
)

const (
	userKey     = "auth.user"
	tokenCookie = "accessToken"
)

type Middleware struct {
	verifier Verifier
	users    port.UserRepository
	logger   *slog.Logger
}

func NewMiddleware(verifier Verifier, users port.UserRepository, logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &Middleware{verifier: verifier, users: users, logger: logger}
}

// RequireAuth rejects the request unless it carries a valid token of a
// user that has been synced to the database.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.Request)
		if token == "" {
			abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		identity, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := m.users.FindByIdentity(c.Request.Context(), identity)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				abort(c, http.StatusUnauthorized, "User does not exist in database. Please sync.")
				return
			}
			m.logger.ErrorContext(c.Request.Context(), "resolve user", slog.Any("error", err))
			abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin() {
			abort(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and never blocks.
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.Request)
		if token != "" {
			identity, err := m.verifier.Verify(c.Request.Context(), token)
			if err == nil {
				if user, err := m.users.FindByIdentity(c.Request.Context(), identity); err == nil {
					c.Set(userKey, user)
				}
			}
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := v.(domain.User)
	return user, ok
}

// BearerToken reads the Authorization header and falls back to the access token cookie.
func BearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	if cookie, err := r.Cookie(tokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}

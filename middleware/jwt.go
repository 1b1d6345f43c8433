package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/PiotrO9/elearning/apperrors"
	"github.com/PiotrO9/elearning/services"
)

// Locals keys set by the auth middlewares.
const (
	LocalUserID = "userId"
	LocalRole   = "userRole"
	LocalEmail  = "userEmail"
)

const accessTokenCookie = "accessToken"

// tokenFromRequest reads the access credential from the cookie or, failing
// that, a Bearer Authorization header. Empty string means no credential.
func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(accessTokenCookie); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return ""
}

func setViewer(c *fiber.Ctx, claims *services.TokenClaims) {
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalRole, claims.Role)
	c.Locals(LocalEmail, claims.Email)
}

// Protected requires a valid access credential. With sliding sessions on,
// every successful verification transparently reissues a fresh access token;
// the caller only sees the refreshed cookie and the X-Token-Refreshed header,
// never a distinct success or failure mode.
func Protected(tokens *services.TokenService, sliding bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return ErrorResponse(c, apperrors.Unauthenticated("TOKEN_REQUIRED", "Access token required"))
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			return ErrorResponse(c, err)
		}
		setViewer(c, claims)

		if sliding {
			if refreshed, err := tokens.GenerateAccessToken(claims.UserID, claims.Email, claims.Role); err == nil {
				SetAccessCookie(c, refreshed, tokens.AccessTTL())
				c.Set("X-Token-Refreshed", "true")
			}
		}
		return c.Next()
	}
}

// OptionalAuth attaches viewer identity when a credential is present. An
// absent credential means guest; a present but invalid one is rejected, so
// expired sessions are distinguishable from anonymous browsing.
func OptionalAuth(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Next()
		}
		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			return ErrorResponse(c, err)
		}
		setViewer(c, claims)
		return c.Next()
	}
}

// RequireAdmin gates a route to admin-tier roles. Must run after Protected.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return ErrorResponse(c, apperrors.Unauthenticated("TOKEN_REQUIRED", "Access token required"))
		}
		if !services.IsAdminTier(role) {
			return ErrorResponse(c, apperrors.Forbidden("INSUFFICIENT_PERMISSIONS", "You do not have permission to access this resource"))
		}
		return c.Next()
	}
}

// Viewer builds the visibility-resolver viewer from Locals; nil for guests.
func Viewer(c *fiber.Ctx) *services.Viewer {
	userID, ok := c.Locals(LocalUserID).(uint)
	if !ok {
		return nil
	}
	role, _ := c.Locals(LocalRole).(string)
	return &services.Viewer{ID: userID, Role: role}
}

// SetAccessCookie writes the short-lived credential cookie.
func SetAccessCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Strict",
	})
}

// SetRefreshCookie writes the long-lived credential cookie.
func SetRefreshCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Strict",
	})
}

// ClearAuthCookies drops both credential cookies.
func ClearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{accessTokenCookie, "refreshToken"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Strict",
		})
	}
}

package middleware

// identity.go provides the identity-extraction helper shared by the rate
// limit and cache middleware.  It prefers the email stored by JWTAuth and
// falls back to "guest" for unauthenticated requests.

import (
    "github.com/labstack/echo/v4"
)

// userKey extracts a stable identifier for the requesting user.  It returns
// the authenticated email when JWTAuth ran earlier in the chain, or "guest"
// for public routes.
func userKey(c echo.Context) string {
    if v, ok := c.Get("email").(string); ok && v != "" {
        return v
    }
    return "guest"
}

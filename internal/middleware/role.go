package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// RequireRole gates a route group to accounts whose "role" claim is in the
// allowed set (ATTENDEE, EXHIBITOR or ADMIN).  It must run after JWTAuth,
// which stores the claim under the "role" context key; a missing or
// mistyped value is treated the same as a disallowed role.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get("role").(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Health answers liveness probes.  It deliberately touches no stores: a
// venue file mid-rewrite must not flap the load balancer.
func Health(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

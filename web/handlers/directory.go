package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"factorygate.in/factorygate/web/common"
)

// Workers returns the active floor-worker roster for the punch client's
// name picker.
func (h *Handler) Workers(c *gin.Context) {
	workers, err := h.Store.GetActiveWorkers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to load workers"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(workers))
}

// Employees returns the active office roster. Passwords are included
// because the terminals verify them client-side; the deployment accepts
// this and the users asked for it.
func (h *Handler) Employees(c *gin.Context) {
	employees, err := h.Store.GetActiveEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to load employees"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(employees))
}

// Settings exposes the factory geofence configuration to the punch client
// so it can show the expected zone before a GPS fix arrives. The supervisor
// PIN never leaves the server.
func (h *Handler) Settings(c *gin.Context) {
	settings, err := h.Store.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to load settings"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"factoryLat":      jsonCoordinate(settings.FactoryLat),
		"factoryLng":      jsonCoordinate(settings.FactoryLng),
		"geofenceRadiusM": settings.GeofenceRadiusM,
		"timezone":        settings.Timezone,
	}))
}

// jsonCoordinate maps an unset (NaN) coordinate to null; encoding/json
// refuses to marshal NaN.
func jsonCoordinate(f float64) interface{} {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"factorygate.in/factorygate/web/common"
)

// Status returns the live presence table, one row per active roster member.
func (h *Handler) Status(c *gin.Context) {
	statuses, err := h.Aggregator.ComputeStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to fetch status"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(statuses))
}

// Unauthorized lists the recorded out-of-geofence attempts, newest first.
func (h *Handler) Unauthorized(c *gin.Context) {
	attempts, err := h.Store.GetUnauthorized(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to load unauthorized attempts"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(attempts))
}

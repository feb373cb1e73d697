package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"factorygate.in/factorygate/core"
	"factorygate.in/factorygate/web/common"
)

// OutsideGeofenceMessage is what the floor tablets show when a punch lands
// outside every geofence; the wording is what the workforce knows.
const OutsideGeofenceMessage = "APKA LOCATION FACTORY SE DOOR DIKHA RAHA HAI"

type PunchDTO struct {
	WorkerID string   `json:"workerId" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Action   string   `json:"action" binding:"required,oneof=LOGIN LOGOUT"`
	Kind     string   `json:"kind" binding:"omitempty,oneof=WORKER EMPLOYEE"`
	Lat      *float64 `json:"lat" binding:"required"`
	Lng      *float64 `json:"lng" binding:"required"`
	Accuracy *float64 `json:"accuracy"`
}

// PunchResponse mirrors the contract the punch clients already speak:
// success=false with warning=true means "recorded, but you look too far
// away" — the event is logged either way.
type PunchResponse struct {
	Success  bool    `json:"success"`
	Warning  bool    `json:"warning,omitempty"`
	Message  string  `json:"message"`
	Distance float64 `json:"distance"`
}

func (h *Handler) Punch(c *gin.Context) {
	var dto PunchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	result, err := h.Recorder.RecordPunch(c.Request.Context(), core.PunchRequest{
		WorkerID:  dto.WorkerID,
		Name:      dto.Name,
		Kind:      dto.Kind,
		Action:    dto.Action,
		Latitude:  *dto.Lat,
		Longitude: *dto.Lng,
		Accuracy:  dto.Accuracy,
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		var vErr *core.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(vErr.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	if !result.Authorized {
		c.JSON(http.StatusOK, PunchResponse{
			Success:  false,
			Warning:  true,
			Message:  OutsideGeofenceMessage,
			Distance: result.DistanceMeters,
		})
		return
	}

	c.JSON(http.StatusOK, PunchResponse{
		Success:  true,
		Message:  fmt.Sprintf("Marked %s for %s", dto.Action, dto.Name),
		Distance: result.DistanceMeters,
	})
}

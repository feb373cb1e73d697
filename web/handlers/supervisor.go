package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"factorygate.in/factorygate/core"
	"factorygate.in/factorygate/security"
	"factorygate.in/factorygate/web/common"
)

type SupervisorAuthDTO struct {
	Pin string `json:"pin" binding:"required"`
}

// SupervisorAuth checks the shared PIN and mints the session token that
// gates the presence report.
func (h *Handler) SupervisorAuth(c *gin.Context) {
	var dto SupervisorAuthDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	ok, err := core.CheckSupervisorPin(c.Request.Context(), h.Store, dto.Pin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid PIN"))
		return
	}

	token, err := security.CreateSupervisorToken(h.Secret, h.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"token": token}))
}

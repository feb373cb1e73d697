package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"factorygate.in/factorygate/report"
	"factorygate.in/factorygate/utils"
	"factorygate.in/factorygate/web/common"
)

// Export streams the attendance log as an XLSX workbook. An optional
// ?date=2026-08-31 narrows it to one day; without it the whole log ships.
func (h *Handler) Export(c *gin.Context) {
	dayPrefix := ""
	filename := "attendance.xlsx"
	if date := c.Query("date"); date != "" {
		day := utils.MustParseDate(date)
		if day.IsZero() {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid date, expected yyyy-mm-dd"))
			return
		}
		dayPrefix = report.DayFilter(day)
		filename = fmt.Sprintf("attendance-%s.xlsx", date)
	}

	ctx := c.Request.Context()
	events, err := h.Store.GetAllEvents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to load events"))
		return
	}
	attempts, err := h.Store.GetUnauthorized(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to load unauthorized attempts"))
		return
	}

	workbook, err := report.BuildWorkbook(events, attempts, dayPrefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Failed to build report"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/meeting-scheduler/internal/calendar"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/booking"
)

type ExportHandler struct {
	export *ucBooking.ExportCalendar
}

func NewExportHandler(export *ucBooking.ExportCalendar) *ExportHandler {
	return &ExportHandler{export: export}
}

func (h *ExportHandler) Download(c *gin.Context) {
	body, err := h.export.Execute(c.Request.Context(), middleware.RequestID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", calendar.FileName))
	c.Data(http.StatusOK, calendar.ContentType+"; charset=utf-8", []byte(body))
}

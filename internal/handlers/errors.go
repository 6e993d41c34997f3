package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
)

type errorView struct {
	Status  int
	Code    string
	Message string
}

var businessErrors = map[string]errorView{
	"missing_required_fields": {http.StatusBadRequest, "missing_required_fields", "Please fill in all required fields (*)."},
	"invalid_date":            {http.StatusBadRequest, "invalid_date", "Invalid date."},
	"invalid_time":            {http.StatusBadRequest, "invalid_time", "Invalid time slot."},
	"slot_unavailable":        {http.StatusConflict, "slot_unavailable", "Sorry, this slot is no longer available."},
	"slot_locked":             {http.StatusConflict, "slot_locked", "Someone else is booking this slot right now. Please pick another time."},
	"storage_error":           {http.StatusInternalServerError, "storage_error", "Could not access the schedule. Please try again later."},
}

// describeError maps a use case error to what the visitor sees.
// Unknown errors become a generic 500 and are logged.
func describeError(c *gin.Context, err error) errorView {
	code := httperr.Code(err)
	view, ok := businessErrors[code]

	if !ok || view.Status >= http.StatusInternalServerError {
		middleware.Logger(c).Error("request failed", zap.Error(err))
	}
	if !ok {
		return errorView{http.StatusInternalServerError, "internal_error", "Unexpected error."}
	}
	return view
}

func writeError(c *gin.Context, err error) {
	v := describeError(c, err)
	httperr.Write(c, v.Status, v.Code, v.Message)
}

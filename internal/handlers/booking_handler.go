package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/meeting-scheduler/internal/dto"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	loc          *time.Location
}

func NewBookingHandler(
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	loc *time.Location,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		create:       create,
		loc:          loc,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:mm
	View  string `json:"view"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type AvailabilityResponse struct {
	domain.Availability
	Message string `json:"message,omitempty"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Query parameter date is required.")
		return
	}

	date, err := domain.ParseDate(dateStr, h.loc)
	if err != nil {
		writeError(c, err)
		return
	}

	avail, err := h.availability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		Date: date,
		Mode: domain.ParseMode(c.Query("view")),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, AvailabilityResponse{
		Availability: avail,
		Message:      avail.Message(),
	})
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		RequestID: middleware.RequestID(c),
		Date:      req.Date,
		Time:      req.Time,
		Mode:      domain.ParseMode(req.View),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromBooking(b))
}

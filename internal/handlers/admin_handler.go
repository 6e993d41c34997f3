package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httperr"
	"github.com/BruksfildServices01/meeting-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
	"github.com/BruksfildServices01/meeting-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/booking"
)

type AdminHandler struct {
	cfg  *config.Config
	list *ucBooking.ListBookings
}

func NewAdminHandler(cfg *config.Config, list *ucBooking.ListBookings) *AdminHandler {
	return &AdminHandler{cfg: cfg, list: list}
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Password required.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid password.")
		return
	}

	token, err := middleware.IssueAdminToken(h.cfg, timezone.NowIn(h.cfg.Timezone))
	if err != nil {
		httperr.Internal(c, "token_error", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int(middleware.TokenTTL.Seconds()),
	})
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	date, err := parseOptionalDate(c.Query("date"), timezone.Location(h.cfg.Timezone))
	if err != nil {
		writeError(c, err)
		return
	}

	out, err := h.list.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

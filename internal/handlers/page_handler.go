package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/booking"
)

const (
	StepCalendar     = "calendar"
	StepForm         = "form"
	StepConfirmation = "confirmation"
)

// PageHandler renders the booking page. Everything the page needs to
// know about the visitor's progress comes from the request.
type PageHandler struct {
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	list         *ucBooking.ListBookings
	loc          *time.Location
}

func NewPageHandler(
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	list *ucBooking.ListBookings,
	loc *time.Location,
) *PageHandler {
	return &PageHandler{
		availability: availability,
		create:       create,
		list:         list,
		loc:          loc,
	}
}

type pageState struct {
	View  string
	Step  string
	Month string
	Date  string
	Time  string
}

type formValues struct {
	Name  string
	Email string
	Phone string
	Notes string
}

type pageView struct {
	Banner  string
	View    string
	Step    string
	Month   monthGrid
	HomeURL string

	Date      string
	DateLabel string
	Time      string
	Slots     []slotLink
	Warning   string

	Form  formValues
	Error string
}

func stateFrom(view, step, month, date, hm string) pageState {
	if domain.ParseMode(view) == domain.ModeFriends {
		view = string(domain.ModeFriends)
	} else {
		view = ""
	}
	return pageState{View: view, Step: step, Month: month, Date: date, Time: hm}
}

////////////////////////////////////////////////////////
// GET /
////////////////////////////////////////////////////////

func (h *PageHandler) Show(c *gin.Context) {
	st := stateFrom(c.Query("view"), c.Query("step"), c.Query("month"), c.Query("date"), c.Query("time"))
	h.render(c, http.StatusOK, st, formValues{}, "")
}

////////////////////////////////////////////////////////
// POST /book
////////////////////////////////////////////////////////

func (h *PageHandler) Book(c *gin.Context) {
	st := stateFrom(c.PostForm("view"), StepForm, c.PostForm("month"), c.PostForm("date"), c.PostForm("time"))
	form := formValues{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Phone: c.PostForm("phone"),
		Notes: c.PostForm("notes"),
	}

	_, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		RequestID: middleware.RequestID(c),
		Date:      st.Date,
		Time:      st.Time,
		Mode:      domain.ParseMode(st.View),
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Notes:     form.Notes,
	})
	if err != nil {
		v := describeError(c, err)
		h.render(c, v.Status, st, form, v.Message)
		return
	}

	c.Redirect(http.StatusSeeOther, pageQuery(st.View,
		"step", StepConfirmation,
		"date", st.Date,
		"time", st.Time,
	))
}

////////////////////////////////////////////////////////
// RENDER
////////////////////////////////////////////////////////

func (h *PageHandler) render(
	c *gin.Context,
	status int,
	st pageState,
	form formValues,
	formErr string,
) {
	ctx := c.Request.Context()
	now := nowIn(h.loc)
	mode := domain.ParseMode(st.View)

	selected, err := parseOptionalDate(st.Date, h.loc)
	if err != nil {
		selected = nil
		st.Date = ""
	}

	anchor := today(h.loc)
	if selected != nil {
		anchor = *selected
	}
	month := parseMonth(st.Month, anchor)

	monthBookings, err := h.list.Month(ctx, month)
	if err != nil {
		v := describeError(c, err)
		c.String(v.Status, v.Message)
		return
	}

	pv := pageView{
		Banner:  mode.Banner(),
		View:    st.View,
		Step:    StepCalendar,
		Month:   buildMonthGrid(month, now, selected, monthBookings, st.View),
		HomeURL: pageQuery(st.View),
		Form:    form,
		Error:   formErr,
	}

	if st.Step == StepConfirmation {
		pv.Step = StepConfirmation
		c.HTML(status, "page.html", pv)
		return
	}

	if selected == nil {
		c.HTML(status, "page.html", pv)
		return
	}

	pv.Date = selected.Format(domain.DateLayout)
	pv.DateLabel = longDate(*selected)

	avail, err := h.availability.Execute(ctx, ucBooking.AvailabilityInput{Date: *selected, Mode: mode})
	if err != nil {
		v := describeError(c, err)
		pv.Warning = v.Message
		c.HTML(v.Status, "page.html", pv)
		return
	}

	pv.Warning = avail.Message()
	for _, s := range avail.Slots {
		pv.Slots = append(pv.Slots, slotLink{
			Time: s,
			URL: pageQuery(st.View,
				"month", month.Format(monthLayout),
				"date", pv.Date,
				"time", s,
				"step", StepForm,
			),
		})
	}

	if st.Step == StepForm && st.Time != "" {
		pv.Step = StepForm
		pv.Time = st.Time
	}

	c.HTML(status, "page.html", pv)
}

package booking

import "time"

type Reason string

const (
	ReasonNone        Reason = ""
	ReasonWeekdayOnly Reason = "weekday_only"
	ReasonFullyBooked Reason = "fully_booked"
)

const (
	professionalFirstSlot = 10 * time.Hour
	professionalSlots     = 12
	slotsPerDay           = 48
)

type Availability struct {
	Date   string   `json:"date"`
	Mode   Mode     `json:"mode"`
	Slots  []string `json:"slots"`
	Reason Reason   `json:"reason,omitempty"`
}

func (a Availability) Has(hm string) bool {
	for _, s := range a.Slots {
		if s == hm {
			return true
		}
	}
	return false
}

func (a Availability) Message() string {
	switch a.Reason {
	case ReasonWeekdayOnly:
		return "Bookings are only available on weekdays for this professional link."
	case ReasonFullyBooked:
		return "Sorry, there are no available slots on this day."
	}
	return ""
}

func IsWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CandidateSlots lists the slot starts the mode offers on date, before
// any booking is taken into account. Wall times that do not exist on
// date in its location are left out.
func CandidateSlots(date time.Time, mode Mode) []string {
	if mode == ModeFriends {
		return slotRange(date, 0, slotsPerDay)
	}
	if !IsWeekday(date) {
		return []string{}
	}
	return slotRange(date, professionalFirstSlot, professionalSlots)
}

func slotRange(date time.Time, first time.Duration, n int) []string {
	y, m, d := date.Date()

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		wall := first + time.Duration(i)*SlotDuration
		hour, minute := int(wall/time.Hour), int(wall%time.Hour/time.Minute)

		t := time.Date(y, m, d, hour, minute, 0, 0, date.Location())
		if t.Hour() != hour || t.Minute() != minute {
			continue
		}
		out = append(out, t.Format(TimeLayout))
	}
	return out
}

// BookedTimes returns the start times of day of bookings on date.
func BookedTimes(date time.Time, bookings []Booking) map[string]struct{} {
	taken := make(map[string]struct{})
	for _, b := range bookings {
		start := b.Start.In(date.Location())
		if SameDate(start, date) {
			taken[start.Format(TimeLayout)] = struct{}{}
		}
	}
	return taken
}

// Compute filters the candidate slots of date against bookings.
func Compute(date time.Time, mode Mode, bookings []Booking) Availability {
	candidates := CandidateSlots(date, mode)
	taken := BookedTimes(date, bookings)

	slots := make([]string, 0, len(candidates))
	for _, s := range candidates {
		if _, ok := taken[s]; !ok {
			slots = append(slots, s)
		}
	}

	out := Availability{
		Date:  date.Format(DateLayout),
		Mode:  mode,
		Slots: slots,
	}

	if len(slots) == 0 {
		if mode == ModeProfessional && !IsWeekday(date) {
			out.Reason = ReasonWeekdayOnly
		} else {
			out.Reason = ReasonFullyBooked
		}
	}

	return out
}

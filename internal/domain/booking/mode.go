package booking

import "strings"

// Mode selects the availability ruleset for the current viewer.
type Mode string

const (
	ModeProfessional Mode = "professional"
	ModeFriends      Mode = "friends"
)

// ParseMode maps the page's "view" flag. Anything but "friends" is
// professional.
func ParseMode(view string) Mode {
	if strings.EqualFold(strings.TrimSpace(view), string(ModeFriends)) {
		return ModeFriends
	}
	return ModeProfessional
}

func (m Mode) Banner() string {
	if m == ModeFriends {
		return "Showing full 24/7 availability for friends & family."
	}
	return "Showing professional availability (Weekdays, 10 AM - 4 PM)."
}

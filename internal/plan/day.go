package plan

// Weekday is a day of the training week. Weeks are Monday-first; adjacency
// checks throughout the compiler rely on this ordering.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllWeekdays returns the days of the week in Monday-first order.
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Weekday) String() string {
	switch d {
	case Monday:
		return "monday"
	case Tuesday:
		return "tuesday"
	case Wednesday:
		return "wednesday"
	case Thursday:
		return "thursday"
	case Friday:
		return "friday"
	case Saturday:
		return "saturday"
	case Sunday:
		return "sunday"
	default:
		return "unknown"
	}
}

// Short returns the three-letter abbreviation used in rendered plans.
func (d Weekday) Short() string {
	switch d {
	case Monday:
		return "Mon"
	case Tuesday:
		return "Tue"
	case Wednesday:
		return "Wed"
	case Thursday:
		return "Thu"
	case Friday:
		return "Fri"
	case Saturday:
		return "Sat"
	case Sunday:
		return "Sun"
	default:
		return "???"
	}
}

// ParseWeekday converts a lowercase day name to a Weekday.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range AllWeekdays() {
		if d.String() == s {
			return d, true
		}
	}
	return Monday, false
}

// Adjacent reports whether two days are consecutive in Monday-first order.
// The week does not wrap: Sunday and Monday are not adjacent.
func Adjacent(a, b Weekday) bool {
	diff := int(a) - int(b)
	return diff == 1 || diff == -1
}

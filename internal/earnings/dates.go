package earnings

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateOrder decides how the slash-date fallback reads "A/B/YYYY".
type DateOrder int

const (
	DayFirst DateOrder = iota
	MonthFirst
)

func (o DateOrder) String() string {
	if o == MonthFirst {
		return "month-first"
	}
	return "day-first"
}

func ParseDateOrder(s string) (DateOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "day-first", "dmy":
		return DayFirst, nil
	case "month-first", "mdy":
		return MonthFirst, nil
	default:
		return DayFirst, fmt.Errorf("unknown date order %q", s)
	}
}

const dateLayout = "2006-01-02"

var isoDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var slashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:[ T](\d{1,2}):(\d{2}))?`)

// DateMatcher parses "Started At" values. Location is used for timestamps
// that carry no zone; nil means UTC.
type DateMatcher struct {
	Order    DateOrder
	Location *time.Location
}

func (m DateMatcher) location() *time.Location {
	if m.Location == nil {
		return time.UTC
	}
	return m.Location
}

// Parse reads s with the general-purpose parser, then with the slash-date
// fallback. Only the fallback consults Order: an ambiguous value such as
// "05/10/2026" is settled by the general parser (month first) before the
// fallback is tried, so the fallback only sees values like "14/10/2026".
func (m DateMatcher) Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// A bare ISO date is midnight UTC regardless of Location.
	if isoDateOnly.MatchString(s) {
		if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
			return t, true
		}
	}

	if t, err := dateparse.ParseIn(s, m.location()); err == nil {
		return t, true
	}

	return m.parseSlashDate(s)
}

func (m DateMatcher) parseSlashDate(s string) (time.Time, bool) {
	match := slashDate.FindStringSubmatch(s)
	if match == nil {
		return time.Time{}, false
	}

	first, _ := strconv.Atoi(match[1])
	second, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])
	hour, minute := 0, 0
	if match[4] != "" {
		hour, _ = strconv.Atoi(match[4])
		minute, _ = strconv.Atoi(match[5])
	}

	day, month := first, second
	if m.Order == MonthFirst {
		day, month = second, first
	}

	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, m.location())
	if t.Day() != day {
		// time.Date normalised an out-of-range day such as 31/11
		return time.Time{}, false
	}
	return t, true
}

// StartedOn reports whether startedAt falls on the same UTC calendar date as
// today. Unparsable values never match.
func (m DateMatcher) StartedOn(startedAt string, today time.Time) bool {
	t, ok := m.Parse(startedAt)
	if !ok {
		return false
	}
	return CalendarDate(t) == CalendarDate(today)
}

// CalendarDate formats the UTC date of t as YYYY-MM-DD.
func CalendarDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ParseCalendarDate reads a YYYY-MM-DD value as midnight UTC.
func ParseCalendarDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
}

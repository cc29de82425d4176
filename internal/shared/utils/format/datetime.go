package format

import "time"

// Display layouts. Dates arrive from the ticketing API as ISO 8601
// strings; unparseable input is returned unchanged so a malformed
// record never breaks a page render.
var (
	dateLayout     = "January 2, 2006"
	dateTimeLayout = "January 2, 2006 3:04 PM"
	cardDateLayout = "Jan 2, 2006"
)

// SetLayouts overrides the long date and date-time display layouts.
// Empty arguments keep the current layout. Call once at startup,
// alongside SetCurrency.
func SetLayouts(date, dateTime string) {
	if date != "" {
		dateLayout = date
	}
	if dateTime != "" {
		dateTimeLayout = dateTime
	}
}

// acceptedLayouts are tried in order when parsing incoming timestamps.
var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISO(value string) (time.Time, bool) {
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders an ISO timestamp as a long date, e.g. "January 1, 2025".
func Date(iso string) string {
	return formatWith(iso, dateLayout)
}

// DateTime renders an ISO timestamp with date and time.
func DateTime(iso string) string {
	return formatWith(iso, dateTimeLayout)
}

// CardDate renders the short form used on cards, e.g. "Jan 15, 2025".
func CardDate(iso string) string {
	return formatWith(iso, cardDateLayout)
}

func formatWith(iso, layout string) string {
	t, ok := parseISO(iso)
	if !ok {
		return iso
	}
	return t.Format(layout)
}

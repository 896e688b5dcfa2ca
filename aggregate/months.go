package aggregate

import "time"

// Months lists full month names in calendar order. Charts use it as the
// series and legend order regardless of where the data starts.
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthAbbrevs lists three-letter month names in calendar order.
var MonthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the full name of m.
func MonthName(m time.Month) string {
	return Months[m-1]
}

// MonthAbbrev returns the three-letter name of m.
func MonthAbbrev(m time.Month) string {
	return MonthAbbrevs[m-1]
}

// CalendarMonths returns January through December.
func CalendarMonths() []time.Month {
	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.Month(i + 1)
	}
	return months
}

package invoice

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

// FirstOfNextMonth returns midnight on the first day of the month after t.
func FirstOfNextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

// RentDescription builds the default item description for the month of due,
// e.g. "Rent for Shop 7 January 01 - January 31 2026".
func RentDescription(property string, due time.Time) string {
	month := due.Month().String()
	lastDay := time.Date(due.Year(), due.Month()+1, 0, 0, 0, 0, 0, due.Location()).Day()
	return fmt.Sprintf("Rent for %s %s 01 - %s %d %d", property, month, month, lastDay, due.Year())
}

func parseISODate(s string) (time.Time, bool) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

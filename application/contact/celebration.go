package contact

import (
	"time"

	"github.com/oleksandr-romashko/contacts-api/model"
)

// CelebrationDate maps a birthdate onto the date it is celebrated in the
// given year. Weekend birthdays move to the following Monday. A Feb 29
// birthdate in a non-leap year is observed on Feb 28 when moveFeb29ToFeb28
// is set, on Mar 1 otherwise. The function is pure and knows nothing about
// upcoming windows.
func CelebrationDate(birthdate model.Date, year int, moveFeb29ToFeb28 bool) model.Date {
	var candidate model.Date
	if birthdate.Month() == time.February && birthdate.Day() == 29 && !isLeapYear(year) {
		if moveFeb29ToFeb28 {
			candidate = model.NewDate(year, time.February, 28)
		} else {
			candidate = model.NewDate(year, time.March, 1)
		}
	} else {
		candidate = model.NewDate(year, birthdate.Month(), birthdate.Day())
	}

	switch candidate.Weekday() {
	case time.Saturday:
		return candidate.AddDays(2)
	case time.Sunday:
		return candidate.AddDays(1)
	default:
		return candidate
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

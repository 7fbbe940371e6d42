package site

import (
	"time"
)

// ParseBirthDate reads a YYYY-MM-DD date.
func ParseBirthDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}

// Age counts the birthdays that have passed by now.
func Age(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()

	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}

	return age
}

// AgeOn is Age for the profile's birth date; ok is false when none is set.
func (p Profile) AgeOn(now time.Time) (int, bool) {
	if p.BirthDate == "" {
		return 0, false
	}

	birthDate, err := ParseBirthDate(p.BirthDate)
	if err != nil {
		return 0, false
	}

	return Age(birthDate, now), true
}

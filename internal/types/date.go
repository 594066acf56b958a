// Package types implements special types for the Cashsheet backend.
package types

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// serialEpochOffset is the day offset between the 1900-epoch spreadsheet
// date system and the Unix epoch: serial 25569 is 1970-01-01.
const serialEpochOffset = 25569

var dayPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Date is a calendar date as stored on records: a "YYYY-MM-DD" string
// without a timezone. Range filtering and sorting compare Dates
// lexically, which is exact because the format is zero padded.
type Date string

// String returns the stored representation.
func (d Date) String() string {
	return string(d)
}

// Valid reports whether the Date is a well-formed "YYYY-MM-DD" string.
func (d Date) Valid() bool {
	if !dayPattern.MatchString(string(d)) {
		return false
	}

	_, err := time.Parse("2006-01-02", string(d))
	return err == nil
}

// Month returns the "YYYY-MM" prefix of the Date. Values shorter than
// seven characters are returned unchanged.
func (d Date) Month() string {
	if len(d) < 7 {
		return string(d)
	}

	return string(d)[:7]
}

// FromSerial converts a 1900-epoch spreadsheet date serial to a Date.
func FromSerial(serial float64) Date {
	days := int64(math.Floor(serial - serialEpochOffset))
	t := time.Unix(days*86400, 0).UTC()
	return Date(t.Format("2006-01-02"))
}

// ParseSerial interprets s as a spreadsheet date serial. The second
// return value is false when s is not numeric, in which case the value
// is not a serial and must be passed through unchanged.
func ParseSerial(s string) (Date, bool) {
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", false
	}

	return FromSerial(serial), true
}

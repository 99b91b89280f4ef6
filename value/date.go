package value

import (
	"github.com/pkg/errors"
)

const (
	MinDateYear = 1900
	MaxDateYear = 9999
)

var maxDayInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a calendar date packed as year*10000 + month*100 + day.
// The zero Date is not valid; values are only obtained through MakeDate or a conversion.
type Date struct {
	packed int32
}

func MakeDate(year, month, day int) (Date, error) {
	if !isValidDate(year, month, day) {
		return Date{}, errors.Wrapf(ErrTypeMismatch, "invalid date %d-%d-%d", year, month, day)
	}
	return Date{packed: int32(year*10000 + month*100 + day)}, nil
}

func dateFromPacked(packed int32) (Date, bool) {
	year, month, day := int(packed/10000), int(packed/100%100), int(packed%100)
	if !isValidDate(year, month, day) {
		return Date{}, false
	}
	return Date{packed: packed}, true
}

func (d Date) Year() int     { return int(d.packed / 10000) }
func (d Date) Month() int    { return int(d.packed / 100 % 100) }
func (d Date) Day() int      { return int(d.packed % 100) }
func (d Date) Packed() int32 { return d.packed }

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func isValidDate(year, month, day int) bool {
	if year < MinDateYear || year > MaxDateYear {
		return false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	if day > maxDayInMonth[month-1] {
		return false
	}
	if month == 2 && day > 28 && !isLeapYear(year) {
		return false
	}
	return true
}

// parseDate accepts exactly DDDD-DD-DD.
func parseDate(s []byte) (Date, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return Date{}, false
		}
	}
	year := digits(s[0:4])
	month := digits(s[5:7])
	day := digits(s[8:10])

	date, err := MakeDate(year, month, day)
	if err != nil {
		return Date{}, false
	}
	return date, true
}

func digits(s []byte) int {
	out := 0
	for _, c := range s {
		out = out*10 + int(c-'0')
	}
	return out
}

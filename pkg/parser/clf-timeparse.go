package parser

import (
	"fmt"
	"time"
)

// Fast, hand-written date format parser for common log format (CLF)
// %d/%b/%Y:%H:%M:%S %z, for example, "10/Oct/2000:13:55:36 -0700"
//
// Unlike time.Parse it allocates nothing, but it is just as strict: any
// deviation from the layout is an error.

const CommonLogFormat = "02/Jan/2006:15:04:05 -0700"

var clfMonthMap = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March, "Apr": time.April,
	"May": time.May, "Jun": time.June, "Jul": time.July, "Aug": time.August,
	"Sep": time.September, "Oct": time.October, "Nov": time.November, "Dec": time.December,
}

func atoiDigits(s []byte) (int, bool) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func clfDateParse(s []byte) (time.Time, error) {
	if len(s) != len(CommonLogFormat) ||
		s[2] != '/' || s[6] != '/' || s[11] != ':' || s[14] != ':' || s[17] != ':' || s[20] != ' ' {
		return time.Time{}, fmt.Errorf("unexpected time format %q", s)
	}
	month, ok := clfMonthMap[string(s[3:6])]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month in %q", s)
	}

	var sign int
	switch s[21] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return time.Time{}, fmt.Errorf("bad zone offset in %q", s)
	}

	var v [7]int
	for i, r := range [7][2]int{{0, 2}, {7, 11}, {12, 14}, {15, 17}, {18, 20}, {22, 24}, {24, 26}} {
		if v[i], ok = atoiDigits(s[r[0]:r[1]]); !ok {
			return time.Time{}, fmt.Errorf("non-numeric field in %q", s)
		}
	}
	day, year, hour, minute, second, tzHour, tzMinute := v[0], v[1], v[2], v[3], v[4], v[5], v[6]
	if hour > 23 || minute > 59 || second > 59 || tzHour > 23 || tzMinute > 59 {
		return time.Time{}, fmt.Errorf("field out of range in %q", s)
	}

	offset := sign * (tzHour*60*60 + tzMinute*60)
	t := time.Date(year, month, day, hour, minute, second, 0, time.FixedZone("", offset))
	// time.Date normalizes 31/Feb into March; reject instead.
	if t.Day() != day || t.Month() != month {
		return time.Time{}, fmt.Errorf("invalid date in %q", s)
	}
	return t, nil
}

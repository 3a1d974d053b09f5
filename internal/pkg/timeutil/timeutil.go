package timeutil

import "time"

const DateLayout = "2006-01-02"

func NowUnix() int64 {
	return time.Now().Unix()
}

// ParseDate parses a calendar date and returns it at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

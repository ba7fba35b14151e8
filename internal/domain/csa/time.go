package csa

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Time is a calendar date with an optional time of day, used by
// $START_TIME and $END_TIME.
type Time struct {
	Date civil.Date
	Time *civil.Time
}

// Now returns the current UTC date and time of day.
func Now() Time {
	now := time.Now().UTC()
	clock := civil.TimeOf(now)
	return Time{Date: civil.DateOf(now), Time: &clock}
}

// String renders "YYYY/MM/DD[ H:MM:SS]". The hour is left unpadded so that
// existing CSA consumers see the same bytes as before.
func (t Time) String() string {
	return t.Format(false)
}

// Format renders t, zero-padding the hour to two digits when padHour is set.
func (t Time) Format(padHour bool) string {
	s := fmt.Sprintf("%d/%02d/%02d", t.Date.Year, int(t.Date.Month), t.Date.Day)
	if t.Time == nil {
		return s
	}
	if padHour {
		return s + fmt.Sprintf(" %02d:%02d:%02d", t.Time.Hour, t.Time.Minute, t.Time.Second)
	}
	return s + fmt.Sprintf(" %d:%02d:%02d", t.Time.Hour, t.Time.Minute, t.Time.Second)
}

// TimeLimit is the main thinking time plus byoyomi.
type TimeLimit struct {
	MainTime time.Duration
	Byoyomi  time.Duration
}

// String renders "HH:MM+SS". Seconds of MainTime below a full minute are
// dropped, and the byoyomi seconds are not wrapped past 99.
func (tl TimeLimit) String() string {
	secs := int64(tl.MainTime / time.Second)
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	return fmt.Sprintf("%02d:%02d+%02d", hours, minutes, int64(tl.Byoyomi/time.Second))
}

package model

import "time"

// OtpRecord is the single live passcode for an email. It only ever lives in
// memory.
type OtpRecord struct {
	Code      string
	Email     string
	ExpiresAt time.Time
}

func (r OtpRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

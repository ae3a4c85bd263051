package entity

import "time"

type Member struct {
	ID              int64
	Mobile          string
	Email           string
	Name            string
	PhotoURL        string
	ProfileComplete bool
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OtpChallenge is a short-lived verification code bound to an identifier.
//
// The validity window is fixed at issue time; re-delivering the code never
// extends it.
type OtpChallenge struct {
	Identifier string
	Code       string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// ---- //

type NewMember struct {
	ID              int64
	Mobile          string
	Email           string
	Name            string
	ProfileComplete bool
}

type UpdateProfile struct {
	ID              int64
	Name            string
	Email           string
	ProfileComplete bool
}

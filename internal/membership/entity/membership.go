package entity

import "time"

type Membership struct {
	ID               int64
	MemberID         int64
	MembershipNumber string
	Status           Status
	JoinedDate       time.Time
	ValidTill        *time.Time
	TermsAccepted    bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MembershipMember is a membership joined with its owning member.
type MembershipMember struct {
	Membership
	MemberName   string
	MemberEmail  string
	MemberMobile string
}

// MemberRow is one line of the administrative member directory.
type MemberRow struct {
	MemberID         int64
	Name             string
	Mobile           string
	Email            string
	MemberCreatedAt  time.Time
	MembershipID     *int64
	MembershipNumber string
	Status           Status
	ValidTill        *time.Time
}

// DashboardStats is recomputed per query, never persisted.
type DashboardStats struct {
	TotalMembers int64
	Active       int64
	Pending      int64
	Inactive     int64
	Rejected     int64
	ExpiringSoon int64
}

// ---- //

type NewMembership struct {
	ID               int64
	MemberID         int64
	MembershipNumber string
	Status           Status
	JoinedDate       time.Time
	ValidTill        *time.Time
	TermsAccepted    bool
}

// TransitionMembership writes status and validTill in a single conditional
// update guarded by the old status.
type TransitionMembership struct {
	ID        int64
	OldStatus Status
	NewStatus Status
	ValidTill *time.Time
}

type AcceptTermsMembership struct {
	ID               int64
	MemberID         int64
	MembershipNumber string
	JoinedDate       time.Time
	ValidTill        time.Time
}

type NewEnrollment struct {
	MemberID         int64
	MemberName       string
	MemberMobile     string
	MembershipID     int64
	MembershipNumber string
	JoinedDate       time.Time
}

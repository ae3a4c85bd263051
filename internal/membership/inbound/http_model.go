package inbound

import "time"

type AcceptTermsRequest struct {
	Accepted bool `json:"accepted"`
}

type AcceptTermsResponse struct {
	MembershipNumber string    `json:"membership_number"`
	Status           string    `json:"status"`
	ValidTill        time.Time `json:"valid_till"`
}

func (AcceptTermsResponse) Message() string {
	return "Membership activated."
}

type DetailResponse struct {
	MembershipID     int64      `json:"membership_id,string"`
	MembershipNumber string     `json:"membership_number"`
	Status           string     `json:"status"`
	JoinedDate       time.Time  `json:"joined_date"`
	ValidTill        *time.Time `json:"valid_till,omitempty"`
	TermsAccepted    bool       `json:"terms_accepted"`
}

type TransitionRequest struct {
	Action string `json:"action"`
}

type TransitionResponse struct {
	MembershipID int64      `json:"membership_id,string"`
	Status       string     `json:"status"`
	ValidTill    *time.Time `json:"valid_till,omitempty"`
}

type DashboardResponse struct {
	TotalMembers int64 `json:"total_members"`
	Active       int64 `json:"active"`
	Pending      int64 `json:"pending"`
	Inactive     int64 `json:"inactive"`
	Rejected     int64 `json:"rejected"`
	ExpiringSoon int64 `json:"expiring_soon"`
}

type MemberListItem struct {
	MemberID         int64      `json:"member_id,string"`
	Name             string     `json:"name"`
	Mobile           string     `json:"mobile"`
	Email            string     `json:"email,omitempty"`
	JoinedAt         time.Time  `json:"joined_at"`
	MembershipID     *int64     `json:"membership_id,omitempty"`
	MembershipNumber string     `json:"membership_number,omitempty"`
	Status           string     `json:"status,omitempty"`
	ValidTill        *time.Time `json:"valid_till,omitempty"`
}

type MemberListResponse struct {
	Members []MemberListItem `json:"members"`
}

type EnrollRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type EnrollResponse struct {
	MemberID         int64  `json:"member_id,string"`
	MembershipID     int64  `json:"membership_id,string"`
	MembershipNumber string `json:"membership_number"`
	Status           string `json:"status"`
}

func (EnrollResponse) Message() string {
	return "Member enrolled. Membership is pending approval."
}

package inbound

import "time"

type OtpRequestRequest struct {
	Mobile string `json:"mobile"`
}

type OtpRequestResponse struct {
	Status string `json:"status"`
}

func (OtpRequestResponse) Message() string {
	return "A verification code has been sent to your mobile number."
}

type OtpVerifyRequest struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

type OtpVerifyResponse struct{}

func (OtpVerifyResponse) Message() string {
	return "Verification successful."
}

type RegisterRequest struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type RegisterResponse struct {
	AccessToken string `json:"access_token"`
}

func (RegisterResponse) Message() string {
	return "Registration successful. Welcome aboard."
}

type LoginRequest struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

type LoginResponse struct {
	AccessToken     string `json:"access_token"`
	Name            string `json:"name"`
	ProfileComplete bool   `json:"profile_complete"`
}

type ProfileResponse struct {
	ID              int64      `json:"id,string"`
	Mobile          string     `json:"mobile"`
	Email           string     `json:"email,omitempty"`
	Name            string     `json:"name"`
	PhotoURL        string     `json:"photo_url,omitempty"`
	ProfileComplete bool       `json:"profile_complete"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
}

type ProfileUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

package inbound

import (
	"context"

	"github.com/rkarmani/memberd/internal/identity/usecase"
	"github.com/rkarmani/memberd/internal/pkg/router"
)

type uc interface {
	OtpRequest(ctx context.Context, in usecase.OtpRequestInput) (*usecase.OtpRequestOutput, error)
	OtpVerify(ctx context.Context, in usecase.OtpVerifyInput) error

	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	Profile(ctx context.Context, in usecase.ProfileInput) (*usecase.ProfileOutput, error)
	ProfileUpdate(ctx context.Context, in usecase.ProfileUpdateInput) error
	ProfileUpdatePhoto(ctx context.Context, in usecase.ProfileUpdatePhotoInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// OTP & Authentication
	r.POST("/api/v1/identity/otp/request", end.OtpRequest)
	r.POST("/api/v1/identity/otp/verify", end.OtpVerify)
	//
	r.POST("/api/v1/identity/register", end.Register)
	r.POST("/api/v1/identity/login", end.Login)

	// Member Profile (need authenticated)
	r.GET("/api/v1/identity/profile", end.Profile)
	r.PUT("/api/v1/identity/profile", end.ProfileUpdate)
	r.PUT("/api/v1/identity/profile/photo", end.ProfileUpdatePhoto)
}

package inbound

import (
	"context"

	"github.com/rkarmani/memberd/internal/membership/usecase"
	"github.com/rkarmani/memberd/internal/pkg/router"
)

type uc interface {
	AcceptTerms(ctx context.Context, in usecase.AcceptTermsInput) (*usecase.AcceptTermsOutput, error)
	Detail(ctx context.Context, in usecase.DetailInput) (*usecase.DetailOutput, error)

	Transition(ctx context.Context, in usecase.TransitionInput) (*usecase.TransitionOutput, error)
	Dashboard(ctx context.Context, in usecase.DashboardInput) (*usecase.DashboardOutput, error)
	MemberList(ctx context.Context, in usecase.MemberListInput) (*usecase.MemberListOutput, error)
	Enroll(ctx context.Context, in usecase.EnrollInput) (*usecase.EnrollOutput, error)
	Remove(ctx context.Context, in usecase.RemoveInput) error
	RemoveMember(ctx context.Context, in usecase.RemoveMemberInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Member Self-Service (need authenticated)
	r.POST("/api/v1/membership/accept-terms", end.AcceptTerms)
	r.GET("/api/v1/membership/me", end.Detail)

	// Administration (need authenticated & authorization)
	r.POST("/api/v1/membership/memberships/:id/transition", end.Transition)
	r.GET("/api/v1/membership/dashboard", end.Dashboard)
	r.GET("/api/v1/membership/members", end.MemberList)
	r.POST("/api/v1/membership/members", end.Enroll)
	r.DELETE("/api/v1/membership/memberships/:id", end.Remove)
	r.DELETE("/api/v1/membership/members/:id", end.RemoveMember)
}

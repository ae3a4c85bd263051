package inbound

import (
	"context"
	"testing"

	"github.com/rkarmani/memberd/internal/membership/usecase"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/router"
	"github.com/rkarmani/memberd/internal/pkg/uid"
)

type stubUsecase struct{}

func (stubUsecase) AcceptTerms(context.Context, usecase.AcceptTermsInput) (*usecase.AcceptTermsOutput, error) {
	return nil, nil
}

func (stubUsecase) Detail(context.Context, usecase.DetailInput) (*usecase.DetailOutput, error) {
	return nil, nil
}

func (stubUsecase) Transition(context.Context, usecase.TransitionInput) (*usecase.TransitionOutput, error) {
	return nil, nil
}

func (stubUsecase) Dashboard(context.Context, usecase.DashboardInput) (*usecase.DashboardOutput, error) {
	return nil, nil
}

func (stubUsecase) MemberList(context.Context, usecase.MemberListInput) (*usecase.MemberListOutput, error) {
	return nil, nil
}

func (stubUsecase) Enroll(context.Context, usecase.EnrollInput) (*usecase.EnrollOutput, error) {
	return nil, nil
}

func (stubUsecase) Remove(context.Context, usecase.RemoveInput) error { return nil }

func (stubUsecase) RemoveMember(context.Context, usecase.RemoveMemberInput) error { return nil }

// httprouter rejects a wildcard segment with static siblings at registration
// time, so mounting the full route table must not panic.
func TestRegisterHTTPEndpoint(t *testing.T) {
	// Arrange
	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  name: test\n"))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	ro := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Instrument: instrument.NewNoop(),
	})

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("route registration panicked: %v", r)
		}
	}()

	// Act
	RegisterHTTPEndpoint(ro, stubUsecase{})
}

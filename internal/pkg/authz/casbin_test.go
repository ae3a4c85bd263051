package authz

import (
	"context"
	"testing"
)

func TestCasbinAuthorize(t *testing.T) {
	az, err := NewCasbin([]string{"admin@example.com", ""})
	if err != nil {
		t.Fatalf("failed to build authorizer: %v", err)
	}

	cases := []struct {
		name    string
		subject string
		obj     string
		act     string
		want    bool
	}{
		{"AdminManagesMembership", "admin@example.com", "membership", "manage", true},
		{"AdminReadsMember", "admin@example.com", "member", "read", true},
		{"MemberDenied", "member@example.com", "membership", "manage", false},
		{"EmptySubjectDenied", "", "membership", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := az.Authorize(context.Background(), tc.subject, tc.obj, tc.act)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

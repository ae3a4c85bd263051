package entity

import "testing"

func TestNextStatus(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		act     Action
		want    Status
		allowed bool
	}{
		{"ApprovePending", StatusPending, ActionApprove, StatusActive, true},
		{"RejectPending", StatusPending, ActionReject, StatusRejected, true},
		{"DeactivateActive", StatusActive, ActionDeactivate, StatusInactive, true},
		{"ExtendActive", StatusActive, ActionExtend, StatusActive, true},
		{"ReactivateInactive", StatusInactive, ActionReactivate, StatusActive, true},
		{"ApproveRejected", StatusRejected, ActionApprove, StatusActive, true},
		{"ExtendPending", StatusPending, ActionExtend, StatusUnknown, false},
		{"ApproveActive", StatusActive, ActionApprove, StatusUnknown, false},
		{"RejectInactive", StatusInactive, ActionReject, StatusUnknown, false},
		{"DeactivateRejected", StatusRejected, ActionDeactivate, StatusUnknown, false},
		{"UnknownAction", StatusPending, ActionUnknown, StatusUnknown, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NextStatus(tc.from, tc.act)
			if ok != tc.allowed {
				t.Fatalf("expected allowed=%v, got %v", tc.allowed, ok)
			}
			if tc.allowed && got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestActionFromString(t *testing.T) {
	for _, act := range []Action{ActionApprove, ActionReject, ActionDeactivate, ActionExtend, ActionReactivate} {
		if got := ActionFromString(act.String()); got != act {
			t.Fatalf("expected %s to round-trip, got %s", act, got)
		}
	}

	if got := ActionFromString("promote"); got != ActionUnknown {
		t.Fatalf("expected unknown action, got %s", got)
	}
	if got := ActionFromString("Approve"); got != ActionUnknown {
		t.Fatalf("expected case-sensitive parse, got %s", got)
	}
}

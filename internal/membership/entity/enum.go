package entity

type Status int16

const (
	// StatusUnknown is mean status is not known / not set.
	StatusUnknown Status = 0

	// StatusPending mean the membership awaits an administrative decision.
	StatusPending Status = 1

	// StatusActive mean the membership is current; ValidTill is always set.
	StatusActive Status = 2

	// StatusInactive mean the membership was deactivated; ValidTill is cleared.
	StatusInactive Status = 3

	// StatusRejected mean the application was turned down; ValidTill is cleared.
	StatusRejected Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusActive:
		return "ACTIVE"
	case StatusInactive:
		return "INACTIVE"
	case StatusRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) IsUnknown() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive, StatusRejected:
		return false
	default:
		return true
	}
}

type Action int16

const (
	ActionUnknown    Action = 0
	ActionApprove    Action = 1
	ActionReject     Action = 2
	ActionDeactivate Action = 3
	ActionExtend     Action = 4
	ActionReactivate Action = 5
)

// ActionFromString parses a raw action name. Anything outside the closed set
// maps to ActionUnknown and must be rejected at the boundary.
func ActionFromString(str string) Action {
	switch str {
	case "approve":
		return ActionApprove
	case "reject":
		return ActionReject
	case "deactivate":
		return ActionDeactivate
	case "extend":
		return ActionExtend
	case "reactivate":
		return ActionReactivate
	default:
		return ActionUnknown
	}
}

func (a Action) String() string {
	switch a {
	case ActionApprove:
		return "approve"
	case ActionReject:
		return "reject"
	case ActionDeactivate:
		return "deactivate"
	case ActionExtend:
		return "extend"
	case ActionReactivate:
		return "reactivate"
	default:
		return "unknown"
	}
}

//nolint:gochecknoglobals // closed transition table, effectively const
var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionApprove: StatusActive,
		ActionReject:  StatusRejected,
	},
	StatusActive: {
		ActionDeactivate: StatusInactive,
		ActionExtend:     StatusActive,
	},
	StatusInactive: {
		ActionReactivate: StatusActive,
	},
	StatusRejected: {
		ActionApprove: StatusActive,
	},
}

// NextStatus resolves the transition table for a (status, action) pair. The
// second return value is false for every pair the table does not list.
func NextStatus(from Status, act Action) (Status, bool) {
	to, ok := transitions[from][act]
	return to, ok
}

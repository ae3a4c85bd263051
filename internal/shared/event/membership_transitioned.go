package event

const MembershipTransitionedDestination string = "membership_transitioned"
const MembershipTransitionedDestinationConsumerNotification string = "membership_transitioned_notification"

type MembershipTransitionedMessage struct {
	MembershipID int64  `json:"membership_id"`
	MemberID     int64  `json:"member_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Action       string `json:"action"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	ValidTill    string `json:"valid_till,omitempty"`
}

package event

const MemberRegisteredDestination string = "member_registered"
const MemberRegisteredDestinationConsumerNotification string = "member_registered_notification"

type MemberRegisteredMessage struct {
	MemberID int64  `json:"member_id"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

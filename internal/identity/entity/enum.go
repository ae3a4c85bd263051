package entity

type OtpRequestStatus int16

const (
	// OtpRequestStatusUnknown is mean status is not known / not set.
	OtpRequestStatusUnknown OtpRequestStatus = 0

	// OtpRequestStatusIssued mean a fresh code was generated and delivered.
	OtpRequestStatusIssued OtpRequestStatus = 1

	// OtpRequestStatusResent mean the live code was delivered again without
	// resetting its validity window.
	OtpRequestStatusResent OtpRequestStatus = 2
)

func (rs OtpRequestStatus) String() string {
	switch rs {
	case OtpRequestStatusIssued:
		return "ISSUED"
	case OtpRequestStatusResent:
		return "RESENT"
	default:
		return "UNKNOWN"
	}
}

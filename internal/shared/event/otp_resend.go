package event

const OTPResendDestination string = "otp_resend"
const OTPResendDestinationConsumerNotification string = "otp_resend_notification"

type OTPResendMessage struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	OTPCode   string `json:"otp_code"`
	ExpiresAt int64  `json:"expires_at"`
}

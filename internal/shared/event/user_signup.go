package event

const UserSignupDestination string = "user_signup"
const UserSignupDestinationConsumerNotification string = "user_signup_notification"

type UserSignupMessage struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	OTPCode   string `json:"otp_code"`
	ExpiresAt int64  `json:"expires_at"`
}

package entity

type EnrollmentStatus int16

const (
	EnrollmentStatusUnknown EnrollmentStatus = 0

	// EnrollmentStatusEnrolled mean the seeker holds a spot in the event.
	EnrollmentStatusEnrolled EnrollmentStatus = 1

	// EnrollmentStatusCanceled mean the seeker gave the spot back.
	EnrollmentStatusCanceled EnrollmentStatus = 2
)

func (es EnrollmentStatus) String() string {
	switch es {
	case EnrollmentStatusEnrolled:
		return "enrolled"
	case EnrollmentStatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

type EventOrder string

const (
	EventOrderStartsAt  EventOrder = "starts_at"
	EventOrderCreatedAt EventOrder = "created_at"
	EventOrderTitle     EventOrder = "title"
)

func EventOrderFromString(str string) EventOrder {
	switch str {
	case "created_at":
		return EventOrderCreatedAt
	case "title":
		return EventOrderTitle
	default:
		return EventOrderStartsAt
	}
}

package entity

import "errors"

var (
	ErrUserStatusUnknown    = errors.New("identity: user status is unknown")
	ErrUserStatusUnverified = errors.New("identity: user status is unverified")
)

type UserStatus int16

const (
	// UserStatusUnknown is mean status is not known / not set.
	UserStatusUnknown UserStatus = 0

	// UserStatusUnverified mean user exists but has not confirmed the email OTP.
	UserStatusUnverified UserStatus = 1

	// UserStatusActive mean user is verified and allowed to use the app.
	UserStatusActive UserStatus = 2

	// UserStatusInactive mean user is not currently active (e.g., deactivated, closed).
	UserStatusInactive UserStatus = 3
)

func (us UserStatus) String() string {
	switch us {
	case UserStatusActive:
		return "Active"
	case UserStatusInactive:
		return "Inactive"
	case UserStatusUnverified:
		return "Unverified"
	default:
		return "Unknown"
	}
}

func (us UserStatus) IsUnknown() bool {
	switch us {
	case UserStatusUnverified, UserStatusActive, UserStatusInactive:
		return false
	default:
		return true
	}
}

func (us UserStatus) Ensure() UserStatus {
	if us.IsUnknown() {
		return UserStatusUnknown
	}
	return us
}

type Role int16

const (
	RoleUnknown Role = 0

	// RoleSeeker browses and enrolls in events.
	RoleSeeker Role = 1

	// RoleFacilitator creates and manages events.
	RoleFacilitator Role = 2
)

func RoleFromString(str string) Role {
	switch str {
	case "seeker":
		return RoleSeeker
	case "facilitator":
		return RoleFacilitator
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleSeeker:
		return "seeker"
	case RoleFacilitator:
		return "facilitator"
	default:
		return "unknown"
	}
}

func (r Role) IsUnknown() bool {
	switch r {
	case RoleSeeker, RoleFacilitator:
		return false
	default:
		return true
	}
}

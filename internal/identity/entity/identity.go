package entity

import "time"

type User struct {
	ID        int64
	Email     string
	FullName  string
	Status    UserStatus
	UpdatedAt time.Time
}

type UserCredential struct {
	UserID    int64
	Password  string // hashed
	UpdatedAt time.Time
}

type Profile struct {
	ID         int64
	UserID     int64
	Role       Role
	IsVerified bool
	Bio        string
}

type RefreshToken struct {
	ID                int64
	UserID            int64
	Token             string // hashed
	ExpiresAt         time.Time
	Revoked           bool
	ReplacedByTokenID int64
}

// ---- //

type NewAccount struct {
	UserID    int64
	ProfileID int64
	Email     string
	FullName  string
	Password  string // hashed
	Role      Role
	Status    UserStatus
}

type UserCredentialInfo struct {
	ID       int64
	Email    string
	FullName string
	Status   UserStatus
	Role     Role
	Password string
}

type UserProfileInfo struct {
	ID         int64
	Email      string
	FullName   string
	Status     UserStatus
	Role       Role
	IsVerified bool
	Bio        string
}

type ActivateUser struct {
	UserID    int64
	OTPID     int64
	OldStatus UserStatus
	NewStatus UserStatus
}

type CreateRefreshToken struct {
	ID        int64
	UserID    int64
	Token     string // hashed
	ExpiresAt time.Time
}

type RotateRefreshToken struct {
	NewID        int64
	OldID        int64
	UserID       int64
	NewToken     string // hashed
	NewExpiresAt time.Time
}

type UserRefreshToken struct {
	UserID           int64
	UserEmail        string
	UserStatus       UserStatus
	Role             Role
	RefreshID        int64
	RefreshRevoked   bool
	RefreshExpiresAt time.Time
}

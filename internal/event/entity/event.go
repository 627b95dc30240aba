package entity

import (
	"errors"
	"time"
)

var (
	ErrEventStarted    = errors.New("event: event already started")
	ErrEventFull       = errors.New("event: event is full")
	ErrAlreadyEnrolled = errors.New("event: seeker already enrolled")
)

type Event struct {
	ID          int64
	Title       string
	Description string
	Language    string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time

	// Capacity is nil for unlimited events.
	Capacity  *int32
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventWithStats pairs an event with its active enrollment count, from which
// remaining spots are derived.
type EventWithStats struct {
	Event
	EnrolledCount int64
}

// AvailableSpots returns the remaining capacity, or nil when unlimited.
func (e EventWithStats) AvailableSpots() *int64 {
	if e.Capacity == nil {
		return nil
	}

	left := int64(*e.Capacity) - e.EnrolledCount
	if left < 0 {
		left = 0
	}
	return &left
}

// IsFull reports whether every spot is taken. Unlimited events are never full.
func (e EventWithStats) IsFull() bool {
	return e.Capacity != nil && e.EnrolledCount >= int64(*e.Capacity)
}

type Enrollment struct {
	ID        int64
	EventID   int64
	SeekerID  int64
	Status    EnrollmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ---- //

type CreateEvent struct {
	ID          int64
	Title       string
	Description string
	Language    string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    *int32
	CreatedBy   int64
}

type PatchEvent struct {
	ID          int64
	CreatedBy   int64
	Title       string
	Description string
	Language    string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Capacity    *int32
}

type EventListFilter struct {
	Search   string
	Location string
	Language string
	After    time.Time
	OrderBy  EventOrder
	Page     int32
	Size     int32
}

type NewEnrollment struct {
	ID       int64
	EventID  int64
	SeekerID int64
	Now      time.Time
}

type EnrolledSeeker struct {
	EnrollmentID int64
	SeekerID     int64
	FullName     string
	Email        string
	EnrolledAt   time.Time
}

type SeekerEnrollment struct {
	EnrollmentID  int64
	EventID       int64
	EventTitle    string
	EventLocation string
	EventStartsAt time.Time
	EventEndsAt   time.Time
	EnrolledAt    time.Time
}

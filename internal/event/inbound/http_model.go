package inbound

import (
	"net/http"
	"time"
)

type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    *int32    `json:"capacity"`
}

type EventResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    *int32    `json:"capacity"`
	Available   *int64    `json:"available_spots"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int64           `json:"total"`
	Page   int32           `json:"page"`
	Size   int32           `json:"size"`
}

type EventCreateResponse struct {
	EventID int64 `json:"event_id"`
}

func (EventCreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (EventCreateResponse) Message() string {
	return "Event created successfully."
}

type EventUpdateResponse struct{}

func (EventUpdateResponse) Message() string {
	return "Event updated successfully."
}

type EnrolledSeekerResponse struct {
	EnrollmentID int64     `json:"enrollment_id"`
	SeekerID     int64     `json:"seeker_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}

type EventEnrollmentsResponse struct {
	EventID     int64                    `json:"event_id"`
	Enrollments []EnrolledSeekerResponse `json:"enrollments"`
}

type EnrollResponse struct {
	EnrollmentID int64 `json:"enrollment_id"`
	EventID      int64 `json:"event_id"`
}

func (EnrollResponse) StatusCode() int {
	return http.StatusCreated
}

func (EnrollResponse) Message() string {
	return "Enrolled successfully."
}

type EnrollmentResponse struct {
	EnrollmentID  int64     `json:"enrollment_id"`
	EventID       int64     `json:"event_id"`
	EventTitle    string    `json:"event_title"`
	EventLocation string    `json:"event_location"`
	EventStartsAt time.Time `json:"event_starts_at"`
	EventEndsAt   time.Time `json:"event_ends_at"`
	EnrolledAt    time.Time `json:"enrolled_at"`
}

type MyEnrollmentsResponse struct {
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

package inbound

import (
	"context"

	"github.com/rakasatria/eventum/internal/event/usecase"
	"github.com/rakasatria/eventum/internal/pkg/router"
)

type uc interface {
	EventList(ctx context.Context, in usecase.EventListInput) (*usecase.EventListOutput, error)
	EventDetail(ctx context.Context, in usecase.EventDetailInput) (*usecase.EventData, error)
	EventCreate(ctx context.Context, in usecase.EventCreateInput) (*usecase.EventCreateOutput, error)
	EventUpdate(ctx context.Context, in usecase.EventUpdateInput) error
	EventDelete(ctx context.Context, in usecase.EventDeleteInput) error
	MyEvents(ctx context.Context) (*usecase.MyEventsOutput, error)
	EventEnrollments(ctx context.Context, in usecase.EventEnrollmentsInput) (*usecase.EventEnrollmentsOutput, error)

	Enroll(ctx context.Context, in usecase.EnrollInput) (*usecase.EnrollOutput, error)
	CancelEnrollment(ctx context.Context, in usecase.CancelEnrollmentInput) error
	MyEnrollments(ctx context.Context, in usecase.MyEnrollmentsInput) (*usecase.MyEnrollmentsOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Browsing (public)
	r.GET("/api/v1/events", end.EventList)
	r.GET("/api/v1/events/:id", end.EventDetail)

	// Event management (need facilitator)
	r.POST("/api/v1/events", end.EventCreate)
	r.PUT("/api/v1/events/:id", end.EventUpdate)
	r.DELETE("/api/v1/events/:id", end.EventDelete)
	r.GET("/api/v1/me/events", end.MyEvents)
	r.GET("/api/v1/events/:id/enrollments", end.EventEnrollments)

	// Enrollment (need seeker)
	r.POST("/api/v1/events/:id/enroll", end.Enroll)
	r.DELETE("/api/v1/enrollments/:id", end.CancelEnrollment)
	r.GET("/api/v1/me/enrollments", end.MyEnrollments)
}

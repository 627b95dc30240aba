package inbound

import (
	"github.com/rakasatria/eventum/internal/event/usecase"
	"github.com/rakasatria/eventum/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for event browsing, management and
// enrollment.
type HTTPEndpoint struct {
	uc uc
}

func toEventResponse(ev usecase.EventData) EventResponse {
	return EventResponse{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Language:    ev.Language,
		Location:    ev.Location,
		StartsAt:    ev.StartsAt,
		EndsAt:      ev.EndsAt,
		Capacity:    ev.Capacity,
		Available:   ev.Available,
		CreatedBy:   ev.CreatedBy,
		CreatedAt:   ev.CreatedAt,
	}
}

func (h *HTTPEndpoint) EventList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	size, err := r.GetQueryInt32("page_size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.EventList(r.Context(), usecase.EventListInput{
		Search:   r.GetQuery("search"),
		Location: r.GetQuery("location"),
		Language: r.GetQuery("language"),
		OrderBy:  r.GetQuery("order_by"),
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return nil, err
	}

	return EventListResponse{
		Events: lo.Map(resp.Events, func(ev usecase.EventData, _ int) EventResponse {
			return toEventResponse(ev)
		}),
		Total: resp.Total,
		Page:  resp.Page,
		Size:  resp.Size,
	}, nil
}

func (h *HTTPEndpoint) EventDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.EventDetail(r.Context(), usecase.EventDetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return toEventResponse(*resp), nil
}

func (h *HTTPEndpoint) EventCreate(r *router.Request) (any, error) {
	var req EventRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.EventCreate(r.Context(), usecase.EventCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Capacity:    req.Capacity,
	})
	if err != nil {
		return nil, err
	}

	return EventCreateResponse{EventID: resp.EventID}, nil
}

func (h *HTTPEndpoint) EventUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req EventRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.EventUpdate(r.Context(), usecase.EventUpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Capacity:    req.Capacity,
	}); err != nil {
		return nil, err
	}

	return EventUpdateResponse{}, nil
}

func (h *HTTPEndpoint) EventDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.EventDelete(r.Context(), usecase.EventDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *HTTPEndpoint) MyEvents(r *router.Request) (any, error) {
	resp, err := h.uc.MyEvents(r.Context())
	if err != nil {
		return nil, err
	}

	return EventListResponse{
		Events: lo.Map(resp.Events, func(ev usecase.EventData, _ int) EventResponse {
			return toEventResponse(ev)
		}),
		Total: int64(len(resp.Events)),
		Page:  1,
		Size:  int32(len(resp.Events)),
	}, nil
}

func (h *HTTPEndpoint) EventEnrollments(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.EventEnrollments(r.Context(), usecase.EventEnrollmentsInput{EventID: id})
	if err != nil {
		return nil, err
	}

	return EventEnrollmentsResponse{
		EventID: resp.EventID,
		Enrollments: lo.Map(resp.Enrollments, func(en usecase.EnrolledSeekerData, _ int) EnrolledSeekerResponse {
			return EnrolledSeekerResponse(en)
		}),
	}, nil
}

func (h *HTTPEndpoint) Enroll(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Enroll(r.Context(), usecase.EnrollInput{EventID: id})
	if err != nil {
		return nil, err
	}

	return EnrollResponse{
		EnrollmentID: resp.EnrollmentID,
		EventID:      resp.EventID,
	}, nil
}

func (h *HTTPEndpoint) CancelEnrollment(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.CancelEnrollment(r.Context(), usecase.CancelEnrollmentInput{EnrollmentID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *HTTPEndpoint) MyEnrollments(r *router.Request) (any, error) {
	resp, err := h.uc.MyEnrollments(r.Context(), usecase.MyEnrollmentsInput{When: r.GetQuery("when")})
	if err != nil {
		return nil, err
	}

	return MyEnrollmentsResponse{
		Enrollments: lo.Map(resp.Enrollments, func(en usecase.EnrollmentData, _ int) EnrollmentResponse {
			return EnrollmentResponse(en)
		}),
	}, nil
}

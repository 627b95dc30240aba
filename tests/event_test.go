package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

type eventData struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Capacity  *int32 `json:"capacity"`
	Available *int64 `json:"available_spots"`
}

func createEvent(t *testing.T, token string, capacity int32) int64 {
	t.Helper()

	payload := map[string]any{
		"title":     fmt.Sprintf("Real Event %d", time.Now().UnixNano()),
		"language":  "en",
		"location":  "Jakarta",
		"starts_at": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"ends_at":   time.Now().Add(50 * time.Hour).UTC().Format(time.RFC3339),
		"capacity":  capacity,
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/events", payload, token)
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("create event failed: status=%d message=%q", status, errEnv.Message)
	}

	var data struct {
		EventID int64 `json:"event_id"`
	}
	decodeSuccess(t, body, &data)

	return data.EventID
}

func TestEventBrowsingIsPublic(t *testing.T) {
	facToken, _ := verifiedToken(t, "real-browse-fac", "facilitator")
	id := createEvent(t, facToken, 10)

	// List without any token.
	status, body := doJSON(t, http.MethodGet, "/api/v1/events?page_size=5", nil, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("list status = %d message=%q", status, errEnv.Message)
	}

	// Detail without any token.
	status, body = doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/events/%d", id), nil, "")
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("detail status = %d message=%q", status, errEnv.Message)
	}

	var ev eventData
	decodeSuccess(t, body, &ev)
	if ev.ID != id {
		t.Errorf("detail id = %d, want %d", ev.ID, id)
	}
	if ev.Available == nil || *ev.Available != 10 {
		t.Errorf("available = %v, want 10", ev.Available)
	}
}

func TestSeekerCannotCreateEvents(t *testing.T) {
	seekerToken, _ := verifiedToken(t, "real-seeker-create", "seeker")

	payload := map[string]any{
		"title":     "Forbidden Event",
		"language":  "en",
		"location":  "Jakarta",
		"starts_at": time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
		"ends_at":   time.Now().Add(50 * time.Hour).UTC().Format(time.RFC3339),
	}

	status, _ := doJSON(t, http.MethodPost, "/api/v1/events", payload, seekerToken)
	if status != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", status)
	}
}

func TestEnrollmentFlow(t *testing.T) {
	facToken, _ := verifiedToken(t, "real-enroll-fac", "facilitator")
	seekerToken, _ := verifiedToken(t, "real-enroll-seeker", "seeker")

	id := createEvent(t, facToken, 2)

	// Enroll.
	status, body := doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/events/%d/enroll", id), nil, seekerToken)
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("enroll status = %d message=%q", status, errEnv.Message)
	}

	var enr struct {
		EnrollmentID int64 `json:"enrollment_id"`
	}
	decodeSuccess(t, body, &enr)

	// A second enroll conflicts.
	status, _ = doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/events/%d/enroll", id), nil, seekerToken)
	if status != http.StatusConflict {
		t.Fatalf("duplicate enroll status = %d, want 409", status)
	}

	// The facilitator sees the attendee.
	status, body = doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/events/%d/enrollments", id), nil, facToken)
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("enrollments status = %d message=%q", status, errEnv.Message)
	}

	// The seeker sees it under their own enrollments.
	status, body = doJSON(t, http.MethodGet, "/api/v1/me/enrollments?when=upcoming", nil, seekerToken)
	if status != http.StatusOK {
		errEnv := decodeError(t, body)
		t.Fatalf("my enrollments status = %d message=%q", status, errEnv.Message)
	}

	// Cancel frees the spot.
	status, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("/api/v1/enrollments/%d", enr.EnrollmentID), nil, seekerToken)
	if status != http.StatusNoContent {
		t.Fatalf("cancel status = %d, want 204", status)
	}

	// Enrolling again reuses the freed spot.
	status, _ = doJSON(t, http.MethodPost, fmt.Sprintf("/api/v1/events/%d/enroll", id), nil, seekerToken)
	if status != http.StatusCreated {
		t.Fatalf("re-enroll status = %d, want 201", status)
	}
}

func TestEventOwnershipMasking(t *testing.T) {
	ownerToken, _ := verifiedToken(t, "real-owner", "facilitator")
	otherToken, _ := verifiedToken(t, "real-other", "facilitator")

	id := createEvent(t, ownerToken, 5)

	// Another facilitator cannot see the attendee list.
	status, _ := doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/events/%d/enrollments", id), nil, otherToken)
	if status != http.StatusNotFound {
		t.Fatalf("foreign enrollments status = %d, want 404", status)
	}

	// Nor delete the event.
	status, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("/api/v1/events/%d", id), nil, otherToken)
	if status != http.StatusNotFound {
		t.Fatalf("foreign delete status = %d, want 404", status)
	}
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
	"github.com/heartmarshall/meetroom-backend/internal/service/meeting"
)

//go:generate moq -out meeting_service_mock_test.go -pkg rest . meetingService

type meetingService interface {
	CreateMeeting(ctx context.Context, input meeting.CreateMeetingInput) (*domain.Meeting, error)
	AddParticipant(ctx context.Context, input meeting.AddParticipantInput) (*domain.Participant, error)
	DeleteMeeting(ctx context.Context, meetingID uuid.UUID) error
	DeleteParticipant(ctx context.Context, participantID uuid.UUID) error
	RespondToMeeting(ctx context.Context, input meeting.RespondInput) (*domain.Participant, error)
	GetMeeting(ctx context.Context, meetingID uuid.UUID) (*meeting.Details, error)
	ListMeetings(ctx context.Context, input meeting.ListMeetingsInput) ([]*domain.Meeting, error)
}

// MeetingHandler serves meeting and participant endpoints.
type MeetingHandler struct {
	svc meetingService
	log *slog.Logger
}

// NewMeetingHandler creates a MeetingHandler.
func NewMeetingHandler(svc meetingService, logger *slog.Logger) *MeetingHandler {
	return &MeetingHandler{svc: svc, log: logger.With("handler", "meeting")}
}

type createMeetingRequest struct {
	RoomID         string    `json:"roomId" validate:"required,uuid"`
	StartTime      time.Time `json:"startTime" validate:"required"`
	EndTime        time.Time `json:"endTime" validate:"required"`
	ParticipantIDs []string  `json:"participantIds" validate:"dive,uuid"`
}

type addParticipantRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

type respondRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

// List handles GET /meetings?roomId=&from=&to=&limit=.
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListMeetings(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	meetings, err := h.svc.ListMeetings(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(meetings, func(m *domain.Meeting, _ int) meetingResponse { return toMeetingResponse(m) }))
}

func parseListMeetings(r *http.Request) (meeting.ListMeetingsInput, error) {
	var (
		input meeting.ListMeetingsInput
		errs  []domain.FieldError
	)
	q := r.URL.Query()

	if v := q.Get("roomId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "roomId", Message: "invalid identifier"})
		} else {
			input.RoomID = &id
		}
	}
	for _, f := range []struct {
		name string
		dst  **time.Time
	}{{"from", &input.From}, {"to", &input.To}} {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must be RFC3339"})
			continue
		}
		*f.dst = &t
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a number"})
		} else {
			input.Limit = n
		}
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// Create handles POST /meetings.
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMeetingRequest
	if err := decode(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		respondError(h.log, w, r, domain.NewValidationError("roomId", "invalid identifier"))
		return
	}
	participantIDs, err := parseIDs("participantIds", req.ParticipantIDs)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	m, err := h.svc.CreateMeeting(r.Context(), meeting.CreateMeetingInput{
		RoomID:         roomID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ParticipantIDs: participantIDs,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMeetingResponse(m))
}

// Get handles GET /meetings/{id}.
func (h *MeetingHandler) Get(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	details, err := h.svc.GetMeeting(r.Context(), meetingID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeetingDetailsResponse(details))
}

// Delete handles DELETE /meetings/{id}.
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteMeeting(r.Context(), meetingID); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddParticipant handles POST /meetings/{id}/participants.
func (h *MeetingHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req addParticipantRequest
	if err := decode(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respondError(h.log, w, r, domain.NewValidationError("userId", "invalid identifier"))
		return
	}

	p, err := h.svc.AddParticipant(r.Context(), meeting.AddParticipantInput{
		MeetingID: meetingID,
		UserID:    userID,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toParticipantResponse(*p))
}

// Respond handles POST /meetings/{id}/response.
func (h *MeetingHandler) Respond(w http.ResponseWriter, r *http.Request) {
	meetingID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req respondRequest
	if err := decode(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	p, err := h.svc.RespondToMeeting(r.Context(), meeting.RespondInput{
		MeetingID: meetingID,
		Accept:    *req.Accept,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipantResponse(*p))
}

// DeleteParticipant handles DELETE /participants/{id}.
func (h *MeetingHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteParticipant(r.Context(), participantID); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

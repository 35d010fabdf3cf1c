package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
	"github.com/heartmarshall/meetroom-backend/internal/service/room"
)

//go:generate moq -out room_service_mock_test.go -pkg rest . roomService

type roomService interface {
	CreateRoom(ctx context.Context, input room.CreateRoomInput) (*domain.Room, error)
	UpdateRoom(ctx context.Context, input room.UpdateRoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, roomID uuid.UUID) error
	GetRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// RoomHandler serves room endpoints.
type RoomHandler struct {
	svc roomService
	log *slog.Logger
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(svc roomService, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{svc: svc, log: logger.With("handler", "room")}
}

type createRoomRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateRoomRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// List handles GET /rooms.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.ListRooms(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(rooms, func(rm domain.Room, _ int) roomResponse { return toRoomResponse(rm) }))
}

// Create handles POST /rooms.
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := decode(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	rm, err := h.svc.CreateRoom(r.Context(), room.CreateRoomInput{Name: req.Name})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRoomResponse(*rm))
}

// Get handles GET /rooms/{id}.
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	rm, err := h.svc.GetRoom(r.Context(), roomID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomResponse(*rm))
}

// Update handles PATCH /rooms/{id}. Setting active to false cancels the
// room's meetings.
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var req updateRoomRequest
	if err := decode(w, r, &req); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	rm, err := h.svc.UpdateRoom(r.Context(), room.UpdateRoomInput{
		RoomID: roomID,
		Name:   req.Name,
		Active: req.Active,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRoomResponse(*rm))
}

// Delete handles DELETE /rooms/{id}.
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID, err := pathID(r)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteRoom(r.Context(), roomID); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/meetroom-backend/internal/domain"
	"github.com/heartmarshall/meetroom-backend/internal/service/meeting"
)

type userResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		CompanyID: u.CompanyID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

type companyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type roomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toRoomResponse(r domain.Room) roomResponse {
	return roomResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type participantResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Accept   *bool  `json:"accept"`
	Response string `json:"response"`
	// User is filled on the meeting detail view only.
	User *userSummary `json:"user,omitempty"`
}

type userSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toParticipantResponse(p domain.Participant) participantResponse {
	return participantResponse{
		ID:       p.ID.String(),
		UserID:   p.UserID.String(),
		Accept:   p.Accept,
		Response: p.Response().String(),
	}
}

type meetingResponse struct {
	ID           string                `json:"id"`
	RoomID       string                `json:"roomId"`
	CreatorID    string                `json:"creatorId"`
	StartTime    time.Time             `json:"startTime"`
	EndTime      time.Time             `json:"endTime"`
	CreatedAt    time.Time             `json:"createdAt"`
	Participants []participantResponse `json:"participants"`
}

func toMeetingResponse(m *domain.Meeting) meetingResponse {
	return meetingResponse{
		ID:           m.ID.String(),
		RoomID:       m.RoomID.String(),
		CreatorID:    m.CreatorID.String(),
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		CreatedAt:    m.CreatedAt,
		Participants: lo.Map(m.Participants(), func(p domain.Participant, _ int) participantResponse { return toParticipantResponse(p) }),
	}
}

type meetingDetailsResponse struct {
	meetingResponse
	Room    roomResponse `json:"room"`
	Creator userResponse `json:"creator"`
}

func toMeetingDetailsResponse(d *meeting.Details) meetingDetailsResponse {
	resp := meetingDetailsResponse{
		meetingResponse: toMeetingResponse(d.Meeting),
		Room:            toRoomResponse(*d.Room),
		Creator:         toUserResponse(*d.Creator),
	}
	for i, p := range d.Meeting.Participants() {
		if u, ok := d.Users[p.UserID]; ok {
			resp.Participants[i].User = &userSummary{Name: u.Name, Email: u.Email}
		}
	}
	return resp
}

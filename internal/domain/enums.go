package domain

// UserRole represents the authorization level of a user inside a company.
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleMember:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ParticipantResponse is the tri-state acceptance of a meeting invitation.
type ParticipantResponse string

const (
	ParticipantResponsePending  ParticipantResponse = "PENDING"
	ParticipantResponseAccepted ParticipantResponse = "ACCEPTED"
	ParticipantResponseDeclined ParticipantResponse = "DECLINED"
)

func (r ParticipantResponse) String() string { return string(r) }

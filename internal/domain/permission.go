package domain

// CanManageMeeting reports whether actor may add participants to or delete m.
// Deactivated users manage nothing.
func CanManageMeeting(actor *User, m *Meeting) bool {
	if actor == nil || !actor.Active || m == nil || actor.CompanyID != m.CompanyID {
		return false
	}
	return actor.IsAdmin() || actor.ID == m.CreatorID
}

// CanRemoveParticipant reports whether actor may remove participant p.
// Admins may remove anyone; everybody else only themselves.
func CanRemoveParticipant(actor *User, p Participant) bool {
	if actor == nil || !actor.Active || actor.CompanyID != p.CompanyID {
		return false
	}
	return actor.IsAdmin() || actor.ID == p.UserID
}

// CanManageCompany reports whether actor may manage rooms and users.
func CanManageCompany(actor *User) bool {
	return actor != nil && actor.Active && actor.IsAdmin()
}

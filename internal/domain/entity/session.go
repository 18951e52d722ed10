package entity

// Session identifies the authenticated caller of a usecase operation. It is
// built by the auth middleware from verified token claims and passed
// explicitly into every call that reads or writes owned records; no layer
// consults ambient login state.
type Session struct {
	UserID int
	Email  string
	Role   string
}

// IsAdmin reports whether the session may use admin-scoped operations
// (list all users, list all records, aggregate reports).
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

package domain

// Session binds a live bearer token to a user snapshot. The email is
// denormalized so protected routes can display identity without a second
// store lookup. The user reference is weak: deleting the user record does
// not invalidate an outstanding session.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

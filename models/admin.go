package models

// Admin is an operator record held in the `admin` collection. It is distinct
// from end-user accounts; its email+password pair grants access to the
// console.
type Admin struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// AdminSession is the record persisted by the session repository after a
// successful credential lookup. The password is never part of a session.
type AdminSession struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session derives the persistable session record from an admin document.
func (a Admin) Session() AdminSession {
	return AdminSession{ID: a.ID, Email: a.Email, Name: a.Name}
}

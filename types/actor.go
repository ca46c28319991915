package types

// Actor is the authenticated user attached to a request by the session
// middleware and passed explicitly into every workflow operation.
type Actor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

func (a Actor) IsPrivileged() bool {
	return a.Role == "admin" || a.Role == "manager"
}

package models

// User is the stored account record.
// Password holds whatever the active password checker produced: the verbatim
// string in mock mode, a bcrypt hash otherwise. It never leaves the server.
type User struct {
	ID       string `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

package identity

// User represents a registered account holder.
type User struct {
	ID           string
	Username     string
	Phone        string
	Email        string
	PasswordHash []byte
}

// Credentials carries the fields supplied on registration and login.
type Credentials struct {
	Username string
	Phone    string
	Email    string
	Password string
}

// Profile is the projection of a User exposed over the API. The password hash
// is never part of it.
type Profile struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Profile returns the API projection of the user.
func (u User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email, Phone: u.Phone}
}

package identity

import "time"

// Account is one entry in the demo credential list. Passwords are
// plaintext placeholders; nothing real is ever verified here.
type Account struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	PatientID string `json:"patient_id,omitempty"`
}

// UserMetadata mirrors the loose metadata bag the imitated client
// attaches to its user object.
type UserMetadata struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	PatientID string `json:"patient_id,omitempty"`
}

type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

// Session is the active sign-in state handed back to callers.
type Session struct {
	User         User      `json:"user"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// SignInResult is the tagged outcome of a sign-in attempt. Failure is
// carried in Error, never as a Go error; the demo auth layer does not
// fail, it answers.
type SignInResult struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
	Error   string   `json:"error,omitempty"`
}

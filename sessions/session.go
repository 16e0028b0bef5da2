package sessions

import "time"

// Identity holds the claims decoded from the provider's ID token.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Subject string `json:"sub"`
}

// Session is the per-browser state tracked across the authorization
// code flow. It is created on /login, updated by /callback and cleared
// by /logout.
type Session struct {
	// OAuthState is the anti-forgery state minted by /login. It is
	// single-use: /callback compares it once and clears it.
	OAuthState string

	// Tokens (refresh is optional, some providers never send one)
	AccessToken  string
	RefreshToken string

	// User is set after a successful callback with a decodable ID
	// token. nil means authenticated-but-anonymous or logged out.
	User *Identity

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LoggedIn reports whether the session carries an access token.
func (s Session) LoggedIn() bool {
	return s.AccessToken != ""
}

type Repo interface {
	Upsert(sessionID string, session Session) error
	Get(sessionID string) (Session, error)
	Delete(sessionID string) error
}

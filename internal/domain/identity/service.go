package identity

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/onkoai/oncodemo/internal/platform/auth"
	"github.com/onkoai/oncodemo/pkg/localstore"
)

// Keys persisted to the local store alongside the session itself.
const (
	keySession   = "session"
	keyUserRole  = "user-role"
	keyUserName  = "user-name"
	keyUserEmail = "user-email"
)

const signInFailedMessage = "invalid email or password"

// Manager holds at most one active session and mirrors it into the
// local store so a restarted process comes back signed in.
type Manager struct {
	mu      sync.Mutex
	session *Session

	store  *localstore.Store
	secret string
	strict bool
	ttl    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

func NewManager(store *localstore.Store, secret string, strict bool, ttl time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  store,
		secret: secret,
		strict: strict,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// SignIn authenticates against the demo account list. In strict mode a
// mismatch reports a failure result; in permissive mode any credentials
// succeed and the user is fabricated with a role inferred from the
// email. Failure never comes back as a Go error.
func (m *Manager) SignIn(email, password string) SignInResult {
	account, ok := findAccount(email, password)
	if !ok {
		if m.strict {
			m.logger.Info().Str("email", email).Msg("sign-in rejected")
			return SignInResult{Error: signInFailedMessage}
		}
		account = Account{
			ID:    "demo-user",
			Email: email,
			Name:  "Доктор Демо",
			Role:  inferRole(email),
		}
		if account.Email == "" {
			account.Email = "demo@onkoai.com"
		}
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	token, err := auth.MintToken(m.secret, account.ID, account.Email, account.Name, account.Role, account.PatientID, expiresAt)
	if err != nil {
		// Cannot happen with a fixed HMAC secret, but the contract is
		// a result, not an error.
		m.logger.Error().Err(err).Msg("mint access token")
		return SignInResult{Error: signInFailedMessage}
	}

	session := &Session{
		User: User{
			ID:    account.ID,
			Email: account.Email,
			UserMetadata: UserMetadata{
				Name:      account.Name,
				Role:      account.Role,
				PatientID: account.PatientID,
			},
		},
		AccessToken:  token,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    expiresAt,
	}

	m.mu.Lock()
	m.session = session
	m.mu.Unlock()
	m.persist(session)

	m.logger.Info().Str("email", account.Email).Str("role", account.Role).Msg("sign-in succeeded")
	return SignInResult{User: &session.User, Session: session}
}

// SignOut clears the in-memory session and every persisted key. It is
// idempotent and always succeeds, signed in or not.
func (m *Manager) SignOut() {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
	m.store.Remove(keySession, keyUserRole, keyUserName, keyUserEmail)
	m.logger.Info().Msg("signed out")
}

// GetSession returns the active session, rehydrating from the local
// store when the in-memory copy is gone. Missing, corrupt or expired
// state reads as nil, never as an error.
func (m *Manager) GetSession() *Session {
	m.mu.Lock()
	session := m.session
	m.mu.Unlock()

	if session == nil {
		session = m.rehydrate()
	}
	if session == nil {
		return nil
	}
	if m.now().After(session.ExpiresAt) {
		m.SignOut()
		return nil
	}
	return session
}

// GetCurrentUser returns the signed-in user or nil.
func (m *Manager) GetCurrentUser() *User {
	session := m.GetSession()
	if session == nil {
		return nil
	}
	return &session.User
}

func (m *Manager) persist(session *Session) {
	raw, err := json.Marshal(session)
	if err != nil {
		m.logger.Error().Err(err).Msg("persist session")
		return
	}
	m.store.Set(keySession, string(raw))
	m.store.Set(keyUserRole, session.User.UserMetadata.Role)
	m.store.Set(keyUserName, session.User.UserMetadata.Name)
	m.store.Set(keyUserEmail, session.User.Email)
}

func (m *Manager) rehydrate() *Session {
	raw, ok := m.store.Get(keySession)
	if !ok {
		return nil
	}
	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		m.logger.Warn().Err(err).Msg("discarding corrupt persisted session")
		m.store.Remove(keySession, keyUserRole, keyUserName, keyUserEmail)
		return nil
	}

	m.mu.Lock()
	m.session = &session
	m.mu.Unlock()
	return &session
}

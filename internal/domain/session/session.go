package session

import (
	"time"

	"legal-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLoginFailed = errs.NewKind(errs.KindUpstreamFailure, "Errore durante l'autenticazione con Google")

type User struct {
	ID      string
	Name    string
	Email   string
	Picture string
}

// Session is either anonymous or authenticated as exactly one user.
// Every login gets a fresh id, so tokens from an earlier login never match.
type Session struct {
	id    string
	user  *User
	since time.Time
}

func NewAnonymous() *Session {
	return &Session{}
}

func Reconstruct(id string, user *User, since time.Time) *Session {
	s := &Session{id: id, since: since}
	if user != nil {
		u := *user
		s.user = &u
	}
	return s
}

// Login replaces any current identity and returns the new session id.
func (s *Session) Login(u User, now time.Time) string {
	s.id = uuid.NewString()
	s.user = &u
	s.since = now
	return s.id
}

func (s *Session) Logout() {
	s.id = ""
	s.user = nil
	s.since = time.Time{}
}

func (s *Session) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Session) ID() string            { return s.id }
func (s *Session) IsAuthenticated() bool { return s.user != nil }
func (s *Session) Since() time.Time      { return s.since }

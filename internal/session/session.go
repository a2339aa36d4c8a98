// Package session keeps the signed-in sessions of the dashboard. A session is
// created at login and destroyed at logout; tokens handed to clients only
// reference it by id.
package session

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"chokokon/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrBadCredentials     = errors.New("invalid credentials")
	ErrNoSession          = errors.New("session not found or expired")
)

type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Credentials is an optional fixed username/bcrypt-hash pair. When
// PasswordHash is empty any non-empty username/password pair is accepted.
type Credentials struct {
	Username     string
	PasswordHash string
}

type Manager struct {
	mu       sync.Mutex
	secret   []byte
	ttl      time.Duration
	creds    Credentials
	now      func() time.Time
	sessions map[string]Session
}

// NewManager builds a manager. An empty secret gets a random per-process key,
// which invalidates tokens across restarts.
func NewManager(secret string, ttl time.Duration, creds Credentials) *Manager {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(err)
		}
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		secret:   key,
		ttl:      ttl,
		creds:    creds,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
}

// Login checks the pair and opens a session, returning it with its token.
func (m *Manager) Login(username, password string) (Session, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, "", ErrMissingCredentials
	}
	if m.creds.PasswordHash != "" {
		if username != m.creds.Username || !utils.CheckPasswordHash(password, m.creds.PasswordHash) {
			return Session{}, "", ErrBadCredentials
		}
	}

	now := m.now()
	s := Session{
		ID:        uuid.NewString(),
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}
	token, err := utils.GenerateToken(m.secret, s.ID, s.Username, s.IssuedAt, s.ExpiresAt)
	if err != nil {
		return Session{}, "", err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, token, nil
}

// Resolve maps a token back to its live session.
func (m *Manager) Resolve(token string) (Session, error) {
	claims, err := utils.ValidateToken(m.secret, token)
	if err != nil {
		return Session{}, ErrNoSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[claims.ID]
	if !ok {
		return Session{}, ErrNoSession
	}
	if !m.now().Before(s.ExpiresAt) {
		delete(m.sessions, s.ID)
		return Session{}, ErrNoSession
	}
	return s, nil
}

// Logout destroys the session. Unknown ids are ignored.
func (m *Manager) Logout(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Active counts sessions that have not expired.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	n := 0
	for _, s := range m.sessions {
		if now.Before(s.ExpiresAt) {
			n++
		}
	}
	return n
}

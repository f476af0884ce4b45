package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/giftflow-app/backend/internal/models"
)

// ErrEmailTaken is returned by CreateUser when the email is already a key in
// the user table.
var ErrEmailTaken = errors.New("email already in use")

// Store holds all application state in process memory. Nothing survives a
// restart; that is the point of the mock. A single mutex guards the tables
// because the HTTP server handles requests concurrently, but each method is
// one critical section and there is no cross-call transactionality.
type Store struct {
	mu           sync.Mutex
	usersByEmail map[string]models.User
	tokenEmail   map[string]string
	tokenOrder   []string
	events       []models.Event
}

// New returns an empty store.
func New() *Store {
	return &Store{
		usersByEmail: make(map[string]models.User),
		tokenEmail:   make(map[string]string),
	}
}

// NewSeeded returns a store preloaded with the demo fixture the frontend
// expects: one user and one event, no token (login mints one on demand).
func NewSeeded() *Store {
	s := New()
	s.usersByEmail["demo@giftflow.app"] = models.User{
		ID:       "u_demo_1",
		Name:     "Demo User",
		Email:    "demo@giftflow.app",
		Password: "demo123",
	}
	budget := 40.0
	message := "Welcome to our annual swap!"
	s.events = append(s.events, models.Event{
		ID:               "evt_1",
		Name:             "Holiday Gift Swap",
		Date:             "2025-12-15",
		Budget:           &budget,
		Participants:     []string{"Alice", "Bob", "Charlie"},
		OwnerID:          "u_demo_1",
		Status:           models.StatusDraft,
		EventType:        models.DefaultEventType,
		AllowWishlists:   true,
		CollectAddresses: false,
		CustomMessage:    &message,
	})
	return s
}

// CreateUser inserts a new user keyed by email. The id is derived from the
// current table size, so ids are monotonic (deletion does not exist).
func (s *Store) CreateUser(name, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByEmail[email]; ok {
		return models.User{}, ErrEmailTaken
	}
	u := models.User{
		ID:       fmt.Sprintf("u_%d", len(s.usersByEmail)+1),
		Name:     name,
		Email:    email,
		Password: password,
	}
	s.usersByEmail[email] = u
	return u, nil
}

func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.usersByEmail[email]
	return u, ok
}

func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.usersByEmail)
}

// PutToken records token -> email. Re-putting an existing token keeps its
// original position in insertion order.
func (s *Store) PutToken(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokenEmail[token]; !ok {
		s.tokenOrder = append(s.tokenOrder, token)
	}
	s.tokenEmail[token] = email
}

func (s *Store) EmailForToken(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.tokenEmail[token]
	return email, ok
}

// TokenForEmail scans the token table in insertion order and returns the
// first token mapped to the email. First-inserted wins if the table ever
// holds more than one token for the same email.
func (s *Store) TokenForEmail(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tokenOrder {
		if s.tokenEmail[t] == email {
			return t, true
		}
	}
	return "", false
}

// AddEvent assigns the next evt_<n> id, appends, and returns the stored
// event. Callers fix OwnerID and Status before handing the event over.
func (s *Store) AddEvent(e models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = fmt.Sprintf("evt_%d", len(s.events)+1)
	s.events = append(s.events, e)
	return e
}

// EventsByOwner returns the owner's events in insertion order. The result is
// never nil so an empty listing serializes as [].
func (s *Store) EventsByOwner(ownerID string) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := []models.Event{}
	for _, e := range s.events {
		if e.OwnerID == ownerID {
			owned = append(owned, e)
		}
	}
	return owned
}
